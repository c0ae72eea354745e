// Package format houses low-level decoders for the stack arena image format.
// The goal is to keep the parsing focused, allocation-free where possible, and
// independent from the public API so higher-level packages can orchestrate the
// data in a more ergonomic form.
package format

var (
	// StackSignature is the four-byte signature at the start of every stack image.
	// Layout (little-endian):
	//   0x00  's' 't' 'a' 'k'
	StackSignature = []byte{'s', 't', 'a', 'k'}

	// SnapshotSignature is the four-byte signature at the start of a compressed
	// snapshot container.
	// Layout:
	//   0x00  's' 't' 'k' 'z'
	SnapshotSignature = []byte{'s', 't', 'k', 'z'}
)

const (
	// Version is the stack image format version produced by this package.
	Version = 1

	// HeaderSize is the size of the stack header in bytes. The header occupies
	// the first 32 bytes of the image; the data region follows immediately.
	HeaderSize = 0x20

	// EntryHeaderSize is the number of bytes used by the size field preceding
	// every entry payload in the data region.
	EntryHeaderSize = 4

	// Header field offsets. All integer fields are little-endian uint32.
	SignatureOffset  = 0x00 // 4 bytes: "stak"
	SignatureSize    = 4
	VersionOffset    = 0x04 // Format version
	CapacityOffset   = 0x08 // Byte length of the data region
	TopOffset        = 0x0C // Offset of the top entry's size field; == capacity when empty
	EntryCountOffset = 0x10 // Number of live entries
	FlagsOffset      = 0x14 // Reserved, zero
	ChecksumOffset   = 0x18 // XOR checksum of the preceding six dwords
	ReservedOffset   = 0x1C // Reserved, zero

	// ChecksumRegionLen is the number of header bytes covered by the checksum.
	ChecksumRegionLen = 0x18

	// ChecksumDwords is the number of dwords XORed into the checksum (24 bytes / 4).
	ChecksumDwords = 6

	// MaxDataSize is the largest data region representable by the uint32
	// capacity field while keeping image length within uint32 as well.
	MaxDataSize = 0xFFFFFFFF - HeaderSize
)

const (
	// SnapshotVersion is the compressed snapshot container version.
	SnapshotVersion = 1

	// SnapshotHeaderSize is the size of the snapshot container header:
	//   0x00  4  "stkz"
	//   0x04  4  Container version
	//   0x08  8  xxhash64 digest of the raw image
	//   0x10  8  Raw image length in bytes
	// The zstd frame with the raw image follows at 0x18.
	SnapshotHeaderSize = 0x18

	SnapshotVersionOffset = 0x04
	SnapshotDigestOffset  = 0x08
	SnapshotRawLenOffset  = 0x10
)
