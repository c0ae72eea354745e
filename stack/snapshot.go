package stack

import (
	"bytes"
	"fmt"
	"os"

	"github.com/cespare/xxhash/v2"
	"github.com/klauspost/compress/zstd"

	"github.com/joshuapare/stackkit/internal/format"
)

// EncodeSnapshot serializes the arena into a compressed snapshot
// container: an "stkz" header carrying the container version, an xxhash64
// digest of the raw image, and the raw image length, followed by a zstd
// frame holding the image itself. Snapshots are for archival and transfer;
// they cannot be mutated in place.
func (s *Stack) EncodeSnapshot() ([]byte, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("snapshot: %w", ErrInvalid)
	}

	enc, err := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedBetterCompression))
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer enc.Close()

	out := make([]byte, format.SnapshotHeaderSize, format.SnapshotHeaderSize+len(s.data)/2)
	copy(out[format.SignatureOffset:], format.SnapshotSignature)
	format.PutU32(out, format.SnapshotVersionOffset, format.SnapshotVersion)
	format.PutU64(out, format.SnapshotDigestOffset, xxhash.Sum64(s.data))
	format.PutU64(out, format.SnapshotRawLenOffset, uint64(len(s.data)))
	return enc.EncodeAll(s.data, out), nil
}

// DecodeSnapshot reconstructs a live arena from a snapshot container,
// verifying the digest before handing the image to FromImage.
func DecodeSnapshot(data []byte) (*Stack, error) {
	if len(data) < format.SnapshotHeaderSize {
		return nil, fmt.Errorf("snapshot: %w", format.ErrTruncated)
	}
	if !bytes.Equal(data[:format.SignatureSize], format.SnapshotSignature) {
		return nil, fmt.Errorf("snapshot: %w", format.ErrSignatureMismatch)
	}
	if v := format.ReadU32(data, format.SnapshotVersionOffset); v != format.SnapshotVersion {
		return nil, fmt.Errorf("snapshot: container version %d: %w", v, format.ErrVersion)
	}
	digest := format.ReadU64(data, format.SnapshotDigestOffset)
	rawLen := format.ReadU64(data, format.SnapshotRawLenOffset)

	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data[format.SnapshotHeaderSize:], nil)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %v: %w", err, format.ErrCorrupt)
	}
	if uint64(len(raw)) != rawLen {
		return nil, fmt.Errorf("snapshot: image is %d bytes, header says %d: %w",
			len(raw), rawLen, format.ErrCorrupt)
	}
	if xxhash.Sum64(raw) != digest {
		return nil, fmt.Errorf("snapshot: digest mismatch: %w", format.ErrCorrupt)
	}
	return FromImage(raw)
}

// SaveSnapshot writes a compressed snapshot of the arena to path.
func (s *Stack) SaveSnapshot(path string) error {
	snap, err := s.EncodeSnapshot()
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, snap, 0o644); err != nil {
		return fmt.Errorf("snapshot: %w", err)
	}
	return nil
}

// LoadSnapshot reads a compressed snapshot from path and reconstructs the
// arena.
func LoadSnapshot(path string) (*Stack, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("snapshot: %w", err)
	}
	return DecodeSnapshot(data)
}
