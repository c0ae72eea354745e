package printer_test

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/joshuapare/stackkit/internal/testutil"
	"github.com/joshuapare/stackkit/stack/printer"
)

func TestPrint_Text(t *testing.T) {
	img := testutil.ImageBytes(t, 64, "hello", "world")

	var buf bytes.Buffer
	p := printer.New(img, &buf, printer.DefaultOptions())
	require.NoError(t, p.Print())

	out := buf.String()
	require.Contains(t, out, "stack image: version=1 capacity=64 used=18 free=46 entries=2")
	require.Contains(t, out, "[0]")
	require.Contains(t, out, "|world|")
	require.Contains(t, out, "[1]")
	require.Contains(t, out, "|hello|")
	require.Contains(t, out, "68 65 6C 6C 6F") // "hello" as spaced hex
}

func TestPrint_TextTruncatesLongPayloads(t *testing.T) {
	payload := "0123456789abcdef0123456789abcdef0123456789" // 42 bytes
	img := testutil.ImageBytes(t, 128, payload)

	var buf bytes.Buffer
	opts := printer.DefaultOptions()
	opts.MaxPayloadBytes = 8
	require.NoError(t, printer.New(img, &buf, opts).Print())

	out := buf.String()
	require.Contains(t, out, "|01234567|")
	require.Contains(t, out, "... (42 bytes)")
	require.NotContains(t, out, "abcdef")
}

func TestPrint_TextWithoutEntries(t *testing.T) {
	img := testutil.ImageBytes(t, 64, "hidden")

	var buf bytes.Buffer
	opts := printer.DefaultOptions()
	opts.ShowEntries = false
	require.NoError(t, printer.New(img, &buf, opts).Print())

	out := buf.String()
	require.Contains(t, out, "entries=1")
	require.NotContains(t, out, "hidden")
	require.NotContains(t, out, "[0]")
}

func TestPrint_JSON(t *testing.T) {
	img := testutil.ImageBytes(t, 64, "a", "bb")

	var buf bytes.Buffer
	opts := printer.DefaultOptions()
	opts.Format = printer.FormatJSON
	require.NoError(t, printer.New(img, &buf, opts).Print())

	var got printer.JSONImage
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))

	require.Equal(t, 1, got.Version)
	require.Equal(t, 64, got.Capacity)
	require.Equal(t, 11, got.Used)
	require.Equal(t, 53, got.Free)
	require.Equal(t, 2, got.EntryCount)
	require.Len(t, got.Entries, 2)
	require.Equal(t, "6262", got.Entries[0].Data)
	require.Equal(t, "bb", got.Entries[0].Preview)
	require.Equal(t, "a", got.Entries[1].Preview)
}

func TestPrintEntry_ByIndex(t *testing.T) {
	img := testutil.ImageBytes(t, 64, "bottom", "top")

	var buf bytes.Buffer
	require.NoError(t, printer.New(img, &buf, printer.DefaultOptions()).PrintEntry(1))

	out := buf.String()
	require.Contains(t, out, "|bottom|")
	require.NotContains(t, out, "|top|")
}

func TestPrintEntry_IndexOutOfRange(t *testing.T) {
	img := testutil.ImageBytes(t, 64, "only")

	var buf bytes.Buffer
	err := printer.New(img, &buf, printer.DefaultOptions()).PrintEntry(3)
	require.Error(t, err)
	require.Contains(t, err.Error(), "entry 3 not found")
}

func TestPrint_UnknownFormat(t *testing.T) {
	img := testutil.ImageBytes(t, 64)

	var buf bytes.Buffer
	opts := printer.DefaultOptions()
	opts.Format = printer.Format("yaml")
	err := printer.New(img, &buf, opts).Print()
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown format")
}

func TestPrint_RejectsForeignBuffer(t *testing.T) {
	var buf bytes.Buffer
	err := printer.New([]byte("definitely not an image"), &buf, printer.DefaultOptions()).Print()
	require.Error(t, err)
}

// TestPreview_Rendering exercises the display decoding directly: ASCII
// passes through, control bytes become dots, and extended bytes decode as
// Windows-1252.
func TestPreview_Rendering(t *testing.T) {
	require.Equal(t, "plain", printer.Preview([]byte("plain")))
	require.Equal(t, "a.b.", printer.Preview([]byte{'a', 0x00, 'b', 0x1F}))
	require.Equal(t, "café", printer.Preview([]byte{'c', 'a', 'f', 0xE9}))
	require.Equal(t, "", printer.Preview(nil))
}
