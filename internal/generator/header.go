package generator

import (
	"bytes"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/xll-gen/bintools/internal/compress"
	"github.com/xll-gen/bintools/internal/digest"
	"github.com/xll-gen/bintools/internal/templates"
)

// Options contains optional settings for header generation.
// The zero value produces the plain array with no trailing defines.
type Options struct {
	// Compression is applied to the input before it is embedded.
	Compression compress.Algorithm
	// SizeMacro appends #define <NAME>_SIZE (and _COMPRESSED_SIZE when compressed).
	SizeMacro bool
}

// Header is the data handed to the header template.
type Header struct {
	// Name is the array identifier, emitted verbatim.
	Name string
	// Data holds the bytes that become array elements.
	Data []byte
	// Size is the uncompressed payload length, reported by the size macro.
	Size int
	// Compressed is true when Data differs from the original payload.
	Compressed bool
	// SizeMacro enables the trailing #define lines.
	SizeMacro bool
}

// NewHeader builds the template data for payload under opts.
func NewHeader(name string, payload []byte, opts Options) (Header, error) {
	h := Header{
		Name:      name,
		Data:      payload,
		Size:      len(payload),
		SizeMacro: opts.SizeMacro,
	}
	if opts.Compression == "" || opts.Compression == compress.None {
		return h, nil
	}

	packed, err := compress.Compress(payload, opts.Compression)
	if err != nil {
		return Header{}, err
	}
	h.Data = packed
	h.Compressed = true
	return h, nil
}

// Render writes the C header for h to w.
func Render(w io.Writer, h Header) error {
	return executeTemplate(w, templates.Header, h)
}

// GenerateHeader reads inputPath and writes a C header declaring its bytes as
// symbol to outputPath, replacing any existing file.
//
// Parameters:
//   - symbol: The array identifier. It is not validated.
//   - inputPath: The binary file to embed.
//   - outputPath: The header file to create or overwrite.
//   - opts: Compression and size macro settings.
//
// Returns:
//   - error: A wrapped I/O, compression or template error.
func GenerateHeader(symbol, inputPath, outputPath string, opts Options) error {
	data, err := os.ReadFile(inputPath)
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", inputPath, err)
	}
	slog.Debug("read input",
		"path", inputPath,
		"size", humanize.IBytes(uint64(len(data))),
		"blake3", digest.Short(data))

	h, err := NewHeader(symbol, data, opts)
	if err != nil {
		return fmt.Errorf("failed to compress %s: %w", inputPath, err)
	}
	if h.Compressed {
		slog.Debug("compressed payload",
			"algorithm", string(opts.Compression),
			"from", humanize.IBytes(uint64(h.Size)),
			"to", humanize.IBytes(uint64(len(h.Data))))
	}

	var buf bytes.Buffer
	if err := Render(&buf, h); err != nil {
		return err
	}
	if err := writeOutput(outputPath, buf.Bytes()); err != nil {
		return err
	}

	slog.Info("generated header",
		"symbol", symbol,
		"output", outputPath,
		"elements", len(h.Data),
		"blake3", digest.Short(buf.Bytes()))
	return nil
}
