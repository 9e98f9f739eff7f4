// Package compress shrinks payloads before they are embedded in a
// generated header. The embedding program is expected to carry the
// matching decoder and the uncompressed size.
package compress

import (
	"errors"
	"fmt"
	"strings"

	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Algorithm selects how a payload is compressed.
type Algorithm string

const (
	None Algorithm = "none"
	Zstd Algorithm = "zstd"
	// LZ4 is raw LZ4 block format, no frame header.
	LZ4 Algorithm = "lz4"
)

// ErrIncompressible is returned by LZ4 when the block would not be smaller than the input.
var ErrIncompressible = errors.New("data is incompressible")

// Algorithms lists the accepted names in display order.
var Algorithms = []Algorithm{None, Zstd, LZ4}

// Parse maps a flag value to an Algorithm. The empty string means None.
func Parse(name string) (Algorithm, error) {
	switch Algorithm(strings.ToLower(name)) {
	case "", None:
		return None, nil
	case Zstd:
		return Zstd, nil
	case LZ4:
		return LZ4, nil
	default:
		return "", fmt.Errorf("unknown compression %q (allowed: %s)", name, allowedList())
	}
}

func allowedList() string {
	names := make([]string, len(Algorithms))
	for i, a := range Algorithms {
		names[i] = string(a)
	}
	return strings.Join(names, ", ")
}

// Compress returns data compressed with alg. For None the input slice is returned as is.
func Compress(data []byte, alg Algorithm) ([]byte, error) {
	switch alg {
	case None, "":
		return data, nil
	case Zstd:
		return zstdEncoder.EncodeAll(data, nil), nil
	case LZ4:
		return compressLZ4(data)
	default:
		return nil, fmt.Errorf("unsupported compression: %q", alg)
	}
}

// Decompress reverses Compress. size must be the exact uncompressed length.
func Decompress(compressed []byte, alg Algorithm, size int) ([]byte, error) {
	switch alg {
	case None, "":
		if len(compressed) != size {
			return nil, fmt.Errorf("uncompressed payload: size %d does not match expected %d", len(compressed), size)
		}
		return compressed, nil
	case Zstd:
		out, err := zstdDecoder.DecodeAll(compressed, make([]byte, 0, size))
		if err != nil {
			return nil, fmt.Errorf("zstd decompress: %w", err)
		}
		if len(out) != size {
			return nil, fmt.Errorf("zstd decompress: got %d bytes, expected %d", len(out), size)
		}
		return out, nil
	case LZ4:
		out := make([]byte, size)
		n, err := lz4.UncompressBlock(compressed, out)
		if err != nil {
			return nil, fmt.Errorf("lz4 decompress: %w", err)
		}
		if n != size {
			return nil, fmt.Errorf("lz4 decompress: got %d bytes, expected %d", n, size)
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported compression: %q", alg)
	}
}

func compressLZ4(data []byte) ([]byte, error) {
	dst := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, dst, nil)
	if err != nil {
		return nil, fmt.Errorf("lz4 compress: %w", err)
	}
	// CompressBlock reports 0 for incompressible input.
	if n == 0 || n >= len(data) {
		return nil, fmt.Errorf("lz4: %w", ErrIncompressible)
	}
	return dst[:n], nil
}

// zstd.Encoder and zstd.Decoder are safe for concurrent use.
var (
	zstdEncoder *zstd.Encoder
	zstdDecoder *zstd.Decoder
)

func init() {
	var err error
	zstdEncoder, err = zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	if err != nil {
		panic("compress: zstd encoder initialization failed: " + err.Error())
	}
	zstdDecoder, err = zstd.NewReader(nil)
	if err != nil {
		panic("compress: zstd decoder initialization failed: " + err.Error())
	}
}
