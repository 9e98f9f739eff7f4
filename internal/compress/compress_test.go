package compress

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	tests := []struct {
		in      string
		want    Algorithm
		wantErr bool
	}{
		{"", None, false},
		{"none", None, false},
		{"zstd", Zstd, false},
		{"ZSTD", Zstd, false},
		{"lz4", LZ4, false},
		{"gzip", "", true},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := Parse(tt.in)
			if tt.wantErr {
				require.Error(t, err)
				assert.Contains(t, err.Error(), "allowed: none, zstd, lz4")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestRoundTrip(t *testing.T) {
	payload := bytes.Repeat([]byte("ROM BANK 00 \x00\x00\x00\xff"), 512)

	for _, alg := range Algorithms {
		t.Run(string(alg), func(t *testing.T) {
			packed, err := Compress(payload, alg)
			require.NoError(t, err)
			if alg != None {
				assert.Less(t, len(packed), len(payload))
			}

			unpacked, err := Decompress(packed, alg, len(payload))
			require.NoError(t, err)
			assert.Equal(t, payload, unpacked)
		})
	}
}

func TestCompress_NoneReturnsInput(t *testing.T) {
	payload := []byte{1, 2, 3}
	out, err := Compress(payload, None)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestCompress_LZ4Incompressible(t *testing.T) {
	_, err := Compress([]byte{0x42}, LZ4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIncompressible))
}

func TestCompress_ZstdEmpty(t *testing.T) {
	packed, err := Compress(nil, Zstd)
	require.NoError(t, err)

	out, err := Decompress(packed, Zstd, 0)
	require.NoError(t, err)
	assert.Empty(t, out)
}

func TestDecompress_SizeMismatch(t *testing.T) {
	_, err := Decompress([]byte{1, 2, 3}, None, 4)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "does not match")
}
