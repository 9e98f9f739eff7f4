package digest

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSum(t *testing.T) {
	// BLAKE3 of the empty input.
	assert.Equal(t, "af1349b9f5f9a1a6a0404dea36dcc9499bcb25c9adc112b7cc9a93cae41f3262", Sum(nil))

	a := Sum([]byte{0x00})
	b := Sum([]byte{0x00, 0x00})
	assert.Len(t, a, 64)
	assert.NotEqual(t, a, b)
	assert.Equal(t, a, Sum([]byte{0x00}))
}

func TestShort(t *testing.T) {
	data := []byte("header")
	assert.Len(t, Short(data), 16)
	assert.Equal(t, Sum(data)[:16], Short(data))
}
