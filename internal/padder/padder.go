package padder

import (
	"errors"
	"fmt"
	"os"
	"strconv"
)

var (
	// ErrSizeExceeded is matched by every *SizeExceededError.
	ErrSizeExceeded = errors.New("size exceeded")
	// ErrInvalidLength reports a target length that is not a non-negative base-10 integer.
	ErrInvalidLength = errors.New("invalid length")
)

// MaxLength is the largest accepted target length (1 TiB).
const MaxLength int64 = 1 << 40

// chunkSize bounds the zero buffer written per append.
const chunkSize = 64 << 10

// SizeExceededError is returned by Pad when the file is already longer than the target.
type SizeExceededError struct {
	Path  string
	Limit int64
	Size  int64
}

func (e *SizeExceededError) Error() string {
	return fmt.Sprintf("%s is larger than %d", e.Path, e.Limit)
}

func (e *SizeExceededError) Is(target error) bool {
	return target == ErrSizeExceeded
}

// Result describes what Pad did to the file.
type Result struct {
	// Original is the file length before padding.
	Original int64
	// Appended is the number of zero bytes written to the end of the file.
	Appended int64
}

// Changed reports whether any bytes were appended.
func (r Result) Changed() bool {
	return r.Appended > 0
}

// ParseLength parses a target length given on the command line.
func ParseLength(s string) (int64, error) {
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %q is not an integer", ErrInvalidLength, s)
	}
	if err := checkLength(n); err != nil {
		return 0, err
	}
	return n, nil
}

func checkLength(n int64) error {
	if n < 0 {
		return fmt.Errorf("%w: %d is negative", ErrInvalidLength, n)
	}
	if n > MaxLength {
		return fmt.Errorf("%w: %d exceeds the maximum of %d", ErrInvalidLength, n, MaxLength)
	}
	return nil
}

// Pad grows the file at path to exactly length bytes by appending zeros.
// A file already at length is left alone. A longer file is rejected with a
// *SizeExceededError before anything is written. If appending fails the file
// is truncated back to its original length.
//
// Parameters:
//   - path: The file to pad in place.
//   - length: The target size in bytes.
//
// Returns:
//   - Result: The original size and the number of bytes appended.
//   - error: A *SizeExceededError, ErrInvalidLength, or a wrapped I/O error.
func Pad(path string, length int64) (Result, error) {
	if err := checkLength(length); err != nil {
		return Result{}, err
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read %s: %w", path, err)
	}

	res := Result{Original: int64(len(data))}
	switch {
	case res.Original > length:
		return res, &SizeExceededError{Path: path, Limit: length, Size: res.Original}
	case res.Original == length:
		return res, nil
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_APPEND, 0)
	if err != nil {
		return res, fmt.Errorf("failed to open %s for append: %w", path, err)
	}

	zeros := make([]byte, min(chunkSize, length-res.Original))
	for res.Appended < length-res.Original {
		chunk := zeros[:min(int64(len(zeros)), length-res.Original-res.Appended)]
		n, err := f.Write(chunk)
		res.Appended += int64(n)
		if err != nil {
			f.Truncate(res.Original)
			f.Close()
			return Result{Original: res.Original}, fmt.Errorf("failed to append to %s: %w", path, err)
		}
	}
	if err := f.Close(); err != nil {
		return res, fmt.Errorf("failed to close %s: %w", path, err)
	}
	return res, nil
}
