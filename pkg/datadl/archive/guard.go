package archive

import (
	"errors"
	"fmt"
)

// MaxPathLength is the conventional Windows MAX_PATH limit. Dataset layouts
// have to stay usable on Windows machines, so the limit is enforced on every
// platform.
const MaxPathLength = 260

var ErrPathTooLong = errors.New("extraction path too long")

// CheckPathLength rejects paths that would exceed MaxPathLength. The error
// carries the offending path and its length so the caller can shorten the
// data root or the dataset naming; the tool never truncates paths itself.
func CheckPathLength(path string) error {
	if len(path) > MaxPathLength {
		return fmt.Errorf("%w: %d characters (max %d): %s", ErrPathTooLong, len(path), MaxPathLength, path)
	}

	return nil
}
