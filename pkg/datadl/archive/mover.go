package archive

import (
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"sort"
	"sync"

	"github.com/saracen/walker"
)

// MoveMatching moves every file under sourceDir whose slash-separated
// relative path matches one of the glob patterns into destDir, preserving
// the relative path and creating intermediate directories. Files that match
// no pattern stay behind in sourceDir. A pattern that matches nothing is not
// an error. The returned map holds the match count per pattern; a file
// matching several patterns is counted for each but moved once. The int
// result is the number of files actually moved.
func MoveMatching(patterns []string, sourceDir, destDir string) (map[string]int, int, error) {
	for _, pattern := range patterns {
		if _, err := path.Match(pattern, "probe"); err != nil {
			return nil, 0, fmt.Errorf("bad pattern %q: %w", pattern, err)
		}
	}

	if err := os.MkdirAll(destDir, 0o755); err != nil {
		return nil, 0, err
	}

	var mu sync.Mutex
	var files []string

	err := walker.Walk(sourceDir, func(pathname string, fi os.FileInfo) error {
		if fi.IsDir() {
			return nil
		}

		rel, err := filepath.Rel(sourceDir, pathname)
		if err != nil {
			return err
		}

		mu.Lock()
		files = append(files, filepath.ToSlash(rel))
		mu.Unlock()

		return nil
	})
	if err != nil {
		return nil, 0, err
	}

	sort.Strings(files)

	counts := make(map[string]int, len(patterns))
	moved := make(map[string]bool)

	for _, pattern := range patterns {
		counts[pattern] = 0

		for _, rel := range files {
			ok, _ := path.Match(pattern, rel)
			if !ok {
				continue
			}

			counts[pattern]++
			if moved[rel] {
				continue
			}

			src := filepath.Join(sourceDir, filepath.FromSlash(rel))
			dst := filepath.Join(destDir, filepath.FromSlash(rel))

			if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
				return counts, len(moved), err
			}

			if err := moveFile(src, dst); err != nil {
				return counts, len(moved), err
			}

			moved[rel] = true
		}
	}

	return counts, len(moved), nil
}

// moveFile renames src to dst, falling back to copy-then-remove when the
// two paths are on different filesystems (the staging area is often on a
// different volume than the data root).
func moveFile(src, dst string) error {
	if err := os.Rename(src, dst); err == nil {
		return nil
	}

	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dst, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		_ = out.Close()
		return fmt.Errorf("moving %s: %w", src, err)
	}

	if err := out.Close(); err != nil {
		return err
	}

	return os.Remove(src)
}
