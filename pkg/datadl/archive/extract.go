// Package archive unpacks ZIP archives into dataset directories and
// normalizes the resulting layout. Extraction goes through a staging
// directory that is promoted with a single rename, so a dataset directory is
// only ever wholly present or wholly absent under its final name.
package archive

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-uuid"
)

var (
	ErrTargetExists = errors.New("extraction target already exists")
	ErrUnsafePath   = errors.New("unsafe archive entry path")
)

// Extract unpacks the ZIP at archivePath into finalPath. The archive is
// extracted entry by entry into a staging directory that is a sibling of
// finalPath (same filesystem, so the promotion is a true rename). Every
// entry path is validated with CheckPathLength before anything is written.
// On any failure the staging directory is removed and finalPath does not
// exist afterwards.
func Extract(archivePath, finalPath string) (err error) {
	// The caller checks for existence before extracting, but the
	// check-then-act window isn't protected by any lock.
	if _, serr := os.Stat(finalPath); serr == nil {
		return fmt.Errorf("%w: %s", ErrTargetExists, finalPath)
	}

	if err := os.MkdirAll(filepath.Dir(finalPath), 0o755); err != nil {
		return err
	}

	staging, err := stagingPath(finalPath)
	if err != nil {
		return err
	}

	if err := os.Mkdir(staging, 0o755); err != nil {
		return err
	}

	defer func() {
		if err != nil {
			// Best-effort cleanup; the rename never ran, so
			// finalPath is untouched.
			_ = os.RemoveAll(staging)
		}
	}()

	r, err := zip.OpenReader(archivePath)
	if err != nil {
		return fmt.Errorf("opening archive %s: %w", archivePath, err)
	}
	defer r.Close()

	for _, f := range r.File {
		if err = writeEntry(f, staging); err != nil {
			return err
		}
	}

	return os.Rename(staging, finalPath)
}

// stagingPath returns a unique sibling of finalPath. The suffix is kept
// short so the path length check on staged entries stays close to what the
// promoted paths will measure.
func stagingPath(finalPath string) (string, error) {
	id, err := uuid.GenerateUUID()
	if err != nil {
		return "", err
	}

	return fmt.Sprintf("%s.tmp-%s", finalPath, id[:8]), nil
}

func writeEntry(f *zip.File, staging string) error {
	dest := filepath.Join(staging, filepath.FromSlash(f.Name))

	// Zip-slip guard: an entry like "../x" must never escape staging.
	if dest != staging && !strings.HasPrefix(dest, staging+string(os.PathSeparator)) {
		return fmt.Errorf("%w: %s", ErrUnsafePath, f.Name)
	}

	if err := CheckPathLength(dest); err != nil {
		return err
	}

	if f.FileInfo().IsDir() {
		return os.MkdirAll(dest, 0o755)
	}

	if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
		return err
	}

	rc, err := f.Open()
	if err != nil {
		return fmt.Errorf("reading archive entry %s: %w", f.Name, err)
	}
	defer rc.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, rc); err != nil {
		_ = out.Close()
		return fmt.Errorf("extracting %s: %w", f.Name, err)
	}

	return out.Close()
}
