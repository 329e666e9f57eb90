// Package datadl acquires external datasets and lays them out in a
// predictable directory structure under a data root: one directory per
// dataset, optionally subdivided into part directories. Every operation is
// idempotent; a target path that already exists on disk means the work was
// done on a previous run and the operation becomes a no-op, so acquisition
// scripts can be re-run safely after a failure.
package datadl

import (
	"os"
	"path/filepath"

	"github.com/apex/log"
	"github.com/gosimple/slug"
	"github.com/open-AIMS/data-downloader/pkg/datadl/archive"
	"github.com/open-AIMS/data-downloader/pkg/fetch"
)

// Downloader fetches remote resources into a data root. Multiple Downloaders
// with different roots can coexist; there is no shared state between them.
type Downloader struct {
	root    string
	fetcher fetch.Fetcher
}

func New(root string, fetcher fetch.Fetcher) *Downloader {
	return &Downloader{root: root, fetcher: fetcher}
}

func (d *Downloader) Root() string {
	return d.root
}

// DatasetPath returns the directory a dataset (or one part of it) is laid
// out in. This is the path whose existence gates re-fetching.
func (d *Downloader) DatasetPath(dataset, part string) string {
	p := filepath.Join(d.root, dataset)
	if part != "" {
		p = filepath.Join(p, part)
	}

	return p
}

// FetchFile downloads url to path. If path already exists the download is
// skipped. The transfer goes to path+".tmp" first and is renamed into place,
// so path never holds a partial download.
func (d *Downloader) FetchFile(url, path string) error {
	if pathExists(path) {
		log.Infof("Skipping download of %s; it already exists", path)
		return nil
	}

	log.Infof("Downloading from %s", url)

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	tmpPath := path + ".tmp"
	if err := d.fetcher.FetchToFile(url, tmpPath); err != nil {
		return err
	}

	return os.Rename(tmpPath, path)
}

// FetchAndExtract downloads the ZIP at url and unpacks it into
// root/dataset, or root/dataset/part when part is non-empty. When parts are
// used each part's own directory gates idempotency, so multiple parts of
// one dataset can be fetched independently. With flatten set, a single
// top-level wrapper directory inside the extracted tree is collapsed; an
// ambiguous layout leaves the tree as extracted and logs a warning.
func (d *Downloader) FetchAndExtract(url, dataset, part string, flatten bool) error {
	target := d.DatasetPath(dataset, part)

	if pathExists(target) {
		log.Infof("Skipping %s; it already exists at %s", dataset, target)
		return nil
	}

	tmpDir, err := os.MkdirTemp("", "datadl")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	zipPath := filepath.Join(tmpDir, slug.Make(dataset)+".zip")
	if err := d.FetchFile(url, zipPath); err != nil {
		return err
	}

	log.Infof("Unzipping %s to %s", zipPath, target)
	if err := archive.Extract(zipPath, target); err != nil {
		return err
	}

	if flatten {
		outcome, err := archive.Flatten(target)
		if err != nil {
			return err
		}

		switch outcome {
		case archive.Flattened:
			log.Infof("Flattened directory structure for %s", target)
		case archive.SkippedAmbiguous:
			log.Warnf("Not flattening %s; layout is ambiguous", target)
		}
	}

	return nil
}

// FetchExtractSubset downloads the ZIP at url, extracts it into a throwaway
// staging directory and moves only the files matching patterns into
// root/dataset. Everything else is discarded with the staging directory.
// The dataset directory is created even when no pattern matches, so a
// re-run skips the download.
func (d *Downloader) FetchExtractSubset(url string, patterns []string, dataset string) error {
	target := d.DatasetPath(dataset, "")

	if pathExists(target) {
		log.Infof("Skipping %s; it already exists at %s", dataset, target)
		return nil
	}

	tmpDir, err := os.MkdirTemp("", "datadl")
	if err != nil {
		return err
	}
	defer os.RemoveAll(tmpDir)

	zipPath := filepath.Join(tmpDir, slug.Make(dataset)+".zip")
	if err := d.FetchFile(url, zipPath); err != nil {
		return err
	}

	extractDir := filepath.Join(tmpDir, "extracted")
	if err := archive.Extract(zipPath, extractDir); err != nil {
		return err
	}

	moved, err := d.MoveMatching(patterns, extractDir, target)
	if err != nil {
		return err
	}

	log.Infof("Kept %d file(s) for %s", moved, dataset)

	return nil
}

// MoveMatching moves files matching the glob patterns from sourceDir into
// destDir and returns how many files were moved. It can be used directly on
// trees that are already extracted.
func (d *Downloader) MoveMatching(patterns []string, sourceDir, destDir string) (int, error) {
	counts, moved, err := archive.MoveMatching(patterns, sourceDir, destDir)
	if err != nil {
		return moved, err
	}

	for _, pattern := range patterns {
		log.Debugf("Pattern %q matched %d file(s) in %s", pattern, counts[pattern], sourceDir)
	}

	return moved, nil
}

func pathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
