package archive

import (
	"os"
	"path/filepath"
)

type FlattenOutcome int

const (
	// NotApplicable means there was no wrapper directory to collapse.
	NotApplicable FlattenOutcome = iota

	// Flattened means the single wrapper directory's contents were moved
	// up and the wrapper was removed.
	Flattened

	// SkippedAmbiguous means the layout didn't identify a wrapper
	// directory unambiguously, so the tree was left exactly as extracted.
	SkippedAmbiguous
)

func (o FlattenOutcome) String() string {
	switch o {
	case Flattened:
		return "flattened"
	case SkippedAmbiguous:
		return "skipped-ambiguous"
	default:
		return "not-applicable"
	}
}

// Flatten collapses a single wrapper directory inside dir. If dir contains
// exactly one subdirectory, that subdirectory's entries are moved up to
// become direct children of dir and the now-empty wrapper is removed.
// Top-level files alongside the single subdirectory don't block flattening.
// With zero subdirectories there is nothing to collapse (NotApplicable);
// with more than one the layout is ambiguous and the tree is left untouched
// (SkippedAmbiguous). The move is all-or-nothing: if any wrapper entry would
// collide with an existing top-level entry, nothing moves.
func Flatten(dir string) (FlattenOutcome, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return NotApplicable, err
	}

	var wrapper string
	names := make(map[string]bool)
	dirCount := 0

	for _, entry := range entries {
		names[entry.Name()] = true
		if entry.IsDir() {
			dirCount++
			wrapper = entry.Name()
		}
	}

	switch {
	case dirCount == 0:
		return NotApplicable, nil
	case dirCount > 1:
		return SkippedAmbiguous, nil
	}

	wrapperPath := filepath.Join(dir, wrapper)
	children, err := os.ReadDir(wrapperPath)
	if err != nil {
		return NotApplicable, err
	}

	// All-or-nothing: refuse the whole move if any child would land on an
	// existing sibling of the wrapper.
	for _, child := range children {
		if names[child.Name()] {
			return SkippedAmbiguous, nil
		}
	}

	for _, child := range children {
		src := filepath.Join(wrapperPath, child.Name())
		dst := filepath.Join(dir, child.Name())
		if err := os.Rename(src, dst); err != nil {
			return NotApplicable, err
		}
	}

	if err := os.Remove(wrapperPath); err != nil {
		return NotApplicable, err
	}

	return Flattened, nil
}
