// Package fetch retrieves remote resources to local files. The datadl
// download workflows consume the Fetcher interface so tests can substitute
// a fetcher that never touches the network.
package fetch

import "errors"

var ErrFetch = errors.New("fetch failed")

// Fetcher retrieves the resource at url and writes exactly its bytes to
// localPath. On failure no file is left at localPath.
type Fetcher interface {
	FetchToFile(url, localPath string) error
}
