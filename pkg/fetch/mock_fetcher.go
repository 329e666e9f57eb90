package fetch

import (
	"fmt"
	"os"
)

// MockFetcher serves canned bytes per URL and records every fetch so tests
// can assert that idempotent operations never reach the fetcher.
type MockFetcher struct {
	err     error
	content map[string][]byte
	Fetched []string
}

func NewMockFetcher() *MockFetcher {
	return &MockFetcher{content: make(map[string][]byte)}
}

func (f *MockFetcher) SetError(err error) {
	f.err = err
}

func (f *MockFetcher) SetContent(url string, b []byte) {
	f.content[url] = b
}

func (f *MockFetcher) FetchToFile(url, localPath string) error {
	if f.err != nil {
		return f.err
	}

	b, ok := f.content[url]
	if !ok {
		return fmt.Errorf("%w: no content for %s", ErrFetch, url)
	}

	f.Fetched = append(f.Fetched, url)

	return os.WriteFile(localPath, b, 0o666)
}

func (f *MockFetcher) Err(err error) *MockFetcher {
	f.err = err
	return f
}
