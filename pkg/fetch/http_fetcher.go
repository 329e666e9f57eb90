package fetch

import (
	"os"

	"github.com/go-resty/resty/v2"
	"github.com/pkg/errors"
)

// Some data portals reject requests that don't look like they came from a
// browser, so every request goes out with a common browser user agent.
var browserHeaders = map[string]string{
	"User-Agent": "Mozilla/5.0 (Windows NT 10.0; Win64; x64) " +
		"AppleWebKit/537.36 (KHTML, like Gecko) " +
		"Chrome/58.0.3029.110 Safari/537.36",
	"Accept":          "text/html,application/xhtml+xml,application/xml;q=0.9,image/webp,*/*;q=0.8",
	"Accept-Language": "en-US,en;q=0.5",
}

type HTTPFetcher struct {
	client *resty.Client
}

func NewHTTPFetcher() *HTTPFetcher {
	return &HTTPFetcher{client: resty.New().SetHeaders(browserHeaders)}
}

func (f *HTTPFetcher) FetchToFile(url, localPath string) error {
	resp, err := f.client.R().SetOutput(localPath).Get(url)
	if err != nil {
		_ = os.Remove(localPath)
		return errors.Wrapf(ErrFetch, "GET %s: %s", url, err)
	}

	if resp.IsError() {
		// resty writes the error body to the output file as well; the
		// caller must never see it as a successful download.
		_ = os.Remove(localPath)
		return errors.Wrapf(ErrFetch, "GET %s: status %s", url, resp.Status())
	}

	return nil
}
