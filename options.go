package paneldump

import "net/http"

// config holds Dumper settings applied through options.
type config struct {
	baseURL    string
	httpClient *http.Client
	keep       map[int]bool
}

func defaultConfig() *config {
	return &config{}
}

// Option is a function that configures a Dumper.
type Option func(*config) error

// WithBaseURL overrides the PanelApp API base URL.
func WithBaseURL(url string) Option {
	return func(c *config) error {
		c.baseURL = url
		return nil
	}
}

// WithHTTPClient sets the HTTP client used for PanelApp requests.
func WithHTTPClient(h *http.Client) Option {
	return func(c *config) error {
		c.httpClient = h
		return nil
	}
}

// WithKeepPanels restricts the fetch to the given panel IDs. Without
// this option every signed-off panel is kept.
func WithKeepPanels(ids ...int) Option {
	return func(c *config) error {
		if len(ids) == 0 {
			return nil
		}
		if c.keep == nil {
			c.keep = make(map[int]bool, len(ids))
		}
		for _, id := range ids {
			c.keep[id] = true
		}
		return nil
	}
}
