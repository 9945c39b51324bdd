// Package httpclient is the seam for outbound HTTP. The form controller
// posts submissions and the donation-completed trigger fires through the
// Client interface, so both can be tested against mocks instead of a live
// server.
package httpclient

import (
	"io"
	"net/http"
	"time"
)

// defaultTimeout bounds every outbound call. Nothing this service talks to
// should take longer; a hung trigger endpoint must not pin goroutines.
const defaultTimeout = 30 * time.Second

// Client is the outbound HTTP surface used across the service.
type Client interface {
	Post(url, contentType string, body io.Reader) (*http.Response, error)
	Get(url string) (*http.Response, error)
	Do(req *http.Request) (*http.Response, error)
}

// StandardHTTPClient is the production Client, a thin wrapper over
// http.Client with the default timeout applied.
type StandardHTTPClient struct {
	client *http.Client
}

// NewStandardClient creates the production HTTP client.
func NewStandardClient() Client {
	return &StandardHTTPClient{
		client: &http.Client{Timeout: defaultTimeout},
	}
}

// Post makes a POST request.
func (c *StandardHTTPClient) Post(url, contentType string, body io.Reader) (*http.Response, error) {
	return c.client.Post(url, contentType, body)
}

// Get makes a GET request.
func (c *StandardHTTPClient) Get(url string) (*http.Response, error) {
	return c.client.Get(url)
}

// Do executes a prepared request, used where the caller needs to control
// headers or attach a context.
func (c *StandardHTTPClient) Do(req *http.Request) (*http.Response, error) {
	return c.client.Do(req)
}
