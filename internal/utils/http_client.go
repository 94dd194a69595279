package utils

import (
	"github.com/go-resty/resty/v2"
)

// HTTPClient wraps resty.Client. It embeds *resty.Client so all of its
// methods are available directly, while leaving room for shop-specific
// behaviour to be layered on later.
type HTTPClient struct {
	*resty.Client
}

// NewHTTPClient returns a new HTTPClient with a default-configured underlying
// resty.Client. Each call returns an independent instance with its own
// connection pool and state.
//
// Example usage:
//
//	client := utils.NewHTTPClient()
//	resp, err := client.R().Get("http://localhost:8080/api/version/")
func NewHTTPClient() *HTTPClient {
	return &HTTPClient{Client: resty.New()}
}
