package restaurant

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// DefaultBaseURL is the public restaurant API.
const DefaultBaseURL = "https://restaurant-api.dicoding.dev"

// Image sizes offered by the API's image endpoint.
const (
	ImageSmall  = "small"
	ImageMedium = "medium"
	ImageLarge  = "large"
)

// Response is a successful API response with its body fully read, so the
// same bytes can be rendered and cached.
type Response struct {
	URL         string
	StatusCode  int
	ContentType string
	Body        []byte
}

// Client talks to the remote restaurant API.
type Client struct {
	baseURL      string
	imageBaseURL string
	httpClient   *http.Client
}

// NewClient creates a Client. baseURL defaults to DefaultBaseURL and
// imageBaseURL to "<baseURL>/images" if empty.
func NewClient(baseURL, imageBaseURL string, timeout time.Duration) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	baseURL = strings.TrimRight(baseURL, "/")
	if imageBaseURL == "" {
		imageBaseURL = baseURL + "/images"
	}
	return &Client{
		baseURL:      baseURL,
		imageBaseURL: strings.TrimRight(imageBaseURL, "/"),
		httpClient:   &http.Client{Timeout: timeout},
	}
}

// ListURL is the canonical, fully qualified URL of the restaurant list.
func (c *Client) ListURL() string {
	return c.baseURL + "/list"
}

// DetailURL is the fully qualified URL of one restaurant's detail record.
func (c *Client) DetailURL(id string) string {
	return c.baseURL + "/detail/" + url.PathEscape(id)
}

// ImageURL builds the picture URL for the given size.
func (c *Client) ImageURL(pictureID, size string) string {
	if size == "" {
		size = ImageMedium
	}
	return c.imageBaseURL + "/" + size + "/" + url.PathEscape(pictureID)
}

// Get issues a GET request and reads the whole body. Transport errors and
// non-2xx statuses are reported as ErrNetwork.
func (c *Client) Get(ctx context.Context, rawURL string) (*Response, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, rawURL, nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		io.Copy(io.Discard, resp.Body)
		return nil, &StatusError{URL: rawURL, StatusCode: resp.StatusCode}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: reading body: %v", ErrNetwork, err)
	}

	return &Response{
		URL:         rawURL,
		StatusCode:  resp.StatusCode,
		ContentType: resp.Header.Get("Content-Type"),
		Body:        body,
	}, nil
}
