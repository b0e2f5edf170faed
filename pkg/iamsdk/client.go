package iamsdk

import (
	"context"
	"log/slog"
	"net/http"
	"strings"
	"time"
)

// Service describes the operations the GoIAM service exposes to clients.
// *Client is the canonical implementation; the interface exists so callers
// can substitute fakes in tests.
type Service interface {
	// Verify exchanges an authorization code for an access token.
	Verify(ctx context.Context, code string) (string, error)

	// Me fetches the profile of the user the token belongs to.
	Me(ctx context.Context, token string) (*User, error)

	// CreateResource registers a new resource record.
	CreateResource(ctx context.Context, resource *Resource, token string) error

	// DeleteResource removes the resource with the given ID.
	DeleteResource(ctx context.Context, resourceID, token string) error
}

// Client is a client for the GoIAM service. Connection configuration is
// captured at construction and never mutated afterwards, so a single Client
// is safe for concurrent use.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string

	httpClient *http.Client
	logger     *slog.Logger
}

var _ Service = (*Client)(nil)

// Option configures a Client at construction time.
type Option func(*Client)

// WithHTTPClient replaces the default HTTP client. Use this to control
// timeouts, transport settings or to inject a recording client in tests.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.httpClient = hc }
}

// WithLogger enables debug-level logging of request lifecycles. The client
// never logs above debug level and never logs credentials or tokens.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a Client for the GoIAM service at baseURL, authenticating as
// the given OAuth client. Trailing slashes on baseURL are stripped so path
// concatenation is unambiguous; credentials are stored verbatim.
func New(baseURL, clientID, clientSecret string, opts ...Option) *Client {
	c := &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		clientID:     clientID,
		clientSecret: clientSecret,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
		logger: slog.New(slog.DiscardHandler),
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// BaseURL returns the normalized base endpoint the client was built with.
func (c *Client) BaseURL() string { return c.baseURL }

// url builds a complete URL by appending the path to the base URL.
func (c *Client) url(path string) string {
	return c.baseURL + path
}
