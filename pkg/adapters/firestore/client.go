// Package firestore reads script documents from the editor's Firestore database
// through the public REST API.
package firestore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"

	"github.com/aretw0/scriptsync/internal/logging"
	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/ports"
)

const (
	// DefaultBaseURL is the root of the Firestore REST API.
	DefaultBaseURL = "https://firestore.googleapis.com/v1"
	// DefaultDatabase is the database holding the editor documents.
	DefaultDatabase = "(default)"
	// DefaultCollection is the collection holding one document per script kind.
	DefaultCollection = "script"
	// yamlField is the document field carrying the script source.
	yamlField = "yaml"
)

// ErrMalformedDocument is returned when a document has no YAML string field.
var ErrMalformedDocument = errors.New("malformed editor document")

// document is the subset of the Firestore document envelope that we read.
type document struct {
	Fields map[string]struct {
		StringValue *string `json:"stringValue"`
	} `json:"fields"`
}

// Client implements ports.DocumentSource.
type Client struct {
	baseURL    string
	project    string
	database   string
	collection string
	http       *http.Client
	logger     *slog.Logger
}

var _ ports.DocumentSource = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root.
func WithBaseURL(u string) Option {
	return func(c *Client) { c.baseURL = strings.TrimRight(u, "/") }
}

// WithCollection selects the collection holding the script documents.
func WithCollection(name string) Option {
	return func(c *Client) { c.collection = name }
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) { c.http = hc }
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) { c.logger = logger }
}

// New creates a client for the documents of a Google Cloud project.
func New(project string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		project:    project,
		database:   DefaultDatabase,
		collection: DefaultCollection,
		http:       http.DefaultClient,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// DocumentURL returns the REST location of the document of a kind.
func (c *Client) DocumentURL(kind domain.Kind) string {
	return fmt.Sprintf("%s/projects/%s/databases/%s/documents/%s/%s",
		c.baseURL, url.PathEscape(c.project), c.database, url.PathEscape(c.collection), url.PathEscape(string(kind)))
}

// Fetch returns the YAML source stored in the document of a kind.
func (c *Client) Fetch(ctx context.Context, kind domain.Kind) (string, error) {
	u := c.DocumentURL(kind)
	c.logger.Info("Fetching from editor", "kind", kind, "url", u)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, u, nil)
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", fmt.Errorf("failed to fetch %s: %w", kind, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", kind, err)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", fmt.Errorf("failed to fetch %s: unexpected status %d", kind, resp.StatusCode)
	}

	var doc document
	if err := json.Unmarshal(body, &doc); err != nil {
		return "", fmt.Errorf("%w: %s: %v", ErrMalformedDocument, kind, err)
	}
	field, ok := doc.Fields[yamlField]
	if !ok || field.StringValue == nil {
		return "", fmt.Errorf("%w: %s has no %q string field", ErrMalformedDocument, kind, yamlField)
	}
	return *field.StringValue, nil
}
