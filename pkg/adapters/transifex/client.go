package transifex

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"github.com/aretw0/scriptsync/internal/logging"
	"github.com/aretw0/scriptsync/pkg/domain"
	"github.com/aretw0/scriptsync/pkg/ports"
)

// DefaultBaseURL is the root of the Transifex v2 API.
const DefaultBaseURL = "https://www.transifex.com/api/2"

// DefaultSourceLanguage is the language of the strings pushed to the vendor.
const DefaultSourceLanguage = "he"

// ErrRequest is returned when the vendor answers a request with a non-success status.
var ErrRequest = errors.New("transifex request failed")

// Client implements ports.TranslationVendor against the Transifex v2 API.
type Client struct {
	baseURL    string
	project    string
	token      string
	sourceLang string
	http       *http.Client
	logger     *slog.Logger
}

var _ ports.TranslationVendor = (*Client)(nil)

// Option configures a Client.
type Option func(*Client)

// WithBaseURL points the client at another API root (tests, proxies).
func WithBaseURL(u string) Option {
	return func(c *Client) {
		c.baseURL = strings.TrimRight(u, "/")
	}
}

// WithHTTPClient replaces the HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		c.http = hc
	}
}

// WithSourceLanguage sets the language key wrapping the resource content.
func WithSourceLanguage(lang string) Option {
	return func(c *Client) {
		c.sourceLang = lang
	}
}

// WithLogger sets the structured logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Client) {
		c.logger = logger
	}
}

// New creates a client for a Transifex project authenticated with an API token.
func New(project, token string, opts ...Option) *Client {
	c := &Client{
		baseURL:    DefaultBaseURL,
		project:    project,
		token:      token,
		sourceLang: DefaultSourceLanguage,
		http:       http.DefaultClient,
		logger:     logging.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *Client) resourceURL(slug string) string {
	return fmt.Sprintf("%s/project/%s/resource/%s/", c.baseURL, c.project, slug)
}

// Pull fetches the translations of a resource for one language.
// A response that is not JSON, or has no content, is reported as a warning and
// yields an empty map with an error matching domain.ErrNoTranslations.
func (c *Client) Pull(ctx context.Context, res domain.Resource, lang string) (map[string]string, error) {
	url := c.resourceURL(res.Slug) + "translation/" + lang + "/"

	status, body, err := c.do(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}

	var payload translationPayload
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Warn("No data from vendor", "url", url, "status", status)
		return map[string]string{}, fmt.Errorf("%w: GET %s: %d", domain.ErrNoTranslations, url, status)
	}
	if !success(status) {
		return nil, fmt.Errorf("%w: GET %s: %d %s", ErrRequest, url, status, excerpt(body))
	}
	if payload.Content == nil {
		c.logger.Warn("Vendor response has no content", "url", url)
		return map[string]string{}, fmt.Errorf("%w: GET %s: no content", domain.ErrNoTranslations, url)
	}

	translated, err := decodeContent(*payload.Content, c.sourceLang)
	if err != nil {
		return nil, fmt.Errorf("failed to parse %s translations of %s: %w", lang, res.Slug, err)
	}
	c.logger.Debug("translations pulled", "resource", res.Slug, "lang", lang, "count", len(translated))
	return translated, nil
}

// Push uploads the source strings of a resource. The resource is updated when the
// vendor already knows it and created otherwise.
func (c *Client) Push(ctx context.Context, res domain.Resource, source map[string]string) error {
	content, err := encodeContent(source, c.sourceLang)
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", res.Slug, err)
	}

	status, _, err := c.do(ctx, http.MethodGet, c.resourceURL(res.Slug), nil)
	if err != nil {
		return err
	}

	var (
		method, url string
		payload     any
	)
	if status == http.StatusOK {
		c.logger.Info("Update file", "resource", res.Slug, "strings", len(source))
		method, url = http.MethodPut, c.resourceURL(res.Slug)+"content/"
		payload = contentUpdate{Content: content}
	} else {
		c.logger.Info("New file", "resource", res.Slug, "strings", len(source))
		method, url = http.MethodPost, fmt.Sprintf("%s/project/%s/resources/", c.baseURL, c.project)
		payload = resourceCreate{
			Slug:               res.Slug,
			Name:               res.Name,
			AcceptTranslations: true,
			I18nType:           "YAML_GENERIC",
			Content:            content,
		}
	}

	status, body, err := c.do(ctx, method, url, payload)
	if err != nil {
		return err
	}
	c.logger.Debug("vendor upload answered", "resource", res.Slug, "status", status, "body", excerpt(body))
	if !success(status) {
		return fmt.Errorf("%w: %s %s: %d %s", ErrRequest, method, url, status, excerpt(body))
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, url string, payload any) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		data, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, fmt.Errorf("failed to marshal request: %w", err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to build request: %w", err)
	}
	req.SetBasicAuth("api", c.token)
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return 0, nil, fmt.Errorf("%s %s: %w", method, url, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return 0, nil, fmt.Errorf("failed to read response of %s %s: %w", method, url, err)
	}
	return resp.StatusCode, body, nil
}

func success(status int) bool {
	return status >= 200 && status < 300
}

func excerpt(body []byte) string {
	const limit = 100
	if len(body) > limit {
		return string(body[:limit])
	}
	return string(body)
}
