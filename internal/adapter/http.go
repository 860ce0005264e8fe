package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/MKhiriev/solid-pod/internal/logger"
	"github.com/MKhiriev/solid-pod/internal/utils"
	"github.com/MKhiriev/solid-pod/models"
)

// HTTPClientConfig configures [NewHTTPResourceClient].
type HTTPClientConfig struct {
	// BaseURL is the pod address; "host:port" is accepted and gets "http://".
	BaseURL string
	Timeout time.Duration

	// AuthMode selects the credentials attached to every resource request.
	AuthMode models.AuthMode

	// BearerToken is sent as "Authorization: Bearer <token>" in bearer mode.
	BearerToken string

	// PKIKeyID prefixes the timestamp in the pki "Auth" header.
	PKIKeyID string
}

type httpResourceClient struct {
	client *utils.HTTPClient

	authMode    models.AuthMode
	bearerToken string
	pkiKeyID    string
	now         func() time.Time

	logger *logger.Logger
}

// NewHTTPResourceClient constructs the resty implementation of
// [ResourceClient].
func NewHTTPResourceClient(cfg HTTPClientConfig, logger *logger.Logger) (ResourceClient, error) {
	baseURL, err := normalizeBaseURL(cfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrInvalidAddress, err)
	}

	keyID := cfg.PKIKeyID
	if keyID == "" {
		keyID = "solid-pod-client"
	}

	return &httpResourceClient{
		client:      utils.NewHTTPClient(baseURL, cfg.Timeout),
		authMode:    cfg.AuthMode,
		bearerToken: cfg.BearerToken,
		pkiKeyID:    keyID,
		now:         time.Now,
		logger:      logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// resourcePath escapes every segment of id and keeps the slashes between
// them, so "a b/c" is requested as "/a%20b/c".
func resourcePath(id string) (string, error) {
	if id == "" {
		return "", ErrEmptyID
	}

	segments := strings.Split(id, "/")
	for i, s := range segments {
		segments[i] = url.PathEscape(s)
	}
	return "/" + strings.Join(segments, "/"), nil
}

func (c *httpResourceClient) Profile(ctx context.Context) (models.Profile, error) {
	resp, err := c.client.R().SetContext(ctx).Get("/")
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

func (c *httpResourceClient) Get(ctx context.Context, id string) (models.Resource, error) {
	path, err := resourcePath(id)
	if err != nil {
		return models.Resource{}, err
	}

	resp, err := c.authedRequest(ctx).Get(path)
	if err != nil {
		return models.Resource{}, fmt.Errorf("get request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Resource{}, err
	}

	return models.Resource{ID: id, Value: json.RawMessage(resp.Body())}, nil
}

func (c *httpResourceClient) Put(ctx context.Context, id string, value json.RawMessage) error {
	path, err := resourcePath(id)
	if err != nil {
		return err
	}

	resp, err := c.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody([]byte(value)).
		Put(path)
	if err != nil {
		return fmt.Errorf("put request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpResourceClient) Delete(ctx context.Context, id string) error {
	path, err := resourcePath(id)
	if err != nil {
		return err
	}

	resp, err := c.authedRequest(ctx).Delete(path)
	if err != nil {
		return fmt.Errorf("delete request: %w", err)
	}

	return mapHTTPError(resp)
}

func (c *httpResourceClient) Options(ctx context.Context, id string) (http.Header, error) {
	path, err := resourcePath(id)
	if err != nil {
		return nil, err
	}

	resp, err := c.authedRequest(ctx).Options(path)
	if err != nil {
		return nil, fmt.Errorf("options request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	return resp.Header(), nil
}

// authedRequest attaches the credentials of the configured auth mode.
func (c *httpResourceClient) authedRequest(ctx context.Context) *resty.Request {
	req := c.client.R().SetContext(ctx)

	switch c.authMode {
	case models.AuthModeBearer:
		req.SetHeader(models.AuthorizationHeader, "Bearer "+c.bearerToken)
	case models.AuthModePKI:
		req.SetHeader(models.PKIAuthHeader, c.pkiKeyID+" "+strconv.FormatInt(c.now().Unix(), 10))
	}

	return req
}
