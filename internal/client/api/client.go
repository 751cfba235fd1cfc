package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/mkravchenko/linkvault/internal/client/models"
	"github.com/mkravchenko/linkvault/internal/common"
	"github.com/mkravchenko/linkvault/internal/logging"
)

// Client defines the remote operations the services layer depends on.
//
// Contract:
//   - SignIn: exchange credentials for a session; does not persist anything.
//   - ListVaults: structured ownership query, bearer-authenticated.
//   - GetVault: read one vault document including its link array and revision.
//   - UpdateVaultLinks: field-masked write of the links array, guarded by the
//     revision read earlier.
//
// All methods honor context cancellation.
type Client interface {
	SignIn(ctx context.Context, email string, password []byte) (*models.Session, error)
	ListVaults(ctx context.Context, token string, ownerID string) ([]models.VaultSummary, error)
	GetVault(ctx context.Context, token string, id string) (*models.Vault, error)
	UpdateVaultLinks(ctx context.Context, token string, id string, links []models.Link, updateTime string) error
}

// Options configures a RESTClient.
//
// IdentityEndpoint and StoreEndpoint are scheme+host base URLs. Timeout of
// zero means requests are never cancelled by the client.
type Options struct {
	IdentityEndpoint string
	StoreEndpoint    string
	APIKey           string
	ProjectID        string
	Timeout          time.Duration
}

// RESTClient talks JSON over HTTP to the identity endpoint and the document
// store. It is safe for use from a single goroutine; the app issues at most
// one request at a time.
type RESTClient struct {
	httpClient *http.Client
	opts       Options
	log        logging.Logger
}

func NewRESTClient(opts Options, log logging.Logger) *RESTClient {
	return &RESTClient{
		httpClient: &http.Client{Timeout: opts.Timeout},
		opts:       opts,
		log:        log,
	}
}

// docsBase returns the base URL of the store's document resource tree.
func (c *RESTClient) docsBase() string {
	return fmt.Sprintf("%s/v1/projects/%s/databases/(default)/documents",
		c.opts.StoreEndpoint, c.opts.ProjectID)
}

// doJSON sends a JSON request and returns the response. A nil body sends no
// payload; a non-empty token is attached as a bearer credential. Transport
// failures (no response at all) are reported as ErrUnavailable.
func (c *RESTClient) doJSON(ctx context.Context, method, url string, token string, body any) (*http.Response, error) {
	var payload io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encoding request: %w", err)
		}
		payload = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, payload)
	if err != nil {
		return nil, fmt.Errorf("building request: %w", err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(common.RequestIDHeaderName, requestID)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	c.log.Debug(ctx, "sending request", "method", method, "url", url, "request_id", requestID)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	c.log.Debug(ctx, "received response", "status", resp.StatusCode, "request_id", requestID)
	return resp, nil
}

// decodeJSON drains and closes the response body into v.
func decodeJSON(resp *http.Response, v any) error {
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(v); err != nil {
		return fmt.Errorf("decoding response: %w", err)
	}
	return nil
}

// statusError is the error envelope returned by the store and the identity
// endpoint on non-2xx responses.
type statusError struct {
	Error struct {
		Code    int    `json:"code"`
		Message string `json:"message"`
		Status  string `json:"status"`
	} `json:"error"`
}

// storeError classifies a non-2xx store response. 401/UNAUTHENTICATED maps to
// ErrAuthExpired, 409/FAILED_PRECONDITION to ErrConflict; everything else is
// reported with the backend's message.
func storeError(resp *http.Response) error {
	defer resp.Body.Close()

	var se statusError
	_ = json.NewDecoder(resp.Body).Decode(&se)

	switch {
	case resp.StatusCode == http.StatusUnauthorized,
		se.Error.Status == "UNAUTHENTICATED":
		return ErrAuthExpired
	case resp.StatusCode == http.StatusConflict,
		se.Error.Status == "FAILED_PRECONDITION":
		return ErrConflict
	}

	msg := se.Error.Message
	if msg == "" {
		msg = resp.Status
	}
	return fmt.Errorf("store error: %s", msg)
}
