package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-vault-tasks/internal/config"
	"github.com/MKhiriev/go-vault-tasks/internal/logger"
	"github.com/MKhiriev/go-vault-tasks/internal/utils"
	"github.com/MKhiriev/go-vault-tasks/models"
	"github.com/go-resty/resty/v2"
)

const vaultTasksPath = "/vault-tasks/user/{id}"

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// The base URL comes from adapterCfg.HTTPAddress ("host:port" gets an http://
// scheme). When appCfg.HashKey is set every update carries an HMAC of its
// changes. adapterCfg.Token, if present, is installed as the initial token.
func NewHTTPServerAdapter(adapterCfg config.Adapter, appCfg config.App, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	a := &httpServerAdapter{
		client: utils.NewHTTPClient(baseURL, adapterCfg.RequestTimeout),
		logger: logger,
	}
	if appCfg.HashKey != "" {
		a.hasher = utils.NewHasher(appCfg.HashKey)
	}
	a.SetToken(adapterCfg.Token)

	return a, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", ErrEmptyAddress
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

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// GetVaultTasks implements [ServerAdapter]. It calls
// GET /vault-tasks/user/{id}[?status=...].
func (h *httpServerAdapter) GetVaultTasks(ctx context.Context, userID string, filter models.TaskFilter) (models.VaultTasksResponse, error) {
	var result models.VaultTasksResponse

	req := h.authedRequest(ctx).
		SetPathParam("id", userID).
		SetResult(&result)
	if filter.Status != "" {
		req.SetQueryParam("status", string(filter.Status))
	}

	resp, err := req.Get(vaultTasksPath)
	if err != nil {
		return models.VaultTasksResponse{}, fmt.Errorf("get vault tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.VaultTasksResponse{}, err
	}

	h.logger.Debug().
		Str("func", "httpServerAdapter.GetVaultTasks").
		Str("user_id", userID).
		Int("length", result.Length).
		Msg("vault tasks received")

	return result, nil
}

// UpdateVaultTasks implements [ServerAdapter]. It calls
// POST /vault-tasks/user/{id} and decodes the boolean reply.
func (h *httpServerAdapter) UpdateVaultTasks(ctx context.Context, userID string, request models.VaultTasksRequest) (bool, error) {
	if h.hasher != nil {
		payload, err := json.Marshal(request.Tasks)
		if err != nil {
			return false, fmt.Errorf("encode tasks for hashing: %w", err)
		}
		request.Hash = h.hasher.HashHex(payload)
	}

	resp, err := h.authedRequest(ctx).
		SetPathParam("id", userID).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		Post(vaultTasksPath)
	if err != nil {
		return false, fmt.Errorf("update vault tasks request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return false, err
	}

	var changed bool
	if err = json.Unmarshal(resp.Body(), &changed); err != nil {
		return false, fmt.Errorf("decode update response: %w", err)
	}

	return changed, nil
}

// Version implements [ServerAdapter].
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(resp.String()), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetAuthToken(token)
	}
	return req
}
