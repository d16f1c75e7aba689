package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/MKhiriev/go-sync-keeper/internal/config"
	"github.com/MKhiriev/go-sync-keeper/internal/logger"
	"github.com/MKhiriev/go-sync-keeper/internal/utils"
	"github.com/MKhiriev/go-sync-keeper/models"
	"github.com/go-resty/resty/v2"
)

const (
	hashHeader = "HashSHA256"

	versionPath = "/api/version/"
	syncPath    = "/api/sync/"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	hasher *utils.Hasher

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and
// request timeout. When appCfg.HashKey is set every push body is signed with
// HMAC-SHA256 in the HashSHA256 header.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, appCfg config.ClientApp, logger *logger.Logger) (ServerAdapter, error) {
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

	return a, nil
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

// SetToken implements [ServerAdapter]. It stores token (whitespace-trimmed) for
// use in the Authorization header of all subsequent requests.
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

// Ping implements [ServerAdapter] with GET /api/version/.
func (h *httpServerAdapter) Ping(ctx context.Context) error {
	resp, err := h.client.R().SetContext(ctx).Get(versionPath)
	if err != nil {
		return mapTransportError("ping", err)
	}

	return mapHTTPError(resp)
}

// Push implements [ServerAdapter]. It POSTs {"records": [...]} to
// POST /api/sync/{entity} and decodes the per-record validation errors from
// the response. An empty 2xx body means every record was accepted.
func (h *httpServerAdapter) Push(ctx context.Context, entity string, records []json.RawMessage) (models.PushResponse, error) {
	if entity == "" {
		return models.PushResponse{}, ErrEmptyEntity
	}

	body, err := json.Marshal(models.PushRequest{Records: records})
	if err != nil {
		return models.PushResponse{}, fmt.Errorf("encode push request: %w", err)
	}

	req := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(body)
	if h.hasher != nil {
		req.SetHeader(hashHeader, h.hasher.HashHex(body))
	}

	resp, err := req.Post(syncPath + url.PathEscape(entity))
	if err != nil {
		return models.PushResponse{}, mapTransportError("push", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PushResponse{}, err
	}

	var pushResp models.PushResponse
	if len(strings.TrimSpace(string(resp.Body()))) == 0 {
		return pushResp, nil
	}
	if err = json.Unmarshal(resp.Body(), &pushResp); err != nil {
		return models.PushResponse{}, fmt.Errorf("decode push response: %w", err)
	}

	h.logger.Debug().
		Str("entity", entity).
		Int("sent", len(records)).
		Int("rejected", len(pushResp.ValidationErrors)).
		Msg("push batch sent")

	return pushResp, nil
}

// Pull implements [ServerAdapter] with
// GET /api/sync/{entity}?limit=N&process_token=T.
func (h *httpServerAdapter) Pull(ctx context.Context, entity, processToken string, limit int) (models.RawPullResponse, error) {
	if entity == "" {
		return models.RawPullResponse{}, ErrEmptyEntity
	}

	req := h.authedRequest(ctx).
		SetQueryParam("limit", strconv.Itoa(limit))
	if processToken != "" {
		req.SetQueryParam("process_token", processToken)
	}

	resp, err := req.Get(syncPath + url.PathEscape(entity))
	if err != nil {
		return models.RawPullResponse{}, mapTransportError("pull", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.RawPullResponse{}, err
	}

	var page models.RawPullResponse
	if err = json.Unmarshal(resp.Body(), &page); err != nil {
		return models.RawPullResponse{}, fmt.Errorf("decode pull response: %w", err)
	}

	return page, nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
