package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/MKhiriev/go-shop-keeper/internal/config"
	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/utils"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/go-resty/resty/v2"
)

type httpServerAdapter struct {
	client *utils.HTTPClient
	token  string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// cfg.HTTPAddress and configures the underlying HTTP client with the resolved
// base URL and request timeout.
//
// Returns an error if cfg.HTTPAddress is empty or cannot be parsed as a valid
// URL.
func NewHTTPServerAdapter(cfg config.Client, logger *logger.Logger) (ServerAdapter, error) {
	client := utils.NewHTTPClient()
	baseURL, err := normalizeBaseURL(cfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client.
		SetBaseURL(baseURL).
		SetTimeout(cfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
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
// use in the Authorization header of all subsequent authenticated requests.
func (h *httpServerAdapter) SetToken(token string) {
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter]. It returns the bearer token currently held
// by the adapter, or an empty string if none has been set.
func (h *httpServerAdapter) Token() string {
	return h.token
}

// Register implements [ServerAdapter]. It POSTs the registration request to
// POST /api/user/create. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Register(ctx context.Context, request models.CreateUserRequest) (models.User, error) {
	var createdUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&createdUser).
		Post("/api/user/create")
	if err != nil {
		return models.User{}, fmt.Errorf("register request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("register parse bearer token: %w", err)
	}

	h.SetToken(token)
	return createdUser, nil
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/user/login. On success the bearer token is extracted from the
// Authorization response header and stored via SetToken. Returns an error if
// the request fails, the server returns a non-2xx status, or the token cannot
// be parsed.
func (h *httpServerAdapter) Login(ctx context.Context, request models.LoginRequest) (models.User, error) {
	var foundUser models.User

	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&foundUser).
		Post("/api/user/login")
	if err != nil {
		return models.User{}, fmt.Errorf("login request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.User{}, err
	}

	token, err := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	if err != nil {
		return models.User{}, fmt.Errorf("login parse bearer token: %w", err)
	}

	h.SetToken(token)
	return foundUser, nil
}

// ListItems implements [ServerAdapter]. It GETs the full catalog from
// GET /api/item. Requires a valid bearer token.
func (h *httpServerAdapter) ListItems(ctx context.Context) ([]models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/api/item")
	if err != nil {
		return nil, fmt.Errorf("list items request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode catalog response: %w", err)
	}

	return items, nil
}

// GetItemsByName implements [ServerAdapter]. It GETs all items with the given
// name from GET /api/item/name/{name}. Requires a valid bearer token.
func (h *httpServerAdapter) GetItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	resp, err := h.authedRequest(ctx).Get("/api/item/name/" + url.PathEscape(name))
	if err != nil {
		return nil, fmt.Errorf("items by name request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var items []models.Item
	if err = json.Unmarshal(resp.Body(), &items); err != nil {
		return nil, fmt.Errorf("decode items by name response: %w", err)
	}

	return items, nil
}

// GetCart implements [ServerAdapter]. It GETs the user's current cart from
// GET /api/cart/{username}. Requires a valid bearer token.
func (h *httpServerAdapter) GetCart(ctx context.Context, username string) (models.Cart, error) {
	var cart models.Cart

	resp, err := h.authedRequest(ctx).
		SetResult(&cart).
		Get("/api/cart/" + url.PathEscape(username))
	if err != nil {
		return models.Cart{}, fmt.Errorf("get cart request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cart{}, err
	}

	return cart, nil
}

// AddToCart implements [ServerAdapter]. It POSTs the cart mutation to
// POST /api/cart/addToCart and returns the updated cart with its new running
// total. Requires a valid bearer token.
func (h *httpServerAdapter) AddToCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error) {
	return h.modifyCart(ctx, request, "/api/cart/addToCart")
}

// RemoveFromCart implements [ServerAdapter]. It POSTs the cart mutation to
// POST /api/cart/removeFromCart and returns the updated cart. Removing more
// units than the cart holds empties the matching slots without an error.
// Requires a valid bearer token.
func (h *httpServerAdapter) RemoveFromCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error) {
	return h.modifyCart(ctx, request, "/api/cart/removeFromCart")
}

func (h *httpServerAdapter) modifyCart(ctx context.Context, request models.ModifyCartRequest, path string) (models.Cart, error) {
	var cart models.Cart

	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(request).
		SetResult(&cart).
		Post(path)
	if err != nil {
		return models.Cart{}, fmt.Errorf("modify cart request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Cart{}, err
	}

	return cart, nil
}

// SubmitOrder implements [ServerAdapter]. It POSTs to
// POST /api/order/submit/{username} and returns the created order. Requires a
// valid bearer token.
func (h *httpServerAdapter) SubmitOrder(ctx context.Context, username string) (models.Order, error) {
	var order models.Order

	resp, err := h.authedRequest(ctx).
		SetResult(&order).
		Post("/api/order/submit/" + url.PathEscape(username))
	if err != nil {
		return models.Order{}, fmt.Errorf("submit order request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Order{}, err
	}

	return order, nil
}

// GetOrderHistory implements [ServerAdapter]. It GETs the user's past orders
// from GET /api/order/history/{username}, newest first. Requires a valid
// bearer token.
func (h *httpServerAdapter) GetOrderHistory(ctx context.Context, username string) ([]models.Order, error) {
	resp, err := h.authedRequest(ctx).Get("/api/order/history/" + url.PathEscape(username))
	if err != nil {
		return nil, fmt.Errorf("order history request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var orders []models.Order
	if err = json.Unmarshal(resp.Body(), &orders); err != nil {
		return nil, fmt.Errorf("decode order history response: %w", err)
	}

	return orders, nil
}

// Version implements [ServerAdapter]. It GETs the server's version string from
// GET /api/version/.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().SetContext(ctx).Get("/api/version/")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	return strings.TrimSpace(string(resp.Body())), nil
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.client.R().SetContext(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}
