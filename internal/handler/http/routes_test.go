package http

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/MKhiriev/go-shop-keeper/internal/logger"
	"github.com/MKhiriev/go-shop-keeper/internal/service"
	"github.com/MKhiriev/go-shop-keeper/models"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ---- Mock: CartService ----

type mockCartService struct {
	addToCartFn         func(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error)
	removeFromCartFn    func(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error)
	getCartByUsernameFn func(ctx context.Context, username string) (models.Cart, error)
}

func (m *mockCartService) AddToCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error) {
	return m.addToCartFn(ctx, request)
}

func (m *mockCartService) RemoveFromCart(ctx context.Context, request models.ModifyCartRequest) (models.Cart, error) {
	return m.removeFromCartFn(ctx, request)
}

func (m *mockCartService) GetCartByUsername(ctx context.Context, username string) (models.Cart, error) {
	return m.getCartByUsernameFn(ctx, username)
}

// ---- Mock: OrderService ----

type mockOrderService struct {
	submitOrderFn     func(ctx context.Context, username string) (models.Order, error)
	getOrderHistoryFn func(ctx context.Context, username string) ([]models.Order, error)
}

func (m *mockOrderService) SubmitOrder(ctx context.Context, username string) (models.Order, error) {
	return m.submitOrderFn(ctx, username)
}

func (m *mockOrderService) GetOrderHistory(ctx context.Context, username string) ([]models.Order, error) {
	return m.getOrderHistoryFn(ctx, username)
}

// ---- Mock: ItemService ----

type mockItemService struct {
	listItemsFn      func(ctx context.Context) ([]models.Item, error)
	getItemByIDFn    func(ctx context.Context, itemID int64) (models.Item, error)
	getItemsByNameFn func(ctx context.Context, name string) ([]models.Item, error)
}

func (m *mockItemService) ListItems(ctx context.Context) ([]models.Item, error) {
	return m.listItemsFn(ctx)
}

func (m *mockItemService) GetItemByID(ctx context.Context, itemID int64) (models.Item, error) {
	return m.getItemByIDFn(ctx, itemID)
}

func (m *mockItemService) GetItemsByName(ctx context.Context, name string) ([]models.Item, error) {
	return m.getItemsByNameFn(ctx, name)
}

// ---- Helpers ----

// authAcceptingAll returns a mockAuthService whose ParseToken accepts any
// token string, simulating an authenticated caller.
func authAcceptingAll() *mockAuthService {
	return &mockAuthService{
		parseTokenFn: func(_ context.Context, _ string) (models.Token, error) {
			return models.Token{UserID: 7}, nil
		},
	}
}

func testWidgetCart(total string, slots int) models.Cart {
	widget := models.Item{ItemID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99")}
	items := make([]models.Item, 0, slots)
	for i := 0; i < slots; i++ {
		items = append(items, widget)
	}
	return models.Cart{CartID: 11, UserID: 7, Items: items, Total: decimal.RequireFromString(total)}
}

// ---- Tests ----

// TestRouter_CartMutation_EndToEnd drives an add-then-remove cycle through
// the full middleware chain and checks the running totals the API reports.
func TestRouter_CartMutation_EndToEnd(t *testing.T) {
	cart := &mockCartService{
		addToCartFn: func(_ context.Context, request models.ModifyCartRequest) (models.Cart, error) {
			require.Equal(t, "alice", request.Username)
			require.Equal(t, int64(1), request.ItemID)
			require.Equal(t, 3, request.Quantity)
			return testWidgetCart("8.97", 3), nil
		},
		removeFromCartFn: func(_ context.Context, request models.ModifyCartRequest) (models.Cart, error) {
			require.Equal(t, 1, request.Quantity)
			return testWidgetCart("5.98", 2), nil
		},
	}

	h := NewHandler(&service.Services{AuthService: authAcceptingAll(), CartService: cart}, logger.Nop())
	router := h.Init()

	addBody := `{"username":"alice","item_id":1,"quantity":3}`
	req := httptest.NewRequest(http.MethodPost, "/api/cart/addToCart", strings.NewReader(addBody))
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var got models.Cart
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Items, 3)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("8.97")))

	removeBody := `{"username":"alice","item_id":1,"quantity":1}`
	req = httptest.NewRequest(http.MethodPost, "/api/cart/removeFromCart", strings.NewReader(removeBody))
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &got))
	assert.Len(t, got.Items, 2)
	assert.True(t, got.Total.Equal(decimal.RequireFromString("5.98")))
}

func TestRouter_ProtectedRoutesRejectMissingToken(t *testing.T) {
	h := NewHandler(&service.Services{AuthService: authAcceptingAll()}, logger.Nop())
	router := h.Init()

	protected := []routeCase{
		{http.MethodGet, "/api/item"},
		{http.MethodPost, "/api/cart/addToCart"},
		{http.MethodPost, "/api/order/submit/alice"},
		{http.MethodGet, "/api/order/history/alice"},
	}

	for _, tc := range protected {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusUnauthorized, rec.Code)
		})
	}
}

func TestRouter_SubmitAndHistory(t *testing.T) {
	submitted := models.Order{OrderID: 21, UserID: 7, Total: decimal.RequireFromString("8.97")}
	orders := &mockOrderService{
		submitOrderFn: func(_ context.Context, username string) (models.Order, error) {
			require.Equal(t, "alice", username)
			return submitted, nil
		},
		getOrderHistoryFn: func(_ context.Context, _ string) ([]models.Order, error) {
			return []models.Order{submitted}, nil
		},
	}

	h := NewHandler(&service.Services{AuthService: authAcceptingAll(), OrderService: orders}, logger.Nop())
	router := h.Init()

	req := httptest.NewRequest(http.MethodPost, "/api/order/submit/alice", nil)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var gotOrder models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gotOrder))
	assert.Equal(t, int64(21), gotOrder.OrderID)

	req = httptest.NewRequest(http.MethodGet, "/api/order/history/alice", nil)
	req.Header.Set("Authorization", "Bearer some.valid.token")
	rec = httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	var gotHistory []models.Order
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &gotHistory))
	require.Len(t, gotHistory, 1)
}

func TestRouter_ItemCatalog(t *testing.T) {
	catalog := []models.Item{
		{ItemID: 1, Name: "Round Widget", Price: decimal.RequireFromString("2.99")},
		{ItemID: 2, Name: "Square Widget", Price: decimal.RequireFromString("1.99")},
	}
	items := &mockItemService{
		listItemsFn: func(_ context.Context) ([]models.Item, error) {
			return catalog, nil
		},
		getItemByIDFn: func(_ context.Context, itemID int64) (models.Item, error) {
			require.Equal(t, int64(1), itemID)
			return catalog[0], nil
		},
		getItemsByNameFn: func(_ context.Context, name string) ([]models.Item, error) {
			require.Equal(t, "Square Widget", name)
			return catalog[1:], nil
		},
	}

	h := NewHandler(&service.Services{AuthService: authAcceptingAll(), ItemService: items}, logger.Nop())
	router := h.Init()

	cases := []routeCase{
		{http.MethodGet, "/api/item"},
		{http.MethodGet, "/api/item/1"},
		{http.MethodGet, "/api/item/name/Square%20Widget"},
	}
	for _, tc := range cases {
		t.Run(tc.path, func(t *testing.T) {
			req := httptest.NewRequest(tc.method, tc.path, nil)
			req.Header.Set("Authorization", "Bearer some.valid.token")
			rec := httptest.NewRecorder()
			router.ServeHTTP(rec, req)

			assert.Equal(t, http.StatusOK, rec.Code)
		})
	}
}
