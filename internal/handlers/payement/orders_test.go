package payement

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"velora_back_end/internal/models"
	"velora_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v83"
)

type fakeSessions struct {
	sessions  []*stripe.CheckoutSession
	lineItems map[string][]*stripe.LineItem
	listErr   error
	itemsErr  error
	createErr error

	created *stripe.CheckoutSessionParams
}

var _ services.SessionAPI = (*fakeSessions)(nil)

func (f *fakeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	f.created = params
	if f.createErr != nil {
		return nil, f.createErr
	}
	return &stripe.CheckoutSession{
		ID:  "cs_test_123",
		URL: "https://checkout.stripe.com/c/pay/cs_test_123",
	}, nil
}

func (f *fakeSessions) List(int64) ([]*stripe.CheckoutSession, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.sessions, nil
}

func (f *fakeSessions) LineItems(sessionID string, _ int64) ([]*stripe.LineItem, error) {
	if f.itemsErr != nil {
		return nil, f.itemsErr
	}
	return f.lineItems[sessionID], nil
}

func setupPaymentRouter(fake *fakeSessions) *gin.Engine {
	gin.SetMode(gin.TestMode)
	Sessions = fake

	r := gin.New()
	r.GET("/api/completed-orders", GetCompletedOrders)
	r.POST("/api/create-checkout-session", CreateCheckoutSession)
	return r
}

type ordersBody struct {
	Orders []models.Order `json:"orders"`
}

func getOrders(t *testing.T, r *gin.Engine) (*httptest.ResponseRecorder, ordersBody) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, "/api/completed-orders", nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body ordersBody
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func paidSession(id string, amount int64) *stripe.CheckoutSession {
	return &stripe.CheckoutSession{
		ID:            id,
		AmountTotal:   amount,
		Created:       1700000000,
		PaymentStatus: stripe.CheckoutSessionPaymentStatusPaid,
		CustomerDetails: &stripe.CheckoutSessionCustomerDetails{
			Name:  "Alex Martin",
			Email: "alex@example.com",
		},
	}
}

func TestGetCompletedOrders_FiltersUnpaidAndConvertsAmounts(t *testing.T) {
	fake := &fakeSessions{
		sessions: []*stripe.CheckoutSession{
			paidSession("cs_paid", 1999),
			{ID: "cs_unpaid", AmountTotal: 500, PaymentStatus: stripe.CheckoutSessionPaymentStatusUnpaid},
		},
		lineItems: map[string][]*stripe.LineItem{
			"cs_paid": {{Description: "Atlas", AmountTotal: 1999}},
		},
	}
	r := setupPaymentRouter(fake)

	w, body := getOrders(t, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Orders, 1, "la session non payée doit être filtrée")
	order := body.Orders[0]
	assert.Equal(t, "cs_paid", order.ID)
	assert.InDelta(t, 19.99, order.Total, 1e-9)
	assert.Equal(t, "Alex Martin", order.CustomerName)
	assert.Equal(t, "alex@example.com", order.CustomerEmail)
	require.Len(t, order.Items, 1)
	assert.InDelta(t, 19.99, order.Items[0].Price, 1e-9)
}

func TestGetCompletedOrders_PreservesSessionOrder(t *testing.T) {
	fake := &fakeSessions{
		sessions: []*stripe.CheckoutSession{
			paidSession("cs_1", 100),
			paidSession("cs_2", 200),
			paidSession("cs_3", 300),
		},
		lineItems: map[string][]*stripe.LineItem{},
	}
	r := setupPaymentRouter(fake)

	w, body := getOrders(t, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Orders, 3)
	assert.Equal(t, "cs_1", body.Orders[0].ID)
	assert.Equal(t, "cs_2", body.Orders[1].ID)
	assert.Equal(t, "cs_3", body.Orders[2].ID)
}

func TestGetCompletedOrders_NameFallbackChain(t *testing.T) {
	fake := &fakeSessions{
		sessions: []*stripe.CheckoutSession{paidSession("cs_paid", 600)},
		lineItems: map[string][]*stripe.LineItem{
			"cs_paid": {
				{AmountTotal: 100, Price: &stripe.Price{Product: &stripe.Product{Name: "Produit structuré"}}},
				{AmountTotal: 200, Description: "Description inline"},
				{AmountTotal: 300}, // rien d'exploitable
			},
		},
	}
	r := setupPaymentRouter(fake)

	w, body := getOrders(t, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, body.Orders, 1)
	items := body.Orders[0].Items
	require.Len(t, items, 3)
	assert.Equal(t, "Produit structuré", items[0].Name)
	assert.Equal(t, "Description inline", items[1].Name)
	assert.Equal(t, "Unknown Item", items[2].Name)
}

func TestGetCompletedOrders_ListFailureYields500(t *testing.T) {
	r := setupPaymentRouter(&fakeSessions{listErr: errors.New("stripe indisponible")})

	w, _ := getOrders(t, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

// Un seul fetch de line items en échec fait échouer toute la réponse.
func TestGetCompletedOrders_LineItemFailureFailsWholeResponse(t *testing.T) {
	fake := &fakeSessions{
		sessions: []*stripe.CheckoutSession{paidSession("cs_1", 100), paidSession("cs_2", 200)},
		itemsErr: errors.New("rate limited"),
	}
	r := setupPaymentRouter(fake)

	w, body := getOrders(t, r)

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Empty(t, body.Orders, "pas de résultat partiel")
}
