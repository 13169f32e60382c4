package payement

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stripe/stripe-go/v83"
)

func postCheckout(t *testing.T, r *gin.Engine, payload any) (*httptest.ResponseRecorder, map[string]string) {
	t.Helper()

	data, err := json.Marshal(payload)
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/create-checkout-session", bytes.NewBuffer(data))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var body map[string]string
	_ = json.Unmarshal(w.Body.Bytes(), &body)
	return w, body
}

func TestCreateCheckoutSession_ReturnsRedirectURLAndQR(t *testing.T) {
	fake := &fakeSessions{}
	r := setupPaymentRouter(fake)

	w, body := postCheckout(t, r, gin.H{"items": []gin.H{
		{"id": "atlas", "title": "Atlas", "price": 19.99, "quantity": 2},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "https://checkout.stripe.com/c/pay/cs_test_123", body["url"])
	assert.Equal(t, "cs_test_123", body["id"])
	assert.True(t, strings.HasPrefix(body["qr"], "data:image/png;base64,"))

	require.NotNil(t, fake.created)
	assert.Equal(t, string(stripe.CheckoutSessionModePayment), *fake.created.Mode)
	require.Len(t, fake.created.LineItems, 1)
	li := fake.created.LineItems[0]
	assert.Equal(t, int64(1999), *li.PriceData.UnitAmount, "prix converti en centimes")
	assert.Equal(t, int64(2), *li.Quantity)
	assert.Equal(t, "Atlas", *li.PriceData.ProductData.Name)
}

func TestCreateCheckoutSession_DefaultsQuantityToOne(t *testing.T) {
	fake := &fakeSessions{}
	r := setupPaymentRouter(fake)

	w, _ := postCheckout(t, r, gin.H{"items": []gin.H{
		{"id": "atlas", "title": "Atlas", "price": 10.0},
	}})

	require.Equal(t, http.StatusOK, w.Code)
	require.Len(t, fake.created.LineItems, 1)
	assert.Equal(t, int64(1), *fake.created.LineItems[0].Quantity)
}

func TestCreateCheckoutSession_EmptyCartRejected(t *testing.T) {
	r := setupPaymentRouter(&fakeSessions{})

	w, _ := postCheckout(t, r, gin.H{"items": []gin.H{}})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCreateCheckoutSession_StripeFailureYields500(t *testing.T) {
	r := setupPaymentRouter(&fakeSessions{createErr: errors.New("clé invalide")})

	w, body := postCheckout(t, r, gin.H{"items": []gin.H{
		{"id": "atlas", "title": "Atlas", "price": 10.0, "quantity": 1},
	}})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.NotEmpty(t, body["error"])
}
