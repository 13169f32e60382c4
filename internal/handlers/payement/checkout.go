package payement

import (
	"log"
	"math"
	"net/http"

	"velora_back_end/internal/config"
	"velora_back_end/internal/services"
	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

// Sessions est l'accès Stripe Checkout, substituable dans les tests.
var Sessions services.SessionAPI = services.NewStripeSessions()

// CreateCheckoutSession crée une session Stripe Checkout hébergée pour le
// panier reçu et renvoie l'URL de redirection (plus son QR pour mobile).
func CreateCheckoutSession(c *gin.Context) {
	var req struct {
		Items []struct {
			ID       string  `json:"id"`
			Title    string  `json:"title" binding:"required"`
			Price    float64 `json:"price"`
			Quantity int64   `json:"quantity"`
		} `json:"items"`
	}
	if err := c.ShouldBindJSON(&req); err != nil || len(req.Items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Requête invalide ou panier vide"})
		return
	}

	lineItems := make([]*stripe.CheckoutSessionLineItemParams, 0, len(req.Items))
	for _, item := range req.Items {
		qty := item.Quantity
		if qty <= 0 {
			qty = 1
		}
		lineItems = append(lineItems, &stripe.CheckoutSessionLineItemParams{
			PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
				Currency: stripe.String("eur"),
				ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
					Name: stripe.String(item.Title),
				},
				// Stripe attend des centimes
				UnitAmount: stripe.Int64(int64(math.Round(item.Price * 100))),
			},
			Quantity: stripe.Int64(qty),
		})
	}

	origin := config.FrontendOrigin()
	params := &stripe.CheckoutSessionParams{
		Mode:       stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems:  lineItems,
		SuccessURL: stripe.String(origin + "/success"),
		CancelURL:  stripe.String(origin + "/cancel"),
	}

	s, err := Sessions.Create(params)
	if err != nil {
		log.Printf("❌ Erreur Stripe: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur création session de paiement"})
		return
	}

	qr, err := utils.CheckoutQR(s.URL)
	if err != nil {
		log.Printf("⚠️ Erreur génération QR: %v", err)
		qr = ""
	}

	log.Printf("💳 Session Checkout créée : %s (%d article(s))", s.ID, len(req.Items))

	c.JSON(http.StatusOK, gin.H{
		"url": s.URL,
		"id":  s.ID,
		"qr":  qr,
	})
}
