package payement

import (
	"log"
	"net/http"
	"time"

	"velora_back_end/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
	"golang.org/x/sync/errgroup"
)

const (
	// Une seule page côté Stripe : au-delà, les sessions sont ignorées.
	sessionPageLimit  = 100
	lineItemPageLimit = 100
)

// GetCompletedOrders reconstruit la liste des commandes payées depuis Stripe.
// Rien n'est persisté : chaque appel relit la liste des sessions Checkout.
func GetCompletedOrders(c *gin.Context) {
	sessions, err := Sessions.List(sessionPageLimit)
	if err != nil {
		log.Printf("❌ Erreur Stripe (sessions): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des commandes"})
		return
	}

	var paid []*stripe.CheckoutSession
	for _, s := range sessions {
		if s.PaymentStatus == stripe.CheckoutSessionPaymentStatusPaid {
			paid = append(paid, s)
		}
	}

	// Les line items de chaque session payée sont récupérés en parallèle ;
	// l'ordre de sortie reste celui de la liste des sessions.
	orders := make([]models.Order, len(paid))
	var g errgroup.Group
	for i, s := range paid {
		g.Go(func() error {
			lineItems, err := Sessions.LineItems(s.ID, lineItemPageLimit)
			if err != nil {
				return err
			}
			orders[i] = buildOrder(s, lineItems)
			return nil
		})
	}
	// Un seul sous-appel en échec fait échouer toute la réponse, sans retry.
	if err := g.Wait(); err != nil {
		log.Printf("❌ Erreur Stripe (line items): %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des commandes"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"orders": orders})
}

func buildOrder(s *stripe.CheckoutSession, lineItems []*stripe.LineItem) models.Order {
	order := models.Order{
		ID:        s.ID,
		CreatedAt: time.Unix(s.Created, 0).UTC(),
		Total:     toMajorUnits(s.AmountTotal),
		Items:     make([]models.OrderItem, 0, len(lineItems)),
	}
	if s.CustomerDetails != nil {
		order.CustomerName = s.CustomerDetails.Name
		order.CustomerEmail = s.CustomerDetails.Email
	}
	for _, li := range lineItems {
		order.Items = append(order.Items, models.OrderItem{
			Name:  lineItemName(li),
			Price: toMajorUnits(li.AmountTotal),
		})
	}
	return order
}

// lineItemName tolère les différents chemins de création de session :
// produit structuré (catalogue), puis description (price_data inline),
// sinon le libellé générique.
func lineItemName(li *stripe.LineItem) string {
	if li.Price != nil && li.Price.Product != nil && li.Price.Product.Name != "" {
		return li.Price.Product.Name
	}
	if li.Description != "" {
		return li.Description
	}
	return "Unknown Item"
}
