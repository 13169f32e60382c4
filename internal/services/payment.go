package services

import (
	"github.com/stripe/stripe-go/v83"
	"github.com/stripe/stripe-go/v83/checkout/session"
)

// SessionAPI restreint l'API Stripe Checkout à ce que le back utilise,
// pour pouvoir la substituer dans les tests.
type SessionAPI interface {
	Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error)
	List(limit int64) ([]*stripe.CheckoutSession, error)
	LineItems(sessionID string, limit int64) ([]*stripe.LineItem, error)
}

type stripeSessions struct{}

// NewStripeSessions retourne l'implémentation réelle (clé globale stripe.Key).
func NewStripeSessions() SessionAPI {
	return stripeSessions{}
}

func (stripeSessions) Create(params *stripe.CheckoutSessionParams) (*stripe.CheckoutSession, error) {
	return session.New(params)
}

func (stripeSessions) List(limit int64) ([]*stripe.CheckoutSession, error) {
	params := &stripe.CheckoutSessionListParams{}
	params.Limit = stripe.Int64(limit)
	// une seule page : sans Single, l'itérateur suit has_more et
	// repartirait chercher les sessions au-delà de limit
	params.Single = true

	var sessions []*stripe.CheckoutSession
	iter := session.List(params)
	for iter.Next() {
		sessions = append(sessions, iter.CheckoutSession())
	}
	return sessions, iter.Err()
}

func (stripeSessions) LineItems(sessionID string, limit int64) ([]*stripe.LineItem, error) {
	params := &stripe.CheckoutSessionListLineItemsParams{
		Session: stripe.String(sessionID),
	}
	params.Limit = stripe.Int64(limit)
	// une seule page, comme pour les sessions
	params.Single = true
	// nécessaire pour lire le nom du produit structuré
	params.AddExpand("data.price.product")

	var items []*stripe.LineItem
	iter := session.ListLineItems(params)
	for iter.Next() {
		items = append(items, iter.LineItem())
	}
	return items, iter.Err()
}
