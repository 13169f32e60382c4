package models

import "time"

// Order est une projection en lecture seule d'une session Checkout payée.
// Rien n'est persisté : la liste est reconstruite depuis Stripe à chaque appel.
type Order struct {
	ID            string      `json:"id"`
	CreatedAt     time.Time   `json:"created_at"`
	CustomerName  string      `json:"customer_name"`
	CustomerEmail string      `json:"customer_email"`
	Total         float64     `json:"total"`
	Items         []OrderItem `json:"items"`
}

type OrderItem struct {
	Name  string  `json:"name"`
	Price float64 `json:"price"`
}
