package models

// CartItem représente un article numérique dans le panier d'une session.
// La quantité est toujours >= 1 : une entrée qui tombe à 0 est supprimée.
type CartItem struct {
	ID       string  `json:"id"`
	Title    string  `json:"title"`
	Price    float64 `json:"price"`
	Image    string  `json:"image,omitempty"`
	Quantity int     `json:"quantity"`
}

type Cart struct {
	SessionID string     `json:"session_id"`
	Items     []CartItem `json:"items"`
}
