// Package cart contient la machine à états du panier : des transformations
// pures sur la liste d'articles, plus le stockage de session derrière Store.
package cart

import "velora_back_end/internal/models"

// AddItem ajoute un article au panier. Si un article avec le même id existe
// déjà, sa quantité est incrémentée de 1 ; sinon il est inséré avec quantité 1.
// La liste d'entrée n'est jamais modifiée : on retourne toujours une copie.
func AddItem(items []models.CartItem, item models.CartItem) []models.CartItem {
	next := make([]models.CartItem, 0, len(items)+1)
	found := false
	for _, it := range items {
		if it.ID == item.ID {
			it.Quantity++
			found = true
		}
		next = append(next, it)
	}
	if !found {
		item.Quantity = 1
		next = append(next, item)
	}
	return next
}

// RemoveItem supprime l'article avec cet id. Id inconnu = no-op, pas d'erreur.
func RemoveItem(items []models.CartItem, id string) []models.CartItem {
	next := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID != id {
			next = append(next, it)
		}
	}
	return next
}

// DecrementItem retire une unité de l'article. Si la quantité tombe à 0,
// l'entrée est supprimée plutôt que conservée à zéro. Id inconnu = no-op.
func DecrementItem(items []models.CartItem, id string) []models.CartItem {
	next := make([]models.CartItem, 0, len(items))
	for _, it := range items {
		if it.ID == id {
			it.Quantity--
			if it.Quantity <= 0 {
				continue
			}
		}
		next = append(next, it)
	}
	return next
}

// Clear vide le panier inconditionnellement.
func Clear(items []models.CartItem) []models.CartItem {
	return []models.CartItem{}
}

// TotalCount est la somme des quantités (dérivé, jamais stocké).
func TotalCount(items []models.CartItem) int {
	var total int
	for _, it := range items {
		total += it.Quantity
	}
	return total
}

// TotalPrice est la somme des prix unitaires × quantités.
func TotalPrice(items []models.CartItem) float64 {
	var total float64
	for _, it := range items {
		total += it.Price * float64(it.Quantity)
	}
	return total
}
