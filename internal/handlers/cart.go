package handlers

import (
	"log"
	"net/http"

	"velora_back_end/internal/cart"
	"velora_back_end/internal/models"

	"github.com/gin-gonic/gin"
)

// CartStore est branché au démarrage (Redis en prod, fake en test).
var CartStore cart.Store

func cartResponse(items []models.CartItem) gin.H {
	return gin.H{
		"items":       items,
		"total_count": cart.TotalCount(items),
		"total_price": cart.TotalPrice(items),
	}
}

//
// 🛒 GET /api/cart
//
func GetCart(c *gin.Context) {
	sid := c.GetString("session_id")

	items, err := CartStore.Get(c.Request.Context(), sid)
	if err != nil {
		log.Printf("❌ Erreur lecture panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// 🟢 POST /api/cart/add
//
func AddToCart(c *gin.Context) {
	sid := c.GetString("session_id")

	var input struct {
		ID    string  `json:"id" binding:"required"`
		Title string  `json:"title" binding:"required"`
		Price float64 `json:"price"`
		Image string  `json:"image"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	items, err := CartStore.Get(c.Request.Context(), sid)
	if err != nil {
		log.Printf("❌ Erreur lecture panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	items = cart.AddItem(items, models.CartItem{
		ID:    input.ID,
		Title: input.Title,
		Price: input.Price,
		Image: input.Image,
	})

	if err := CartStore.Save(c.Request.Context(), sid, items); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	// Notification de confirmation affichée par le front
	resp := cartResponse(items)
	resp["message"] = input.Title + " ajouté au panier"
	c.JSON(http.StatusOK, resp)
}

//
// 🔻 POST /api/cart/decrement
//
func DecrementCartItem(c *gin.Context) {
	sid := c.GetString("session_id")

	var input struct {
		ID string `json:"id" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	items, err := CartStore.Get(c.Request.Context(), sid)
	if err != nil {
		log.Printf("❌ Erreur lecture panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	// Id inconnu : no-op, on renvoie le panier tel quel
	items = cart.DecrementItem(items, input.ID)

	if err := CartStore.Save(c.Request.Context(), sid, items); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	c.JSON(http.StatusOK, cartResponse(items))
}

//
// ❌ DELETE /api/cart/:id
//
func RemoveFromCart(c *gin.Context) {
	sid := c.GetString("session_id")
	id := c.Param("id")

	items, err := CartStore.Get(c.Request.Context(), sid)
	if err != nil {
		log.Printf("❌ Erreur lecture panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture panier"})
		return
	}

	items = cart.RemoveItem(items, id)

	if err := CartStore.Save(c.Request.Context(), sid, items); err != nil {
		log.Printf("❌ Erreur sauvegarde panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur sauvegarde panier"})
		return
	}

	resp := cartResponse(items)
	resp["message"] = "Produit supprimé du panier"
	c.JSON(http.StatusOK, resp)
}

//
// 🧹 DELETE /api/cart/clear
//
func ClearCart(c *gin.Context) {
	sid := c.GetString("session_id")

	if err := CartStore.Delete(c.Request.Context(), sid); err != nil {
		log.Printf("❌ Erreur vidage panier: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lors du vidage du panier"})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"message": "Panier vidé avec succès",
	})
}
