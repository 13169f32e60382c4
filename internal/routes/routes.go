package routes

import (
	"net/http"
	"time"

	"velora_back_end/internal/config"
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/handlers/payement"
	"velora_back_end/internal/handlers/user"
	"velora_back_end/internal/middleware"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine) {
	// Méthode non supportée sur une route connue → 405 JSON
	r.HandleMethodNotAllowed = true
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "Method not allowed"})
	})

	// CORS restreint à l'origine du front ; le préflight OPTIONS répond 204
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.FrontendOrigin()},
		AllowMethods:     []string{"GET", "POST", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	api := r.Group("/api")
	{
		// Lectures tableau de bord
		api.GET("/completed-orders", payement.GetCompletedOrders)
		api.GET("/users", user.GetUsers)

		// Paiement
		api.POST("/create-checkout-session", payement.CreateCheckoutSession)

		// Formulaire de contact
		api.POST("/contact", handlers.ContactForm)

		// Panier de session
		panier := api.Group("/cart", middleware.CartSession())
		{
			panier.GET("", handlers.GetCart)
			panier.POST("/add", handlers.AddToCart)
			panier.POST("/decrement", handlers.DecrementCartItem)
			panier.DELETE("/clear", handlers.ClearCart)
			panier.DELETE("/:id", handlers.RemoveFromCart)
		}
	}
}
