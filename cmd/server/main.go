package main

import (
	"log"

	"velora_back_end/internal/cart"
	"velora_back_end/internal/config"
	"velora_back_end/internal/database"
	"velora_back_end/internal/handlers"
	"velora_back_end/internal/handlers/user"
	"velora_back_end/internal/routes"
	"velora_back_end/internal/services"

	"github.com/gin-gonic/gin"
	"github.com/stripe/stripe-go/v83"
)

func main() {
	config.Load()

	stripe.Key = config.StripeSecretKey()
	if stripe.Key == "" {
		log.Fatal("❌ Impossible d'initialiser Stripe : clé manquante")
	}
	log.Println("✅ Stripe initialisé")

	database.ConnectDatabases()

	// Branchement des dépendances des handlers
	handlers.CartStore = cart.NewRedisStore(database.Redis)
	user.Directory = services.NewFirebaseUsers(database.FirebaseAuth)

	r := gin.Default()
	routes.RegisterRoutes(r)

	port := config.Port()
	log.Println("🚀 Serveur Velora lancé sur le port", port)
	r.Run(":" + port)
}
