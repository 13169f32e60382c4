package config

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
)

func Load() {
	err := godotenv.Load(".env")
	if err != nil {
		log.Println("⚠️  Aucun fichier .env trouvé — on continue avec les variables d'environnement du système")
	} else {
		log.Println("✅ Fichier .env chargé avec succès")
	}
}

// Port retourne le port d'écoute HTTP (3000 par défaut).
func Port() string {
	port := os.Getenv("PORT")
	if port == "" {
		port = "3000"
	}
	return port
}

// FrontendOrigin est la seule origine autorisée par le CORS.
func FrontendOrigin() string {
	origin := os.Getenv("FRONTEND_ORIGIN")
	if origin == "" {
		// fallback local dev (Vite)
		origin = "http://localhost:5173"
	}
	return origin
}

func StripeSecretKey() string {
	return os.Getenv("STRIPE_SECRET_KEY")
}

// FirebaseCredentialsJSON reconstruit le JSON du compte de service depuis le .env.
// La clé privée arrive avec des \n échappés, on les restaure avant usage.
func FirebaseCredentialsJSON() ([]byte, error) {
	projectID := os.Getenv("FIREBASE_PROJECT_ID")
	clientEmail := os.Getenv("FIREBASE_CLIENT_EMAIL")
	privateKey := strings.ReplaceAll(os.Getenv("FIREBASE_PRIVATE_KEY"), `\n`, "\n")

	if projectID == "" || clientEmail == "" || privateKey == "" {
		return nil, fmt.Errorf("configuration Firebase incomplète (FIREBASE_PROJECT_ID / FIREBASE_CLIENT_EMAIL / FIREBASE_PRIVATE_KEY)")
	}

	return json.Marshal(map[string]string{
		"type":         "service_account",
		"project_id":   projectID,
		"client_email": clientEmail,
		"private_key":  privateKey,
	})
}

func FirebaseProjectID() string {
	return os.Getenv("FIREBASE_PROJECT_ID")
}

func RedisHost() string {
	return os.Getenv("REDIS_HOST")
}

func RedisPassword() string {
	return os.Getenv("REDIS_PASSWORD")
}

// --- SMTP (formulaire de contact) ---

func SMTPHost() string {
	return os.Getenv("SMTP_HOST")
}

func SMTPPort() int {
	port, err := strconv.Atoi(os.Getenv("SMTP_PORT"))
	if err != nil || port <= 0 {
		return 587
	}
	return port
}

func SMTPUsername() string {
	return os.Getenv("SMTP_USERNAME")
}

func SMTPPassword() string {
	return os.Getenv("SMTP_PASSWORD")
}

// ContactEmail est la boîte qui reçoit les messages du formulaire du site.
func ContactEmail() string {
	to := os.Getenv("CONTACT_EMAIL")
	if to == "" {
		to = SMTPUsername()
	}
	return to
}
