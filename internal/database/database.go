package database

import (
	"context"
	"log"
	"time"

	"velora_back_end/internal/config"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"github.com/redis/go-redis/v9"
	"google.golang.org/api/option"
)

// --- Variables Globales ---
var (
	Redis        *redis.Client
	FirebaseAuth *auth.Client
)

// --- Initialisation ---
func ConnectDatabases() {
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// 1. Initialiser Redis (stockage des paniers de session)
	connectRedis(ctx)

	// 2. Initialiser Firebase Admin (annuaire des utilisateurs)
	connectFirebase(ctx)

	log.Println("✅ Tous les services externes sont connectés")
}

// =============================================
// REDIS (paniers de session)
// =============================================

func connectRedis(ctx context.Context) {
	redisHost := config.RedisHost()
	if redisHost == "" {
		log.Fatal("❌ REDIS_HOST non configuré")
	}

	Redis = redis.NewClient(&redis.Options{
		Addr:         redisHost,
		Password:     config.RedisPassword(),
		DB:           0, // Base de données par défaut
		DialTimeout:  5 * time.Second,
		ReadTimeout:  3 * time.Second,
		WriteTimeout: 3 * time.Second,
		PoolSize:     10,
		MinIdleConns: 5,
	})

	if err := Redis.Ping(ctx).Err(); err != nil {
		log.Fatalf("❌ Impossible de se connecter à Redis: %v", err)
	}
	log.Println("✅ Redis connecté avec succès")
}

// =============================================
// FIREBASE ADMIN (Auth)
// =============================================

func connectFirebase(ctx context.Context) {
	creds, err := config.FirebaseCredentialsJSON()
	if err != nil {
		log.Fatalf("❌ Credentials Firebase invalides: %v", err)
	}

	app, err := firebase.NewApp(ctx,
		&firebase.Config{ProjectID: config.FirebaseProjectID()},
		option.WithCredentialsJSON(creds),
	)
	if err != nil {
		log.Fatalf("❌ Échec initialisation Firebase: %v", err)
	}

	FirebaseAuth, err = app.Auth(ctx)
	if err != nil {
		log.Fatalf("❌ Échec initialisation Firebase Auth: %v", err)
	}
	log.Println("✅ Firebase Admin connecté avec succès")
}

// CloseRedis ferme la connexion Redis
func CloseRedis() error {
	if Redis != nil {
		return Redis.Close()
	}
	return nil
}
