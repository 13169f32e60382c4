package user

import (
	"log"
	"net/http"

	"velora_back_end/internal/models"
	"velora_back_end/internal/services"

	"firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
)

// Directory est branché au démarrage sur Firebase Auth (fake en test).
var Directory services.UserLister

// Une seule page : les comptes au-delà de 1000 sont ignorés.
const userPageLimit = 1000

//
// 👥 GET /api/users
//
func GetUsers(c *gin.Context) {
	records, err := Directory.ListUsers(c.Request.Context(), userPageLimit)
	if err != nil {
		log.Printf("❌ Erreur Firebase: %v", err)
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Erreur lecture des utilisateurs"})
		return
	}

	users := make([]models.DirectoryUser, 0, len(records))
	for _, record := range records {
		users = append(users, toDirectoryUser(record))
	}

	c.JSON(http.StatusOK, gin.H{"users": users})
}

// toDirectoryUser préfère la photo du profil, sinon celle du provider
// google.com lié, sinon null.
func toDirectoryUser(record *auth.ExportedUserRecord) models.DirectoryUser {
	user := models.DirectoryUser{
		UID:         record.UID,
		DisplayName: record.DisplayName,
		Email:       record.Email,
	}

	photo := record.PhotoURL
	if photo == "" {
		for _, provider := range record.ProviderUserInfo {
			if provider.ProviderID == "google.com" && provider.PhotoURL != "" {
				photo = provider.PhotoURL
				break
			}
		}
	}
	if photo != "" {
		user.PhotoURL = &photo
	}
	return user
}
