package handlers

import (
	"log"
	"net/http"

	"velora_back_end/internal/utils"

	"github.com/gin-gonic/gin"
)

// SendMail est substituable dans les tests.
var SendMail = utils.SendContactEmail

// ContactForm reçoit le formulaire de contact du site et le transmet par e-mail.
func ContactForm(c *gin.Context) {
	var input struct {
		Name    string `json:"name" binding:"required"`
		Email   string `json:"email" binding:"required,email"`
		Message string `json:"message" binding:"required"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Données invalides"})
		return
	}

	if err := SendMail(input.Name, input.Email, input.Message); err != nil {
		log.Printf("❌ Erreur envoi e-mail contact: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Impossible d'envoyer le message"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Message envoyé, merci !"})
}
