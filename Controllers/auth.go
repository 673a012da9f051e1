package Controllers

import (
	"net/http"

	"DentaDesk/Models"
	"DentaDesk/Utils/Token"

	"github.com/gin-gonic/gin"
)

type RegisterInput struct {
	Clinic string `json:"clinic"`
	Doctor string `json:"doctor"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

func Register(c *gin.Context) {
	var input RegisterInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.DB.Register(input.Clinic, input.Doctor, input.Phone, input.Email)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := Token.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Registered", "jwt": token, "user": user})
}

type LoginInput struct {
	Clinic string `json:"clinic"`
	Phone  string `json:"phone"`
}

func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.DB.Login(input.Clinic, input.Phone)
	if err != nil {
		respondError(c, err)
		return
	}

	token, err := Token.GenerateToken(user.ID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Login Successful", "jwt": token, "user": user})
}

// Logout exists for client parity: the session is the token, which the
// client discards. Trial start and subscription are never cleared here.
func Logout(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"message": "Logged out"})
}

func CurrentUser(c *gin.Context) {
	userID, err := Token.ExtractTokenID(c)
	if err != nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
		return
	}

	user, err := Models.DB.GetUserByID(userID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "success", "data": user})
}
