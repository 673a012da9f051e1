package Controllers

import (
	"net/http"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
)

func FetchSettings(c *gin.Context) {
	c.JSON(http.StatusOK, Models.DB.Clinic())
}

func UpdateSettings(c *gin.Context) {
	var input Models.ClinicProfile
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := Models.DB.UpdateClinic(input); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Settings saved"})
}
