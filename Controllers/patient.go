package Controllers

import (
	"net/http"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
)

func CreatePatient(c *gin.Context) {
	var input Models.PatientInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	patient, err := Models.DB.AddPatient(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, patient)
}

func FetchPatients(c *gin.Context) {
	c.JSON(http.StatusOK, Models.DB.Patients())
}
