package Controllers

import (
	"fmt"
	"net/http"

	"DentaDesk/Models"
	"DentaDesk/Whatsapp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func RegisterAppointment(c *gin.Context) {
	var input Models.AppointmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	appointment, err := Models.DB.AddAppointment(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, appointment)
}

func FetchAppointments(c *gin.Context) {
	c.JSON(http.StatusOK, Models.DB.Appointments())
}

// SendReminder dispatches a whatsapp reminder for one appointment. A
// gateway failure is not fatal: the response carries a pre-filled wa.me
// share link instead.
func SendReminder(c *gin.Context) {
	var input struct {
		AppointmentID string `json:"appointment_id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	appointment, err := Models.DB.FindAppointment(input.AppointmentID)
	if err != nil {
		respondError(c, err)
		return
	}

	patient, ok := Models.DB.FindPatient(appointment.PatientID)
	if !ok {
		respondError(c, Models.NotFoundError{What: "patient"})
		return
	}

	message := fmt.Sprintf("Reminder: %s, your appointment is on %s", patient.Name, Models.FormatDT(appointment.DateTime))

	if err := Whatsapp.SendMessage(patient.Phone, message); err != nil {
		zap.S().Warnf("reminder dispatch failed for appointment %s: %v", appointment.ID, err)
		c.JSON(http.StatusOK, gin.H{
			"message":       "Gateway unreachable. Use the share link.",
			"fallback_link": Whatsapp.ShareLink(patient.Phone, message),
		})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Reminder sent"})
}
