package Controllers

import (
	"net/http"

	"DentaDesk/Models"
	"DentaDesk/Printing"
	"DentaDesk/Whatsapp"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func CreateInvoice(c *gin.Context) {
	var input Models.CreateInvoiceInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	invoice, err := Models.DB.CreateInvoice(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, invoice)
}

func FetchInvoices(c *gin.Context) {
	c.JSON(http.StatusOK, Models.DB.Invoices())
}

func MarkInvoicePaid(c *gin.Context) {
	var input struct {
		ID   string `json:"id"`
		Paid bool   `json:"paid"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := Models.DB.MarkPaid(input.ID, input.Paid); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice updated"})
}

// PrintInvoice returns the printable HTML document. Unpaid invoices are
// refused with a precondition failure.
func PrintInvoice(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	invoice, err := Models.DB.FindInvoice(input.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	html, err := Printing.RenderInvoice(invoice, Models.DB.Clinic())
	if err != nil {
		respondError(c, err)
		return
	}

	c.Data(http.StatusOK, "text/html; charset=utf-8", html)
}

// SendInvoice forwards an invoice to the notification service. Failure is
// reported to the user; there is no automatic fallback for invoices.
func SendInvoice(c *gin.Context) {
	var input struct {
		ID       string `json:"id"`
		Email    bool   `json:"email"`
		Whatsapp bool   `json:"whatsapp"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	invoice, err := Models.DB.FindInvoice(input.ID)
	if err != nil {
		respondError(c, err)
		return
	}

	if !Models.CanPrint(&invoice) {
		respondError(c, Models.PreconditionError{Message: "cannot send an unpaid invoice"})
		return
	}

	user, err := Models.DB.GetUserByID(c.GetString("user_id"))
	if err != nil {
		respondError(c, err)
		return
	}

	toEmail, toPhone := "", ""
	if input.Email {
		toEmail = user.Email
	}
	if input.Whatsapp {
		toPhone = invoice.Phone
	}

	if err := Whatsapp.SendInvoice(invoice, Models.DB.Clinic(), toEmail, toPhone); err != nil {
		zap.S().Warnf("invoice dispatch failed for %s: %v", invoice.ID, err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "Notification service unavailable. Use manual sharing."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Invoice sent"})
}
