package Whatsapp

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"regexp"

	"DentaDesk/Constants"
	"DentaDesk/Models"
)

var nonDigits = regexp.MustCompile(`[^0-9]`)

// SendMessage posts a whatsapp message to the gateway. Dispatch is
// best-effort; on error the caller falls back to ShareLink.
func SendMessage(phone, message string) error {
	payload, err := json.Marshal(map[string]string{
		"phone":   phone,
		"message": message,
		"via":     "whatsapp",
	})
	if err != nil {
		return err
	}

	res, err := http.Post(Constants.WhatsappGoService+"/send/message", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("whatsapp gateway returned %s", res.Status)
	}
	return nil
}

// ShareLink builds a pre-filled wa.me link for manual sending.
func ShareLink(phone, message string) string {
	return fmt.Sprintf("https://wa.me/%s?text=%s",
		nonDigits.ReplaceAllString(phone, ""),
		url.QueryEscape(message))
}

// SendInvoice hands an invoice to the notification service for delivery.
// There is no automatic fallback; a failure is reported to the user.
func SendInvoice(invoice Models.Invoice, clinic Models.ClinicProfile, toEmail, toPhone string) error {
	payload, err := json.Marshal(map[string]interface{}{
		"invoice":  invoice,
		"clinic":   clinic,
		"to_email": toEmail,
		"to_phone": toPhone,
	})
	if err != nil {
		return err
	}

	res, err := http.Post(Constants.NotificationService+"/api/send-invoice", "application/json", bytes.NewBuffer(payload))
	if err != nil {
		return err
	}
	defer res.Body.Close()
	io.Copy(io.Discard, res.Body)

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		return fmt.Errorf("notification service returned %s", res.Status)
	}
	return nil
}
