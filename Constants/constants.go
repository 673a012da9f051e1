package Constants

import "os"

var (
	// DataDir holds the clinic document, trial stamp and generated exports.
	DataDir = "./Data"

	ListenAddress = ":3005"

	// WhatsappGoService is the outbound whatsapp gateway. Dispatch through it
	// is best-effort; callers fall back to a wa.me share link.
	WhatsappGoService = "http://localhost:3000"

	// NotificationService handles invoice delivery by email/whatsapp.
	NotificationService = "http://localhost:3010"
)

// Load re-reads the environment. Call after godotenv has populated it.
func Load() {
	if v := os.Getenv("DATA_DIR"); v != "" {
		DataDir = v
	}
	if v := os.Getenv("LISTEN_ADDRESS"); v != "" {
		ListenAddress = v
	}
	if v := os.Getenv("WHATSAPP_SERVICE"); v != "" {
		WhatsappGoService = v
	}
	if v := os.Getenv("NOTIFICATION_SERVICE"); v != "" {
		NotificationService = v
	}
}
