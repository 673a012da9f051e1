package Controllers

import (
	"fmt"
	"io"
	"net/http"
	"time"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
)

// ExportBackup downloads the whole clinic document as dated JSON.
func ExportBackup(c *gin.Context) {
	raw, err := Models.DB.Export()
	if err != nil {
		respondError(c, err)
		return
	}

	filename := fmt.Sprintf("dcm_backup_%s.json", time.Now().Format("2006-01-02"))
	c.Header("Content-Disposition", "attachment; filename="+filename)
	c.Data(http.StatusOK, "application/json", raw)
}

// ImportBackup replaces the in-memory state with the uploaded document. On
// unparsable input the prior state stays untouched.
func ImportBackup(c *gin.Context) {
	raw, err := io.ReadAll(c.Request.Body)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Unable to read backup: " + err.Error()})
		return
	}

	if err := Models.DB.ImportJSON(raw); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Imported"})
}

// ResetApp erases the document and the trial stamp. The UI confirms twice
// before calling; the operation itself is unconditional.
func ResetApp(c *gin.Context) {
	Models.DB.Reset()
	c.JSON(http.StatusOK, gin.H{"message": "App reset"})
}
