package Controllers

import (
	"net/http"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
)

func AddStaff(c *gin.Context) {
	var input Models.StaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	member, err := Models.DB.AddStaff(input)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, member)
}

func UpdateStaff(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
		Models.StaffPatch
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := Models.DB.UpdateStaff(input.ID, input.StaffPatch); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff updated"})
}

// DeleteStaff removes the member unconditionally; the UI asks for
// confirmation before calling.
func DeleteStaff(c *gin.Context) {
	var input struct {
		ID string `json:"id"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	if err := Models.DB.DeleteStaff(input.ID); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Staff deleted"})
}

func FetchStaff(c *gin.Context) {
	c.JSON(http.StatusOK, Models.DB.Staff())
}
