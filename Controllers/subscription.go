package Controllers

import (
	"net/http"
	"time"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
)

// PurchaseSubscription activates a plan starting now. A purchase before the
// current window expires resets it rather than extending the remainder.
func PurchaseSubscription(c *gin.Context) {
	var input struct {
		Months int     `json:"months"`
		Price  float64 `json:"price"`
	}
	if err := c.ShouldBindJSON(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input: " + err.Error()})
		return
	}

	sub, err := Models.DB.PurchaseSubscription(input.Months, input.Price, time.Now())
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscription active", "subscription": sub})
}

// FetchSubscription reports the current plan and entitlement state. The
// session is established by the auth middleware, so hasSession is true here.
func FetchSubscription(c *gin.Context) {
	entitlement := Models.DB.EntitlementAt(true, time.Now())
	c.JSON(http.StatusOK, gin.H{
		"subscription": Models.DB.Subscription(),
		"entitlement":  entitlement.String(),
	})
}
