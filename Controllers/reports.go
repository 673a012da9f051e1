package Controllers

import (
	"net/http"
	"time"

	"DentaDesk/Models"

	"github.com/gin-gonic/gin"
)

// FetchDashboard returns the derived aggregates: patient count, paid income
// and this month's treatment counts. All recomputed on every call.
func FetchDashboard(c *gin.Context) {
	doc := Models.DB.Snapshot()
	monthKey := Models.CurrentMonthKey(time.Now())

	c.JSON(http.StatusOK, gin.H{
		"total_patients":        len(doc.Patients),
		"total_income":          Models.TotalPaidIncome(doc.Invoices),
		"treatments_this_month": Models.TreatmentCountsForMonth(doc.Invoices, monthKey),
	})
}

// FetchTreatmentCounts sums per-treatment quantities for one month,
// defaulting to the current one.
func FetchTreatmentCounts(c *gin.Context) {
	monthKey := c.Query("month")
	if monthKey == "" {
		monthKey = Models.CurrentMonthKey(time.Now())
	}

	c.JSON(http.StatusOK, gin.H{
		"month":  monthKey,
		"counts": Models.TreatmentCountsForMonth(Models.DB.Invoices(), monthKey),
	})
}
