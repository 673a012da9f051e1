package Models

import "time"

// MonthKey reduces a stored timestamp to year-month granularity ("2024-05").
// Unparsable values yield "" and never match a real month.
func MonthKey(iso string) string {
	t, err := ParseISO(iso)
	if err != nil {
		return ""
	}
	return t.Format("2006-01")
}

func CurrentMonthKey(now time.Time) string {
	return now.Format("2006-01")
}

// TotalPaidIncome sums the totals of paid invoices. Recomputed on demand,
// never cached.
func TotalPaidIncome(invoices []Invoice) float64 {
	total := 0.0
	for _, inv := range invoices {
		if inv.Paid {
			total += inv.Total
		}
	}
	return total
}

// TreatmentCountsForMonth sums line-item quantities per treatment across all
// invoices created in the given month.
func TreatmentCountsForMonth(invoices []Invoice, monthKey string) map[string]int {
	counts := map[string]int{}
	for _, inv := range invoices {
		if MonthKey(inv.CreatedAt) != monthKey {
			continue
		}
		for _, item := range inv.Items {
			counts[item.Treatment] += item.Quantity
		}
	}
	return counts
}
