package Models

import "strings"

var paymentMethods = map[string]bool{
	"cash":  true,
	"upi":   true,
	"cards": true,
}

type CreateInvoiceInput struct {
	PatientID string        `json:"patientId"`
	Items     []InvoiceItem `json:"items"`
	Method    string        `json:"method"`
	UpiID     string        `json:"upiId"`
}

// CreateInvoice composes the line items into a new invoice. The patient
// snapshot (name, phone) is frozen at creation; a dangling patient id gets
// empty placeholders rather than blocking the invoice. One treatment-usage
// entry is appended per line item.
func (s *Store) CreateInvoice(input CreateInvoiceInput) (Invoice, error) {
	var invoice Invoice
	err := s.mutate(func(doc *Document) error {
		if strings.TrimSpace(input.PatientID) == "" {
			return ValidationError{Message: "select a patient for the invoice"}
		}
		if len(input.Items) == 0 {
			return ValidationError{Message: "invoice needs at least one item"}
		}
		for _, item := range input.Items {
			if strings.TrimSpace(item.Treatment) == "" || item.Quantity <= 0 || item.Price <= 0 {
				return ValidationError{Message: "each item needs a treatment, quantity and price"}
			}
		}
		method, ok := normalizeMethod(input.Method)
		if !ok {
			return ValidationError{Message: "unknown payment method " + input.Method}
		}

		patientName, patientPhone := "", ""
		for _, p := range doc.Patients {
			if p.ID == input.PatientID {
				patientName, patientPhone = p.Name, p.Phone
				break
			}
		}

		total := 0.0
		for _, item := range input.Items {
			total += float64(item.Quantity) * item.Price
		}

		upiID := ""
		if method == "upi" {
			upiID = input.UpiID
			if upiID == "" {
				upiID = doc.Clinic.UpiID
			}
		}

		invoice = Invoice{
			ID:          NewID("inv"),
			PatientID:   input.PatientID,
			PatientName: patientName,
			Phone:       patientPhone,
			Items:       input.Items,
			Total:       total,
			Method:      method,
			UpiID:       upiID,
			CreatedAt:   NowISO(),
		}
		doc.Invoices = append([]Invoice{invoice}, doc.Invoices...)
		for _, item := range input.Items {
			doc.Treatments[item.Treatment] = append(doc.Treatments[item.Treatment], TreatmentUsage{
				PatientID:   invoice.PatientID,
				PatientName: invoice.PatientName,
				DateISO:     invoice.CreatedAt,
			})
		}
		return nil
	})
	return invoice, err
}

func normalizeMethod(method string) (string, bool) {
	method = strings.ToLower(strings.TrimSpace(method))
	if method == "" {
		return "cash", true
	}
	return method, paymentMethods[method]
}

// MarkPaid flips the paid flag on the matching invoice. This is the only
// mutation an invoice admits after creation; an unknown id is a no-op.
func (s *Store) MarkPaid(id string, paid bool) error {
	return s.mutate(func(doc *Document) error {
		for i := range doc.Invoices {
			if doc.Invoices[i].ID == id {
				doc.Invoices[i].Paid = paid
				return nil
			}
		}
		return nil
	})
}

// CanPrint is the hard precondition for any printable or sent rendering.
func CanPrint(invoice *Invoice) bool {
	return invoice != nil && invoice.Paid
}

func (s *Store) FindInvoice(id string) (Invoice, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, inv := range s.doc.Invoices {
		if inv.ID == id {
			return inv, nil
		}
	}
	return Invoice{}, NotFoundError{What: "invoice"}
}

func (s *Store) Invoices() []Invoice {
	return s.Snapshot().Invoices
}

// RebuildTreatments reconstructs the per-treatment usage index from the
// invoice history. Invoices are stored most-recent-first, so the walk runs
// backwards to keep entries in creation order.
func (s *Store) RebuildTreatments() error {
	return s.mutate(func(doc *Document) error {
		index := map[string][]TreatmentUsage{}
		for i := len(doc.Invoices) - 1; i >= 0; i-- {
			inv := doc.Invoices[i]
			for _, item := range inv.Items {
				index[item.Treatment] = append(index[item.Treatment], TreatmentUsage{
					PatientID:   inv.PatientID,
					PatientName: inv.PatientName,
					DateISO:     inv.CreatedAt,
				})
			}
		}
		doc.Treatments = index
		return nil
	})
}
