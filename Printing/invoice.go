package Printing

import (
	"bytes"
	"html/template"
	"strconv"

	"DentaDesk/Models"
)

const invoiceHTMLTemplate = `<!doctype html>
<html lang="en">
<head>
  <meta charset="utf-8" />
  <title>Invoice {{.Invoice.ID}}</title>
  <style>
    body { margin: 0; padding: 32px; font-family: Arial, sans-serif; color: #111827; }
    .header { border-bottom: 2px solid #123b7a; padding-bottom: 12px; margin-bottom: 18px; }
    .muted { color: #6b7280; font-size: 13px; }
    table { width: 100%; border-collapse: collapse; font-size: 14px; margin-top: 16px; }
    th, td { padding: 8px; border-bottom: 1px solid #e5e7eb; text-align: left; }
    td.qty { text-align: center; }
    td.price, th.price { text-align: right; }
    .total { text-align: right; font-size: 16px; margin-top: 14px; }
  </style>
</head>
<body>
  <div class="header">
    <h2>{{.ClinicName}}</h2>
    <div class="muted">{{.Clinic.Address}} &bull; {{.Clinic.Phone}}</div>
  </div>
  <div>Invoice: {{.Invoice.ID}}</div>
  <div>Patient: {{.Invoice.PatientName}}</div>
  <div>Date: {{formatDT .Invoice.CreatedAt}}</div>
  <table>
    <thead>
      <tr><th>Treatment</th><th>Qty</th><th class="price">Price</th></tr>
    </thead>
    <tbody>
      {{range .Invoice.Items}}
      <tr><td>{{.Treatment}}</td><td class="qty">{{.Quantity}}</td><td class="price">&#8377;{{money .Price}}</td></tr>
      {{end}}
    </tbody>
  </table>
  <h3 class="total">Total: &#8377;{{money .Invoice.Total}}</h3>
</body>
</html>
`

var invoiceTemplate = template.Must(template.New("invoice").Funcs(template.FuncMap{
	"formatDT": Models.FormatDT,
	"money": func(v float64) string {
		return strconv.FormatFloat(v, 'f', -1, 64)
	},
}).Parse(invoiceHTMLTemplate))

// RenderInvoice produces the printable invoice document. Unpaid invoices are
// refused: paid is a hard precondition, not a warning. All values pass
// through html/template escaping.
func RenderInvoice(invoice Models.Invoice, clinic Models.ClinicProfile) ([]byte, error) {
	if !Models.CanPrint(&invoice) {
		return nil, Models.PreconditionError{Message: "cannot print an unpaid invoice"}
	}

	clinicName := clinic.Name
	if clinicName == "" {
		clinicName = "Clinic"
	}

	var buf bytes.Buffer
	err := invoiceTemplate.Execute(&buf, map[string]interface{}{
		"Invoice":    invoice,
		"Clinic":     clinic,
		"ClinicName": clinicName,
	})
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
