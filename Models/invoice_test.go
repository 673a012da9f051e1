package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateInvoiceTotalAndSnapshot(t *testing.T) {
	store := newTestStore(t)
	patient, err := store.AddPatient(PatientInput{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	invoice, err := store.CreateInvoice(CreateInvoiceInput{
		PatientID: patient.ID,
		Items: []InvoiceItem{
			{Treatment: "Cleaning", Quantity: 2, Price: 500},
			{Treatment: "Filling", Quantity: 1, Price: 250.5},
		},
	})
	require.NoError(t, err)

	assert.Equal(t, 1250.5, invoice.Total)
	assert.Equal(t, "Asha", invoice.PatientName)
	assert.Equal(t, "9876543210", invoice.Phone)
	assert.Equal(t, "cash", invoice.Method, "method defaults to cash")
	assert.False(t, invoice.Paid)
}

func TestInvoiceSnapshotFrozenAgainstPatientEdits(t *testing.T) {
	// The denormalized name/phone are copied at creation time and never
	// live-updated; patients have no edit operation here, so the freeze is
	// observable through the invoice alone.
	store := newTestStore(t)
	patient, err := store.AddPatient(PatientInput{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	invoice, err := store.CreateInvoice(CreateInvoiceInput{
		PatientID: patient.ID,
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 300}},
	})
	require.NoError(t, err)

	stored, err := store.FindInvoice(invoice.ID)
	require.NoError(t, err)
	assert.Equal(t, "Asha", stored.PatientName)
}

func TestCreateInvoiceValidation(t *testing.T) {
	store := newTestStore(t)
	var validationErr ValidationError

	_, err := store.CreateInvoice(CreateInvoiceInput{
		Items: []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 300}},
	})
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.CreateInvoice(CreateInvoiceInput{PatientID: "pat_1"})
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "", Quantity: 1, Price: 300}},
	})
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 0, Price: 300}},
	})
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1}},
	})
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 300}},
		Method:    "bitcoin",
	})
	assert.ErrorAs(t, err, &validationErr)

	assert.Empty(t, store.Invoices(), "failed creations must not mutate state")
	assert.Empty(t, store.Snapshot().Treatments)
}

func TestCreateInvoiceDanglingPatientGetsPlaceholder(t *testing.T) {
	store := newTestStore(t)

	invoice, err := store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_gone",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 300}},
	})
	require.NoError(t, err)
	assert.Equal(t, "", invoice.PatientName)
	assert.Equal(t, "", invoice.Phone)
}

func TestCreateInvoiceUpiDefaults(t *testing.T) {
	store := newTestStore(t)
	require.NoError(t, store.UpdateClinic(ClinicProfile{Name: "Acme", UpiID: "acme@upi"}))

	invoice, err := store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 300}},
		Method:    "upi",
	})
	require.NoError(t, err)
	assert.Equal(t, "acme@upi", invoice.UpiID, "upi id falls back to the clinic profile")

	invoice, err = store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 300}},
		Method:    "cash",
		UpiID:     "ignored@upi",
	})
	require.NoError(t, err)
	assert.Equal(t, "", invoice.UpiID, "upi id is only set for upi payments")
}

func TestMarkPaidLifecycle(t *testing.T) {
	store := newTestStore(t)
	invoice, err := store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 2, Price: 500}},
	})
	require.NoError(t, err)

	fresh, err := store.FindInvoice(invoice.ID)
	require.NoError(t, err)
	assert.False(t, CanPrint(&fresh), "a fresh invoice is not printable")

	require.NoError(t, store.MarkPaid(invoice.ID, true))
	paid, err := store.FindInvoice(invoice.ID)
	require.NoError(t, err)
	assert.True(t, CanPrint(&paid))
	assert.Equal(t, 1000.0, paid.Total, "total never changes after creation")

	require.NoError(t, store.MarkPaid(invoice.ID, false))
	unpaid, err := store.FindInvoice(invoice.ID)
	require.NoError(t, err)
	assert.False(t, CanPrint(&unpaid))
	assert.Equal(t, 1000.0, unpaid.Total)

	// Unknown id is a no-op, not an error.
	require.NoError(t, store.MarkPaid("inv_missing", true))
}

func TestCanPrintNilInvoice(t *testing.T) {
	assert.False(t, CanPrint(nil))
}

func TestTreatmentIndexAppendsPerItem(t *testing.T) {
	store := newTestStore(t)
	patient, err := store.AddPatient(PatientInput{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	_, err = store.CreateInvoice(CreateInvoiceInput{
		PatientID: patient.ID,
		Items: []InvoiceItem{
			{Treatment: "Cleaning", Quantity: 2, Price: 500},
			{Treatment: "Filling", Quantity: 1, Price: 250},
		},
	})
	require.NoError(t, err)
	_, err = store.CreateInvoice(CreateInvoiceInput{
		PatientID: patient.ID,
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 500}},
	})
	require.NoError(t, err)

	treatments := store.Snapshot().Treatments
	require.Len(t, treatments["Cleaning"], 2)
	require.Len(t, treatments["Filling"], 1)
	assert.Equal(t, "Asha", treatments["Cleaning"][0].PatientName)
}

func TestRebuildTreatmentsMatchesIncrementalIndex(t *testing.T) {
	store := newTestStore(t)
	patient, err := store.AddPatient(PatientInput{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)

	for _, treatment := range []string{"Cleaning", "Filling", "Cleaning"} {
		_, err = store.CreateInvoice(CreateInvoiceInput{
			PatientID: patient.ID,
			Items:     []InvoiceItem{{Treatment: treatment, Quantity: 1, Price: 100}},
		})
		require.NoError(t, err)
	}

	incremental := store.Snapshot().Treatments
	require.NoError(t, store.RebuildTreatments())
	rebuilt := store.Snapshot().Treatments

	assert.Equal(t, incremental, rebuilt, "the index is derived from invoices alone")
}

func TestInvoicesPrepend(t *testing.T) {
	store := newTestStore(t)
	first, err := store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Cleaning", Quantity: 1, Price: 100}},
	})
	require.NoError(t, err)
	second, err := store.CreateInvoice(CreateInvoiceInput{
		PatientID: "pat_1",
		Items:     []InvoiceItem{{Treatment: "Filling", Quantity: 1, Price: 200}},
	})
	require.NoError(t, err)

	invoices := store.Invoices()
	require.Len(t, invoices, 2)
	assert.Equal(t, second.ID, invoices[0].ID)
	assert.Equal(t, first.ID, invoices[1].ID)
}
