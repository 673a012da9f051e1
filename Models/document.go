package Models

type ClinicProfile struct {
	Name              string `json:"name"`
	Phone             string `json:"phone"`
	Address           string `json:"address"`
	UpiID             string `json:"upiId"`
	UpiName           string `json:"upiName"`
	GoogleBusinessURL string `json:"googleBusinessURL"`
}

type UserCredential struct {
	ID     string `json:"id"`
	Clinic string `json:"clinic"`
	Doctor string `json:"doctor"`
	Phone  string `json:"phone"`
	Email  string `json:"email"`
}

// Age is kept as entered; the intake form treats it as freeform text.
type Patient struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Age       string `json:"age"`
	Sex       string `json:"sex"`
	Phone     string `json:"phone"`
	Address   string `json:"address"`
	CreatedAt string `json:"createdAt"`
}

// PatientID is a weak reference: the patient may have been created in a
// document this appointment was imported over. Readers substitute a
// placeholder instead of failing.
type Appointment struct {
	ID        string `json:"id"`
	PatientID string `json:"patientId"`
	DateTime  string `json:"dateTimeISO"`
	Notes     string `json:"notes"`
	CreatedAt string `json:"createdAt"`
}

type InvoiceItem struct {
	Treatment string  `json:"treatment"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}

// PatientName and Phone are snapshots taken at creation time; invoices do
// not reflect later patient edits. Total is fixed at creation; Paid is the
// only field that may change afterwards.
type Invoice struct {
	ID          string        `json:"id"`
	PatientID   string        `json:"patientId"`
	PatientName string        `json:"patientName"`
	Phone       string        `json:"phone"`
	Items       []InvoiceItem `json:"items"`
	Total       float64       `json:"total"`
	Method      string        `json:"method"`
	UpiID       string        `json:"upiId"`
	Paid        bool          `json:"paid"`
	CreatedAt   string        `json:"createdAt"`
}

// TreatmentUsage is one entry of the per-treatment side index, appended for
// every invoice line item. The index is derived data and can be rebuilt from
// the invoice history.
type TreatmentUsage struct {
	PatientID   string `json:"patientId"`
	PatientName string `json:"patientName"`
	DateISO     string `json:"dateISO"`
}

type StaffMember struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Phone        string `json:"phone"`
	Address      string `json:"address"`
	Role         string `json:"role"`
	Salary       string `json:"salary"`
	WorkingDays  string `json:"workingDays"`
	WorkingTimes string `json:"times"`
	LeaveDays    string `json:"leaveDays"`
}

// Subscription is overwritten, never stacked: a purchase before expiry resets
// the window from the purchase time.
type Subscription struct {
	Start  string  `json:"start"`
	End    string  `json:"end"`
	Months int     `json:"months"`
	Price  float64 `json:"price"`
}

// Document is the whole clinic state, persisted as a single JSON object.
// Record slices are ordered most-recent-first.
type Document struct {
	Clinic       ClinicProfile               `json:"clinic"`
	Users        []UserCredential            `json:"users"`
	Patients     []Patient                   `json:"patients"`
	Appointments []Appointment               `json:"appointments"`
	Invoices     []Invoice                   `json:"invoices"`
	Staff        []StaffMember               `json:"staff"`
	Subscription *Subscription               `json:"subscriptions"`
	Treatments   map[string][]TreatmentUsage `json:"treatments"`
}

func EmptyDocument() Document {
	return Document{
		Users:        []UserCredential{},
		Patients:     []Patient{},
		Appointments: []Appointment{},
		Invoices:     []Invoice{},
		Staff:        []StaffMember{},
		Treatments:   map[string][]TreatmentUsage{},
	}
}
