package Models

import "strings"

type AppointmentInput struct {
	PatientID string `json:"patientId"`
	DateTime  string `json:"dateTimeISO"`
	Notes     string `json:"notes"`
}

// AddAppointment books a slot for a patient id. The id is not checked for
// existence: a dangling reference is tolerated and resolved to a placeholder
// wherever the appointment is displayed or dispatched.
func (s *Store) AddAppointment(input AppointmentInput) (Appointment, error) {
	var appointment Appointment
	err := s.mutate(func(doc *Document) error {
		if strings.TrimSpace(input.PatientID) == "" || strings.TrimSpace(input.DateTime) == "" {
			return ValidationError{Message: "patient and date/time are required"}
		}
		appointment = Appointment{
			ID:        NewID("app"),
			PatientID: input.PatientID,
			DateTime:  input.DateTime,
			Notes:     input.Notes,
			CreatedAt: NowISO(),
		}
		doc.Appointments = append([]Appointment{appointment}, doc.Appointments...)
		return nil
	})
	return appointment, err
}

func (s *Store) Appointments() []Appointment {
	return s.Snapshot().Appointments
}

func (s *Store) FindAppointment(id string) (Appointment, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, a := range s.doc.Appointments {
		if a.ID == id {
			return a, nil
		}
	}
	return Appointment{}, NotFoundError{What: "appointment"}
}
