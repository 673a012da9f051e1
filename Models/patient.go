package Models

import "strings"

type PatientInput struct {
	Name    string `json:"name"`
	Age     string `json:"age"`
	Sex     string `json:"sex"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

// AddPatient validates the intake form and prepends the new record. Patients
// are never deleted; appointments and invoices reference them by id only.
func (s *Store) AddPatient(input PatientInput) (Patient, error) {
	var patient Patient
	err := s.mutate(func(doc *Document) error {
		if strings.TrimSpace(input.Name) == "" || strings.TrimSpace(input.Phone) == "" {
			return ValidationError{Message: "patient name and phone are required"}
		}
		if !ValidPhone(input.Phone) {
			return ValidationError{Message: "phone must be a 10-digit mobile number"}
		}
		patient = Patient{
			ID:        NewID("pat"),
			Name:      strings.TrimSpace(input.Name),
			Age:       input.Age,
			Sex:       input.Sex,
			Phone:     strings.TrimSpace(input.Phone),
			Address:   input.Address,
			CreatedAt: NowISO(),
		}
		doc.Patients = append([]Patient{patient}, doc.Patients...)
		return nil
	})
	return patient, err
}

func (s *Store) Patients() []Patient {
	return s.Snapshot().Patients
}

// FindPatient resolves a weak patient reference; ok is false for dangling ids.
func (s *Store) FindPatient(id string) (Patient, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, p := range s.doc.Patients {
		if p.ID == id {
			return p, true
		}
	}
	return Patient{}, false
}
