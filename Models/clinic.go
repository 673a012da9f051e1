package Models

// ClinicProfile returns the settings singleton.
func (s *Store) Clinic() ClinicProfile {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.doc.Clinic
}

// UpdateClinic overwrites the profile; there is no partial settings update.
func (s *Store) UpdateClinic(profile ClinicProfile) error {
	return s.mutate(func(doc *Document) error {
		doc.Clinic = profile
		return nil
	})
}
