package Models

import (
	"regexp"
	"strings"
	"time"
)

// Indian mobile numbers: 10 digits, first digit 6-9.
var phoneRegex = regexp.MustCompile(`^[6-9]\d{9}$`)

func ValidPhone(phone string) bool {
	return phoneRegex.MatchString(strings.TrimSpace(phone))
}

func ValidEmail(email string) bool {
	return strings.HasSuffix(strings.TrimSpace(email), "@gmail.com")
}

// Register creates a new credential keyed by (clinic, phone), points the
// clinic profile at the registered clinic name and stamps the trial start if
// this is the first session ever established.
func (s *Store) Register(clinic, doctor, phone, email string) (UserCredential, error) {
	clinic = strings.TrimSpace(clinic)
	doctor = strings.TrimSpace(doctor)
	phone = strings.TrimSpace(phone)
	email = strings.TrimSpace(email)

	var user UserCredential
	err := s.mutate(func(doc *Document) error {
		if clinic == "" || doctor == "" || phone == "" || email == "" {
			return ValidationError{Message: "clinic, doctor, phone and email are all required"}
		}
		if !ValidPhone(phone) {
			return ValidationError{Message: "phone must be a 10-digit mobile number"}
		}
		if !ValidEmail(email) {
			return ValidationError{Message: "email must end with @gmail.com"}
		}
		for _, u := range doc.Users {
			if u.Clinic == clinic && u.Phone == phone {
				return DuplicateUserError{Clinic: clinic, Phone: phone}
			}
		}
		user = UserCredential{
			ID:     NewID("user"),
			Clinic: clinic,
			Doctor: doctor,
			Phone:  phone,
			Email:  email,
		}
		doc.Users = append(doc.Users, user)
		doc.Clinic.Name = clinic
		return nil
	})
	if err != nil {
		return UserCredential{}, err
	}
	s.StampTrialIfAbsent(time.Now())
	return user, nil
}

// Login looks up the credential for (clinic, phone). A miss is a
// NotFoundError; callers are expected to redirect to registration.
func (s *Store) Login(clinic, phone string) (UserCredential, error) {
	clinic = strings.TrimSpace(clinic)
	phone = strings.TrimSpace(phone)

	if clinic == "" || phone == "" {
		return UserCredential{}, ValidationError{Message: "clinic and phone are required"}
	}
	if !ValidPhone(phone) {
		return UserCredential{}, ValidationError{Message: "phone must be a 10-digit mobile number"}
	}

	s.mu.Lock()
	var found *UserCredential
	for i := range s.doc.Users {
		if s.doc.Users[i].Clinic == clinic && s.doc.Users[i].Phone == phone {
			found = &s.doc.Users[i]
			break
		}
	}
	if found == nil {
		s.mu.Unlock()
		return UserCredential{}, NotFoundError{What: "user"}
	}
	user := *found
	s.mu.Unlock()

	s.StampTrialIfAbsent(time.Now())
	return user, nil
}

func (s *Store) GetUserByID(id string) (UserCredential, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.doc.Users {
		if u.ID == id {
			return u, nil
		}
	}
	return UserCredential{}, NotFoundError{What: "user"}
}
