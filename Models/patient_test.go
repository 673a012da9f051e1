package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddPatientPhonePattern(t *testing.T) {
	store := newTestStore(t)

	cases := []struct {
		phone string
		ok    bool
	}{
		{"9876543210", true},
		{"6000000000", true},
		{"1234567890", false},
		{"98765432", false},
		{"98765432100", false},
		{"987654321a", false},
		{"", false},
	}
	for _, tc := range cases {
		_, err := store.AddPatient(PatientInput{Name: "Asha", Phone: tc.phone})
		if tc.ok {
			assert.NoError(t, err, "phone %q", tc.phone)
		} else {
			var validationErr ValidationError
			assert.ErrorAs(t, err, &validationErr, "phone %q", tc.phone)
		}
	}
}

func TestAddPatientRequiresNameAndPhone(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddPatient(PatientInput{Phone: "9876543210"})
	var validationErr ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.AddPatient(PatientInput{Name: "Asha"})
	assert.ErrorAs(t, err, &validationErr)

	assert.Empty(t, store.Patients())
}

func TestPatientsOrderedMostRecentFirst(t *testing.T) {
	store := newTestStore(t)

	first, err := store.AddPatient(PatientInput{Name: "Asha", Phone: "9876543210"})
	require.NoError(t, err)
	second, err := store.AddPatient(PatientInput{Name: "Binu", Phone: "9876543211"})
	require.NoError(t, err)

	patients := store.Patients()
	require.Len(t, patients, 2)
	assert.Equal(t, second.ID, patients[0].ID)
	assert.Equal(t, first.ID, patients[1].ID)
	assert.NotEqual(t, first.ID, second.ID)
	assert.NotEmpty(t, patients[0].CreatedAt)
}
