package Models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddAppointmentValidation(t *testing.T) {
	store := newTestStore(t)

	_, err := store.AddAppointment(AppointmentInput{DateTime: "2024-05-20T10:30"})
	var validationErr ValidationError
	assert.ErrorAs(t, err, &validationErr)

	_, err = store.AddAppointment(AppointmentInput{PatientID: "pat_1"})
	assert.ErrorAs(t, err, &validationErr)

	assert.Empty(t, store.Appointments())
}

func TestAddAppointmentToleratesDanglingPatient(t *testing.T) {
	store := newTestStore(t)

	// Existence of the patient id is deliberately not checked here; readers
	// resolve misses to a placeholder.
	appointment, err := store.AddAppointment(AppointmentInput{PatientID: "pat_gone", DateTime: "2024-05-20T10:30"})
	require.NoError(t, err)
	assert.Equal(t, "pat_gone", appointment.PatientID)

	_, ok := store.FindPatient(appointment.PatientID)
	assert.False(t, ok)
}

func TestAppointmentsPrepend(t *testing.T) {
	store := newTestStore(t)
	a, err := store.AddAppointment(AppointmentInput{PatientID: "pat_1", DateTime: "2024-05-20T10:30"})
	require.NoError(t, err)
	b, err := store.AddAppointment(AppointmentInput{PatientID: "pat_1", DateTime: "2024-05-21T11:00"})
	require.NoError(t, err)

	appointments := store.Appointments()
	require.Len(t, appointments, 2)
	assert.Equal(t, b.ID, appointments[0].ID)
	assert.Equal(t, a.ID, appointments[1].ID)

	found, err := store.FindAppointment(a.ID)
	require.NoError(t, err)
	assert.Equal(t, a.DateTime, found.DateTime)

	_, err = store.FindAppointment("app_missing")
	var notFoundErr NotFoundError
	assert.ErrorAs(t, err, &notFoundErr)
}
