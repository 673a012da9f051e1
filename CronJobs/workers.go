package CronJobs

import (
	"fmt"
	"time"

	"DentaDesk/Models"
	"DentaDesk/Whatsapp"

	"github.com/go-co-op/gocron"
	"go.uber.org/zap"
)

// AppointmentReminder sends whatsapp reminders for upcoming appointments.
type AppointmentReminder struct {
	Store *Models.Store
}

func NewAppointmentReminder(store *Models.Store) *AppointmentReminder {
	return &AppointmentReminder{
		Store: store,
	}
}

// StartReminderCron checks every 15 minutes for appointments roughly three
// hours out. The window width matches the interval, so each appointment is
// picked up once.
func (ar *AppointmentReminder) StartReminderCron() *gocron.Scheduler {
	scheduler := gocron.NewScheduler(time.Local)

	scheduler.Every(15).Minutes().Do(func() {
		if err := ar.SendAppointmentReminders(time.Now()); err != nil {
			zap.S().Errorf("appointment reminder run failed: %v", err)
		}
	})

	scheduler.StartAsync()
	zap.S().Info("appointment reminder cron started")

	return scheduler
}

func (ar *AppointmentReminder) SendAppointmentReminders(now time.Time) error {
	windowStart := now.Add(3 * time.Hour)
	windowEnd := windowStart.Add(15 * time.Minute)

	doc := ar.Store.Snapshot()
	for _, appointment := range doc.Appointments {
		at, err := Models.ParseISO(appointment.DateTime)
		if err != nil {
			zap.S().Warnf("unparsable appointment time for %s: %v", appointment.ID, err)
			continue
		}
		if at.Before(windowStart) || !at.Before(windowEnd) {
			continue
		}

		patient, ok := ar.Store.FindPatient(appointment.PatientID)
		if !ok || patient.Phone == "" {
			continue
		}

		message := fmt.Sprintf(
			"Reminder: %s, your appointment is on %s. Please arrive 10 minutes early.",
			patient.Name, Models.FormatDT(appointment.DateTime),
		)

		if err := Whatsapp.SendMessage(patient.Phone, message); err != nil {
			zap.S().Warnf("failed to send reminder to %s: %v", patient.Name, err)
			continue
		}

		zap.S().Infof("reminder sent to %s for appointment at %s", patient.Name, appointment.DateTime)
	}

	return nil
}
