// Package scheduler runs the periodic appointment maintenance jobs.
package scheduler

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/relay"
	templates "github.com/legalconnect/legalconnect-api/templates/html"
)

// Scheduler handles periodic background jobs for appointments
type Scheduler struct {
	cron       *cron.Cron
	ADB        databases.AppointmentDatabase
	UDB        databases.UserDatabase
	Hub        *relay.Hub
	instanceID string
}

// NewScheduler creates a new scheduler instance
func NewScheduler(aDB databases.AppointmentDatabase, uDB databases.UserDatabase, hub *relay.Hub) *Scheduler {
	// Generate a unique instance ID for this pod
	instanceID := os.Getenv("DYNO") // Heroku sets this to "web.1", "web.2", etc.
	if instanceID == "" {
		instanceID = fmt.Sprintf("instance-%d", time.Now().UnixNano())
	}

	return &Scheduler{
		cron:       cron.New(cron.WithLocation(time.UTC)),
		ADB:        aDB,
		UDB:        uDB,
		Hub:        hub,
		instanceID: instanceID,
	}
}

// Start begins the scheduler with all registered jobs
func (s *Scheduler) Start() {
	// Expire stale pending appointments every hour
	_, err := s.cron.AddFunc("0 * * * *", s.expireStaleAppointments)
	if err != nil {
		zap.S().Errorw("failed to register appointment expiry job", "error", err)
	}

	// Send reminders for tomorrow's approved appointments daily at 7 AM UTC
	_, err = s.cron.AddFunc("0 7 * * *", s.sendAppointmentReminders)
	if err != nil {
		zap.S().Errorw("failed to register appointment reminder job", "error", err)
	}

	s.cron.Start()
	zap.S().Info("Appointment scheduler started")
}

// Stop gracefully stops the scheduler
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	zap.S().Info("Appointment scheduler stopped")
}

// expireStaleAppointments marks pending appointments whose date has passed as
// expired, so lawyers are not asked to approve meetings that can no longer
// happen.
func (s *Scheduler) expireStaleAppointments() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	today := time.Now().UTC().Format("2006-01-02")

	zap.S().Infow("Running appointment expiry job", "instance", s.instanceID)

	filter := bson.M{
		"appointment.status": models.AppointmentPending,
		"appointment.date":   bson.M{"$lt": today},
	}

	stale, err := s.ADB.Find(ctx, filter)
	if err != nil {
		zap.S().Errorw("failed to find stale appointments", "error", err)
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	expired := 0
	for _, appt := range stale {
		err := s.ADB.UpdateOne(ctx, bson.M{"_id": appt.ID}, bson.M{
			"$set": bson.M{
				"appointment.status":    models.AppointmentExpired,
				"appointment.updatedAt": now,
			},
		})
		if err != nil {
			zap.S().Errorw("failed to expire appointment", "error", err, "appointmentId", appt.ID.Hex())
			continue
		}
		expired++

		appt.Details.Status = models.AppointmentExpired
		appt.Details.UpdatedAt = now
		if s.Hub != nil {
			s.Hub.Publish(relay.Event{Type: relay.EventAppointmentUpdate, Room: appt.Details.ClientID, Data: appt}, "")
			s.Hub.Publish(relay.Event{Type: relay.EventAppointmentUpdate, Room: appt.Details.LawyerID, Data: appt}, "")
		}
	}

	zap.S().Infow("Appointment expiry complete", "checked", len(stale), "expired", expired)
}

// sendAppointmentReminders emails both parties of approved appointments
// happening tomorrow.
func (s *Scheduler) sendAppointmentReminders() {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
	defer cancel()

	tomorrow := time.Now().UTC().Add(24 * time.Hour).Format("2006-01-02")

	zap.S().Infow("Running appointment reminder job", "instance", s.instanceID)

	filter := bson.M{
		"appointment.status": models.AppointmentApproved,
		"appointment.date":   tomorrow,
	}

	upcoming, err := s.ADB.Find(ctx, filter)
	if err != nil {
		zap.S().Errorw("failed to find upcoming appointments", "error", err)
		return
	}

	sent := 0
	for _, appt := range upcoming {
		s.remindParties(ctx, appt)
		sent++
	}

	zap.S().Infow("Appointment reminder job complete", "reminders", sent)
}

func (s *Scheduler) remindParties(ctx context.Context, appt models.Appointment) {
	subject := "Appointment Reminder - LegalConnect"
	body := fmt.Sprintf("You have an appointment tomorrow, %s at %s.\nPurpose: %s",
		appt.Details.Date, appt.Details.Time, appt.Details.Purpose)

	if appt.Details.ClientEmail != "" {
		if err := s.sendEmail(appt.Details.ClientEmail, "", subject, body); err != nil {
			zap.S().Errorw("failed to send client reminder", "error", err, "appointmentId", appt.ID.Hex())
		}
	}

	lawyer, err := s.UDB.FindOne(ctx, bson.M{"_id": appt.Details.LawyerID})
	if err != nil || lawyer.Details.Email == "" {
		zap.S().Warnw("could not resolve lawyer email for reminder", "appointmentId", appt.ID.Hex())
		return
	}
	if err := s.sendEmail(lawyer.Details.Email, lawyer.Details.Name, subject, body); err != nil {
		zap.S().Errorw("failed to send lawyer reminder", "error", err, "appointmentId", appt.ID.Hex())
	}
}

func (s *Scheduler) sendEmail(toEmail, toName, subject, plainText string) error {
	from := mail.NewEmail("LegalConnect", "no-reply@legalconnect.in")
	to := mail.NewEmail(toName, toEmail)
	htmlContent := templates.RenderGenericEmail(subject, plainText)
	message := mail.NewSingleEmail(from, subject, to, plainText, htmlContent)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	response, err := client.Send(message)
	if err != nil {
		return err
	}
	if response.StatusCode >= 400 {
		zap.S().Errorw("sendgrid returned error status", "status", response.StatusCode, "body", response.Body)
	}
	return nil
}
