package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"github.com/stripe/stripe-go/v82"
	"github.com/stripe/stripe-go/v82/checkout/session"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/api"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/relay"
	templates "github.com/legalconnect/legalconnect-api/templates/html"
)

// Appointment exported for testing purposes
type Appointment struct {
	DB      databases.AppointmentDatabase
	UDB     databases.UserDatabase
	Hub     *relay.Hub
	BaseURL string
}

// CreateAppointmentHandler books a consultation with a lawyer
func (a Appointment) CreateAppointmentHandler(w http.ResponseWriter, r *http.Request) {
	var details models.AppointmentDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if details.ClientID == "" || details.LawyerID == "" || details.Date == "" || details.Time == "" {
		config.ErrorStatus("missing fields", http.StatusBadRequest, w, fmt.Errorf("clientId, lawyerId, date and time are required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	lawyer, err := a.UDB.FindOne(ctx, bson.M{"_id": details.LawyerID})
	if err != nil {
		config.ErrorStatus("lawyer not found", http.StatusNotFound, w, err)
		return
	}
	if lawyer.Details.Role != models.RoleLawyer {
		config.ErrorStatus("not a lawyer account", http.StatusBadRequest, w, fmt.Errorf("appointments can only be booked with lawyers"))
		return
	}

	now := primitive.NewDateTimeFromTime(time.Now())
	details.Status = models.AppointmentPending
	details.CreatedAt = now
	details.UpdatedAt = now
	if details.Duration <= 0 {
		details.Duration = 30
	}

	newAppointment := models.Appointment{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	if _, err := a.DB.InsertOne(ctx, newAppointment); err != nil {
		config.ErrorStatus("failed to create appointment", http.StatusInternalServerError, w, err)
		return
	}

	// notify both parties through their personal rooms
	if a.Hub != nil {
		ev := relay.Event{Type: relay.EventNewAppointment, Data: newAppointment}
		ev.Room = details.LawyerID
		a.Hub.Publish(ev, "")
		ev.Room = details.ClientID
		a.Hub.Publish(ev, "")
	}

	if err := sendAppointmentEmail(lawyer.Details.Email, lawyer.Details.Name,
		"New consultation request",
		fmt.Sprintf("You have a new consultation request for %s at %s.\nPurpose: %s", details.Date, details.Time, details.Purpose),
	); err != nil {
		zap.S().Warnw("failed to send appointment email", "lawyerId", details.LawyerID, "error", err)
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newAppointment)
}

// AppointmentByIDHandler returns an appointment by its ID
func (a Appointment) AppointmentByIDHandler(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointment_id"]

	aID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		config.ErrorStatus("invalid appointment ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appointment, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to find appointment", http.StatusNotFound, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(appointment)
}

// AppointmentsByUserIDHandler returns appointments where the user is either party
func (a Appointment) AppointmentsByUserIDHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	filter := bson.M{"$or": []bson.M{
		{"appointment.clientId": userID},
		{"appointment.lawyerId": userID},
	}}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := a.DB.Find(ctx, filter)
	if err != nil {
		config.ErrorStatus("failed to get appointments", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.Appointment{}
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UpdateAppointmentStatusHandler moves an appointment through its lifecycle
func (a Appointment) UpdateAppointmentStatusHandler(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointment_id"]

	var body struct {
		Status string `json:"status"`
		Notes  string `json:"notes,omitempty"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	switch body.Status {
	case models.AppointmentApproved, models.AppointmentRejected, models.AppointmentCompleted:
	default:
		config.ErrorStatus("invalid status", http.StatusBadRequest, w, fmt.Errorf("status must be approved, rejected or completed"))
		return
	}

	aID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		config.ErrorStatus("invalid appointment ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appointment, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to find appointment", http.StatusNotFound, w, err)
		return
	}

	update := bson.M{
		"appointment.status":    body.Status,
		"appointment.updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}
	if body.Notes != "" {
		update["appointment.notes"] = body.Notes
	}

	if err := a.DB.UpdateOne(ctx, bson.M{"_id": aID}, bson.M{"$set": update}); err != nil {
		config.ErrorStatus("failed to update appointment", http.StatusInternalServerError, w, err)
		return
	}

	appointment.Details.Status = body.Status
	if a.Hub != nil {
		ev := relay.Event{Type: relay.EventAppointmentUpdate, Data: appointment}
		ev.Room = appointment.Details.ClientID
		a.Hub.Publish(ev, "")
		ev.Room = appointment.Details.LawyerID
		a.Hub.Publish(ev, "")
	}

	if appointment.Details.ClientEmail != "" {
		if err := sendAppointmentEmail(appointment.Details.ClientEmail, "",
			fmt.Sprintf("Your consultation was %s", body.Status),
			fmt.Sprintf("Your consultation on %s at %s is now %s.", appointment.Details.Date, appointment.Details.Time, body.Status),
		); err != nil {
			zap.S().Warnw("failed to send appointment status email", "appointmentId", appointmentID, "error", err)
		}
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "appointment updated successfully"}`))
}

// CreateCheckoutSessionHandler creates a Stripe checkout session for a paid
// consultation
func (a Appointment) CreateCheckoutSessionHandler(w http.ResponseWriter, r *http.Request) {
	appointmentID := mux.Vars(r)["appointment_id"]

	aID, err := primitive.ObjectIDFromHex(appointmentID)
	if err != nil {
		config.ErrorStatus("invalid appointment ID", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	appointment, err := a.DB.FindOne(ctx, bson.M{"_id": aID})
	if err != nil {
		config.ErrorStatus("failed to find appointment", http.StatusNotFound, w, err)
		return
	}
	if appointment.Details.FeeCents <= 0 {
		config.ErrorStatus("appointment has no fee", http.StatusBadRequest, w, fmt.Errorf("nothing to charge"))
		return
	}

	params := &stripe.CheckoutSessionParams{
		Mode: stripe.String(string(stripe.CheckoutSessionModePayment)),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency: stripe.String("inr"),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(fmt.Sprintf("Legal consultation on %s at %s", appointment.Details.Date, appointment.Details.Time)),
					},
					UnitAmount: stripe.Int64(appointment.Details.FeeCents),
				},
				Quantity: stripe.Int64(1),
			},
		},
		SuccessURL:        stripe.String(a.BaseURL + "/api/v1/success"),
		CancelURL:         stripe.String(a.BaseURL + "/api/v1/cancel"),
		ClientReferenceID: stripe.String(appointmentID),
	}

	s, err := session.New(params)
	if err != nil {
		config.ErrorStatus("failed to create checkout session", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(map[string]string{"url": s.URL, "id": s.ID})
}

func (a Appointment) handleSuccessRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, a.BaseURL+"/appointments?payment=success", http.StatusSeeOther)
}

func (a Appointment) handleCancelRedirect(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, a.BaseURL+"/appointments?payment=cancelled", http.StatusSeeOther)
}

func sendAppointmentEmail(toEmail, name, subject, bodyText string) error {
	from := mail.NewEmail("LegalConnect", "no-reply@legalconnect.in")
	to := mail.NewEmail(name, toEmail)
	html := templates.RenderGenericEmail(subject, bodyText)
	msg := mail.NewSingleEmail(from, subject, to, bodyText, html)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	_, err := client.Send(msg)
	return err
}
