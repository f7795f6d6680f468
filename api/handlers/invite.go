package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
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

// Invite exported for testing purposes
type Invite struct {
	DB      databases.InviteDatabase
	UDB     databases.UserDatabase
	Hub     *relay.Hub
	BaseURL string
}

// CreateInviteHandler invites another party to collaborate on a matter
func (i Invite) CreateInviteHandler(w http.ResponseWriter, r *http.Request) {
	var details models.InviteDetails
	if err := json.NewDecoder(r.Body).Decode(&details); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if details.FromUserID == "" || details.ToEmail == "" {
		config.ErrorStatus("missing fields", http.StatusBadRequest, w, fmt.Errorf("fromUserId and toEmail are required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	fromUser, err := i.UDB.FindOne(ctx, bson.M{"_id": details.FromUserID})
	if err != nil {
		config.ErrorStatus("inviter not found", http.StatusNotFound, w, err)
		return
	}

	details.Code = uuid.New().String()
	details.FromName = fromUser.Details.Name
	details.Accepted = false
	details.CreatedAt = primitive.NewDateTimeFromTime(time.Now())

	newInvite := models.Invite{
		ID:      primitive.NewObjectID(),
		Details: details,
	}

	if _, err := i.DB.InsertOne(ctx, newInvite); err != nil {
		config.ErrorStatus("failed to create invite", http.StatusInternalServerError, w, err)
		return
	}

	link := fmt.Sprintf("%s/invite/%s", i.BaseURL, details.Code)
	if err := sendInviteEmail(details.ToEmail, details.FromName, details.Matter, link); err != nil {
		zap.S().Warnw("failed to send invite email", "code", details.Code, "error", err)
	}

	if i.Hub != nil {
		i.Hub.BroadcastGlobal(relay.Event{
			Type: relay.EventNewInvite,
			Data: newInvite,
		}, "")
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(newInvite)
}

// InviteByCodeHandler returns an invite by its code
func (i Invite) InviteByCodeHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	invite, err := i.DB.FindOne(ctx, bson.M{"invite.code": code})
	if err != nil {
		config.ErrorStatus("failed to find invite", http.StatusNotFound, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	json.NewEncoder(w).Encode(invite)
}

// AcceptInviteHandler marks an invite accepted by a user
func (i Invite) AcceptInviteHandler(w http.ResponseWriter, r *http.Request) {
	code := mux.Vars(r)["code"]

	var body struct {
		UserID string `json:"userId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request body", http.StatusBadRequest, w, err)
		return
	}
	if body.UserID == "" {
		config.ErrorStatus("missing user", http.StatusBadRequest, w, fmt.Errorf("userId is required"))
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	invite, err := i.DB.FindOne(ctx, bson.M{"invite.code": code})
	if err != nil {
		config.ErrorStatus("failed to find invite", http.StatusNotFound, w, err)
		return
	}
	if invite.Details.Accepted {
		config.ErrorStatus("invite already accepted", http.StatusConflict, w, fmt.Errorf("invite %s was already used", code))
		return
	}

	err = i.DB.UpdateOne(ctx, bson.M{"invite.code": code}, bson.M{"$set": bson.M{
		"invite.accepted":    true,
		"invite.toUserId":    body.UserID,
		"invite.respondedAt": primitive.NewDateTimeFromTime(time.Now()),
	}})
	if err != nil {
		config.ErrorStatus("failed to accept invite", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "invite accepted successfully"}`))
}

func sendInviteEmail(toEmail, fromName, matter, link string) error {
	from := mail.NewEmail("LegalConnect", "no-reply@legalconnect.in")
	subject := fmt.Sprintf("%s invited you to collaborate on LegalConnect", fromName)
	to := mail.NewEmail("", toEmail)
	plain := fmt.Sprintf("%s invited you to collaborate", fromName)
	if matter != "" {
		plain += " on: " + matter
	}
	plain += "\nAccept the invite here: " + link
	html := templates.RenderGenericEmail(subject, plain)
	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	_, err := client.Send(msg)
	return err
}
