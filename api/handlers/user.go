package handlers

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/gorilla/mux"
	"github.com/sendgrid/sendgrid-go"
	"github.com/sendgrid/sendgrid-go/helpers/mail"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/legalconnect/legalconnect-api/api"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/models"
	templates "github.com/legalconnect/legalconnect-api/templates/html"
)

// User exported for testing purposes
type User struct {
	DB databases.UserDatabase
}

// UserHandler returns a user given a userID
func (u User) UserHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	zap.S().Debugf("user_id: %v", userID)

	dbResp, err := u.DB.FindOne(context.Background(), bson.M{"_id": userID})
	if err != nil {
		config.ErrorStatus("failed to get user by ID", http.StatusNotFound, w, err)
		return
	}

	// never leak password hashes to the frontend
	dbResp.Details.Password = ""

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// LawyersHandler returns all lawyer accounts, verified first is left to the frontend
func (u User) LawyersHandler(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	dbResp, err := u.DB.Find(ctx, bson.M{"user.role": models.RoleLawyer})
	if err != nil {
		config.ErrorStatus("failed to get lawyers", http.StatusNotFound, w, err)
		return
	}
	if len(dbResp) == 0 {
		dbResp = []models.User{}
	}
	for i := range dbResp {
		dbResp[i].Details.Password = ""
	}

	b, err := json.Marshal(dbResp)
	if err != nil {
		config.ErrorStatus("failed to marshal response", http.StatusInternalServerError, w, err)
		return
	}
	w.WriteHeader(http.StatusOK)
	w.Write(b)
}

// UserCreateHandler creates a user
func (u User) UserCreateHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var user models.UserDetails
	err := json.NewDecoder(r.Body).Decode(&user)
	if err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	if user.Role != models.RoleClient && user.Role != models.RoleLawyer {
		config.ErrorStatus("invalid role", http.StatusBadRequest, w, fmt.Errorf("role must be client or lawyer"))
		return
	}
	if user.Role == models.RoleLawyer && user.BarCouncilID == "" {
		config.ErrorStatus("missing bar council id", http.StatusBadRequest, w, fmt.Errorf("lawyers must supply a bar council id"))
		return
	}

	// check if the user already exists
	existingUser, _ := u.DB.FindOne(context.Background(), bson.M{"user.email": user.Email})
	if existingUser != nil {
		config.ErrorStatus("email already exists", http.StatusConflict, w, fmt.Errorf("duplicate email"))
		return
	}

	// hash the password
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.Password), bcrypt.DefaultCost)
	if err != nil {
		config.ErrorStatus("failed to hash password", http.StatusInternalServerError, w, err)
		return
	}
	user.Password = string(hashedPassword)
	user.Verified = false
	user.Online = false
	user.CreatedAt = primitive.NewDateTimeFromTime(time.Now())
	user.UpdatedAt = primitive.NewDateTimeFromTime(time.Now())

	newUser := models.User{
		ID:      primitive.NewObjectID().Hex(),
		Details: user,
	}

	_, err = u.DB.InsertOne(context.Background(), newUser)
	if err != nil {
		config.ErrorStatus("failed to create user", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusCreated)
	json.NewEncoder(w).Encode(map[string]interface{}{
		"message": "user created successfully",
		"id":      newUser.ID,
	})
}

// UserCheckEmailHandler reports whether an email is already registered
func (u User) UserCheckEmailHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	var body struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	count, err := u.DB.CountDocuments(context.Background(), bson.M{"user.email": body.Email})
	if err != nil {
		config.ErrorStatus("failed to check email", http.StatusInternalServerError, w, err)
		return
	}

	json.NewEncoder(w).Encode(map[string]bool{"exists": count > 0})
}

// SetOnlineStatusHandler sets a user's online flag
func (u User) SetOnlineStatusHandler(w http.ResponseWriter, r *http.Request) {
	var body struct {
		UserID string `json:"userId"`
		Online bool   `json:"online"`
	}
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		config.ErrorStatus("failed to decode request", http.StatusBadRequest, w, err)
		return
	}

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err := u.DB.UpdateOne(ctx, bson.M{"_id": body.UserID}, bson.M{"$set": bson.M{
		"user.online":    body.Online,
		"user.updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}})
	if err != nil {
		config.ErrorStatus("failed to update online status", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "online status updated"}`))
}

// RequestLawyerVerificationHandler emails a signed verification link to a
// lawyer account holder
func (u User) RequestLawyerVerificationHandler(w http.ResponseWriter, r *http.Request) {
	userID := mux.Vars(r)["user_id"]

	user, err := u.DB.FindOne(context.Background(), bson.M{"_id": userID})
	if err != nil {
		config.ErrorStatus("failed to get user by ID", http.StatusNotFound, w, err)
		return
	}
	if user.Details.Role != models.RoleLawyer {
		config.ErrorStatus("not a lawyer account", http.StatusBadRequest, w, fmt.Errorf("verification is for lawyers"))
		return
	}
	if user.Details.Verified {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"message": "already verified"}`))
		return
	}

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	if len(jwtSecret) == 0 {
		config.ErrorStatus("verification unavailable", http.StatusInternalServerError, w, fmt.Errorf("JWT_SECRET not set"))
		return
	}

	claims := jwt.MapClaims{
		"sub":          user.ID,
		"barCouncilId": user.Details.BarCouncilID,
		"exp":          time.Now().Add(24 * time.Hour).Unix(),
		"iat":          time.Now().Unix(),
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(jwtSecret)
	if err != nil {
		config.ErrorStatus("failed to sign verification token", http.StatusInternalServerError, w, err)
		return
	}

	link := fmt.Sprintf("%s/api/v1/user/verify-lawyer/%s", os.Getenv("BASE_URL"), signed)
	if err := sendVerificationEmail(user.Details.Email, user.Details.Name, link); err != nil {
		config.ErrorStatus("failed to send verification email", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "verification email sent"}`))
}

// ConfirmLawyerVerificationHandler marks a lawyer verified from a signed link
func (u User) ConfirmLawyerVerificationHandler(w http.ResponseWriter, r *http.Request) {
	tokenString := mux.Vars(r)["token"]

	jwtSecret := []byte(os.Getenv("JWT_SECRET"))
	token, err := jwt.Parse(tokenString, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return jwtSecret, nil
	})
	if err != nil || !token.Valid {
		config.ErrorStatus("invalid verification token", http.StatusUnauthorized, w, err)
		return
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		config.ErrorStatus("invalid verification claims", http.StatusUnauthorized, w, fmt.Errorf("bad claims"))
		return
	}
	userID, _ := claims["sub"].(string)

	ctx, cancel := api.WithQueryTimeout(r.Context())
	defer cancel()

	err = u.DB.UpdateOne(ctx, bson.M{"_id": userID}, bson.M{"$set": bson.M{
		"user.verified":  true,
		"user.updatedAt": primitive.NewDateTimeFromTime(time.Now()),
	}})
	if err != nil {
		config.ErrorStatus("failed to verify lawyer", http.StatusInternalServerError, w, err)
		return
	}

	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"message": "lawyer verified successfully"}`))
}

func sendVerificationEmail(toEmail, name, link string) error {
	from := mail.NewEmail("LegalConnect", "no-reply@legalconnect.in")
	subject := "Verify your LegalConnect lawyer account"
	to := mail.NewEmail(name, toEmail)
	plain := "Confirm your bar council registration using this link: " + link
	html := templates.RenderGenericEmail(subject, plain)
	msg := mail.NewSingleEmail(from, subject, to, plain, html)
	client := sendgrid.NewSendClient(os.Getenv("SENDGRID_API_KEY"))
	_, err := client.Send(msg)
	return err
}
