package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/gorilla/mux"
	"github.com/stripe/stripe-go/v82"
	"go.uber.org/zap"

	"github.com/legalconnect/legalconnect-api/api"
	"github.com/legalconnect/legalconnect-api/config"
	"github.com/legalconnect/legalconnect-api/databases"
	"github.com/legalconnect/legalconnect-api/inference"
	"github.com/legalconnect/legalconnect-api/models"
	"github.com/legalconnect/legalconnect-api/relay"
)

// App stores the router, db connection and realtime hub, so it can be reused
type App struct {
	Router   *mux.Router
	DB       databases.CollectionHelper
	Config   config.Config
	Hub      *relay.Hub
	dbHelper databases.DatabaseHelper
}

// New creates a new mux router and all the routes
func (a *App) New() *mux.Router {
	// setup go-guardian for middleware
	m := api.MiddlewareDB{DB: databases.NewUserDatabase(a.dbHelper)}
	m.SetupGoGuardian()

	r := mux.NewRouter()

	u := User{DB: databases.NewUserDatabase(a.dbHelper)}
	conv := Conversation{DB: databases.NewConversationDatabase(a.dbHelper), MDB: databases.NewMessageDatabase(a.dbHelper), Hub: a.Hub}
	msg := Message{DB: databases.NewMessageDatabase(a.dbHelper), CDB: databases.NewConversationDatabase(a.dbHelper), Hub: a.Hub}
	appt := Appointment{DB: databases.NewAppointmentDatabase(a.dbHelper), UDB: databases.NewUserDatabase(a.dbHelper), Hub: a.Hub, BaseURL: a.Config.BaseURL}
	doc := Document{DB: databases.NewDocumentDatabase(a.dbHelper), Hub: a.Hub, Model: inference.New(&a.Config)}
	inv := Invite{DB: databases.NewInviteDatabase(a.dbHelper), UDB: databases.NewUserDatabase(a.dbHelper), Hub: a.Hub, BaseURL: a.Config.BaseURL}
	ipc := IPCSection{}
	analyze := Analyze{Model: inference.New(&a.Config)}
	ws := Socket{Hub: a.Hub, DB: databases.NewUserDatabase(a.dbHelper)}

	// healthchex
	r.HandleFunc("/health", a.healthCheckHandler)

	r.HandleFunc("/ws", ws.ServeHTTP)

	apiCreate := r.PathPrefix("/api/v1").Subrouter()

	apiCreate.Handle("/auth/token", http.HandlerFunc(m.CreateToken)).Methods("POST")
	apiCreate.Handle("/auth/logout", api.Middleware(http.HandlerFunc(api.RevokeToken))).Methods("DELETE")

	apiCreate.Handle("/user/create-user", http.HandlerFunc(u.UserCreateHandler)).Methods("POST")
	apiCreate.Handle("/user/check-user", http.HandlerFunc(u.UserCheckEmailHandler)).Methods("POST")
	apiCreate.Handle("/user/online-status", api.Middleware(http.HandlerFunc(u.SetOnlineStatusHandler))).Methods("PUT")
	apiCreate.Handle("/user/{user_id}/verify-lawyer", api.Middleware(http.HandlerFunc(u.RequestLawyerVerificationHandler))).Methods("POST")
	apiCreate.Handle("/user/verify-lawyer/{token}", http.HandlerFunc(u.ConfirmLawyerVerificationHandler)).Methods("GET")
	apiCreate.Handle("/user/{user_id}", api.Middleware(http.HandlerFunc(u.UserHandler))).Methods("GET")
	apiCreate.Handle("/lawyers", api.Middleware(http.HandlerFunc(u.LawyersHandler))).Methods("GET")

	apiCreate.Handle("/conversation", api.Middleware(http.HandlerFunc(conv.CreateConversationHandler))).Methods("POST")
	apiCreate.Handle("/conversation/{conversation_id}", api.Middleware(http.HandlerFunc(conv.ConversationByIDHandler))).Methods("GET")
	apiCreate.Handle("/conversation/{conversation_id}", api.Middleware(http.HandlerFunc(conv.DeleteConversationHandler))).Methods("DELETE")
	apiCreate.Handle("/conversations/user/{user_id}", api.Middleware(http.HandlerFunc(conv.ConversationsByUserIDHandler))).Methods("GET")

	apiCreate.Handle("/message", api.Middleware(http.HandlerFunc(msg.CreateMessageHandler))).Methods("POST")
	apiCreate.Handle("/messages/conversation/{conversation_id}", api.Middleware(http.HandlerFunc(msg.MessagesByConversationIDHandler))).Methods("GET")

	apiCreate.Handle("/appointment", api.Middleware(http.HandlerFunc(appt.CreateAppointmentHandler))).Methods("POST")
	apiCreate.Handle("/appointment/{appointment_id}", api.Middleware(http.HandlerFunc(appt.AppointmentByIDHandler))).Methods("GET")
	apiCreate.Handle("/appointment/{appointment_id}/status", api.Middleware(http.HandlerFunc(appt.UpdateAppointmentStatusHandler))).Methods("PUT")
	apiCreate.Handle("/appointment/{appointment_id}/create-checkout-session", api.Middleware(http.HandlerFunc(appt.CreateCheckoutSessionHandler))).Methods("POST")
	apiCreate.Handle("/appointments/user/{user_id}", api.Middleware(http.HandlerFunc(appt.AppointmentsByUserIDHandler))).Methods("GET")

	apiCreate.Handle("/document", api.Middleware(http.HandlerFunc(doc.UploadDocumentHandler))).Methods("POST")
	apiCreate.Handle("/document/{document_id}", api.Middleware(http.HandlerFunc(doc.DocumentByIDHandler))).Methods("GET")
	apiCreate.Handle("/document/{document_id}", api.Middleware(http.HandlerFunc(doc.DeleteDocumentHandler))).Methods("DELETE")
	apiCreate.Handle("/document/{document_id}/share", api.Middleware(http.HandlerFunc(doc.ShareDocumentHandler))).Methods("POST")
	apiCreate.Handle("/document/{document_id}/analyze", api.Middleware(http.HandlerFunc(doc.AnalyzeDocumentHandler))).Methods("POST")
	apiCreate.Handle("/documents/user/{user_id}", api.Middleware(http.HandlerFunc(doc.DocumentsByUserIDHandler))).Methods("GET")
	apiCreate.Handle("/generate-signature", api.Middleware(http.HandlerFunc(doc.GenerateSignature))).Methods("POST")

	apiCreate.Handle("/invite", api.Middleware(http.HandlerFunc(inv.CreateInviteHandler))).Methods("POST")
	apiCreate.Handle("/invite/{code}", api.Middleware(http.HandlerFunc(inv.InviteByCodeHandler))).Methods("GET")
	apiCreate.Handle("/invite/{code}/accept", api.Middleware(http.HandlerFunc(inv.AcceptInviteHandler))).Methods("POST")

	apiCreate.Handle("/ipc-sections", http.HandlerFunc(ipc.ListSectionsHandler)).Methods("GET")
	apiCreate.Handle("/ipc-sections/search", http.HandlerFunc(ipc.SearchSectionsHandler)).Methods("GET")
	apiCreate.Handle("/ipc-sections/{section_id}", http.HandlerFunc(ipc.SectionByIDHandler)).Methods("GET")

	apiCreate.Handle("/analyze", http.HandlerFunc(analyze.AnalyzeHandler)).Methods("POST")

	apiCreate.Handle("/success", http.HandlerFunc(appt.handleSuccessRedirect)).Methods("GET")
	apiCreate.Handle("/cancel", http.HandlerFunc(appt.handleCancelRedirect)).Methods("GET")

	apiCreate.Use(api.TimeoutMiddleware(30 * time.Second))

	return r
}

// Initialize is invoked by main to connect with the database and create a router
func (a *App) Initialize() error {

	client, err := databases.NewClient(&a.Config)
	if err != nil {
		// if we fail to create a new database client, then kill the pod
		zap.S().With(err).Error("failed to create new client")
		return err
	}

	a.dbHelper = databases.NewDatabase(&a.Config, client)
	err = client.Connect()
	if err != nil {
		// if we fail to connect to the database, then kill the pod
		zap.S().With(err).Error("failed to connect to database")
		return err
	}
	zap.S().Info("legalconnect-api has connected to the database")

	// initialize stripe
	stripeKey := os.Getenv("STRIPE_SECRET_KEY")
	if stripeKey == "" {
		return fmt.Errorf("stripe secret key is not set")
	}
	stripe.Key = stripeKey

	a.Hub = relay.NewHub()

	// initialize api router
	a.initializeRoutes()
	return nil

}

func (a *App) initializeRoutes() {
	a.Router = a.New()
}

// DBHelper exposes the database connection for wiring background jobs.
func (a *App) DBHelper() databases.DatabaseHelper {
	return a.dbHelper
}

func (a *App) healthCheckHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	resp := models.HealthCheckResponse{Alive: true}
	if a.Hub != nil {
		resp.ConnectedUsers = a.Hub.ConnectedUsers()
	}
	_ = json.NewEncoder(w).Encode(resp)
}
