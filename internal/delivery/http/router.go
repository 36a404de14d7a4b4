package http

import (
	"net/http"

	"healthhub/internal/converter"
	"healthhub/internal/delivery/dto"
	"healthhub/internal/delivery/http/handler"
	"healthhub/internal/delivery/http/middleware"
	"healthhub/internal/domain/entity"
	"healthhub/internal/usecase"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

type Router struct {
	router             *mux.Router
	log                *logrus.Logger
	authHandler        *handler.AuthHandler
	historyHandler     *handler.HistoryHandler
	facilityHandler    *handler.FacilityHandler
	appointmentHandler *handler.ResourceHandler[entity.Appointment, dto.CreateAppointmentRequest, dto.AppointmentResponse]
	contactHandler     *handler.ResourceHandler[entity.EmergencyContact, dto.CreateContactRequest, dto.ContactResponse]
	reminderHandler    *handler.ResourceHandler[entity.MedicineReminder, dto.CreateReminderRequest, dto.ReminderResponse]
	sessionMiddleware  *middleware.SessionMiddleware
	corsMiddleware     *middleware.CORSMiddleware
	rateLimiter        *middleware.RateLimiter
}

func NewRouter(
	log *logrus.Logger,
	sessionMiddleware *middleware.SessionMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	rateLimiter *middleware.RateLimiter,
) *Router {
	return &Router{
		router:          mux.NewRouter(),
		log:             log,
		authHandler:     handler.NewAuthHandler(),
		historyHandler:  handler.NewHistoryHandler(),
		facilityHandler: handler.NewFacilityHandler(),
		appointmentHandler: handler.NewResourceHandler(
			"Appointments",
			func(ws *usecase.Workspace) *usecase.AppointmentList { return ws.Appointments },
			converter.AppointmentsToResponses,
		),
		contactHandler: handler.NewResourceHandler(
			"Emergency contacts",
			func(ws *usecase.Workspace) *usecase.ContactList { return ws.Contacts },
			converter.ContactsToResponses,
		),
		reminderHandler: handler.NewResourceHandler(
			"Medicine reminders",
			func(ws *usecase.Workspace) *usecase.ReminderList { return ws.Reminders },
			converter.RemindersToResponses,
		),
		sessionMiddleware: sessionMiddleware,
		corsMiddleware:    corsMiddleware,
		rateLimiter:       rateLimiter,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Everything else sees the caller's workspace when the cookie names one
	app := api.NewRoute().Subrouter()
	app.Use(r.sessionMiddleware.Attach)
	stateful := r.sessionMiddleware.Ensure

	// Auth routes (public)
	auth := app.PathPrefix("/auth").Subrouter()
	auth.Handle("/signup", r.rateLimiter.Limit(stateful(http.HandlerFunc(r.authHandler.Signup)))).Methods(http.MethodPost)
	auth.Handle("/login", r.rateLimiter.Limit(stateful(http.HandlerFunc(r.authHandler.Login)))).Methods(http.MethodPost)
	auth.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Facilities (public)
	app.HandleFunc("/facilities", r.facilityHandler.Mount).Methods(http.MethodGet)
	app.Handle("/facilities/search", stateful(http.HandlerFunc(r.facilityHandler.Search))).Methods(http.MethodPost)
	app.Handle("/facilities/geolocation-denied", stateful(http.HandlerFunc(r.facilityHandler.DenyGeolocation))).Methods(http.MethodPost)

	// Protected routes
	protected := app.NewRoute().Subrouter()
	protected.Use(middleware.RequireUser)

	protected.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	protected.HandleFunc("/history", r.historyHandler.GetHistory).Methods(http.MethodGet)

	protected.HandleFunc("/appointments", r.appointmentHandler.Mount).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Remove).Methods(http.MethodDelete)

	protected.HandleFunc("/contacts", r.contactHandler.Mount).Methods(http.MethodGet)
	protected.HandleFunc("/contacts", r.contactHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/contacts/{id}", r.contactHandler.Remove).Methods(http.MethodDelete)

	protected.HandleFunc("/reminders", r.reminderHandler.Mount).Methods(http.MethodGet)
	protected.HandleFunc("/reminders", r.reminderHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/reminders/{id}", r.reminderHandler.Remove).Methods(http.MethodDelete)

	// Add CORS and request logging middleware
	r.router.Use(r.corsMiddleware.Handle)
	r.router.Use(middleware.RequestLogger(r.log))

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
