package http

import (
	"net/http"

	"mindcare-backend/internal/delivery/http/handler"
	"mindcare-backend/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router                *mux.Router
	authHandler           *handler.AuthHandler
	doctorHandler         *handler.DoctorHandler
	doctorScheduleHandler *handler.DoctorScheduleHandler
	appointmentHandler    *handler.AppointmentHandler
	moodHandler           *handler.MoodHandler
	chatHandler           *handler.ChatHandler
	chatbotHandler        *handler.ChatbotHandler
	contactHandler        *handler.ContactHandler
	authMiddleware        *middleware.AuthMiddleware
	corsMiddleware        *middleware.CORSMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	doctorHandler *handler.DoctorHandler,
	doctorScheduleHandler *handler.DoctorScheduleHandler,
	appointmentHandler *handler.AppointmentHandler,
	moodHandler *handler.MoodHandler,
	chatHandler *handler.ChatHandler,
	chatbotHandler *handler.ChatbotHandler,
	contactHandler *handler.ContactHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
) *Router {
	return &Router{
		router:                mux.NewRouter(),
		authHandler:           authHandler,
		doctorHandler:         doctorHandler,
		doctorScheduleHandler: doctorScheduleHandler,
		appointmentHandler:    appointmentHandler,
		moodHandler:           moodHandler,
		chatHandler:           chatHandler,
		chatbotHandler:        chatbotHandler,
		contactHandler:        contactHandler,
		authMiddleware:        authMiddleware,
		corsMiddleware:        corsMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Auth routes (public)
	auth := api.PathPrefix("/auth").Subrouter()
	auth.HandleFunc("/register/patient", r.authHandler.RegisterPatient).Methods(http.MethodPost)
	auth.HandleFunc("/register/doctor", r.authHandler.RegisterDoctor).Methods(http.MethodPost)
	auth.HandleFunc("/login", r.authHandler.Login).Methods(http.MethodPost)
	auth.HandleFunc("/refresh-token", r.authHandler.RefreshToken).Methods(http.MethodPost)

	// Auth routes (protected)
	authProtected := api.PathPrefix("/auth").Subrouter()
	authProtected.Use(r.authMiddleware.Authenticate)
	authProtected.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)
	authProtected.HandleFunc("/me", r.authHandler.GetCurrentUser).Methods(http.MethodGet)

	// Contact form (public)
	api.HandleFunc("/contact", r.contactHandler.Send).Methods(http.MethodPost)

	// Everything below requires authentication
	protected := api.PathPrefix("").Subrouter()
	protected.Use(r.authMiddleware.Authenticate)

	// Doctor directory
	protected.HandleFunc("/doctors", r.doctorHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/doctors/me", middleware.RequireDoctor(http.HandlerFunc(r.doctorHandler.UpdateProfile)).ServeHTTP).Methods(http.MethodPut)
	protected.HandleFunc("/doctors/{id}", r.doctorHandler.Get).Methods(http.MethodGet)

	// Weekly schedules
	protected.HandleFunc("/schedule", r.doctorScheduleHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/schedule", middleware.RequireDoctor(http.HandlerFunc(r.doctorScheduleHandler.Upsert)).ServeHTTP).Methods(http.MethodPut)

	// Appointments
	protected.HandleFunc("/appointments/availability", r.appointmentHandler.Availability).Methods(http.MethodGet)
	protected.HandleFunc("/appointments", r.appointmentHandler.Create).Methods(http.MethodPost)
	protected.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Update).Methods(http.MethodPatch)
	protected.HandleFunc("/appointments/{id}", r.appointmentHandler.Delete).Methods(http.MethodDelete)

	// Mood tracking
	protected.HandleFunc("/mood/predict", r.moodHandler.Predict).Methods(http.MethodPost)
	protected.HandleFunc("/moodlogs", r.moodHandler.List).Methods(http.MethodGet)
	protected.HandleFunc("/mood/report", r.moodHandler.Report).Methods(http.MethodGet)

	// Chat
	protected.HandleFunc("/chat/messages", r.chatHandler.Send).Methods(http.MethodPost)
	protected.HandleFunc("/chat/sessions", r.chatHandler.Sessions).Methods(http.MethodGet)
	protected.HandleFunc("/chat/conversations/{peerId}/messages", r.chatHandler.Messages).Methods(http.MethodGet)
	protected.HandleFunc("/chat/conversations/{peerId}/read", r.chatHandler.MarkRead).Methods(http.MethodPost)
	protected.HandleFunc("/chat/conversations/{peerId}", r.chatHandler.DeleteConversation).Methods(http.MethodDelete)

	// Meditative chatbot
	protected.HandleFunc("/chatbot", r.chatbotHandler.Ask).Methods(http.MethodPost)
	protected.HandleFunc("/chatbot/conversations/{id}", r.chatbotHandler.GetConversation).Methods(http.MethodGet)

	// Add CORS middleware
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
