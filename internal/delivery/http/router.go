package http

import (
	"net/http"

	"github.com/techcare/pro360-api/internal/delivery/http/handler"
	"github.com/techcare/pro360-api/internal/delivery/http/middleware"
	"github.com/techcare/pro360-api/pkg/response"

	"github.com/gorilla/mux"
)

type Router struct {
	router            *mux.Router
	authHandler       *handler.AuthHandler
	bookingHandler    *handler.BookingHandler
	contactHandler    *handler.ContactHandler
	serviceHandler    *handler.ServiceHandler
	staffHandler      *handler.StaffHandler
	paymentHandler    *handler.PaymentHandler
	auditLogHandler   *handler.AuditLogHandler
	authMiddleware    *middleware.AuthMiddleware
	corsMiddleware    *middleware.CORSMiddleware
	loggingMiddleware *middleware.LoggingMiddleware
}

func NewRouter(
	authHandler *handler.AuthHandler,
	bookingHandler *handler.BookingHandler,
	contactHandler *handler.ContactHandler,
	serviceHandler *handler.ServiceHandler,
	staffHandler *handler.StaffHandler,
	paymentHandler *handler.PaymentHandler,
	auditLogHandler *handler.AuditLogHandler,
	authMiddleware *middleware.AuthMiddleware,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:            mux.NewRouter(),
		authHandler:       authHandler,
		bookingHandler:    bookingHandler,
		contactHandler:    contactHandler,
		serviceHandler:    serviceHandler,
		staffHandler:      staffHandler,
		paymentHandler:    paymentHandler,
		auditLogHandler:   auditLogHandler,
		authMiddleware:    authMiddleware,
		corsMiddleware:    corsMiddleware,
		loggingMiddleware: loggingMiddleware,
	}
}

func (r *Router) Setup() http.Handler {
	api := r.router.PathPrefix("/api").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Public routes
	api.HandleFunc("/book-service", r.bookingHandler.CreateBooking).Methods(http.MethodPost)
	api.HandleFunc("/contact", r.contactHandler.CreateContact).Methods(http.MethodPost)
	api.HandleFunc("/services", r.serviceHandler.GetPublicServices).Methods(http.MethodGet)
	api.HandleFunc("/payment/create-order", r.paymentHandler.CreateOrder).Methods(http.MethodPost)
	api.HandleFunc("/payment/verify", r.paymentHandler.VerifyPayment).Methods(http.MethodPost)
	api.HandleFunc("/admin/login", r.authHandler.Login).Methods(http.MethodPost)

	// Admin routes (protected)
	admin := api.PathPrefix("/admin").Subrouter()
	admin.Use(r.authMiddleware.Authenticate)

	admin.HandleFunc("/profile", r.authHandler.GetProfile).Methods(http.MethodGet)
	admin.HandleFunc("/logout", r.authHandler.Logout).Methods(http.MethodPost)

	// Bookings
	admin.HandleFunc("/bookings", r.bookingHandler.GetAllBookings).Methods(http.MethodGet)
	admin.HandleFunc("/assign-staff/{bookingId}", r.bookingHandler.AssignStaff).Methods(http.MethodPut)
	admin.HandleFunc("/update-status/{bookingId}", r.bookingHandler.UpdateStatus).Methods(http.MethodPut)

	// Contacts
	admin.HandleFunc("/contacts", r.contactHandler.GetAllContacts).Methods(http.MethodGet)
	admin.HandleFunc("/contacts/{id}/read", r.contactHandler.MarkRead).Methods(http.MethodPut)

	// Staff
	admin.HandleFunc("/staff", r.staffHandler.GetAllStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff", r.staffHandler.CreateStaff).Methods(http.MethodPost)
	admin.HandleFunc("/staff/{id}", r.staffHandler.GetStaff).Methods(http.MethodGet)
	admin.HandleFunc("/staff/{id}", r.staffHandler.UpdateStaff).Methods(http.MethodPut)
	admin.HandleFunc("/staff/{id}", r.staffHandler.DeleteStaff).Methods(http.MethodDelete)

	// Services
	admin.HandleFunc("/services", r.serviceHandler.GetAllServices).Methods(http.MethodGet)
	admin.HandleFunc("/services", r.serviceHandler.CreateService).Methods(http.MethodPost)
	admin.HandleFunc("/services/{id}", r.serviceHandler.GetService).Methods(http.MethodGet)
	admin.HandleFunc("/services/{id}", r.serviceHandler.UpdateService).Methods(http.MethodPut)
	admin.HandleFunc("/services/{id}", r.serviceHandler.DeleteService).Methods(http.MethodDelete)

	// Payments
	admin.HandleFunc("/payments", r.paymentHandler.GetAllPayments).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{id}", r.paymentHandler.GetPayment).Methods(http.MethodGet)
	admin.HandleFunc("/payments/{id}/status", r.paymentHandler.UpdateStatus).Methods(http.MethodPut)

	// Audit logs
	admin.HandleFunc("/audit-logs", r.auditLogHandler.GetAllAuditLogs).Methods(http.MethodGet)
	admin.HandleFunc("/audit-logs/{id}", r.auditLogHandler.GetAuditLog).Methods(http.MethodGet)

	r.router.NotFoundHandler = http.HandlerFunc(notFound)
	r.router.MethodNotAllowedHandler = http.HandlerFunc(methodNotAllowed)

	// CORS wraps the router so preflight requests never reach route matching.
	return r.loggingMiddleware.Handle(r.corsMiddleware.Handle(r.router))
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	response.Success(w, http.StatusOK, "TechCare Pro360 API is running", map[string]string{"status": "ok"})
}

func notFound(w http.ResponseWriter, req *http.Request) {
	response.NotFound(w, "Route not found")
}

func methodNotAllowed(w http.ResponseWriter, req *http.Request) {
	response.Error(w, http.StatusMethodNotAllowed, "Method not allowed", nil)
}
