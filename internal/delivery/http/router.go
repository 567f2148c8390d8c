package http

import (
	"log/slog"
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"carpoolreminders/internal/delivery/http/controllers"
	"carpoolreminders/internal/delivery/http/middleware"
)

// NewRouter initializes the HTTP router with all application routes and wraps
// it in request ID, logging and CORS middleware.
func NewRouter(logger *slog.Logger, allowedOrigins []string, carpoolController *controllers.CarpoolController, reminderController *controllers.ReminderController) http.Handler {
	mux := http.NewServeMux()

	// API Routes
	mux.HandleFunc("POST /carpools", carpoolController.CreateCarpools)
	mux.HandleFunc("GET /carpools/view", carpoolController.ViewCarpools)
	mux.HandleFunc("POST /reminders", reminderController.ScheduleReminders)
	mux.HandleFunc("GET /healthz", controllers.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return middleware.RequestID(middleware.LoggingMiddleware(logger, middleware.CORS(allowedOrigins, mux)))
}
