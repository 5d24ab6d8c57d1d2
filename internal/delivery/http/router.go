package http

import (
	"net/http"

	"clinic-scheduler/internal/delivery/http/handler"
	"clinic-scheduler/internal/delivery/http/middleware"

	"github.com/gorilla/mux"
)

type Router struct {
	router              *mux.Router
	availabilityHandler *handler.AvailabilityHandler
	appointmentHandler  *handler.AppointmentHandler
	leaveHandler        *handler.LeaveHandler
	scheduleHandler     *handler.WorkScheduleHandler
	corsMiddleware      *middleware.CORSMiddleware
	loggingMiddleware   *middleware.LoggingMiddleware
}

func NewRouter(
	availabilityHandler *handler.AvailabilityHandler,
	appointmentHandler *handler.AppointmentHandler,
	leaveHandler *handler.LeaveHandler,
	scheduleHandler *handler.WorkScheduleHandler,
	corsMiddleware *middleware.CORSMiddleware,
	loggingMiddleware *middleware.LoggingMiddleware,
) *Router {
	return &Router{
		router:              mux.NewRouter(),
		availabilityHandler: availabilityHandler,
		appointmentHandler:  appointmentHandler,
		leaveHandler:        leaveHandler,
		scheduleHandler:     scheduleHandler,
		corsMiddleware:      corsMiddleware,
		loggingMiddleware:   loggingMiddleware,
	}
}

func (r *Router) Setup() *mux.Router {
	// API versioning
	api := r.router.PathPrefix("/api/v1").Subrouter()

	// Health check
	api.HandleFunc("/health", r.healthCheck).Methods(http.MethodGet)

	// Availability
	api.HandleFunc("/practitioners/{id}/calendar", r.availabilityHandler.WeeklyCalendar).Methods(http.MethodGet)
	api.HandleFunc("/practitioners/{id}/free-slots", r.availabilityHandler.FreeSlots).Methods(http.MethodGet)
	api.HandleFunc("/specialties/{id}/practitioners-available", r.availabilityHandler.PractitionersAvailable).Methods(http.MethodGet)

	// Appointments
	api.HandleFunc("/appointments", r.appointmentHandler.Book).Methods(http.MethodPost)
	api.HandleFunc("/appointments", r.appointmentHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/appointments/to-confirm", r.appointmentHandler.ListToConfirm).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}", r.appointmentHandler.Get).Methods(http.MethodGet)
	api.HandleFunc("/appointments/{id}/confirm", r.appointmentHandler.Confirm).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/cancel", r.appointmentHandler.Cancel).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/reschedule", r.appointmentHandler.Reschedule).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/complete", r.appointmentHandler.Complete).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/no-show", r.appointmentHandler.MarkNoShow).Methods(http.MethodPost)
	api.HandleFunc("/appointments/{id}/contacted", r.appointmentHandler.MarkContacted).Methods(http.MethodPost)

	// Leave registry
	api.HandleFunc("/leave/vacations", r.leaveHandler.RequestVacation).Methods(http.MethodPost)
	api.HandleFunc("/leave/permissions", r.leaveHandler.RequestPermission).Methods(http.MethodPost)
	api.HandleFunc("/leave/{id}/approve", r.leaveHandler.Approve).Methods(http.MethodPost)
	api.HandleFunc("/leave/{id}/reject", r.leaveHandler.Reject).Methods(http.MethodPost)
	api.HandleFunc("/users/{id}/leave", r.leaveHandler.ListByUser).Methods(http.MethodGet)

	// Work schedules
	api.HandleFunc("/work-schedules", r.scheduleHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/work-schedules/{id}", r.scheduleHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/work-schedules/{id}", r.scheduleHandler.Deactivate).Methods(http.MethodDelete)
	api.HandleFunc("/practitioners/{id}/work-schedules", r.scheduleHandler.ListByPractitioner).Methods(http.MethodGet)

	r.router.Use(r.loggingMiddleware.Handle)
	r.router.Use(r.corsMiddleware.Handle)

	return r.router
}

func (r *Router) healthCheck(w http.ResponseWriter, req *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status": "ok"}`))
}
