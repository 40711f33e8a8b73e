package httpserver

import (
	"net/http"
	"time"

	"caregiver-app-go/internal/transport/httpserver/handler"
	corsmw "caregiver-app-go/internal/transport/httpserver/middleware"
	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
)

func NewRouter(handlers *handler.Handlers) http.Handler {
	r := chi.NewRouter()
	r.Use(chimw.RequestID)
	r.Use(chimw.RealIP)
	r.Use(chimw.Logger)
	r.Use(chimw.Recoverer)
	r.Use(chimw.Timeout(30 * time.Second))
	r.Use(corsmw.NewCORS([]string{"*"}))

	r.Get("/", handlers.Welcome)
	r.Get("/health", handlers.Health)

	r.Route("/users", func(r chi.Router) {
		r.Post("/", handlers.CreateUser)
		r.Get("/", handlers.ListUsers)
		r.Get("/{user_id}", handlers.GetUser)
		r.Put("/{user_id}", handlers.UpdateUser)
		r.Delete("/{user_id}", handlers.DeleteUser)
	})

	r.Route("/caregivers", func(r chi.Router) {
		r.Post("/", handlers.CreateCaregiver)
		r.Get("/", handlers.ListCaregivers)
		r.Get("/{caregiver_user_id}", handlers.GetCaregiver)
		r.Put("/{caregiver_user_id}", handlers.UpdateCaregiver)
		r.Delete("/{caregiver_user_id}", handlers.DeleteCaregiver)
	})

	r.Route("/members", func(r chi.Router) {
		r.Post("/", handlers.CreateMember)
		r.Get("/", handlers.ListMembers)
		r.Get("/{member_user_id}", handlers.GetMember)
		r.Put("/{member_user_id}", handlers.UpdateMember)
		r.Delete("/{member_user_id}", handlers.DeleteMember)
	})

	r.Route("/addresses", func(r chi.Router) {
		r.Post("/", handlers.CreateAddress)
		r.Get("/", handlers.ListAddresses)
		r.Get("/{member_user_id}", handlers.GetAddress)
		r.Put("/{member_user_id}", handlers.UpdateAddress)
		r.Delete("/{member_user_id}", handlers.DeleteAddress)
	})

	r.Route("/jobs", func(r chi.Router) {
		r.Post("/", handlers.CreateJob)
		r.Get("/", handlers.ListJobs)
		r.Get("/member/{member_user_id}", handlers.ListJobsByMember)
		r.Get("/{job_id}", handlers.GetJob)
		r.Put("/{job_id}", handlers.UpdateJob)
		r.Delete("/{job_id}", handlers.DeleteJob)
	})

	r.Route("/job-applications", func(r chi.Router) {
		r.Post("/", handlers.CreateJobApplication)
		r.Get("/", handlers.ListJobApplications)
		r.Get("/caregiver/{caregiver_user_id}", handlers.ListJobApplicationsByCaregiver)
		r.Get("/job/{job_id}", handlers.ListJobApplicationsByJob)
		r.Get("/{caregiver_user_id}/{job_id}", handlers.GetJobApplication)
		r.Put("/{caregiver_user_id}/{job_id}", handlers.UpdateJobApplication)
		r.Delete("/{caregiver_user_id}/{job_id}", handlers.DeleteJobApplication)
	})

	r.Route("/appointments", func(r chi.Router) {
		r.Post("/", handlers.CreateAppointment)
		r.Get("/", handlers.ListAppointments)
		r.Get("/caregiver/{caregiver_user_id}", handlers.ListAppointmentsByCaregiver)
		r.Get("/member/{member_user_id}", handlers.ListAppointmentsByMember)
		r.Get("/{appointment_id}", handlers.GetAppointment)
		r.Put("/{appointment_id}", handlers.UpdateAppointment)
		r.Delete("/{appointment_id}", handlers.DeleteAppointment)
	})

	return r
}
