package handler

import (
	"net/http"

	appointmentdomain "caregiver-app-go/internal/domain/appointment"
	caregiverdomain "caregiver-app-go/internal/domain/caregiver"
	jobdomain "caregiver-app-go/internal/domain/job"
	memberdomain "caregiver-app-go/internal/domain/member"
	userdomain "caregiver-app-go/internal/domain/user"
	"caregiver-app-go/pkg/logger"
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

type Handlers struct {
	Users        *userdomain.Service
	Caregivers   *caregiverdomain.Service
	Members      *memberdomain.Service
	Jobs         *jobdomain.Service
	Appointments *appointmentdomain.Service
	log          logger.Logger
}

func New(
	users *userdomain.Service,
	caregivers *caregiverdomain.Service,
	members *memberdomain.Service,
	jobs *jobdomain.Service,
	appointments *appointmentdomain.Service,
	log logger.Logger,
) *Handlers {
	return &Handlers{
		Users:        users,
		Caregivers:   caregivers,
		Members:      members,
		Jobs:         jobs,
		Appointments: appointments,
		log:          log,
	}
}

func (h *Handlers) Welcome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"message": "Welcome to the Caregiver Management API"})
}

func (h *Handlers) Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
