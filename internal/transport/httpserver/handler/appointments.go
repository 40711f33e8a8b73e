package handler

import (
	"errors"
	"net/http"

	appointmentdomain "caregiver-app-go/internal/domain/appointment"
)

type createAppointmentRequest struct {
	CaregiverUserID uint     `json:"caregiver_user_id"`
	MemberUserID    uint     `json:"member_user_id"`
	AppointmentDate *string  `json:"appointment_date"`
	AppointmentTime *string  `json:"appointment_time"`
	WorkHours       *float64 `json:"work_hours"`
	Status          *string  `json:"status"`
}

type updateAppointmentRequest struct {
	CaregiverUserID *uint    `json:"caregiver_user_id"`
	MemberUserID    *uint    `json:"member_user_id"`
	AppointmentDate *string  `json:"appointment_date"`
	AppointmentTime *string  `json:"appointment_time"`
	WorkHours       *float64 `json:"work_hours"`
	Status          *string  `json:"status"`
}

type appointmentResponse struct {
	AppointmentID   uint     `json:"appointment_id"`
	CaregiverUserID uint     `json:"caregiver_user_id"`
	MemberUserID    uint     `json:"member_user_id"`
	AppointmentDate *string  `json:"appointment_date"`
	AppointmentTime *string  `json:"appointment_time"`
	WorkHours       *float64 `json:"work_hours"`
	Status          *string  `json:"status"`
}

func toAppointmentResponse(appointment appointmentdomain.Appointment) appointmentResponse {
	return appointmentResponse{
		AppointmentID:   appointment.AppointmentID,
		CaregiverUserID: appointment.CaregiverUserID,
		MemberUserID:    appointment.MemberUserID,
		AppointmentDate: formatDate(appointment.AppointmentDate),
		AppointmentTime: appointment.AppointmentTime,
		WorkHours:       appointment.WorkHours,
		Status:          appointment.Status,
	}
}

func toAppointmentResponses(appointments []appointmentdomain.Appointment) []appointmentResponse {
	response := make([]appointmentResponse, 0, len(appointments))
	for _, appointment := range appointments {
		response = append(response, toAppointmentResponse(appointment))
	}
	return response
}

func (h *Handlers) CreateAppointment(w http.ResponseWriter, r *http.Request) {
	var req createAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.CaregiverUserID == 0 || req.MemberUserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "caregiver_user_id and member_user_id are required")
		return
	}

	appointmentDate, err := parseDateField(req.AppointmentDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "appointment_date must be YYYY-MM-DD")
		return
	}
	appointmentTime, err := parseTimeField(req.AppointmentTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "appointment_time must be HH:MM or HH:MM:SS")
		return
	}

	created, err := h.Appointments.Create(r.Context(), appointmentdomain.CreateAppointmentInput{
		CaregiverUserID: req.CaregiverUserID,
		MemberUserID:    req.MemberUserID,
		AppointmentDate: appointmentDate,
		AppointmentTime: appointmentTime,
		WorkHours:       req.WorkHours,
		Status:          req.Status,
	})
	if err != nil {
		if writeEnumError(w, err) {
			return
		}
		h.log.InternalError("appointments.create: create failed", err,
			"caregiver_user_id", req.CaregiverUserID, "member_user_id", req.MemberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toAppointmentResponse(*created))
}

func (h *Handlers) ListAppointments(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	appointments, err := h.Appointments.List(r.Context(), offset, limit)
	if err != nil {
		h.log.InternalError("appointments.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAppointmentResponses(appointments))
}

func (h *Handlers) ListAppointmentsByCaregiver(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, err := parseIDParam(r, "caregiver_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	appointments, err := h.Appointments.ListByCaregiver(r.Context(), caregiverUserID)
	if err != nil {
		h.log.InternalError("appointments.list_by_caregiver: list failed", err,
			"caregiver_user_id", caregiverUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAppointmentResponses(appointments))
}

func (h *Handlers) ListAppointmentsByMember(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	appointments, err := h.Appointments.ListByMember(r.Context(), memberUserID)
	if err != nil {
		h.log.InternalError("appointments.list_by_member: list failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAppointmentResponses(appointments))
}

func (h *Handlers) GetAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDParam(r, "appointment_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	appointment, err := h.Appointments.Get(r.Context(), appointmentID)
	if err != nil {
		if errors.Is(err, appointmentdomain.ErrAppointmentNotFound) {
			writeError(w, http.StatusNotFound, "appointment_not_found", "appointment not found")
			return
		}
		h.log.InternalError("appointments.get: get failed", err, "appointment_id", appointmentID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAppointmentResponse(*appointment))
}

func (h *Handlers) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDParam(r, "appointment_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req updateAppointmentRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	appointmentDate, err := parseDateField(req.AppointmentDate)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "appointment_date must be YYYY-MM-DD")
		return
	}
	appointmentTime, err := parseTimeField(req.AppointmentTime)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "appointment_time must be HH:MM or HH:MM:SS")
		return
	}

	updated, err := h.Appointments.Update(r.Context(), appointmentID, appointmentdomain.UpdateAppointmentInput{
		CaregiverUserID: req.CaregiverUserID,
		MemberUserID:    req.MemberUserID,
		AppointmentDate: appointmentDate,
		AppointmentTime: appointmentTime,
		WorkHours:       req.WorkHours,
		Status:          req.Status,
	})
	if err != nil {
		switch {
		case writeEnumError(w, err):
		case errors.Is(err, appointmentdomain.ErrAppointmentNotFound):
			writeError(w, http.StatusNotFound, "appointment_not_found", "appointment not found")
		default:
			h.log.InternalError("appointments.update: update failed", err, "appointment_id", appointmentID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toAppointmentResponse(*updated))
}

func (h *Handlers) DeleteAppointment(w http.ResponseWriter, r *http.Request) {
	appointmentID, err := parseIDParam(r, "appointment_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Appointments.Delete(r.Context(), appointmentID); err != nil {
		if errors.Is(err, appointmentdomain.ErrAppointmentNotFound) {
			writeError(w, http.StatusNotFound, "appointment_not_found", "appointment not found")
			return
		}
		h.log.InternalError("appointments.delete: delete failed", err, "appointment_id", appointmentID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
