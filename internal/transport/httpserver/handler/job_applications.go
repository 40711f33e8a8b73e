package handler

import (
	"errors"
	"net/http"

	jobdomain "caregiver-app-go/internal/domain/job"
)

type createJobApplicationRequest struct {
	CaregiverUserID uint    `json:"caregiver_user_id"`
	JobID           uint    `json:"job_id"`
	DateApplied     *string `json:"date_applied"`
}

type updateJobApplicationRequest struct {
	DateApplied *string `json:"date_applied"`
}

type jobApplicationResponse struct {
	CaregiverUserID uint    `json:"caregiver_user_id"`
	JobID           uint    `json:"job_id"`
	DateApplied     *string `json:"date_applied"`
}

func toJobApplicationResponse(application jobdomain.Application) jobApplicationResponse {
	return jobApplicationResponse{
		CaregiverUserID: application.CaregiverUserID,
		JobID:           application.JobID,
		DateApplied:     formatDate(application.DateApplied),
	}
}

func toJobApplicationResponses(applications []jobdomain.Application) []jobApplicationResponse {
	response := make([]jobApplicationResponse, 0, len(applications))
	for _, application := range applications {
		response = append(response, toJobApplicationResponse(application))
	}
	return response
}

func (h *Handlers) CreateJobApplication(w http.ResponseWriter, r *http.Request) {
	var req createJobApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.CaregiverUserID == 0 || req.JobID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "caregiver_user_id and job_id are required")
		return
	}

	dateApplied, err := parseDateField(req.DateApplied)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_applied must be YYYY-MM-DD")
		return
	}

	created, err := h.Jobs.CreateApplication(r.Context(), jobdomain.CreateApplicationInput{
		CaregiverUserID: req.CaregiverUserID,
		JobID:           req.JobID,
		DateApplied:     dateApplied,
	})
	if err != nil {
		h.log.InternalError("job_applications.create: create failed", err,
			"caregiver_user_id", req.CaregiverUserID, "job_id", req.JobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toJobApplicationResponse(*created))
}

func (h *Handlers) ListJobApplications(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	applications, err := h.Jobs.ListApplications(r.Context(), offset, limit)
	if err != nil {
		h.log.InternalError("job_applications.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobApplicationResponses(applications))
}

func (h *Handlers) ListJobApplicationsByCaregiver(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, err := parseIDParam(r, "caregiver_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	applications, err := h.Jobs.ListApplicationsByCaregiver(r.Context(), caregiverUserID)
	if err != nil {
		h.log.InternalError("job_applications.list_by_caregiver: list failed", err,
			"caregiver_user_id", caregiverUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobApplicationResponses(applications))
}

func (h *Handlers) ListJobApplicationsByJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseIDParam(r, "job_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	applications, err := h.Jobs.ListApplicationsByJob(r.Context(), jobID)
	if err != nil {
		h.log.InternalError("job_applications.list_by_job: list failed", err, "job_id", jobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobApplicationResponses(applications))
}

func (h *Handlers) GetJobApplication(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, jobID, ok := h.applicationKey(w, r)
	if !ok {
		return
	}

	application, err := h.Jobs.GetApplication(r.Context(), caregiverUserID, jobID)
	if err != nil {
		if errors.Is(err, jobdomain.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "job_application_not_found", "job application not found")
			return
		}
		h.log.InternalError("job_applications.get: get failed", err,
			"caregiver_user_id", caregiverUserID, "job_id", jobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobApplicationResponse(*application))
}

func (h *Handlers) UpdateJobApplication(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, jobID, ok := h.applicationKey(w, r)
	if !ok {
		return
	}

	var req updateJobApplicationRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	dateApplied, err := parseDateField(req.DateApplied)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_applied must be YYYY-MM-DD")
		return
	}

	updated, err := h.Jobs.UpdateApplication(r.Context(), caregiverUserID, jobID, jobdomain.UpdateApplicationInput{
		DateApplied: dateApplied,
	})
	if err != nil {
		if errors.Is(err, jobdomain.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "job_application_not_found", "job application not found")
			return
		}
		h.log.InternalError("job_applications.update: update failed", err,
			"caregiver_user_id", caregiverUserID, "job_id", jobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobApplicationResponse(*updated))
}

func (h *Handlers) DeleteJobApplication(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, jobID, ok := h.applicationKey(w, r)
	if !ok {
		return
	}

	if err := h.Jobs.DeleteApplication(r.Context(), caregiverUserID, jobID); err != nil {
		if errors.Is(err, jobdomain.ErrApplicationNotFound) {
			writeError(w, http.StatusNotFound, "job_application_not_found", "job application not found")
			return
		}
		h.log.InternalError("job_applications.delete: delete failed", err,
			"caregiver_user_id", caregiverUserID, "job_id", jobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

func (h *Handlers) applicationKey(w http.ResponseWriter, r *http.Request) (caregiverUserID, jobID uint, ok bool) {
	caregiverUserID, err := parseIDParam(r, "caregiver_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return 0, 0, false
	}
	jobID, err = parseIDParam(r, "job_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return 0, 0, false
	}
	return caregiverUserID, jobID, true
}
