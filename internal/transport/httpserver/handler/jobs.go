package handler

import (
	"errors"
	"net/http"

	jobdomain "caregiver-app-go/internal/domain/job"
)

type createJobRequest struct {
	MemberUserID           uint    `json:"member_user_id"`
	RequiredCaregivingType *string `json:"required_caregiving_type"`
	OtherRequirements      *string `json:"other_requirements"`
	DatePosted             *string `json:"date_posted"`
}

type updateJobRequest struct {
	MemberUserID           *uint   `json:"member_user_id"`
	RequiredCaregivingType *string `json:"required_caregiving_type"`
	OtherRequirements      *string `json:"other_requirements"`
	DatePosted             *string `json:"date_posted"`
}

type jobResponse struct {
	JobID                  uint    `json:"job_id"`
	MemberUserID           uint    `json:"member_user_id"`
	RequiredCaregivingType *string `json:"required_caregiving_type"`
	OtherRequirements      *string `json:"other_requirements"`
	DatePosted             *string `json:"date_posted"`
}

func toJobResponse(job jobdomain.Job) jobResponse {
	return jobResponse{
		JobID:                  job.JobID,
		MemberUserID:           job.MemberUserID,
		RequiredCaregivingType: job.RequiredCaregivingType,
		OtherRequirements:      job.OtherRequirements,
		DatePosted:             formatDate(job.DatePosted),
	}
}

func (h *Handlers) CreateJob(w http.ResponseWriter, r *http.Request) {
	var req createJobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.MemberUserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "member_user_id is required")
		return
	}

	datePosted, err := parseDateField(req.DatePosted)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_posted must be YYYY-MM-DD")
		return
	}

	created, err := h.Jobs.Create(r.Context(), jobdomain.CreateJobInput{
		MemberUserID:           req.MemberUserID,
		RequiredCaregivingType: req.RequiredCaregivingType,
		OtherRequirements:      req.OtherRequirements,
		DatePosted:             datePosted,
	})
	if err != nil {
		if writeEnumError(w, err) {
			return
		}
		h.log.InternalError("jobs.create: create failed", err, "member_user_id", req.MemberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toJobResponse(*created))
}

func (h *Handlers) ListJobs(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	jobs, err := h.Jobs.List(r.Context(), offset, limit)
	if err != nil {
		h.log.InternalError("jobs.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

func (h *Handlers) ListJobsByMember(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	jobs, err := h.Jobs.ListByMember(r.Context(), memberUserID)
	if err != nil {
		h.log.InternalError("jobs.list_by_member: list failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobResponses(jobs))
}

func toJobResponses(jobs []jobdomain.Job) []jobResponse {
	response := make([]jobResponse, 0, len(jobs))
	for _, job := range jobs {
		response = append(response, toJobResponse(job))
	}
	return response
}

func (h *Handlers) GetJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseIDParam(r, "job_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	job, err := h.Jobs.Get(r.Context(), jobID)
	if err != nil {
		if errors.Is(err, jobdomain.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "job_not_found", "job not found")
			return
		}
		h.log.InternalError("jobs.get: get failed", err, "job_id", jobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toJobResponse(*job))
}

func (h *Handlers) UpdateJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseIDParam(r, "job_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req updateJobRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	datePosted, err := parseDateField(req.DatePosted)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "date_posted must be YYYY-MM-DD")
		return
	}

	updated, err := h.Jobs.Update(r.Context(), jobID, jobdomain.UpdateJobInput{
		MemberUserID:           req.MemberUserID,
		RequiredCaregivingType: req.RequiredCaregivingType,
		OtherRequirements:      req.OtherRequirements,
		DatePosted:             datePosted,
	})
	if err != nil {
		switch {
		case writeEnumError(w, err):
		case errors.Is(err, jobdomain.ErrJobNotFound):
			writeError(w, http.StatusNotFound, "job_not_found", "job not found")
		default:
			h.log.InternalError("jobs.update: update failed", err, "job_id", jobID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toJobResponse(*updated))
}

func (h *Handlers) DeleteJob(w http.ResponseWriter, r *http.Request) {
	jobID, err := parseIDParam(r, "job_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Jobs.Delete(r.Context(), jobID); err != nil {
		if errors.Is(err, jobdomain.ErrJobNotFound) {
			writeError(w, http.StatusNotFound, "job_not_found", "job not found")
			return
		}
		h.log.InternalError("jobs.delete: delete failed", err, "job_id", jobID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
