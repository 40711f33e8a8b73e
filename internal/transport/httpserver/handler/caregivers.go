package handler

import (
	"errors"
	"net/http"

	caregiverdomain "caregiver-app-go/internal/domain/caregiver"
)

type createCaregiverRequest struct {
	CaregiverUserID uint     `json:"caregiver_user_id"`
	Photo           *string  `json:"photo"`
	Gender          *string  `json:"gender"`
	CaregivingType  *string  `json:"caregiving_type"`
	HourlyRate      *float64 `json:"hourly_rate"`
}

type updateCaregiverRequest struct {
	Photo          *string  `json:"photo"`
	Gender         *string  `json:"gender"`
	CaregivingType *string  `json:"caregiving_type"`
	HourlyRate     *float64 `json:"hourly_rate"`
}

type caregiverResponse struct {
	CaregiverUserID uint     `json:"caregiver_user_id"`
	Photo           *string  `json:"photo"`
	Gender          *string  `json:"gender"`
	CaregivingType  *string  `json:"caregiving_type"`
	HourlyRate      *float64 `json:"hourly_rate"`
}

func toCaregiverResponse(caregiver caregiverdomain.Caregiver) caregiverResponse {
	return caregiverResponse{
		CaregiverUserID: caregiver.CaregiverUserID,
		Photo:           caregiver.Photo,
		Gender:          caregiver.Gender,
		CaregivingType:  caregiver.CaregivingType,
		HourlyRate:      caregiver.HourlyRate,
	}
}

func (h *Handlers) CreateCaregiver(w http.ResponseWriter, r *http.Request) {
	var req createCaregiverRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.CaregiverUserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "caregiver_user_id is required")
		return
	}

	created, err := h.Caregivers.Create(r.Context(), caregiverdomain.CreateCaregiverInput{
		CaregiverUserID: req.CaregiverUserID,
		Photo:           req.Photo,
		Gender:          req.Gender,
		CaregivingType:  req.CaregivingType,
		HourlyRate:      req.HourlyRate,
	})
	if err != nil {
		if writeEnumError(w, err) {
			return
		}
		h.log.InternalError("caregivers.create: create failed", err, "caregiver_user_id", req.CaregiverUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toCaregiverResponse(*created))
}

func (h *Handlers) ListCaregivers(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	caregivers, err := h.Caregivers.List(r.Context(), offset, limit)
	if err != nil {
		h.log.InternalError("caregivers.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]caregiverResponse, 0, len(caregivers))
	for _, caregiver := range caregivers {
		response = append(response, toCaregiverResponse(caregiver))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetCaregiver(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, err := parseIDParam(r, "caregiver_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	caregiver, err := h.Caregivers.Get(r.Context(), caregiverUserID)
	if err != nil {
		if errors.Is(err, caregiverdomain.ErrCaregiverNotFound) {
			writeError(w, http.StatusNotFound, "caregiver_not_found", "caregiver not found")
			return
		}
		h.log.InternalError("caregivers.get: get failed", err, "caregiver_user_id", caregiverUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toCaregiverResponse(*caregiver))
}

func (h *Handlers) UpdateCaregiver(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, err := parseIDParam(r, "caregiver_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req updateCaregiverRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Caregivers.Update(r.Context(), caregiverUserID, caregiverdomain.UpdateCaregiverInput{
		Photo:          req.Photo,
		Gender:         req.Gender,
		CaregivingType: req.CaregivingType,
		HourlyRate:     req.HourlyRate,
	})
	if err != nil {
		switch {
		case writeEnumError(w, err):
		case errors.Is(err, caregiverdomain.ErrCaregiverNotFound):
			writeError(w, http.StatusNotFound, "caregiver_not_found", "caregiver not found")
		default:
			h.log.InternalError("caregivers.update: update failed", err, "caregiver_user_id", caregiverUserID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toCaregiverResponse(*updated))
}

func (h *Handlers) DeleteCaregiver(w http.ResponseWriter, r *http.Request) {
	caregiverUserID, err := parseIDParam(r, "caregiver_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Caregivers.Delete(r.Context(), caregiverUserID); err != nil {
		if errors.Is(err, caregiverdomain.ErrCaregiverNotFound) {
			writeError(w, http.StatusNotFound, "caregiver_not_found", "caregiver not found")
			return
		}
		h.log.InternalError("caregivers.delete: delete failed", err, "caregiver_user_id", caregiverUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
