package handler

import (
	"errors"
	"net/http"

	memberdomain "caregiver-app-go/internal/domain/member"
)

type createAddressRequest struct {
	MemberUserID uint    `json:"member_user_id"`
	HouseNumber  *string `json:"house_number"`
	Street       *string `json:"street"`
	Town         *string `json:"town"`
}

type updateAddressRequest struct {
	HouseNumber *string `json:"house_number"`
	Street      *string `json:"street"`
	Town        *string `json:"town"`
}

type addressResponse struct {
	MemberUserID uint    `json:"member_user_id"`
	HouseNumber  *string `json:"house_number"`
	Street       *string `json:"street"`
	Town         *string `json:"town"`
}

func toAddressResponse(address memberdomain.Address) addressResponse {
	return addressResponse{
		MemberUserID: address.MemberUserID,
		HouseNumber:  address.HouseNumber,
		Street:       address.Street,
		Town:         address.Town,
	}
}

func (h *Handlers) CreateAddress(w http.ResponseWriter, r *http.Request) {
	var req createAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.MemberUserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "member_user_id is required")
		return
	}

	created, err := h.Members.CreateAddress(r.Context(), memberdomain.CreateAddressInput{
		MemberUserID: req.MemberUserID,
		HouseNumber:  req.HouseNumber,
		Street:       req.Street,
		Town:         req.Town,
	})
	if err != nil {
		h.log.InternalError("addresses.create: create failed", err, "member_user_id", req.MemberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toAddressResponse(*created))
}

func (h *Handlers) ListAddresses(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	addresses, err := h.Members.ListAddresses(r.Context(), offset, limit)
	if err != nil {
		h.log.InternalError("addresses.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]addressResponse, 0, len(addresses))
	for _, address := range addresses {
		response = append(response, toAddressResponse(address))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetAddress(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	address, err := h.Members.GetAddress(r.Context(), memberUserID)
	if err != nil {
		if errors.Is(err, memberdomain.ErrAddressNotFound) {
			writeError(w, http.StatusNotFound, "address_not_found", "address not found")
			return
		}
		h.log.InternalError("addresses.get: get failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAddressResponse(*address))
}

func (h *Handlers) UpdateAddress(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req updateAddressRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Members.UpdateAddress(r.Context(), memberUserID, memberdomain.UpdateAddressInput{
		HouseNumber: req.HouseNumber,
		Street:      req.Street,
		Town:        req.Town,
	})
	if err != nil {
		if errors.Is(err, memberdomain.ErrAddressNotFound) {
			writeError(w, http.StatusNotFound, "address_not_found", "address not found")
			return
		}
		h.log.InternalError("addresses.update: update failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toAddressResponse(*updated))
}

func (h *Handlers) DeleteAddress(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Members.DeleteAddress(r.Context(), memberUserID); err != nil {
		if errors.Is(err, memberdomain.ErrAddressNotFound) {
			writeError(w, http.StatusNotFound, "address_not_found", "address not found")
			return
		}
		h.log.InternalError("addresses.delete: delete failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
