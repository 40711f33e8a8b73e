package handler

import (
	"errors"
	"net/http"

	memberdomain "caregiver-app-go/internal/domain/member"
)

type createMemberRequest struct {
	MemberUserID         uint    `json:"member_user_id"`
	HouseRules           *string `json:"house_rules"`
	DependentDescription *string `json:"dependent_description"`
}

type updateMemberRequest struct {
	HouseRules           *string `json:"house_rules"`
	DependentDescription *string `json:"dependent_description"`
}

type memberResponse struct {
	MemberUserID         uint    `json:"member_user_id"`
	HouseRules           *string `json:"house_rules"`
	DependentDescription *string `json:"dependent_description"`
}

func toMemberResponse(member memberdomain.Member) memberResponse {
	return memberResponse{
		MemberUserID:         member.MemberUserID,
		HouseRules:           member.HouseRules,
		DependentDescription: member.DependentDescription,
	}
}

func (h *Handlers) CreateMember(w http.ResponseWriter, r *http.Request) {
	var req createMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}
	if req.MemberUserID == 0 {
		writeError(w, http.StatusBadRequest, "invalid_request", "member_user_id is required")
		return
	}

	created, err := h.Members.Create(r.Context(), memberdomain.CreateMemberInput{
		MemberUserID:         req.MemberUserID,
		HouseRules:           req.HouseRules,
		DependentDescription: req.DependentDescription,
	})
	if err != nil {
		h.log.InternalError("members.create: create failed", err, "member_user_id", req.MemberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toMemberResponse(*created))
}

func (h *Handlers) ListMembers(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	members, err := h.Members.List(r.Context(), offset, limit)
	if err != nil {
		h.log.InternalError("members.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]memberResponse, 0, len(members))
	for _, member := range members {
		response = append(response, toMemberResponse(member))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetMember(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	member, err := h.Members.Get(r.Context(), memberUserID)
	if err != nil {
		if errors.Is(err, memberdomain.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
			return
		}
		h.log.InternalError("members.get: get failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(*member))
}

func (h *Handlers) UpdateMember(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req updateMemberRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	updated, err := h.Members.Update(r.Context(), memberUserID, memberdomain.UpdateMemberInput{
		HouseRules:           req.HouseRules,
		DependentDescription: req.DependentDescription,
	})
	if err != nil {
		if errors.Is(err, memberdomain.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
			return
		}
		h.log.InternalError("members.update: update failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toMemberResponse(*updated))
}

func (h *Handlers) DeleteMember(w http.ResponseWriter, r *http.Request) {
	memberUserID, err := parseIDParam(r, "member_user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Members.Delete(r.Context(), memberUserID); err != nil {
		if errors.Is(err, memberdomain.ErrMemberNotFound) {
			writeError(w, http.StatusNotFound, "member_not_found", "member not found")
			return
		}
		h.log.InternalError("members.delete: delete failed", err, "member_user_id", memberUserID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
