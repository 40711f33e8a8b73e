package handler

import (
	"errors"
	"net/http"

	userdomain "caregiver-app-go/internal/domain/user"
)

type createUserRequest struct {
	Email              string  `json:"email"`
	GivenName          string  `json:"given_name"`
	Surname            string  `json:"surname"`
	City               *string `json:"city"`
	PhoneNumber        *string `json:"phone_number"`
	ProfileDescription *string `json:"profile_description"`
	Password           string  `json:"password"`
}

type updateUserRequest struct {
	Email              *string `json:"email"`
	GivenName          *string `json:"given_name"`
	Surname            *string `json:"surname"`
	City               *string `json:"city"`
	PhoneNumber        *string `json:"phone_number"`
	ProfileDescription *string `json:"profile_description"`
	Password           *string `json:"password"`
}

type userResponse struct {
	UserID             uint    `json:"user_id"`
	Email              string  `json:"email"`
	GivenName          string  `json:"given_name"`
	Surname            string  `json:"surname"`
	City               *string `json:"city"`
	PhoneNumber        *string `json:"phone_number"`
	ProfileDescription *string `json:"profile_description"`
	Password           string  `json:"password"`
}

func toUserResponse(user userdomain.User) userResponse {
	return userResponse{
		UserID:             user.UserID,
		Email:              user.Email,
		GivenName:          user.GivenName,
		Surname:            user.Surname,
		City:               user.City,
		PhoneNumber:        user.PhoneNumber,
		ProfileDescription: user.ProfileDescription,
		Password:           user.Password,
	}
}

func (h *Handlers) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req createUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if err := validate.Var(req.Email, "required,email"); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", "invalid email")
		return
	}

	created, err := h.Users.Create(r.Context(), userdomain.CreateUserInput{
		Email:              req.Email,
		GivenName:          req.GivenName,
		Surname:            req.Surname,
		City:               req.City,
		PhoneNumber:        req.PhoneNumber,
		ProfileDescription: req.ProfileDescription,
		Password:           req.Password,
	})
	if err != nil {
		if errors.Is(err, userdomain.ErrEmailTaken) {
			h.log.BusinessError("users.create: email taken", err, "email", req.Email)
			writeError(w, http.StatusBadRequest, "email_taken", "email already registered")
			return
		}
		h.log.InternalError("users.create: create failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusCreated, toUserResponse(*created))
}

func (h *Handlers) ListUsers(w http.ResponseWriter, r *http.Request) {
	offset, limit, err := parsePagination(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	users, err := h.Users.List(r.Context(), offset, limit)
	if err != nil {
		h.log.InternalError("users.list: list failed", err)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	response := make([]userResponse, 0, len(users))
	for _, user := range users {
		response = append(response, toUserResponse(user))
	}
	writeJSON(w, http.StatusOK, response)
}

func (h *Handlers) GetUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	user, err := h.Users.Get(r.Context(), userID)
	if err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("users.get: get failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*user))
}

func (h *Handlers) UpdateUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	var req updateUserRequest
	if err := decodeJSON(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid_json", "invalid json body")
		return
	}

	if req.Email != nil {
		if err := validate.Var(*req.Email, "required,email"); err != nil {
			writeError(w, http.StatusBadRequest, "invalid_request", "invalid email")
			return
		}
	}

	updated, err := h.Users.Update(r.Context(), userID, userdomain.UpdateUserInput{
		Email:              req.Email,
		GivenName:          req.GivenName,
		Surname:            req.Surname,
		City:               req.City,
		PhoneNumber:        req.PhoneNumber,
		ProfileDescription: req.ProfileDescription,
		Password:           req.Password,
	})
	if err != nil {
		switch {
		case errors.Is(err, userdomain.ErrUserNotFound):
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
		case errors.Is(err, userdomain.ErrEmailTaken):
			h.log.BusinessError("users.update: email taken", err, "user_id", userID)
			writeError(w, http.StatusBadRequest, "email_taken", "email already registered")
		default:
			h.log.InternalError("users.update: update failed", err, "user_id", userID)
			writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		}
		return
	}

	writeJSON(w, http.StatusOK, toUserResponse(*updated))
}

func (h *Handlers) DeleteUser(w http.ResponseWriter, r *http.Request) {
	userID, err := parseIDParam(r, "user_id")
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid_request", err.Error())
		return
	}

	if err := h.Users.Delete(r.Context(), userID); err != nil {
		if errors.Is(err, userdomain.ErrUserNotFound) {
			writeError(w, http.StatusNotFound, "user_not_found", "user not found")
			return
		}
		h.log.InternalError("users.delete: delete failed", err, "user_id", userID)
		writeError(w, http.StatusInternalServerError, "internal_error", "internal error")
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
