package httpapi

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/dmitrijs2005/sporttogether/internal/api"
	"github.com/dmitrijs2005/sporttogether/internal/common"
	"github.com/dmitrijs2005/sporttogether/internal/server/services"
)

// Messages shown verbatim by the front ends.
const (
	msgLoginFailed        = "Incorrect email or password"
	msgRegistered         = "Successful registration. Now log in with your email address and password"
	msgEmailTaken         = "That email address has already been taken."
	msgRegistrationFailed = "Unsuccessful registration. Please try again after a few minutes."
	msgAccountDeleted     = "Your account has been deleted."
)

func (h *Handler) login(w http.ResponseWriter, r *http.Request) {
	var req api.LoginRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	session, err := h.users.Login(r.Context(), req.EmailAddress, req.Password)
	if err != nil {
		if errors.Is(err, common.ErrorUnauthorized) {
			h.respond(w, r, http.StatusOK, api.NewLoginFailure(msgLoginFailed))
			return
		}
		h.serverErrorResponse(w, r, err)
		return
	}

	resp, err := api.NewLoginSuccess(sessionFields(session))
	if err != nil {
		h.serverErrorResponse(w, r, err)
		return
	}
	h.logger.Info(r.Context(), "user logged in", "user_id", session.UserID)
	h.respond(w, r, http.StatusOK, resp)
}

func (h *Handler) register(w http.ResponseWriter, r *http.Request) {
	var body map[string]any
	if err := readJSON(w, r, &body); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	reg, err := parseRegistration(body)
	if err != nil {
		h.badRequestResponse(w, r, err)
		return
	}

	userID, err := h.users.Register(r.Context(), reg)
	switch {
	case err == nil:
		h.logger.Info(r.Context(), "user registered", "user_id", userID)
		h.respond(w, r, http.StatusOK, api.RegisterResponse{RegistrationStatus: true, RegistrationMessage: msgRegistered})
	case errors.Is(err, common.ErrorConflict):
		h.respond(w, r, http.StatusOK, api.RegisterResponse{RegistrationMessage: msgEmailTaken})
	case errors.Is(err, common.ErrorValidation):
		h.respond(w, r, http.StatusOK, api.RegisterResponse{RegistrationMessage: "Unsuccessful registration: " + validationDetail(err)})
	default:
		h.logger.Error(r.Context(), "register", "error", err)
		h.respond(w, r, http.StatusOK, api.RegisterResponse{RegistrationMessage: msgRegistrationFailed})
	}
}

func (h *Handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	var req api.DeleteUserRequest
	if err := readJSON(w, r, &req); err != nil {
		h.badRequestResponse(w, r, err)
		return
	}
	if !h.sameUser(w, r, req.UserID) {
		return
	}

	userID := userIDFromContext(r.Context())
	err := h.users.Delete(r.Context(), userID)
	switch {
	case err == nil:
		h.logger.Info(r.Context(), "user deleted", "user_id", userID)
		h.respond(w, r, http.StatusOK, api.StatusResponse{Success: true, Message: msgAccountDeleted})
	case errors.Is(err, common.ErrorUnauthorized):
		h.errorResponse(w, r, http.StatusUnauthorized, "unknown user")
	default:
		h.serverErrorResponse(w, r, err)
	}
}

// parseRegistration reads the registration form. The sport flags may come as
// JSON booleans or as the strings "true"/"false".
func parseRegistration(body map[string]any) (services.Registration, error) {
	reg := services.Registration{Interests: map[string]bool{}}

	var err error
	str := func(key string) string {
		if err != nil {
			return ""
		}
		v, ok := body[key]
		if !ok || v == nil {
			return ""
		}
		s, ok := v.(string)
		if !ok {
			err = fmt.Errorf("field %q must be a string", key)
		}
		return s
	}

	reg.FirstName = str("first_name")
	reg.LastName = str("last_name")
	reg.EmailAddress = str("email_address")
	reg.Password = str("password")
	reg.University = str("university")
	if err != nil {
		return reg, err
	}

	for _, sport := range common.SupportedSports {
		switch v := body[sport].(type) {
		case nil:
		case bool:
			reg.Interests[sport] = v
		case string:
			b, perr := strconv.ParseBool(strings.TrimSpace(v))
			if perr != nil {
				return reg, fmt.Errorf("field %q must be true or false", sport)
			}
			reg.Interests[sport] = b
		default:
			return reg, fmt.Errorf("field %q must be true or false", sport)
		}
	}
	return reg, nil
}

// validationDetail strips the sentinel prefix from a validation error.
func validationDetail(err error) string {
	return strings.TrimPrefix(err.Error(), common.ErrorValidation.Error()+": ")
}
