package api

import (
	"encoding/json"
	"fmt"
)

// DeleteUserRequest is the body of /delete_user/.
type DeleteUserRequest struct {
	UserID string `json:"user_id"`
}

type LoginRequest struct {
	EmailAddress string `json:"email_address"`
	Password     string `json:"password"`
}

// LoginResponse carries either the session fields (success) or a
// human-readable reason (failure) in Message.
type LoginResponse struct {
	Success bool            `json:"success"`
	Message json.RawMessage `json:"message"`
}

// NewLoginSuccess builds the success body from the session fields.
func NewLoginSuccess(fields map[string]any) (*LoginResponse, error) {
	raw, err := json.Marshal(fields)
	if err != nil {
		return nil, err
	}
	return &LoginResponse{Success: true, Message: raw}, nil
}

// NewLoginFailure builds the failure body.
func NewLoginFailure(reason string) *LoginResponse {
	raw, _ := json.Marshal(reason)
	return &LoginResponse{Success: false, Message: raw}
}

// Fields decodes the session map of a successful login.
func (r *LoginResponse) Fields() (map[string]any, error) {
	var fields map[string]any
	if err := json.Unmarshal(r.Message, &fields); err != nil {
		return nil, fmt.Errorf("login message is not a field map: %w", err)
	}
	return fields, nil
}

// Text returns the failure reason. A non-string message is returned verbatim.
func (r *LoginResponse) Text() string {
	var s string
	if err := json.Unmarshal(r.Message, &s); err != nil {
		return string(r.Message)
	}
	return s
}

type RegisterResponse struct {
	RegistrationStatus  bool   `json:"registration_status"`
	RegistrationMessage string `json:"registration_message"`
}

// StatusResponse is the generic {success, message} body used by
// /create_game/ and /join_game/.
type StatusResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}
