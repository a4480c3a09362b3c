package pages

import (
	"errors"
	"fmt"

	"github.com/dmitrijs2005/sporttogether/internal/client/client"
	"github.com/dmitrijs2005/sporttogether/internal/client/form"
	"github.com/dmitrijs2005/sporttogether/internal/client/session"
	"github.com/dmitrijs2005/sporttogether/internal/client/transport"
)

var (
	ErrInFlight   = errors.New("action already in progress")
	ErrNotEditing = errors.New("no game is being edited")
)

const (
	msgUnavailable  = "Could not reach the server. Please try again later."
	msgUnauthorized = "Your session has expired. Please log in again."
	msgNoSession    = "Please log in first."
)

// alertText is the user-facing text of err.
func alertText(err error) string {
	var ve *form.ValidationError
	var re *client.RejectedError
	var se *transport.StatusError
	switch {
	case errors.As(err, &ve):
		return ve.Message
	case errors.As(err, &re):
		return re.Error()
	case errors.Is(err, session.ErrNoSession):
		return msgNoSession
	case errors.Is(err, client.ErrUnauthorized):
		return msgUnauthorized
	case errors.Is(err, client.ErrUnavailable):
		return msgUnavailable
	case errors.As(err, &se):
		return fmt.Sprintf("The server answered with status %d.", se.Code)
	default:
		return err.Error()
	}
}
