package form

const (
	LoginForm        = "login_form"
	RegistrationForm = "registration_form"
	EventForm        = "event_form"
	GameEditForm     = "game_edit_form"
)

// Schema lists the fields of one form that must not be blank.
type Schema struct {
	FormID   string
	Required []string
}

// Schemas is the required-field configuration handed to page controllers.
type Schemas map[string]Schema

// Lookup returns the schema for formID; unknown forms get an empty schema.
func (s Schemas) Lookup(formID string) Schema {
	if sc, ok := s[formID]; ok {
		return sc
	}
	return Schema{FormID: formID}
}

func DefaultSchemas() Schemas {
	return Schemas{
		LoginForm: {
			FormID:   LoginForm,
			Required: []string{"email_address", "password"},
		},
		RegistrationForm: {
			FormID:   RegistrationForm,
			Required: []string{"first_name", "last_name", "email_address", "password"},
		},
		EventForm: {
			FormID:   EventForm,
			Required: []string{"type", "location", "date", "time", "numPlayers"},
		},
		GameEditForm: {
			FormID: GameEditForm,
		},
	}
}
