package form

import "strings"

const (
	MsgBuiltinInvalid  = "Please fill out the required fields."
	MsgRequiredMissing = "Please fill in the required fields."
)

// ValidationError reports a form that failed validation. Missing lists the
// offending field names in form order.
type ValidationError struct {
	FormID  string
	Missing []string
	Message string
}

func (e *ValidationError) Error() string {
	if len(e.Missing) == 0 {
		return e.Message
	}
	return e.Message + " (" + strings.Join(e.Missing, ", ") + ")"
}

// Collect validates f and returns its payload. Disabled fields are skipped
// and the empty name never reaches the payload.
func Collect(f *Form, schema Schema) (Payload, error) {
	var invalid []string
	for _, fld := range f.Fields {
		if !fld.valid() {
			invalid = append(invalid, fld.Name)
		}
	}
	if len(invalid) > 0 {
		return Payload{}, &ValidationError{FormID: f.ID, Missing: invalid, Message: MsgBuiltinInvalid}
	}

	required := make(map[string]bool, len(schema.Required))
	for _, name := range schema.Required {
		required[name] = true
	}

	var missing []string
	for _, fld := range f.Fields {
		if !required[fld.Name] {
			continue
		}
		delete(required, fld.Name)
		fld.Invalid = fld.Disabled || blank(fld.Value)
		if fld.Invalid {
			missing = append(missing, fld.Name)
		}
	}
	for _, name := range schema.Required {
		if required[name] {
			missing = append(missing, name)
		}
	}
	if len(missing) > 0 {
		return Payload{}, &ValidationError{FormID: f.ID, Missing: missing, Message: MsgRequiredMissing}
	}

	p := NewPayload()
	for _, fld := range f.Fields {
		if fld.Disabled {
			continue
		}
		p.Set(fld.Name, fld.Value)
	}
	p.Delete("")
	return p, nil
}
