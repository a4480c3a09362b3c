package form

import (
	"regexp"
	"strings"
)

// Field is one named input of a form.
type Field struct {
	Name     string
	Value    string
	Required bool
	// Pattern must match the whole value when the value is non-empty.
	Pattern  string
	Disabled bool
	// Invalid is the error visual state set by Collect.
	Invalid bool
}

// Form is an ordered set of fields identified by ID.
type Form struct {
	ID     string
	Fields []*Field
}

func New(id string, fields ...*Field) *Form {
	return &Form{ID: id, Fields: fields}
}

// Field returns the first field named name, or nil.
func (f *Form) Field(name string) *Field {
	for _, fld := range f.Fields {
		if fld.Name == name {
			return fld
		}
	}
	return nil
}

// Set assigns value to the named field, adding the field if absent.
func (f *Form) Set(name, value string) {
	if fld := f.Field(name); fld != nil {
		fld.Value = value
		return
	}
	f.Fields = append(f.Fields, &Field{Name: name, Value: value})
}

// Reset clears every value and visual state.
func (f *Form) Reset() {
	for _, fld := range f.Fields {
		fld.Value = ""
		fld.Invalid = false
	}
}

func (fld *Field) valid() bool {
	if fld.Disabled {
		return true
	}
	if fld.Required && fld.Value == "" {
		return false
	}
	if fld.Pattern != "" && fld.Value != "" {
		re, err := regexp.Compile(`^(?:` + fld.Pattern + `)$`)
		if err != nil {
			return true
		}
		return re.MatchString(fld.Value)
	}
	return true
}

func blank(s string) bool {
	return strings.TrimSpace(s) == ""
}
