package view

const (
	DefaultSeparator   = ", "
	DefaultPlaceholder = "No players have joined yet"
)

// Policy holds the rendering choices that vary between deployments.
type Policy struct {
	// Separator joins attendee names.
	Separator string
	// Placeholder replaces an empty attendee list.
	Placeholder string
	// IconBaseURL prefixes /static/img/<type>_icon.svg. Empty means a
	// site-relative path.
	IconBaseURL string
}

func DefaultPolicy() Policy {
	return Policy{Separator: DefaultSeparator, Placeholder: DefaultPlaceholder}
}

func (p Policy) withDefaults() Policy {
	if p.Separator == "" {
		p.Separator = DefaultSeparator
	}
	if p.Placeholder == "" {
		p.Placeholder = DefaultPlaceholder
	}
	return p
}
