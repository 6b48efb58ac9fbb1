package diag

// Subject identifies what a diagnostic is about.
type Subject struct {
	Entry    string // catalogue name, e.g. "CLAMP"
	Property string // property name, e.g. "clamp-in-range"
}

func (s Subject) String() string {
	switch {
	case s.Entry == "" && s.Property == "":
		return "-"
	case s.Entry == "":
		return s.Property
	case s.Property == "":
		return s.Entry
	}
	return s.Entry + "/" + s.Property
}

type Note struct {
	Msg string
}

type Diagnostic struct {
	Severity Severity
	Code     Code
	Message  string
	Subject  Subject
	Notes    []Note
}
