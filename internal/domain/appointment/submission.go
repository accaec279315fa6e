package appointment

// Submission is a candidate booking as received from the public form.
// Field names in errors use the wire (JSON) casing because that is what
// the caller sees.
type Submission struct {
	FullName      string
	Email         string
	Phone         string
	PetName       string
	PetType       string
	PreferredDate string
	PreferredTime string
	ServiceType   string

	PetAge *string
	Notes  *string
}

type MissingFieldError struct {
	Field string
}

func (e *MissingFieldError) Error() string {
	return "missing required field: " + e.Field
}

var requiredFields = []struct {
	name  string
	value func(*Submission) string
}{
	{"fullName", func(s *Submission) string { return s.FullName }},
	{"email", func(s *Submission) string { return s.Email }},
	{"phone", func(s *Submission) string { return s.Phone }},
	{"petName", func(s *Submission) string { return s.PetName }},
	{"petType", func(s *Submission) string { return s.PetType }},
	{"preferredDate", func(s *Submission) string { return s.PreferredDate }},
	{"preferredTime", func(s *Submission) string { return s.PreferredTime }},
	{"serviceType", func(s *Submission) string { return s.ServiceType }},
}

// ValidateRequired checks the required fields in their declared order and
// reports only the first one missing.
func (s *Submission) ValidateRequired() error {
	for _, f := range requiredFields {
		if f.value(s) == "" {
			return &MissingFieldError{Field: f.name}
		}
	}
	return nil
}
