package core

// FieldError is used to indicate an error with a specific form field.
type FieldError struct {
	Field string
	Error string
}

type ValidationError struct {
	Err    error
	Fields []FieldError
}

func NewValidationError(err error, flds ...FieldError) error {
	return &ValidationError{err, flds}
}

func (err ValidationError) Error() string {
	if err.Err == nil {
		return ""
	}
	return err.Err.Error()
}

// TwoStepOutcome tags the result of a workflow that issues two sequential
// writes against different resources with no transaction around them.
type TwoStepOutcome int

const (
	// BothApplied: both writes succeeded.
	BothApplied TwoStepOutcome = iota
	// FirstFailed: the first write failed; nothing was applied.
	FirstFailed
	// SecondFailedAfterFirst: the first write was applied but the second
	// failed, leaving the resources out of sync until retried.
	SecondFailedAfterFirst
)

func (o TwoStepOutcome) String() string {
	switch o {
	case FirstFailed:
		return "first step failed"
	case SecondFailedAfterFirst:
		return "second step failed after first applied"
	}
	return "both steps applied"
}
