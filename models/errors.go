package models

// ValidationKind classifies why a payload was rejected.
type ValidationKind string

const (
	InvalidAttribute ValidationKind = "InvalidAttribute"
	MissingField     ValidationKind = "MissingField"
	TypeMismatch     ValidationKind = "TypeMismatch"
	InvalidEnum      ValidationKind = "InvalidEnum"
	InvalidRange     ValidationKind = "InvalidRange"
	InvalidDate      ValidationKind = "InvalidDate"
	IDMismatch       ValidationKind = "IdMismatch"
)

// DataValidationError reports a client-caused payload problem. It is returned
// as a value, not raised, so handlers can map it straight to a 400 response.
type DataValidationError struct {
	Kind    ValidationKind
	Field   string
	Message string
}

func (e *DataValidationError) Error() string {
	return e.Message
}

func validationError(kind ValidationKind, field, message string) *DataValidationError {
	return &DataValidationError{Kind: kind, Field: field, Message: message}
}
