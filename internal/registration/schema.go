package registration

import (
	"errors"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Field names used as keys in FieldErrors. These match the JSON keys of
// the Registration struct.
const (
	FieldName   = "name"
	FieldAge    = "age"
	FieldEmail  = "email"
	FieldCourse = "course"
)

// ErrorKind classifies a field validation failure.
type ErrorKind string

const (
	// ErrTooShort indicates a text field below its minimum length (name).
	ErrTooShort ErrorKind = "TooShort"
	// ErrOutOfRange indicates a numeric field outside its allowed range,
	// including non-numeric input that could not be coerced (age).
	ErrOutOfRange ErrorKind = "OutOfRange"
	// ErrInvalidFormat indicates text that does not match the expected
	// shape (email).
	ErrInvalidFormat ErrorKind = "InvalidFormat"
	// ErrRequired indicates a missing or unrecognized selection (course).
	ErrRequired ErrorKind = "Required"
)

// FieldError is a single field's validation failure.
type FieldError struct {
	Kind    ErrorKind
	Message string
}

// Error implements the error interface
func (e FieldError) Error() string {
	return e.Message
}

// FieldErrors maps a field name to its validation failure.
// An empty map means the candidate passed all field constraints.
type FieldErrors map[string]FieldError

// Candidate holds raw form input before coercion and validation.
// Age is text because it arrives from an input widget; Validate coerces
// it to an integer. An empty Age is the unset sentinel and coerces to 0.
type Candidate struct {
	Name   string
	Age    string
	Email  string
	Course string
}

// validate is shared across calls; the validator is safe for concurrent
// use and caches struct metadata.
var validate = validator.New()

// Validate checks a candidate against the full schema.
//
// On success it returns the fully-typed Registration and a nil error map.
// On failure it returns a zero Registration and one FieldError per failing
// field. Rules are evaluated independently per field; there are no side
// effects and no cross-field rules.
func Validate(c Candidate) (Registration, FieldErrors) {
	fieldErrs := FieldErrors{}

	age, err := coerceAge(c.Age)
	if err != nil {
		fieldErrs[FieldAge] = FieldError{
			Kind:    ErrOutOfRange,
			Message: "Age must be a whole number between 16 and 100",
		}
	}

	rec := Registration{
		Name:   strings.TrimSpace(c.Name),
		Age:    age,
		Email:  strings.TrimSpace(c.Email),
		Course: Course(c.Course),
	}

	if err := validate.Struct(rec); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			for _, fe := range verrs {
				field := strings.ToLower(fe.StructField())
				if _, seen := fieldErrs[field]; seen {
					// Coercion failure already recorded for this field
					continue
				}
				fieldErrs[field] = fieldErrorFor(field)
			}
		}
	}

	if len(fieldErrs) > 0 {
		return Registration{}, fieldErrs
	}
	return rec, nil
}

// ValidateField checks a single field's raw value using only that field's
// rule. Used for edit-time feedback as the user changes a field; the full
// schema still runs at submit time.
// Returns nil if the value passes.
func ValidateField(field, value string) *FieldError {
	switch field {
	case FieldName:
		if err := validate.Var(strings.TrimSpace(value), "min=2"); err != nil {
			fe := fieldErrorFor(FieldName)
			return &fe
		}

	case FieldAge:
		age, err := coerceAge(value)
		if err == nil {
			err = validate.Var(age, "gte=16,lte=100")
		}
		if err != nil {
			fe := fieldErrorFor(FieldAge)
			return &fe
		}

	case FieldEmail:
		if err := validate.Var(strings.TrimSpace(value), "required,email"); err != nil {
			fe := fieldErrorFor(FieldEmail)
			return &fe
		}

	case FieldCourse:
		if !Course(value).IsValid() {
			fe := fieldErrorFor(FieldCourse)
			return &fe
		}
	}

	return nil
}

// coerceAge converts raw age text to an integer. Empty text is the unset
// sentinel and coerces to 0, which the range rule then rejects.
func coerceAge(raw string) (int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, nil
	}
	return strconv.Atoi(raw)
}

// fieldErrorFor returns the error kind and user-facing message for a
// failing field. Each field has exactly one rule surface, so the field
// name alone determines the message.
func fieldErrorFor(field string) FieldError {
	switch field {
	case FieldName:
		return FieldError{Kind: ErrTooShort, Message: "Name must be at least 2 characters"}
	case FieldAge:
		return FieldError{Kind: ErrOutOfRange, Message: "Age must be between 16 and 100"}
	case FieldEmail:
		return FieldError{Kind: ErrInvalidFormat, Message: "Enter a valid email address"}
	case FieldCourse:
		return FieldError{Kind: ErrRequired, Message: "Select a course"}
	default:
		return FieldError{Kind: ErrRequired, Message: "Invalid value"}
	}
}
