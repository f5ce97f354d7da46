package shared

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-playground/validator/v10"
)

// Validate is the global validator instance, shared so that compiled
// struct metadata is reused across requests.
var Validate = validator.New()

// DecodeJSON decodes the request body into the given struct.
func DecodeJSON(r *http.Request, v interface{}) error {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		return err
	}
	return nil
}

// DecodeJSONAllowEmpty decodes the request body into the given struct,
// treating a completely empty body as an empty JSON object. Partial-update
// endpoints use this so that "no body" and "{}" both mean "change nothing".
func DecodeJSONAllowEmpty(r *http.Request, v interface{}) error {
	err := DecodeJSON(r, v)
	if errors.Is(err, io.EOF) {
		return nil
	}
	return err
}

// ValidateRequest validates the given struct. Types that implement their
// own Validate method take precedence over struct tag validation; update
// DTOs with tri-state fields rely on this.
func ValidateRequest(v interface{}) error {
	if validatable, ok := v.(interface{ Validate() error }); ok {
		return validatable.Validate()
	}
	return Validate.Struct(v)
}

// FieldErrors converts a validation error into per-field messages suitable
// for a client response. Errors that are not field-scoped come back as a
// single entry with an empty field name.
func FieldErrors(err error) []FieldError {
	var fieldErrs FieldErrorList
	if errors.As(err, &fieldErrs) {
		return fieldErrs
	}

	var invalid validator.ValidationErrors
	if errors.As(err, &invalid) {
		out := make([]FieldError, 0, len(invalid))
		for _, fe := range invalid {
			out = append(out, FieldError{
				Field:   fieldName(fe),
				Message: tagMessage(fe),
			})
		}
		return out
	}

	return []FieldError{{Message: err.Error()}}
}

// fieldName resolves the JSON-facing name of a failed field. The validator
// reports Go struct field names; handlers register DTOs whose JSON tags are
// the lowercase snake form, which is what fe.Field() returns once the
// validator is configured with a tag name function. We keep it simple and
// lowercase the struct name convention instead of registering one.
func fieldName(fe validator.FieldError) string {
	switch fe.Field() {
	case "Name":
		return "name"
	case "Email":
		return "email"
	case "Age":
		return "age"
	case "UserID":
		return "user_id"
	case "Item":
		return "item"
	case "Quantity":
		return "quantity"
	case "Total":
		return "total"
	default:
		return fe.Field()
	}
}

// tagMessage maps validation tags to user-friendly error messages.
func tagMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "required field"
	case "email":
		return "invalid email format"
	case "min":
		return "too short"
	case "max":
		return "too long"
	case "gt":
		return "must be greater than " + fe.Param()
	case "lt":
		return "must be less than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	default:
		return "validation failed"
	}
}
