package failure

import (
	"errors"
	"net/http"
	"sort"
	"strings"
)

// Failure is a wrapper for error messages and codes using standard HTTP response codes.
type Failure struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

var ErrFieldsInvalid = &Failure{Code: http.StatusBadRequest, Message: "please fix the highlighted fields"}

// Error returns the error code and message in a formatted string.
func (e *Failure) Error() string {
	return e.Message
}

// FieldFailure carries one message per rejected input field.
type FieldFailure struct {
	Failure
	Fields map[string]string `json:"fields"`
}

func (e *FieldFailure) Error() string {
	keys := make([]string, 0, len(e.Fields))
	for key := range e.Fields {
		keys = append(keys, key)
	}

	sort.Strings(keys)

	parts := make([]string, 0, len(keys))
	for _, key := range keys {
		parts = append(parts, key+": "+e.Fields[key])
	}

	return e.Message + " (" + strings.Join(parts, "; ") + ")"
}

func (e *FieldFailure) Unwrap() error {
	return &e.Failure
}

// BadRequest returns a new Failure with code for bad requests.
func BadRequest(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusBadRequest,
			Message: err.Error(),
		}
	}

	return nil
}

// BadRequestFromString returns a new Failure with code for bad requests with message set from string.
func BadRequestFromString(msg string) error {
	return &Failure{
		Code:    http.StatusBadRequest,
		Message: msg,
	}
}

// InvalidFields returns a FieldFailure for the given field messages, or nil when there are none.
func InvalidFields(fields map[string]string) error {
	if len(fields) == 0 {
		return nil
	}

	return &FieldFailure{
		Failure: *ErrFieldsInvalid,
		Fields:  fields,
	}
}

// InternalError returns a new Failure with code for internal error and message derived from an error interface.
func InternalError(err error) error {
	if err != nil {
		return &Failure{
			Code:    http.StatusInternalServerError,
			Message: err.Error(),
		}
	}

	return nil
}

// NotFound returns a new Failure with code for entity not found.
func NotFound(entityName string) error {
	return &Failure{
		Code:    http.StatusNotFound,
		Message: entityName,
	}
}

// Conflict returns a new Failure with code for conflict situations.
func Conflict(message string) error {
	return &Failure{
		Code:    http.StatusConflict,
		Message: message,
	}
}

// GetCode returns the error code of an error interface.
func GetCode(err error) int {
	var fields *FieldFailure
	if errors.As(err, &fields) {
		return fields.Code
	}

	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Code
	}

	return http.StatusInternalServerError
}

// GetFields returns the per-field messages carried by err, if any.
func GetFields(err error) map[string]string {
	var fields *FieldFailure
	if errors.As(err, &fields) {
		return fields.Fields
	}

	return nil
}

// IsNotFound reports whether err carries a 404 code.
func IsNotFound(err error) bool {
	return err != nil && GetCode(err) == http.StatusNotFound
}

// GetMessage returns the public message of a Failure carried by err, or an
// empty string when err is not a Failure.
func GetMessage(err error) string {
	var fail *Failure
	if errors.As(err, &fail) {
		return fail.Message
	}

	return ""
}
