package validator

import (
	"errors"
	"paradise/shared/constant"
	"reflect"
	"strings"

	val "github.com/go-playground/validator/v10"
)

// Struct fields may carry their own messages: `msg_<tag>` wins over `msg`,
// which wins over the generic templates below.
const (
	messageTag       = "msg"
	messageTagPrefix = "msg_"
)

var (
	messages = map[string]string{
		"required":    "{field} is required",
		"gte":         "{field} must be greater than or equal to {param}",
		"lte":         "{field} must be less than or equal to {param}",
		"oneof":       "{field} must be one of {param}",
		"max":         "{field} must be less than or equal to {param}",
		"min":         "{field} must be greater than or equal to {param}",
		"email":       "{field} must be a valid email address",
		tagBasicEmail: "{field} must be a valid email address",
		tagIntRange:   "{field} must be a whole number between {param}",
		tagISODate:    "{field} must be a date formatted as YYYY-MM-DD",
		tagAfterField: "{field} must be after {param}",
		tagParadise:   "{field} is not allowed",
	}
)

func template(valErr val.FieldError) string {
	errStr := messages[valErr.Tag()]
	if errStr == constant.Empty {
		return valErr.Error()
	}

	errStr = strings.ReplaceAll(errStr, "{field}", valErr.Field())
	errStr = strings.ReplaceAll(errStr, "{param}", valErr.Param())

	return errStr
}

func message(err error) string {
	var valErrors val.ValidationErrors

	if errors.As(err, &valErrors) && len(valErrors) > 0 {
		return template(valErrors[0])
	}

	return err.Error()
}

// Fields maps every failing field of typ to a single message, keyed by the
// field's json name. Only the first failing rule of a field is reported.
func Fields(typ reflect.Type, err error) map[string]string {
	var valErrors val.ValidationErrors
	if !errors.As(err, &valErrors) {
		return nil
	}

	for typ.Kind() == reflect.Pointer {
		typ = typ.Elem()
	}

	fields := make(map[string]string, len(valErrors))

	for _, valErr := range valErrors {
		name := valErr.Field()
		if _, ok := fields[name]; ok {
			continue
		}

		fields[name] = fieldMessage(typ, valErr)
	}

	return fields
}

func fieldMessage(typ reflect.Type, valErr val.FieldError) string {
	if typ.Kind() == reflect.Struct {
		if structField, ok := typ.FieldByName(valErr.StructField()); ok {
			if msg := structField.Tag.Get(messageTagPrefix + valErr.Tag()); msg != constant.Empty {
				return msg
			}

			if msg := structField.Tag.Get(messageTag); msg != constant.Empty {
				return msg
			}
		}
	}

	return template(valErr)
}
