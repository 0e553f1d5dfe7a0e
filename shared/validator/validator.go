package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"math"
	"paradise/config"
	"paradise/shared/constant"
	"paradise/shared/failure"
	"reflect"
	"regexp"
	"strconv"
	"strings"
	"time"

	val "github.com/go-playground/validator/v10"
)

const (
	tagParadise   = "paradise"
	tagBasicEmail = "basicemail"
	tagIntRange   = "intrange"
	tagISODate    = "isodate"
	tagAfterField = "afterfield"
)

var (
	validate *val.Validate

	basicEmailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)
)

func registerBasicEmailValidation(field val.FieldLevel) bool {
	return basicEmailPattern.MatchString(field.Field().String())
}

// registerIntRangeValidation accepts a numeric string holding a whole number
// within the inclusive range given as "min max".
func registerIntRangeValidation(field val.FieldLevel) bool {
	bounds := strings.Fields(field.Param())
	if len(bounds) != 2 { //nolint:mnd
		return false
	}

	lower, errLower := strconv.ParseFloat(bounds[0], 64)
	upper, errUpper := strconv.ParseFloat(bounds[1], 64)

	if errLower != nil || errUpper != nil {
		return false
	}

	number, err := strconv.ParseFloat(strings.TrimSpace(field.Field().String()), 64)
	if err != nil || math.IsNaN(number) || math.IsInf(number, 0) {
		return false
	}

	if number != math.Trunc(number) {
		return false
	}

	return number >= lower && number <= upper
}

func registerISODateValidation(field val.FieldLevel) bool {
	_, err := time.Parse(constant.DateFormat, field.Field().String())

	return err == nil
}

// registerAfterFieldValidation compares two ISO date strings. An empty
// counterpart passes, its own rules report it.
func registerAfterFieldValidation(field val.FieldLevel) bool {
	parent := reflect.Indirect(field.Parent())
	if parent.Kind() != reflect.Struct {
		return false
	}

	other := parent.FieldByName(field.Param())
	if !other.IsValid() || other.Kind() != reflect.String {
		return false
	}

	if other.String() == constant.Empty {
		return true
	}

	return field.Field().String() > other.String()
}

func fieldName(field reflect.StructField) string {
	for _, tag := range []string{"json", "form"} {
		name := strings.SplitN(field.Tag.Get(tag), ",", 2)[0] //nolint:mnd
		if name != constant.Empty && name != "-" {
			return name
		}
	}

	return field.Name
}

func init() {
	cfg := config.Get()

	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(fieldName)

	err := validate.RegisterValidation(tagParadise, func(fl val.FieldLevel) bool {
		method := fl.Field().MethodByName("Validate")
		if method.IsValid() {
			result := method.Call([]reflect.Value{reflect.ValueOf(cfg)})

			return result[0].IsNil()
		}

		return false
	})
	if err != nil {
		panic(err)
	}

	validations := map[string]val.Func{
		tagBasicEmail: registerBasicEmailValidation,
		tagIntRange:   registerIntRangeValidation,
		tagISODate:    registerISODateValidation,
		tagAfterField: registerAfterFieldValidation,
	}

	for tag, fn := range validations {
		if err = validate.RegisterValidation(tag, fn); err != nil {
			panic(err)
		}
	}
}

// Normalizer is implemented by request bodies that clean up their input
// before the rules run.
type Normalizer interface {
	Normalize()
}

// Validate decodes a JSON body into data and validates the result.
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)

	if err := decoder.Decode(data); err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	if normalizer, ok := any(data).(Normalizer); ok {
		normalizer.Normalize()
	}

	return ValidateStruct(data)
}

// ValidateStruct runs every rule on data. A rejected struct yields a
// *failure.FieldFailure holding one message per failing field.
func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)
	if err == nil {
		return nil
	}

	fields := Fields(reflect.TypeOf(data).Elem(), err)
	if len(fields) == 0 {
		return failure.BadRequestFromString(message(err)) //nolint:wrapcheck
	}

	return failure.InvalidFields(fields) //nolint:wrapcheck
}
