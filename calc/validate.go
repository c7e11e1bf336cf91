package calc

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	// ErrInvalidInput matches every parameter validation failure.
	ErrInvalidInput = errors.New("calc: invalid input")

	// ErrUnstable is returned by MM1 when the arrival rate is not below the
	// service rate.
	ErrUnstable = errors.New("calc: unstable system (arrival rate >= service rate)")

	// ErrPriceNotAboveCost is returned by BreakEven when the unit price does
	// not exceed the variable cost per unit.
	ErrPriceNotAboveCost = errors.New("calc: price per unit must exceed variable cost per unit")
)

// calcValidate is shared by every calculator. validator.Validate caches
// struct metadata and is safe for concurrent use.
var calcValidate *validator.Validate

func init() {
	calcValidate = validator.New(validator.WithRequiredStructEnabled())
	calcValidate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	if err := calcValidate.RegisterValidation("finite", validateFinite); err != nil {
		panic(fmt.Sprintf("calc: register finite validation: %v", err))
	}
}

// validateFinite rejects NaN and ±Inf. Range tags alone let +Inf through.
func validateFinite(fl validator.FieldLevel) bool {
	f := fl.Field()
	if f.Kind() != reflect.Float64 && f.Kind() != reflect.Float32 {
		return false
	}
	return finite(f.Float())
}

func finite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}

// check validates params and flattens validator errors into one
// ErrInvalidInput error naming every offending field.
func check(params any) error {
	err := calcValidate.Struct(params)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, describe(fe))
	}
	return fmt.Errorf("%w: %s", ErrInvalidInput, strings.Join(msgs, "; "))
}

func describe(fe validator.FieldError) string {
	switch fe.Tag() {
	case "finite":
		return fmt.Sprintf("%s must be a finite number", fe.Field())
	case "gt":
		return fmt.Sprintf("%s must be greater than %s", fe.Field(), fe.Param())
	case "gte":
		return fmt.Sprintf("%s must be at least %s", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("%s failed %s", fe.Field(), fe.Tag())
	}
}
