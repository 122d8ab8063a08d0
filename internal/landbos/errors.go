package landbos

import (
	"errors"
	"fmt"
	"math"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidParameter is wrapped by every input-validation failure.
var ErrInvalidParameter = errors.New("invalid parameter")

// ParamError reports which input was out of its domain.
type ParamError struct {
	Field  string `json:"field"`
	Value  any    `json:"value,omitempty"`
	Reason string `json:"reason"`
}

func (e *ParamError) Error() string {
	return fmt.Sprintf("%s: %s: %s (got %v)", ErrInvalidParameter, e.Field, e.Reason, e.Value)
}

func (e *ParamError) Unwrap() error {
	return ErrInvalidParameter
}

func invalidParam(field string, value any, reason string) *ParamError {
	return &ParamError{Field: field, Value: value, Reason: reason}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()
		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})
	return v
}

// Validate checks every numeric domain and enumeration in the record and
// returns the first violation as a *ParamError.
func (in Inputs) Validate() error {
	if err := validate.Struct(in); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) && len(verrs) > 0 {
			fe := verrs[0]
			return invalidParam(fieldPath(fe.Namespace()), fe.Value(), describeTag(fe))
		}
		return fmt.Errorf("validate inputs: %w", err)
	}
	if !in.Farm.Terrain.Valid() {
		return invalidParam("farm.terrain", int(in.Farm.Terrain), "unknown terrain")
	}
	if !in.Farm.Layout.Valid() {
		return invalidParam("farm.layout", int(in.Farm.Layout), "unknown layout")
	}
	if !in.Farm.Soil.Valid() {
		return invalidParam("farm.soil", int(in.Farm.Soil), "unknown soil condition")
	}
	return nil
}

// fieldPath drops the root type from a namespace such as
// "Inputs.turbine.hub_height".
func fieldPath(ns string) string {
	if _, rest, ok := strings.Cut(ns, "."); ok {
		return rest
	}
	return ns
}

func describeTag(fe validator.FieldError) string {
	switch fe.Tag() {
	case "finite":
		return "must be a finite number"
	case "gt":
		return "must be greater than " + fe.Param()
	case "gte":
		return "must be at least " + fe.Param()
	case "lte":
		return "must be at most " + fe.Param()
	case "min":
		return "must be at least " + fe.Param()
	case "max":
		return "must be at most " + fe.Param()
	default:
		return "failed " + fe.Tag()
	}
}
