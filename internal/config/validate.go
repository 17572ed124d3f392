package config

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// validate checks the validate tags of the config structs. Field names in
// errors are the YAML keys.
var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("yaml"), ",")
		if name == "-" {
			return ""
		}
		return name
	})
	if err := v.RegisterValidation("odd", isOdd); err != nil {
		panic(err)
	}
	v.RegisterStructValidation(terrainRules, TerrainConfig{})
	return v
}

// isOdd accepts odd integers.
func isOdd(fl validator.FieldLevel) bool {
	return fl.Field().Int()%2 != 0
}

// terrainRules checks the sample counts the selected policy reads.
func terrainRules(sl validator.StructLevel) {
	t := sl.Current().Interface().(TerrainConfig)

	switch t.Policy {
	case PolicyRandom:
		if t.PointsPerSide < 1 {
			sl.ReportError(t.PointsPerSide, "points_per_side", "PointsPerSide", "gte", "1")
		}
	case PolicyPeak:
		if err := sl.Validator().Var(t.PeakPoints, "gte=3,odd"); err != nil {
			sl.ReportError(t.PeakPoints, "peak_points", "PeakPoints", "odd", "3")
		}
	}
}

// Validate reports every problem in cfg, each wrapping ErrInvalidConfig.
func (c SisyphusConfig) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}

	errs := make([]error, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		errs = append(errs, fmt.Errorf("%w: %s", ErrInvalidConfig, describe(fe)))
	}
	return errors.Join(errs...)
}

// describe renders a field error as "terrain.policy must be one of
// [random peak], got volcano".
func describe(fe validator.FieldError) string {
	field := fe.Namespace()
	if _, rest, ok := strings.Cut(field, "."); ok {
		field = rest
	}

	var rule string
	switch fe.Tag() {
	case "gt":
		rule = "must be > " + fe.Param()
	case "gte", "gtefield":
		rule = "must be >= " + fe.Param()
	case "lte", "ltefield":
		rule = "must be <= " + fe.Param()
	case "oneof":
		rule = "must be one of [" + fe.Param() + "]"
	case "odd":
		rule = "must be odd and >= " + fe.Param()
	default:
		rule = "fails " + fe.Tag()
	}
	return fmt.Sprintf("%s %s, got %v", field, rule, fe.Value())
}
