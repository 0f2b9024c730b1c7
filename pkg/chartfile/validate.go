package chartfile

import (
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/piechart/pkg/errors"
	"github.com/matzehuels/piechart/pkg/render/chart"
	"github.com/matzehuels/piechart/pkg/render/pie"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate
)

// colorKeys are style keys whose literal values must be colors.
var colorKeys = []string{"fill", "stroke"}

// validatorInstance configures and returns the shared validator.
func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("theme", func(fl validator.FieldLevel) bool {
			_, ok := pie.ThemeByName(fl.Field().String())
			return ok
		})

		_ = v.RegisterValidation("palette", func(fl validator.FieldLevel) bool {
			return chart.IsPalette(fl.Field().String())
		})

		_ = v.RegisterValidation("chart_color", func(fl validator.FieldLevel) bool {
			return chart.IsColor(fl.Field().String())
		})

		v.RegisterStructValidation(definitionRules, Definition{})

		validateInst = v
	})

	return validateInst
}

// Validate checks the structure of d.
func Validate(d Definition) error {
	return convertValidationError(validatorInstance().Struct(d))
}

// definitionRules checks the loosely typed fields of a definition.
func definitionRules(sl validator.StructLevel) {
	d := sl.Current().Interface().(Definition)
	v := sl.Validator()

	switch cs := d.ColorScale.(type) {
	case nil:
	case string:
		if v.Var(cs, "palette") != nil {
			sl.ReportError(cs, "color_scale", "ColorScale", "palette", "")
		}
	case []any:
		for i, c := range cs {
			s, ok := c.(string)
			if !ok || v.Var(s, "chart_color") != nil {
				sl.ReportError(c, fmt.Sprintf("color_scale[%d]", i), "ColorScale", "chart_color", "")
			}
		}
	default:
		sl.ReportError(cs, "color_scale", "ColorScale", "palette", "")
	}

	switch p := d.Padding.(type) {
	case nil, map[string]any:
	default:
		if _, ok := chart.ToFloat(p); !ok {
			sl.ReportError(p, "padding", "Padding", "number", "")
		}
	}

	checkStyle(sl, "style.parent", d.Style.Parent)
	checkStyle(sl, "style.data", d.Style.Data)
	checkStyle(sl, "style.labels", d.Style.Labels)
	for i, rec := range d.Data {
		checkStyle(sl, fmt.Sprintf("data[%d]", i), rec)
	}
}

func checkStyle(sl validator.StructLevel, field string, style map[string]any) {
	v := sl.Validator()
	for _, key := range colorKeys {
		s, ok := style[key].(string)
		if !ok || isTemplate(s) {
			continue
		}
		if v.Var(s, "chart_color") != nil {
			sl.ReportError(s, field+"."+key, "Style", "chart_color", "")
		}
	}
	if s, ok := style["textAnchor"].(string); ok && !isTemplate(s) {
		if v.Var(s, "oneof=start middle end") != nil {
			sl.ReportError(s, field+".textAnchor", "Style", "oneof", "start middle end")
		}
	}
	if s, ok := style["verticalAnchor"].(string); ok && !isTemplate(s) {
		if v.Var(s, "oneof=start middle end") != nil {
			sl.ReportError(s, field+".verticalAnchor", "Style", "oneof", "start middle end")
		}
	}
}

// convertValidationError normalizes validator errors into chart errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		msgs := make([]string, 0, len(ves))
		fields := make([]string, 0, len(ves))
		for _, fe := range ves {
			msgs = append(msgs, describe(fe))
			fields = append(fields, fe.Field())
		}
		return errors.Wrap(errors.ErrCodeInvalidChart, err, "%s", strings.Join(msgs, "; ")).WithFields(fields...)
	}

	return errors.Wrap(errors.ErrCodeInvalidChart, err, "invalid chart definition")
}

func describe(fe validator.FieldError) string {
	field := fe.Field()
	switch fe.Tag() {
	case "theme":
		return fmt.Sprintf("%s: unknown theme %q (use %s)", field, fe.Value(), strings.Join(pie.ThemeNames(), ", "))
	case "palette":
		return fmt.Sprintf("%s: unknown palette %v (use %s)", field, fe.Value(), strings.Join(chart.PaletteNames(), ", "))
	case "chart_color":
		return fmt.Sprintf("%s: %v is not a color", field, fe.Value())
	case "excluded_with":
		return fmt.Sprintf("%s: cannot be combined with labels", field)
	case "oneof":
		return fmt.Sprintf("%s: %v is not one of %s", field, fe.Value(), fe.Param())
	case "number":
		return fmt.Sprintf("%s: %v is not a number or side map", field, fe.Value())
	}
	return fmt.Sprintf("%s failed validation for tag '%s'", field, fe.Tag())
}
