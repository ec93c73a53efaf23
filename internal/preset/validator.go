package preset

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/quark/internal/expr"
	"github.com/alexisbeaulieu97/quark/pkg/component"
	quarkerrors "github.com/alexisbeaulieu97/quark/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern      = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	componentIDPattern = regexp.MustCompile(`^[a-z][a-z0-9_-]*$`)
	tagNamePattern     = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9-]*$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		// Report fields by their YAML names.
		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("component_id", func(fl validator.FieldLevel) bool {
			return componentIDPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("tag_name", func(fl validator.FieldLevel) bool {
			return tagNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("attr_name", func(fl validator.FieldLevel) bool {
			return component.ValidAttributeName(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// Validate performs schema validation, then checks ids are unique and that
// every style expression evaluates.
func Validate(p *Preset) error {
	if p == nil {
		return quarkerrors.NewValidationError("preset", "preset is nil", nil)
	}

	if err := validatorInstance().Struct(p); err != nil {
		return convertValidationError(err)
	}

	seen := make(map[string]struct{}, len(p.Components))
	for i, entry := range p.Components {
		if _, exists := seen[entry.ID]; exists {
			return quarkerrors.NewValidationError(fieldForComponent(i, "id"), fmt.Sprintf("duplicate component id %q", entry.ID), nil)
		}
		seen[entry.ID] = struct{}{}

		for j, style := range entry.Styles {
			if _, err := expr.Parse(style); err != nil {
				field := fmt.Sprintf("%s[%d]", fieldForComponent(i, "styles"), j)
				return quarkerrors.NewValidationError(field, err.Error(), err)
			}
		}
	}

	return nil
}

// convertValidationError normalizes validator errors into preset validation errors.
func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlFieldPath(ve)
		msg := fmt.Sprintf("%s failed validation for tag '%s'", field, ve.Tag())
		return quarkerrors.NewValidationError(field, msg, err)
	}

	return quarkerrors.NewValidationError("preset", err.Error(), err)
}

// yamlFieldPath drops the root struct name: "Preset.components[0].id"
// becomes "components[0].id".
func yamlFieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, found := strings.Cut(ns, "."); found {
		return rest
	}
	return ns
}

func fieldForComponent(index int, field string) string {
	return fmt.Sprintf("components[%d].%s", index, field)
}
