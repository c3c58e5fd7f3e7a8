package validation

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/osse101/gameitems/internal/domain"
)

var (
	structValidator *validator.Validate
	initOnce        sync.Once
)

// structs returns the shared validator with the domain rules registered
func structs() *validator.Validate {
	initOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())

		_ = v.RegisterValidation("category", validateCategory)
		_ = v.RegisterValidation("weapon_category", validateWeaponCategory)
		_ = v.RegisterValidation("rarity", validateRarity)
		_ = v.RegisterValidation("effect", validateEffect)

		structValidator = v
	})
	return structValidator
}

// Struct validates s using its `validate` tags.
// The returned error lists every failing field as "field: rule" in field order.
func Struct(s interface{}) error {
	err := structs().Struct(s)
	if err == nil {
		return nil
	}

	fields := FormatValidationError(err)
	names := make([]string, 0, len(fields))
	for name := range fields {
		names = append(names, name)
	}
	sort.Strings(names)

	parts := make([]string, 0, len(names))
	for _, name := range names {
		parts = append(parts, fmt.Sprintf("%s: %s", name, fields[name]))
	}
	return errors.New(strings.Join(parts, "; "))
}

// FormatValidationError formats validation errors into a field -> message map
func FormatValidationError(err error) map[string]string {
	if err == nil {
		return nil
	}

	errs := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		errs["error"] = err.Error()
		return errs
	}

	for _, e := range validationErrors {
		field := strings.ToLower(e.Field())
		switch e.Tag() {
		case "required":
			errs[field] = "is required"
		case "gte", "min":
			errs[field] = fmt.Sprintf("must be at least %s", e.Param())
		case "lte", "max":
			errs[field] = fmt.Sprintf("must be at most %s", e.Param())
		case "oneof":
			errs[field] = fmt.Sprintf("must be one of [%s]", e.Param())
		case "category", "weapon_category":
			errs[field] = fmt.Sprintf("unknown category %q", e.Value())
		case "rarity":
			errs[field] = fmt.Sprintf("unknown rarity %q", e.Value())
		case "effect":
			errs[field] = fmt.Sprintf("unknown effect %q", e.Value())
		default:
			errs[field] = "invalid value"
		}
	}

	return errs
}

// Empty values pass the custom rules; combine with "required" where a value is mandatory.

func validateCategory(fl validator.FieldLevel) bool {
	c := domain.Category(fl.Field().String())
	return c == domain.CategoryNone || c.IsValid()
}

func validateWeaponCategory(fl validator.FieldLevel) bool {
	c := domain.Category(fl.Field().String())
	return c == domain.CategoryNone || c.IsWeapon()
}

func validateRarity(fl validator.FieldLevel) bool {
	r := domain.Rarity(fl.Field().String())
	return r == domain.RarityNone || r.IsValid()
}

func validateEffect(fl validator.FieldLevel) bool {
	k := domain.EffectKind(fl.Field().String())
	return k == "" || k.IsValid()
}
