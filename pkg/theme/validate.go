package theme

import (
	"fmt"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	selectorPattern  = regexp.MustCompile(`^[A-Za-z_][A-Za-z0-9_-]*(?:[.:#][A-Za-z0-9_-]+)*$`)
	themeNamePattern = regexp.MustCompile(`^[A-Za-z0-9_.-]+$`)
)

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		_ = v.RegisterValidation("selector", func(fl validator.FieldLevel) bool {
			return selectorPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("theme_name", func(fl validator.FieldLevel) bool {
			name := fl.Field().String()
			return name == "" || themeNamePattern.MatchString(name)
		})

		validateInst = v
	})

	return validateInst
}

// validateSheet checks the structure of a decoded sheet and adds one
// Error per failed rule.
func validateSheet(s *sheet, errs *ErrorList) {
	err := validatorInstance().Struct(s)
	if err == nil {
		return
	}

	ves, ok := err.(validator.ValidationErrors)
	if !ok {
		errs.Add(&Error{Theme: s.Name, Err: fmt.Errorf("%w: %w", ErrInvalidSheet, err)})
		return
	}
	for _, fe := range ves {
		errs.Add(&Error{
			Theme:    s.Name,
			Selector: selectorOf(fe),
			Err:      fmt.Errorf("%w: %s failed validation for tag '%s'", ErrInvalidSheet, fieldName(fe), fe.Tag()),
		})
	}
}

// fieldName lowercases the struct namespace into the yaml field path,
// e.g. "sheet.Styles[ bad ]" becomes "styles[ bad ]".
func fieldName(fe validator.FieldError) string {
	parts := strings.Split(fe.StructNamespace(), ".")
	if len(parts) > 1 {
		parts = parts[1:]
	}
	for i, p := range parts {
		parts[i] = strings.ToLower(p)
	}
	return strings.Join(parts, ".")
}

// selectorOf extracts the map key from a Styles[...] field error.
func selectorOf(fe validator.FieldError) string {
	ns := fe.StructNamespace()
	start := strings.Index(ns, "Styles[")
	if start < 0 || !strings.HasSuffix(ns, "]") {
		return ""
	}
	return ns[start+len("Styles[") : len(ns)-1]
}
