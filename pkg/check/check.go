// Package check provides owner-side validators for committed field values,
// keyed by input kind. Empty values always pass; use the field's Required
// flag for presence.
package check

import (
	"regexp"

	"github.com/asaskevich/govalidator"
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/go-ozzo/ozzo-validation/v4/is"

	"github.com/goliatone/go-textfield/pkg/field"
)

// Func validates one committed value. The error text is meant to be shown to
// the user as the field's error message.
type Func func(value string) error

var telPattern = regexp.MustCompile(`^\+?[0-9][0-9 ().-]{3,}[0-9]$`)

var (
	emailRule  = is.EmailFormat.Error("Enter a valid email address")
	numberRule = is.Float.Error("Enter a number")
	telRule    = validation.Match(telPattern).Error("Enter a valid phone number")
	urlRule    = validation.By(absoluteURL)
)

var errInvalidURL = validation.NewError("validation_is_request_url", "Enter a full URL including the scheme")

func absoluteURL(value any) error {
	s, _ := value.(string)
	if s == "" || govalidator.IsRequestURL(s) {
		return nil
	}
	return errInvalidURL
}

// ForKind returns the validator for kind, or nil when the kind accepts any
// text.
func ForKind(kind field.InputKind) Func {
	switch kind {
	case field.KindEmail:
		return Rules(emailRule)
	case field.KindNumber:
		return Rules(numberRule)
	case field.KindTel:
		return Rules(telRule)
	case field.KindURL:
		return Rules(urlRule)
	default:
		return nil
	}
}

// Rules adapts ozzo-validation rules into a Func.
func Rules(rules ...validation.Rule) Func {
	return func(value string) error {
		return validation.Validate(value, rules...)
	}
}

// Chain runs validators in order and returns the first failure. Nil entries
// are skipped; a chain with no validators returns nil.
func Chain(fns ...Func) Func {
	var active []Func
	for _, fn := range fns {
		if fn != nil {
			active = append(active, fn)
		}
	}
	switch len(active) {
	case 0:
		return nil
	case 1:
		return active[0]
	}
	return func(value string) error {
		for _, fn := range active {
			if err := fn(value); err != nil {
				return err
			}
		}
		return nil
	}
}
