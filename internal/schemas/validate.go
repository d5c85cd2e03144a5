package schemas

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Boundary patterns. Kept as-is from the relational schema; the email pattern
// is deliberately looser than RFC 5322.
var (
	usernameRegexp = regexp.MustCompile(`^[a-zA-Z0-9_-]+$`)
	emailRegexp    = regexp.MustCompile(`^[a-zA-Z0-9_.+-]+@[a-zA-Z0-9-]+\.[a-zA-Z0-9-.]+$`)
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Errors report the json field name, not the Go field name.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	v.RegisterValidation("username_chars", func(fl validator.FieldLevel) bool {
		return usernameRegexp.MatchString(fl.Field().String())
	})
	v.RegisterValidation("email_format", func(fl validator.FieldLevel) bool {
		return emailRegexp.MatchString(fl.Field().String())
	})
	return v
}

// ValidationError reports a single field that failed a pattern, length or
// range constraint.
type ValidationError struct {
	Field string `json:"field"`
	Rule  string `json:"rule"`
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("field '%s' failed on the '%s' rule", e.Field, e.Rule)
}

// ValidationErrors aggregates every failed constraint of one shape.
type ValidationErrors []ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, 0, len(e))
	for _, ve := range e {
		msgs = append(msgs, ve.Error())
	}
	return strings.Join(msgs, "; ")
}

// Validate checks a shape against its field constraints. It returns
// ValidationErrors when one or more constraints fail, before any store
// interaction takes place.
func Validate(shape any) error {
	err := validate.Struct(shape)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) {
		out := make(ValidationErrors, 0, len(verrs))
		for _, fe := range verrs {
			out = append(out, ValidationError{Field: fe.Field(), Rule: fe.Tag()})
		}
		return out
	}
	return err
}
