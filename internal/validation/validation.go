package validation

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"mesto-be/internal/apperr"
)

// URLPattern is the link format accepted for avatars and card images.
var URLPattern = regexp.MustCompile(`^https?://(www\.)?[-a-zA-Z0-9._~:/?#\[\]@!$&'()*+,;=%]+#?$`)

const urlPatternTag = "urlpattern"

var (
	validate = newValidator()

	bindingOnce sync.Once
	bindingErr  error
)

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	if err := v.RegisterValidation(urlPatternTag, matchURLPattern); err != nil {
		panic(err)
	}
	return v
}

func matchURLPattern(fl validator.FieldLevel) bool {
	return URLPattern.MatchString(fl.Field().String())
}

// RegisterBinding installs the custom tags on gin's binding validator so
// request structs can use them in `binding:"..."` tags.
func RegisterBinding() error {
	bindingOnce.Do(func() {
		v, ok := binding.Validator.Engine().(*validator.Validate)
		if !ok {
			bindingErr = errors.New("gin binding engine is not go-playground/validator")
			return
		}
		bindingErr = v.RegisterValidation(urlPatternTag, matchURLPattern)
	})
	return bindingErr
}

// Struct validates s against its `validate` tags.
func Struct(s any) error {
	if err := validate.Struct(s); err != nil {
		return FromValidator(err)
	}
	return nil
}

// FromValidator converts validator and binding errors into a Validation error
// naming the first offending field.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return apperr.ValidationWrap(describe(verrs[0]), err)
	}
	return apperr.ValidationWrap("Incorrect data passed", err)
}

func describe(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("Field %q is required", field)
	case "email":
		return "Invalid email address"
	case "min", "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("Field %q has invalid length", field)
		}
	case urlPatternTag, "url":
		return fmt.Sprintf("Field %q must be a valid URL", field)
	case "uuid":
		return "Invalid identifier"
	}
	return fmt.Sprintf("Field %q is invalid", field)
}
