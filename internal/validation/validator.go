package validation

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	entranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/labstack/echo/v4"
)

// Violation describes single invalid field
type Violation struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

type PayloadError struct {
	violations []Violation
}

func (e *PayloadError) Error() string {
	buff := bytes.NewBufferString("")

	for _, err := range e.violations {
		buff.WriteString(err.Message)
		buff.WriteString("\n")
	}

	return buff.String()
}

func (e *PayloadError) Violation(v Violation) {
	e.violations = append(e.violations, v)
}

// Violations returns copy of collected violations
func (e *PayloadError) Violations() []Violation {
	res := make([]Violation, len(e.violations))
	copy(res, e.violations)
	return res
}

func (e *PayloadError) MarshalJSON() ([]byte, error) {
	return json.Marshal(&struct {
		Errors []Violation `json:"errors"`
	}{
		Errors: e.violations,
	})
}

type EchoValidator struct {
	validator  *validator.Validate
	translator ut.Translator
}

func Echo(validator *validator.Validate, translator ut.Translator) *EchoValidator {
	return &EchoValidator{
		validator:  validator,
		translator: translator,
	}
}

// NewEcho builds validator with english messages, field names are taken from param or json tags
func NewEcho() (*EchoValidator, error) {
	enLocale := en.New()
	unvTranslator := ut.New(enLocale, enLocale)

	trans, ok := unvTranslator.GetTranslator("en")
	if !ok {
		return nil, errors.New("failed to build echo validator because of missing en translations")
	}

	v := validator.New()
	v.RegisterTagNameFunc(tagName)

	if err := entranslations.RegisterDefaultTranslations(v, trans); err != nil {
		return nil, fmt.Errorf("failed to register validation translations - %w", err)
	}

	return Echo(v, trans), nil
}

func (v *EchoValidator) Validate(i any) error {
	err := v.validator.Struct(i)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		return v.payloadError(ve)
	}

	return echo.NewHTTPError(http.StatusInternalServerError, err.Error())
}

func (v *EchoValidator) payloadError(ve validator.ValidationErrors) error {
	pldErr := &PayloadError{violations: make([]Violation, 0)}
	for _, e := range ve {
		pldErr.Violation(Violation{
			Field:   e.Field(),
			Message: e.Translate(v.translator),
		})
	}
	return pldErr
}

func tagName(f reflect.StructField) string {
	for _, tag := range []string{"param", "json"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}
