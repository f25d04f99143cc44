package entities

import (
	"errors"
	"regexp"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

var (
	errRequired    = validation.NewError(CodeRequired, "is required")
	errEmailFormat = validation.NewError(CodeInvalidFormat, "must be a valid email address")
	errDateFormat  = validation.NewError(CodeInvalidFormat, "must be a date in YYYY-MM-DD format")
)

// ContactInfo is collected in the last wizard step. Company is optional.
type ContactInfo struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Company string `json:"company,omitempty"`
}

// Normalize trims surrounding whitespace from every field.
func (c ContactInfo) Normalize() ContactInfo {
	return ContactInfo{
		Name:    strings.TrimSpace(c.Name),
		Email:   strings.TrimSpace(c.Email),
		Phone:   strings.TrimSpace(c.Phone),
		Company: strings.TrimSpace(c.Company),
	}
}

func (c ContactInfo) Validate() ValidationErrors {
	n := c.Normalize()
	err := validation.ValidateStruct(&n,
		validation.Field(&n.Name, validation.Required.ErrorObject(errRequired)),
		validation.Field(&n.Email,
			validation.Required.ErrorObject(errRequired),
			validation.Match(emailPattern).ErrorObject(errEmailFormat),
		),
		validation.Field(&n.Phone, validation.Required.ErrorObject(errRequired)),
	)
	return fromOzzo(err, "name", "email", "phone")
}

// fromOzzo flattens ozzo field errors into ValidationErrors following the
// given field order, which is the order fields appear on screen.
func fromOzzo(err error, order ...string) ValidationErrors {
	if err == nil {
		return nil
	}
	var fieldErrs validation.Errors
	if !errors.As(err, &fieldErrs) {
		return ValidationErrors{{Field: "", Code: CodeInvalidFormat}}
	}
	var out ValidationErrors
	for _, field := range order {
		fe, ok := fieldErrs[field]
		if !ok || fe == nil {
			continue
		}
		code := CodeInvalidFormat
		var ve validation.Error
		if errors.As(fe, &ve) {
			code = ve.Code()
		}
		out.add(field, code)
	}
	return out
}
