package httpx

import (
	"errors"
	"fmt"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	imageURLPattern  = regexp.MustCompile(`^https?://(?:www\.)?[-a-zA-Z0-9@:%._+~#=]{1,256}\.[a-zA-Z0-9()]{1,6}\b(?:[-a-zA-Z0-9()@:%_+.~#?&/=]*)$`)
	emailPattern     = regexp.MustCompile(`^[a-zA-Z0-9.]+@[a-zA-Z0-9]+\.[a-zA-Z0-9]+$`)
	usernamePattern  = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]{4,20}$`)
	precisionPattern = regexp.MustCompile(`^(?:year|month|date)$`)
)

var validate *validator.Validate

func init() {
	validate = validator.New()

	validate.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return f.Name
		}
		return name
	})
	validate.RegisterValidation("image_url", matchPattern(imageURLPattern))
	validate.RegisterValidation("account_email", matchPattern(emailPattern))
	validate.RegisterValidation("username", matchPattern(usernamePattern))
	validate.RegisterValidation("precision", matchPattern(precisionPattern))
}

func matchPattern(re *regexp.Regexp) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return re.MatchString(fl.Field().String())
	}
}

// fieldRules are the validation tags of every form field, keyed by the
// field's wire name.
var fieldRules = map[string]string{
	"title":       "required",
	"author":      "required",
	"description": "required",
	"image_url":   "required,image_url",
	"precision":   "required,precision",
	"email":       "required,account_email",
	"username":    "required,username",
	"fullname":    "required,min=4,max=32",
	"password":    "required",
}

var fieldLabels = map[string]string{
	"title":       "Title",
	"author":      "Author",
	"description": "Description",
	"image_url":   "Image URL",
	"precision":   "Date precision",
	"email":       "Email Address",
	"username":    "Username",
	"fullname":    "Fullname",
	"password":    "Password",
	"date":        "Published date",
}

// ValidateField checks a single form field value against its rule. Unknown
// fields are always valid.
func ValidateField(field string, value any) *ErrorDetail {
	rule, ok := fieldRules[field]
	if !ok {
		return nil
	}
	err := validate.Var(value, rule)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return &ErrorDetail{Field: field, Message: fmt.Sprintf("%s is invalid", label(field))}
	}
	return &ErrorDetail{Field: field, Message: message(field, verrs[0].Tag(), verrs[0].Param())}
}

// ValidateStruct validates s using its validate tags and reports every
// failing field.
func ValidateStruct(s interface{}) []ErrorDetail {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []ErrorDetail{{Field: "", Message: err.Error()}}
	}

	details := make([]ErrorDetail, 0, len(verrs))
	for _, fe := range verrs {
		details = append(details, ErrorDetail{
			Field:   fe.Field(),
			Message: message(fe.Field(), fe.Tag(), fe.Param()),
		})
	}
	return details
}

func label(field string) string {
	if l, ok := fieldLabels[field]; ok {
		return l
	}
	return field
}

func message(field, tag, param string) string {
	name := label(field)
	switch tag {
	case "required":
		return fmt.Sprintf("%s is required", name)
	case "image_url":
		return fmt.Sprintf("%s must be a valid URL", name)
	case "account_email":
		return "Email must be a valid email"
	case "username":
		return fmt.Sprintf("%s is not valid", name)
	case "precision":
		return fmt.Sprintf("%s must be one of: year month date", name)
	case "min":
		return fmt.Sprintf("%s must be at least %s characters", name, param)
	case "max":
		return fmt.Sprintf("%s must be at most %s characters", name, param)
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s", name, param)
	case "gt", "gte":
		return fmt.Sprintf("%s must be greater than %s", name, param)
	}
	return fmt.Sprintf("%s is invalid", name)
}
