package util

import (
	"errors"
	"time"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// Application dates live in the past or today, never ahead of now.
	must(v.RegisterValidation("notfuture", func(fl validator.FieldLevel) bool {
		d, err := time.ParseInLocation("2006-01-02", fl.Field().String(), time.Local)
		if err != nil {
			return false
		}
		return !d.After(time.Now())
	}))
	return v
}

func must(err error) {
	if err != nil {
		panic(err)
	}
}

// fieldMessage mirrors the messages the submit form shows for each rule.
func fieldMessage(field, tag string) string {
	switch field {
	case "Company":
		return "Company name must be at least 2 characters long"
	case "Role":
		return "Role title must be at least 2 characters long"
	case "Location":
		return "Location must be at least 2 characters long"
	case "Deadline":
		if tag == "notfuture" {
			return "Application date cannot be in the future"
		}
		return "Application date is required"
	case "Notes":
		return "Notes cannot exceed 500 characters"
	}
	return ""
}

// ValidateStruct runs the registered rules and returns one human-readable
// message per violation, empty when the value is valid.
func ValidateStruct(v any) []string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}

	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		if msg := fieldMessage(fe.Field(), fe.Tag()); msg != "" {
			msgs = append(msgs, msg)
			continue
		}
		msgs = append(msgs, fe.Error())
	}
	return msgs
}
