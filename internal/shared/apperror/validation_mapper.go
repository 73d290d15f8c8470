package apperror

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// employee_name -> Employee Name
func formatFieldName(s string) string {
	s = strings.ReplaceAll(s, "_", " ")
	caser := cases.Title(language.English)
	return caser.String(s)
}

// ValidationMessages turns every field error into one message, keeping the
// order in which the validator reported them (struct field order). Fields
// listed in overrides use the supplied text; the rest fall back to the
// generic required/invalid wording.
func ValidationMessages(err error, overrides map[string]string) []string {
	var errs validator.ValidationErrors
	if !errors.As(err, &errs) {
		if err == nil {
			return nil
		}
		return []string{err.Error()}
	}

	messages := make([]string, 0, len(errs))
	for _, e := range errs {
		if msg, ok := overrides[e.Field()]; ok {
			messages = append(messages, msg)
			continue
		}
		field := formatFieldName(e.Field())
		if e.Tag() == "required" {
			messages = append(messages, RequiredField(field).Message)
			continue
		}
		messages = append(messages, InvalidField(field).Message)
	}
	return messages
}
