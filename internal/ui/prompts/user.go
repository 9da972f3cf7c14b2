package prompts

import (
	"github.com/charmbracelet/huh"
	"github.com/hance08/tally/internal/constants"
	"github.com/hance08/tally/internal/validation"
)

// PromptIdentifierKind asks how the user should be looked up.
func PromptIdentifierKind() (string, error) {
	kind := constants.IdentifierEmail

	err := huh.NewSelect[string]().
		Title("Find the user by:").
		Options(
			huh.NewOption("Email", constants.IdentifierEmail),
			huh.NewOption("Phone", constants.IdentifierPhone),
			huh.NewOption("User ID", constants.IdentifierUserID),
		).
		Value(&kind).
		Run()

	return kind, err
}

func PromptIdentifier(kind string) (string, error) {
	titles := map[string]string{
		constants.IdentifierEmail:  "Email address:",
		constants.IdentifierPhone:  "Phone number:",
		constants.IdentifierUserID: "User ID:",
	}
	return PromptInput(titles[kind], "", validation.ValidateIdentifier(kind))
}

// PromptUserLookup asks for whatever part of a lookup is missing.
func PromptUserLookup(identifier, kind string) (string, string, error) {
	var err error
	if kind == "" {
		if kind, err = PromptIdentifierKind(); err != nil {
			return "", "", err
		}
	}
	if identifier == "" {
		if identifier, err = PromptIdentifier(kind); err != nil {
			return "", "", err
		}
	}
	return identifier, kind, nil
}

// PromptNewUser fills the empty fields of a new user in a single form.
func PromptNewUser(email, phone, first, last *string) error {
	var fields []huh.Field

	if *first == "" {
		fields = append(fields, huh.NewInput().Title("First name:").Value(first).Validate(validation.ValidateName))
	}
	if *last == "" {
		fields = append(fields, huh.NewInput().Title("Last name:").Value(last).Validate(validation.ValidateName))
	}
	if *email == "" {
		fields = append(fields, huh.NewInput().
			Title("Email address:").
			Description("Leave empty to skip").
			Value(email).
			Validate(optional(validation.ValidateIdentifier(constants.IdentifierEmail))))
	}
	if *phone == "" {
		fields = append(fields, huh.NewInput().
			Title("Phone number:").
			Description("Leave empty to skip").
			Value(phone).
			Validate(optional(validation.ValidateIdentifier(constants.IdentifierPhone))))
	}

	if len(fields) == 0 {
		return nil
	}
	return huh.NewForm(huh.NewGroup(fields...)).Run()
}

func optional(validator func(string) error) func(string) error {
	return func(s string) error {
		if validation.SanitizeIdentifier(s) == "" {
			return nil
		}
		return validator(s)
	}
}
