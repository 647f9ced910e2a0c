// Package is holds common string format validation rules, built on
// govalidator's format predicates. Every rule is a shared immutable value
// that can be used directly:
//
//	rule := accord.All(accord.Length(1, 254), is.Email)
package is

import (
	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"

	"github.com/wix/accord"
)

var (
	// Email validates an email address.
	Email = format(govalidator.IsEmail, "must be a valid email address", "email")
	// URL validates an absolute URL.
	URL = format(govalidator.IsURL, "must be a valid URL", "uri")
	// UUID validates a UUID in canonical textual form.
	UUID = format(govalidator.IsUUID, "must be a valid UUID", "uuid")
	// Alpha validates a string of ASCII letters only.
	Alpha = format(govalidator.IsAlpha, "must contain letters only", "")
	// Alphanumeric validates a string of ASCII letters and digits only.
	Alphanumeric = format(govalidator.IsAlphanumeric, "must contain letters and digits only", "")
	// Digit validates a string of digits only.
	Digit = format(govalidator.IsNumeric, "must contain digits only", "")
	// ASCII validates a string of printable ASCII characters.
	ASCII = format(govalidator.IsASCII, "must contain ASCII characters only", "")
	// JSON validates a JSON document.
	JSON = format(govalidator.IsJSON, "must be valid JSON", "")
	// IP validates an IPv4 or IPv6 address.
	IP = format(govalidator.IsIP, "must be a valid IP address", "")
	// Host validates a hostname or IP address.
	Host = format(govalidator.IsHost, "must be a valid hostname or IP address", "hostname")
	// LowerCase validates a string without upper case characters.
	LowerCase = format(govalidator.IsLowerCase, "must be lower case", "")
	// UpperCase validates a string without lower case characters.
	UpperCase = format(govalidator.IsUpperCase, "must be upper case", "")
	// Base64 validates a base64-encoded string.
	Base64 = format(govalidator.IsBase64, "must be base64-encoded", "byte")
)

func format(f func(string) bool, desc, schemaFormat string) accord.Validator[string] {
	return formatValidator{f: f, desc: desc, format: schemaFormat}
}

type formatValidator struct {
	f      func(string) bool
	desc   string
	format string
}

// Validate skips empty strings: combine with NotEmpty to require a value.
func (v formatValidator) Validate(value string) accord.Result {
	if value == "" || v.f(value) {
		return accord.Success()
	}
	return accord.Failure(accord.Violation{Value: value, Constraint: v.desc, Path: accord.EmptyPath})
}

func (v formatValidator) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if v.format != "" {
		ref.Value.Format = v.format
	}
	if ref.Value.Description != "" {
		ref.Value.Description += " "
	}
	ref.Value.Description += v.desc
	return nil
}
