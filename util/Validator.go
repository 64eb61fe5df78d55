package util

import (
	"strings"

	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// ValidateStruct checks for tag-based validation errors
func ValidateStruct(payload interface{}) error {
	err := validate.Struct(payload)
	if err != nil {
		return err
	}
	return nil
}

// IsValidEmail reports whether addr is a deliverable-looking address:
// a local part, an "@", and a domain containing a dot.
func IsValidEmail(addr string) bool {
	if validate.Var(addr, "required,email") != nil {
		return false
	}
	// The email tag accepts dotless domains ("user@localhost"); we require
	// a fully qualified domain since we must actually deliver mail there.
	at := strings.LastIndex(addr, "@")
	return strings.Contains(addr[at+1:], ".")
}
