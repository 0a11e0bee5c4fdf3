package user

import (
	"strings"

	pkgErrors "mongo-crud-api/pkg/errors"
)

const (
	MsgNameRequired  = "Name is required"
	MsgEmailRequired = "Email is required"
)

// Normalize trims the provided fields in place and rejects blank ones.
// Email format and uniqueness are not checked.
func Normalize(name, email *string) error {
	var msgs []string
	if name != nil {
		*name = strings.TrimSpace(*name)
		if *name == "" {
			msgs = append(msgs, MsgNameRequired)
		}
	}
	if email != nil {
		*email = strings.TrimSpace(*email)
		if *email == "" {
			msgs = append(msgs, MsgEmailRequired)
		}
	}
	return pkgErrors.NewValidationError(msgs)
}
