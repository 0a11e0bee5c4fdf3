package item

import (
	"fmt"
	"strings"
	"unicode/utf8"

	pkgErrors "mongo-crud-api/pkg/errors"
)

const (
	NameMaxLength        = 100
	DescriptionMaxLength = 500
)

var (
	MsgNameRequired        = "Name is required"
	MsgDescriptionRequired = "Description is required"
	MsgNameTooLong         = fmt.Sprintf("Name cannot be more than %d characters", NameMaxLength)
	MsgDescriptionTooLong  = fmt.Sprintf("Description cannot be more than %d characters", DescriptionMaxLength)
)

// Normalize trims the provided fields in place and checks them against the
// stored schema. Nil fields are skipped so partial updates validate only what
// they change. The returned error is a *errors.ValidationError or nil.
func Normalize(name, description *string) error {
	var msgs []string

	if name != nil {
		*name = strings.TrimSpace(*name)
		switch {
		case *name == "":
			msgs = append(msgs, MsgNameRequired)
		case utf8.RuneCountInString(*name) > NameMaxLength:
			msgs = append(msgs, MsgNameTooLong)
		}
	}

	if description != nil {
		*description = strings.TrimSpace(*description)
		switch {
		case *description == "":
			msgs = append(msgs, MsgDescriptionRequired)
		case utf8.RuneCountInString(*description) > DescriptionMaxLength:
			msgs = append(msgs, MsgDescriptionTooLong)
		}
	}

	return pkgErrors.NewValidationError(msgs)
}
