// Package command contains write operations (CQRS - Commands).
// Each file is one self-contained use case: a command struct with input
// validation, a handler with its dependencies, and a result type.
package command

import (
	"errors"

	"github.com/go-playground/validator/v10"

	"github.com/campus-hub/student-registry/internal/domain/shared"
)

// validate is the shared struct validator for command input. It is the
// first gate only: the domain entities re-check everything they care
// about, so a command that slips through still cannot corrupt a record.
var validate = validator.New(validator.WithRequiredStructEnabled())

// fieldErrors maps struct field names to the domain error reported when
// that field fails its validation tags.
var fieldErrors = map[string]*shared.DomainError{
	"ID":         shared.ErrInvalidStudentID,
	"StudentID":  shared.ErrInvalidStudentID,
	"Name":       shared.ErrInvalidName,
	"NationalID": shared.ErrInvalidNationalID,
	"CourseName": shared.ErrInvalidCourseName,
	"Item":       shared.ErrInvalidCourseName,
	"Grade":      shared.ErrInvalidGrade,
	"Position":   shared.ErrInvalidPosition,
}

// checkStruct runs tag validation and converts the first failure into
// the matching domain error.
func checkStruct(cmd any) error {
	err := validate.Struct(cmd)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		if domainErr, ok := fieldErrors[verrs[0].Field()]; ok {
			return domainErr
		}
	}
	return shared.WrapError("command", "Validate", shared.ErrInvalidInput, "invalid command input", err)
}
