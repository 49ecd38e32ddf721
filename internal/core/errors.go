package core

// errors.go defines the fatal error taxonomy of the merge pipeline and
// the mapping to user-friendly messages with support codes.
//
// The three fatal kinds stop the pipeline immediately and produce no
// output buffer. Everything else (empty emails, unmatched rows, invalid
// score values) is recovered per row and aggregated into the MergeReport.
//
// # Error Codes Reference
//
//	FILE003 - Encoding error: no supported encoding could decode the file
//	FILE005 - Empty file: no data rows after the header
//	VAL004  - Missing column: required identity column absent
//	SYS001  - Unexpected error

import (
	"errors"
	"fmt"
	"strings"
)

// DecodeError indicates that none of the supported encodings (UTF-8,
// UTF-8 with BOM, ISO-8859-1, CP1252) could decode the file.
type DecodeError struct {
	Role Role
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("%s file: no supported encoding could decode the file", e.Role)
}

// EmptyFileError indicates a file with zero data rows after the header.
type EmptyFileError struct {
	Role Role
}

func (e *EmptyFileError) Error() string {
	return fmt.Sprintf("%s file: no data rows after the header", e.Role)
}

// MissingColumnError indicates that one or more required identity
// columns are absent. Missing lists every absent column by its expected
// name.
type MissingColumnError struct {
	Role    Role
	Missing []string
}

func (e *MissingColumnError) Error() string {
	return fmt.Sprintf("%s file: missing required columns: %s", e.Role, strings.Join(e.Missing, ", "))
}

// UserMessage is a user-friendly rendering of an error, with a support
// code users can quote for faster diagnosis.
type UserMessage struct {
	Code    string
	Message string
	Action  string
}

// MapError translates an engine error into a UserMessage.
// Unknown errors get a generic message; the technical detail stays in
// the server-side log.
func MapError(err error) UserMessage {
	var decodeErr *DecodeError
	var emptyErr *EmptyFileError
	var missingErr *MissingColumnError

	switch {
	case errors.As(err, &decodeErr):
		return UserMessage{
			Code:    "FILE003",
			Message: fmt.Sprintf("The %s file contains characters in an unsupported encoding.", decodeErr.Role),
			Action:  "Re-export the file, or save it as UTF-8 and try again.",
		}
	case errors.As(err, &emptyErr):
		return UserMessage{
			Code:    "FILE005",
			Message: fmt.Sprintf("The %s file has no student rows.", emptyErr.Role),
			Action:  "Check that you exported the right file and that it contains data below the header.",
		}
	case errors.As(err, &missingErr):
		return UserMessage{
			Code:    "VAL004",
			Message: fmt.Sprintf("The %s file is missing required columns: %s.", missingErr.Role, strings.Join(missingErr.Missing, ", ")),
			Action:  "Export the file again without removing or renaming the identity columns.",
		}
	default:
		return UserMessage{
			Code:    "SYS001",
			Message: "An unexpected error occurred while processing the files.",
			Action:  "Please try again. If the problem persists, quote this code to support.",
		}
	}
}

// IsFatal reports whether err is one of the typed errors that abort a
// merge run.
func IsFatal(err error) bool {
	var decodeErr *DecodeError
	var emptyErr *EmptyFileError
	var missingErr *MissingColumnError
	return errors.As(err, &decodeErr) || errors.As(err, &emptyErr) || errors.As(err, &missingErr)
}
