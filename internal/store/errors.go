package store

import (
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"
)

// State-precondition conflicts. The client may retry after re-reading current
// state.
var (
	// ErrAssetUnavailable covers both "already on loan" and "no such asset":
	// the conditional status update cannot tell them apart, and callers do not
	// need the distinction.
	ErrAssetUnavailable = errors.New("asset is not available")
	ErrAssetNotOnLoan   = errors.New("asset is not on loan")
	ErrSerialExists     = errors.New("serial number already exists")
	ErrTypeNameExists   = errors.New("type name already exists")
)

// Missing rows.
var (
	ErrAssetNotFound = errors.New("asset not found")
	ErrTypeNotFound  = errors.New("asset type not found")
	// ErrNoOpenLoan means the asset claimed to be on loan but no open record
	// exists, a ledger inconsistency the explicit return path refuses to
	// paper over.
	ErrNoOpenLoan = errors.New("no active loan record")
)

// ErrAssetHasOpenLoan rejects deletion of an asset with an unreturned loan.
var ErrAssetHasOpenLoan = &ValidationError{Msg: "asset has an unreturned loan"}

// ValidationError marks malformed or missing input. Never retried as-is; the
// client must fix the request.
type ValidationError struct {
	Msg string
}

func (e *ValidationError) Error() string { return e.Msg }

func validationf(format string, args ...any) error {
	return &ValidationError{Msg: fmt.Sprintf(format, args...)}
}

// IsValidation reports whether err is a validation failure.
func IsValidation(err error) bool {
	var ve *ValidationError
	return errors.As(err, &ve)
}

// isDuplicate detects uniqueness violations. GORM's TranslateError covers the
// postgres driver; the raw message match covers drivers without a translator.
func isDuplicate(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := err.Error()
	return strings.Contains(msg, "UNIQUE constraint failed") ||
		strings.Contains(msg, "duplicate key value")
}
