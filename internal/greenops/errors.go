package greenops

import "fmt"

// constError is an immutable error type for sentinel errors.
// It implements the error interface and provides compile-time safety.
type constError string

func (e constError) Error() string { return string(e) }

// Error types for carbon intensity calculations.
// These are sentinel errors that can be compared with errors.Is().
var (
	// ErrDomainNotImplemented indicates a carbon intensity domain with no formula.
	// It signals a programming error in the caller, not bad data.
	ErrDomainNotImplemented = constError("carbon intensity domain not implemented")

	// ErrUnknownDomain indicates a domain name that ParseDomain does not recognize.
	ErrUnknownDomain = constError("unknown carbon intensity domain")
)

// DomainError wraps ErrDomainNotImplemented with the offending domain.
type DomainError struct {
	Domain Domain
}

func (e *DomainError) Error() string {
	return fmt.Sprintf("%v: %s", ErrDomainNotImplemented, e.Domain)
}

// Unwrap returns ErrDomainNotImplemented.
func (e *DomainError) Unwrap() error {
	return ErrDomainNotImplemented
}
