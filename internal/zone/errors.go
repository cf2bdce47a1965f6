package zone

import "fmt"

// constError is an immutable error type for sentinel errors.
type constError string

func (e constError) Error() string { return string(e) }

// Sentinel errors returned while loading and validating snapshots.
var (
	// ErrEmptySnapshot indicates the snapshot input contained no data.
	ErrEmptySnapshot = constError("empty snapshot")

	// ErrInvalidSchemaVersion indicates schemaVersion is not a semantic version.
	ErrInvalidSchemaVersion = constError("invalid snapshot schema version")

	// ErrUnsupportedSchema indicates schemaVersion is outside the supported range.
	ErrUnsupportedSchema = constError("unsupported snapshot schema version")

	// ErrUnknownMixMode indicates an unrecognized electricity mix mode name.
	ErrUnknownMixMode = constError("unknown electricity mix mode")
)

// UnknownValueError reports a value that could not be parsed into one of a
// fixed set of names. Kind is the sentinel matched by errors.Is.
type UnknownValueError struct {
	Kind  error
	Value string
}

func (e *UnknownValueError) Error() string {
	return fmt.Sprintf("%v: %q", e.Kind, e.Value)
}

// Unwrap returns the sentinel kind.
func (e *UnknownValueError) Unwrap() error {
	return e.Kind
}
