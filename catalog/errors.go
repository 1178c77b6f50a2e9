package catalog

import (
	"errors"
	"fmt"
)

var (
	// ErrInvalidDefinition is matched by every *DefinitionError.
	ErrInvalidDefinition = errors.New("invalid definition")

	// ErrBadMagic is returned when data does not start with the snapshot magic.
	ErrBadMagic = errors.New("not a unit snapshot")

	// ErrUnsupportedVersion is returned for snapshots written by a newer format.
	ErrUnsupportedVersion = errors.New("unsupported snapshot version")

	// ErrChecksum is returned when the payload checksum does not match.
	ErrChecksum = errors.New("snapshot checksum mismatch")

	// ErrTruncated is returned when the snapshot is shorter than its header claims.
	ErrTruncated = errors.New("snapshot truncated")

	// ErrTooLarge is returned when a snapshot payload exceeds MaxSnapshotSize.
	ErrTooLarge = errors.New("snapshot too large")

	// ErrUnknownCodec is returned when the snapshot names a codec that is not built in.
	ErrUnknownCodec = errors.New("unknown snapshot codec")

	// ErrUnknownCompression is returned for an unrecognised compression type.
	ErrUnknownCompression = errors.New("unknown compression")
)

// DefinitionError describes why a unit or dimension definition was rejected.
type DefinitionError struct {
	Name   string
	Reason string
	cause  error
}

func (e *DefinitionError) Error() string {
	msg := fmt.Sprintf("invalid definition %q: %s", e.Name, e.Reason)
	if e.cause != nil {
		msg += ": " + e.cause.Error()
	}
	return msg
}

// Is reports whether target is ErrInvalidDefinition.
func (e *DefinitionError) Is(target error) bool { return target == ErrInvalidDefinition }

// Unwrap returns the underlying error, if any.
func (e *DefinitionError) Unwrap() error { return e.cause }
