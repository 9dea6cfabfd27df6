package nbtfix

import "errors"

var (
	// ErrUnexpectedEOF is returned when the input ends before a complete payload
	ErrUnexpectedEOF = errors.New("nbtfix: unexpected end of input")

	// ErrInvalidTag is returned when an undefined tag ID is encountered
	ErrInvalidTag = errors.New("nbtfix: invalid tag ID")

	// ErrTagMismatch is returned when a payload is encoded or decoded under
	// a tag type that does not match the value
	ErrTagMismatch = errors.New("nbtfix: tag type mismatch")

	// ErrStringTooLong is returned when a string exceeds the uint16 length
	// prefix or the configured MaxStringLen
	ErrStringTooLong = errors.New("nbtfix: string exceeds maximum length")

	// ErrArrayTooLong is returned when an array exceeds MaxArrayLen
	ErrArrayTooLong = errors.New("nbtfix: array exceeds maximum length")

	// ErrListTooLong is returned when a list exceeds MaxListLen
	ErrListTooLong = errors.New("nbtfix: list exceeds maximum length")

	// ErrCompoundTooLarge is returned when a compound exceeds MaxCompoundLen
	ErrCompoundTooLarge = errors.New("nbtfix: compound exceeds maximum size")

	// ErrNegativeLength is returned when a length prefix decodes negative
	ErrNegativeLength = errors.New("nbtfix: negative length prefix")

	// ErrMaxDepthExceeded is returned when nesting exceeds MaxDepth
	ErrMaxDepthExceeded = errors.New("nbtfix: maximum nesting depth exceeded")
)
