package press

import "fmt"

// A FormatError reports a compressed stream that cannot be parsed, or a
// token whose fields cannot be represented in the configured wire widths.
type FormatError struct {
	Offset int // byte offset in the compressed stream; -1 if not positional
	Reason string
}

func (e *FormatError) Error() string {
	if e.Offset < 0 {
		return fmt.Sprintf("press: %s", e.Reason)
	}
	return fmt.Sprintf("press: offset %d: %s", e.Offset, e.Reason)
}

// A ReferenceError reports a back-reference that points before the start
// of the reconstructed stream. It indicates a corrupt stream or an encoder
// bug, and is fatal to the decode.
type ReferenceError struct {
	Token     int // index of the offending token
	Offset    int // backward distance the token asked for
	OutputLen int // bytes reconstructed when the token was applied
}

func (e *ReferenceError) Error() string {
	return fmt.Sprintf("press: token %d: reference %d bytes back with only %d bytes reconstructed",
		e.Token, e.Offset, e.OutputLen)
}

// A ConfigError reports Options outside the representable range. It is
// detected at construction, before any bytes are processed.
type ConfigError struct {
	Field  string
	Reason string
}

func (e *ConfigError) Error() string {
	return fmt.Sprintf("press: %s: %s", e.Field, e.Reason)
}
