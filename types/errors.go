package types

import "fmt"

/*
 * A malformed command line. Line is 0 when the text did not come from a file.
 */
type ParseError struct {
	Line   int
	Text   string
	Reason string
	Err    error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("cannot parse %q: %s", e.Text, e.Reason)

	if e.Line > 0 {
		msg = fmt.Sprintf("line %d: %s", e.Line, msg)
	}

	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}

	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

/*
 * An unrecognized mode, or a configuration value that cannot be used.
 * For modes the message is the user facing diagnostic.
 */
type ConfigurationError struct {
	Key   string
	Value string
	Err   error
}

func (e *ConfigurationError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("Mode '%s' not recognized", e.Value)
	}

	if e.Err != nil {
		return fmt.Sprintf("invalid %s %q: %v", e.Key, e.Value, e.Err)
	}

	return fmt.Sprintf("invalid %s %q", e.Key, e.Value)
}

func (e *ConfigurationError) Unwrap() error {
	return e.Err
}

/*
 * The input stream or a socket could not be opened or read.
 */
type ResourceError struct {
	Resource string
	Err      error
}

func (e *ResourceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Resource, e.Err)
}

func (e *ResourceError) Unwrap() error {
	return e.Err
}
