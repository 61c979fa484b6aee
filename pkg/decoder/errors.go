package decoder

import "fmt"

// ContentError reports an invalid content document: the JSON text
// parsed, but the objects in it do not form a legal world. The message
// is meant to be shown to the document author verbatim.
type ContentError struct {
	msg string
}

func (e *ContentError) Error() string {
	return e.msg
}

func contentErrf(format string, args ...any) *ContentError {
	return &ContentError{msg: fmt.Sprintf(format, args...)}
}
