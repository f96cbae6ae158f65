package jsgen

import "fmt"

// UnsupportedError reports a source construct the translator has no
// JavaScript rendering for. Translation of the enclosing declaration
// aborts; the construct is never silently dropped.
type UnsupportedError struct {
	Construct string // node or macro kind, e.g. "struct update syntax"
	Detail    string // optional specifics, e.g. the offending name
}

func (e *UnsupportedError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("unsupported %s: %s", e.Construct, e.Detail)
	}
	return fmt.Sprintf("unsupported %s", e.Construct)
}

func unsupportedf(construct, format string, args ...any) error {
	return &UnsupportedError{Construct: construct, Detail: fmt.Sprintf(format, args...)}
}

func unsupported(construct string) error {
	return &UnsupportedError{Construct: construct}
}
