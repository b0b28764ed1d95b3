package erroror

import "fmt"

// Kind classifies a failure so that downstream presentation logic can
// map it to a response category. Values outside the fixed set below are
// custom kinds carrying their numeric tag.
type Kind int

const (
	KindFailure Kind = iota
	KindUnexpected
	KindValidation
	KindConflict
	KindNotFound
	KindUnauthorized
	KindForbidden
)

var kindNames = map[Kind]string{
	KindFailure:      "failure",
	KindUnexpected:   "unexpected",
	KindValidation:   "validation",
	KindConflict:     "conflict",
	KindNotFound:     "not_found",
	KindUnauthorized: "unauthorized",
	KindForbidden:    "forbidden",
}

// String returns the name of a fixed kind, or "custom(N)" for any
// numeric tag outside the fixed set.
func (k Kind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("custom(%d)", int(k))
}
