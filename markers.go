package erroror

// Marker payloads for operations whose only meaningful output is which
// flavor of success occurred. They carry no data; equality is
// type-based since all values of an empty struct type are equal.
type (
	Success struct{}
	Created struct{}
	Updated struct{}
	Deleted struct{}
)

// Ready-made success containers, one per marker, so call sites can
// return the marker directly: `return erroror.ResultCreated`.
var (
	ResultSuccess = FromValue(Success{})
	ResultCreated = FromValue(Created{})
	ResultUpdated = FromValue(Updated{})
	ResultDeleted = FromValue(Deleted{})
)
