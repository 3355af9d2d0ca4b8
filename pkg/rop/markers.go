package rop

// Payload-free values for results that only signal an outcome, e.g.
// Result[Deleted]. All values of a marker type are equal.
type (
	Success struct{}
	Created struct{}
	Updated struct{}
	Deleted struct{}
)
