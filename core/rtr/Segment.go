package rtr

// SegmentKind discriminates the two compiled segment forms.
// The set is closed; no new kinds appear at runtime.
type SegmentKind uint8

const (
	// KindStatic is literal text that must equal the path token exactly.
	KindStatic SegmentKind = iota

	// KindParam captures the path token under the segment's name.
	KindParam
)

// Segment is one compiled unit of a route pattern. Segments are
// produced once at registration time and never mutated afterwards.
type Segment struct {
	Kind SegmentKind

	// Text is the literal token for KindStatic, or the parameter name
	// for KindParam.
	Text string
}
