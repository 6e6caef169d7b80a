package collections

//go:generate go tool stringer -type=Shape -trimprefix=Shape -output=shape_string.go

// Shape identifies which traversal strategy the dispatcher uses for a
// resolved [Collection].
type Shape uint8

const (
	// ShapeSequence is a value exposing its own native iteration.
	ShapeSequence Shape = iota + 1
	// ShapeIndexed is a value with a length and integer-indexed access.
	ShapeIndexed
	// ShapeKeyed is a value with a finite set of keys and associated values.
	ShapeKeyed
)
