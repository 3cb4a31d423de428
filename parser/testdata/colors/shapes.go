package colors

// Shape is a closed set of geometric figures.
// @strum(serialize_all:"snake", string, parse, values, count)
// @discriminants(name:"ShapeKind", derive:"parse,values,count")
type Shape interface{ isShape() }

type Circle struct {
	Radius float64
}

func (Circle) isShape() {}

type Rect struct {
	W, H float64
}

func (Rect) isShape() {}

// @variant(default)
type Unknown struct {
	Name string
}

func (Unknown) isShape() {}

// NotAVariant does not implement the marker.
type NotAVariant struct{}
