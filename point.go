package generics

type Point[T any] struct {
	x T
	y T
}

func NewPoint[T any](x, y T) Point[T] {
	return Point[T]{x: x, y: y}
}

func (p *Point[T]) X() *T {
	return &p.x
}

func (p *Point[T]) Y() *T {
	return &p.y
}

// Point2 is a point whose coordinates may have different types.
type Point2[T any, U any] struct {
	x T
	y U
}

func NewPoint2[T any, U any](x T, y U) Point2[T, U] {
	return Point2[T, U]{x: x, y: y}
}

func (p *Point2[T, U]) X() *T {
	return &p.x
}

func (p *Point2[T, U]) Y() *U {
	return &p.y
}
