// Package strum generates string conversion, iteration, metadata and
// discriminant-extraction code for annotated Go enums.
//
// Two enum shapes are recognized. A const-block enum is a named type
// with an associated const block:
//
//	// @strum(serialize_all:"snake", parse, string, values, count)
//	type Color int
//
//	const (
//		Red Color = iota
//		// @variant(serialize:"g", message:"go")
//		Green
//		// @variant(disabled)
//		Yellow
//	)
//
// A sum type is a sealed interface (exactly one unexported method)
// whose variants are the struct types implementing it:
//
//	// @strum(serialize_all:"snake", parse, string, values)
//	// @discriminants(name:"ShapeKind", derive:"parse,values,count")
//	type Shape interface{ isShape() }
//
//	type Circle struct{ Radius float64 }
//
//	func (Circle) isShape() {}
//
//	// @variant(default)
//	type Unknown struct{ Name string }
//
//	func (Unknown) isShape() {}
//
// Scanning walks the configured packages, builds a descriptor per
// annotated enum, validates it, and emits one <enum>_strum.go file per
// enum implementing the requested capabilities. Set STRUM_DEBUG=all (or
// to a comma-separated list of enum names) to dump generated source to
// stderr.
package strum
