package colors

// Color of a traffic light.
// @strum(serialize_all:"snake", string, parse, values, message, count)
type Color int

const (
	// @variant(message:"stop")
	// @props(hex:"#ff0000")
	Red Color = iota

	// @variant(serialize:"g", message:"go", detailed_message:"green means go")
	Green

	// @variant(to_string:"BLUE", serialize:"b")
	Blue

	// @variant(disabled)
	Yellow
)

// Priority is declared alongside unrelated constants to exercise the
// const-block type inheritance rules.
// @strum(parse, string)
type Priority int

const (
	Low Priority = iota
	High

	unrelated = "not a Priority"
)
