package svg

// CommandType is the upper-case letter of a path command.
type CommandType byte

const (
	MoveTo                 CommandType = 'M'
	LineTo                 CommandType = 'L'
	HorizontalLineTo       CommandType = 'H'
	VerticalLineTo         CommandType = 'V'
	CubicCurveTo           CommandType = 'C'
	SmoothCubicCurveTo     CommandType = 'S'
	QuadraticCurveTo       CommandType = 'Q'
	SmoothQuadraticCurveTo CommandType = 'T'
	ArcTo                  CommandType = 'A'
	ClosePath              CommandType = 'Z'
)

var arity = map[CommandType]int{
	MoveTo:                 2,
	LineTo:                 2,
	HorizontalLineTo:       1,
	VerticalLineTo:         1,
	CubicCurveTo:           6,
	SmoothCubicCurveTo:     4,
	QuadraticCurveTo:       4,
	SmoothQuadraticCurveTo: 2,
	ArcTo:                  7,
	ClosePath:              0,
}

var commandNames = map[CommandType]string{
	MoveTo:                 "MoveTo",
	LineTo:                 "LineTo",
	HorizontalLineTo:       "HorizontalLineTo",
	VerticalLineTo:         "VerticalLineTo",
	CubicCurveTo:           "CubicCurveTo",
	SmoothCubicCurveTo:     "SmoothCubicCurveTo",
	QuadraticCurveTo:       "QuadraticCurveTo",
	SmoothQuadraticCurveTo: "SmoothQuadraticCurveTo",
	ArcTo:                  "ArcTo",
	ClosePath:              "ClosePath",
}

func (c CommandType) String() string {
	if s, ok := commandNames[c]; ok {
		return s
	}
	return "CommandType(" + string(rune(c)) + ")"
}

// Arity is the number of operands one repetition of c consumes.
func (c CommandType) Arity() int { return arity[c] }

// Command is one parsed path command. Args has exactly Type.Arity()
// values; arc flags are 0 or 1.
type Command struct {
	Type     CommandType
	Relative bool
	Args     []float64
}

// Letter returns the command letter as written, lower case when relative.
func (c Command) Letter() byte {
	if c.Relative {
		return byte(c.Type) + 'a' - 'A'
	}
	return byte(c.Type)
}
