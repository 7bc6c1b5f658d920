package colors

import "fmt"

// ValidationError is returned by the From functions when the supplied
// representation is malformed or out of range.
type ValidationError struct {
	// Arg names the rejected representation ("hex", "rgb", "hsv" or "hls").
	Arg string

	// Reason describes why the value was rejected.
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("colors: invalid %s value: %s", e.Arg, e.Reason)
}

// DivisionError is returned by [Color.Divide] when a channel of the divisor
// color is zero.
type DivisionError struct {
	// Channel is the offending channel index (0 = red, 1 = green, 2 = blue).
	Channel int
}

func (e *DivisionError) Error() string {
	return fmt.Sprintf("colors: division by zero in %s channel", channelName(e.Channel))
}

func channelName(i int) string {
	switch i {
	case 0:
		return "red"
	case 1:
		return "green"
	case 2:
		return "blue"
	default:
		return "unknown"
	}
}
