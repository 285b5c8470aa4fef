// Package view describes the presentation surface the controllers drive:
// selection inputs that receive options and panes that show messages.
// Implementations decide how things look.
package view

// Level is the presentation variant of a message.
type Level int

const (
	// Info is an advisory text, for example a trend note.
	Info Level = iota
	// Success shows a usable result.
	Success
	// Warning shows that a request did not produce a usable result.
	Warning
)

func (l Level) String() string {
	switch l {
	case Info:
		return "info"
	case Success:
		return "success"
	case Warning:
		return "warning"
	default:
		return "unknown"
	}
}

// Kind tags why a message was produced. Different kinds can share the
// same Level.
type Kind int

const (
	// KindNone marks messages that are not about a problem.
	KindNone Kind = iota
	// KindTransport means the call itself failed.
	KindTransport
	// KindDomain means the service reported an explicit error.
	KindDomain
	// KindAmbiguousEmpty means the service sent neither error nor data.
	KindAmbiguousEmpty
	// KindInvalidInput means the form was rejected before dispatch.
	KindInvalidInput
	// KindRender means a usable reply could not be drawn.
	KindRender
)

func (k Kind) String() string {
	switch k {
	case KindNone:
		return "none"
	case KindTransport:
		return "transport"
	case KindDomain:
		return "domain"
	case KindAmbiguousEmpty:
		return "ambiguous-empty"
	case KindInvalidInput:
		return "invalid-input"
	case KindRender:
		return "render"
	default:
		return "unknown"
	}
}

// Message is a text shown in a pane.
type Message struct {
	Level Level
	Kind  Kind
	Text  string
}

// Selector is a selection input, for example the county or crop list.
type Selector interface {
	// AddOption appends an option to the end of the list.
	AddOption(value string)
}

// Pane is a text region of a page. Show replaces whatever the pane
// displayed before.
type Pane interface {
	Show(msg Message)
}
