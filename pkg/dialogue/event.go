package dialogue

import (
	"time"

	"storefront-bot/pkg/query"
)

type EventKind int

const (
	EventText EventKind = iota
	EventCommand
	EventButton
	EventLocation
)

func (k EventKind) String() string {
	switch k {
	case EventText:
		return "text"
	case EventCommand:
		return "command"
	case EventButton:
		return "button"
	case EventLocation:
		return "location"
	default:
		return "unknown"
	}
}

// Event is one inbound chat interaction, already stripped of transport details.
type Event struct {
	ChatID int64
	Kind   EventKind
	At     time.Time

	Command    string // lower-case, without the leading slash
	Args       string
	Text       string
	Button     string // callback data
	CallbackID string
	Location   query.Point
}

type OutboundKind int

const (
	OutboundText OutboundKind = iota
	OutboundLocation
	OutboundLocationRequest
)

// Outbound is one message the transport must send, in slice order.
type Outbound struct {
	ChatID int64
	Kind   OutboundKind
	Text   string
	HTML   bool

	// WithMenu attaches the main menu inline keyboard.
	WithMenu bool

	// Location pins (OutboundLocation).
	Location  query.Point
	LinkLabel string
	LinkURL   string

	// Button label of the one-time keyboard (OutboundLocationRequest).
	RequestLabel string
}
