package dialogue

import (
	"strings"
	"time"

	"storefront-bot/internal/constant"
	"storefront-bot/pkg/store"
)

// ActionKind is the flow chosen for an event.
type ActionKind int

const (
	ActionNone ActionKind = iota
	ActionWelcome
	ActionHelpPrompt
	ActionPromptProductSearch
	ActionPromptQuestionSearch
	ActionRequestLocation
	ActionPromo
	ActionTopProducts
	ActionProductSearch
	ActionQuestionSearch
	ActionNearbyShops
)

var actionNames = map[ActionKind]string{
	ActionNone:                 "none",
	ActionWelcome:              "welcome",
	ActionHelpPrompt:           "help_prompt",
	ActionPromptProductSearch:  "prompt_product_search",
	ActionPromptQuestionSearch: "prompt_question_search",
	ActionRequestLocation:      "request_location",
	ActionPromo:                "promo",
	ActionTopProducts:          "top_products",
	ActionProductSearch:        "product_search",
	ActionQuestionSearch:       "question_search",
	ActionNearbyShops:          "nearby_shops",
}

func (a ActionKind) String() string {
	if name, ok := actionNames[a]; ok {
		return name
	}
	return "unknown"
}

// Action is what the controller must run after a transition. Arg carries the
// raw search text for the two search flows.
type Action struct {
	Kind ActionKind
	Arg  string
}

// Transition is the chat state machine. It returns the session as it must be
// stored after ev, and the flow to run. It performs no I/O.
//
// Free text whose gap since the previous activity is strictly greater than
// idleTimeout resets the chat to the welcome menu before any pending action is
// considered; a gap exactly equal to idleTimeout is still inside the window.
func Transition(ev Event, s store.Session, idleTimeout time.Duration) (store.Session, Action) {
	next := s
	next.ChatID = ev.ChatID
	next.LastActivity = ev.At

	switch ev.Kind {
	case EventCommand:
		switch ev.Command {
		case constant.CommandStart:
			next.Pending = store.PendingNone
			return next, Action{Kind: ActionWelcome}
		case constant.CommandSearch:
			return next, Action{Kind: ActionProductSearch, Arg: ev.Args}
		case constant.CommandQuestion:
			return next, Action{Kind: ActionQuestionSearch, Arg: QuestionCommandKeyword(ev.Args)}
		default:
			return next, Action{Kind: ActionHelpPrompt}
		}

	case EventButton:
		switch ev.Button {
		case constant.ButtonProducts:
			next.Pending = store.AwaitingProductSearch
			return next, Action{Kind: ActionPromptProductSearch}
		case constant.ButtonQuestions:
			next.Pending = store.AwaitingQuestionSearch
			return next, Action{Kind: ActionPromptQuestionSearch}
		case constant.ButtonNearby:
			return next, Action{Kind: ActionRequestLocation}
		case constant.ButtonPromo:
			return next, Action{Kind: ActionPromo}
		case constant.ButtonTop:
			return next, Action{Kind: ActionTopProducts}
		default:
			return next, Action{Kind: ActionNone}
		}

	case EventLocation:
		return next, Action{Kind: ActionNearbyShops}

	case EventText:
		if ev.At.Sub(s.LastActivity) > idleTimeout {
			next.Pending = store.PendingNone
			return next, Action{Kind: ActionWelcome}
		}
		text := strings.TrimSpace(ev.Text)
		switch s.Pending {
		case store.AwaitingProductSearch:
			next.Pending = store.PendingNone
			return next, Action{Kind: ActionProductSearch, Arg: text}
		case store.AwaitingQuestionSearch:
			next.Pending = store.PendingNone
			return next, Action{Kind: ActionQuestionSearch, Arg: text}
		default:
			return next, Action{Kind: ActionHelpPrompt}
		}
	}

	return next, Action{Kind: ActionNone}
}
