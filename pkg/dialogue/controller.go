// Package dialogue turns inbound chat events into ordered outbound messages.
// It owns the per-chat state machine and calls the catalog for query flows.
package dialogue

import (
	"context"
	"fmt"
	"time"

	"storefront-bot/internal/constant"
	"storefront-bot/internal/entity"
	"storefront-bot/internal/pkg/logger"
	"storefront-bot/pkg/query"
	"storefront-bot/pkg/store"

	"github.com/google/uuid"
)

// Catalog is the query surface the bot reads from.
type Catalog interface {
	SearchByName(ctx context.Context, keyword string) ([]*entity.Product, error)
	SearchByNameAndPrice(ctx context.Context, keyword string, price query.PriceRange) ([]*entity.Product, error)
	SearchQuestions(ctx context.Context, keyword string) ([]*entity.Question, error)
	NearbyShops(ctx context.Context, origin query.Point) ([]*entity.Shop, error)
	TopProducts(ctx context.Context) ([]*entity.Product, error)
}

// HotCounter records that products were shown in a search reply.
// Implementations must return without waiting for the increment.
type HotCounter interface {
	RecordShown(ctx context.Context, productIDs []uuid.UUID)
}

type Config struct {
	IdleTimeout  time.Duration
	RadiusKm     float64
	QueryTimeout time.Duration
}

type Controller struct {
	cfg       Config
	sessions  store.SessionStore
	catalog   Catalog
	hot       HotCounter
	formatter *Formatter
	logger    logger.ILogger
	now       func() time.Time
}

func NewController(cfg Config, sessions store.SessionStore, catalog Catalog, hot HotCounter, log logger.ILogger) *Controller {
	if cfg.IdleTimeout <= 0 {
		cfg.IdleTimeout = time.Hour
	}
	if cfg.RadiusKm <= 0 {
		cfg.RadiusKm = query.DefaultRadiusKm
	}
	if cfg.QueryTimeout <= 0 {
		cfg.QueryTimeout = 5 * time.Second
	}
	return &Controller{
		cfg:       cfg,
		sessions:  sessions,
		catalog:   catalog,
		hot:       hot,
		formatter: NewFormatter(log),
		logger:    log,
		now:       time.Now,
	}
}

// WithClock replaces the clock used for events that carry no timestamp.
func (c *Controller) WithClock(now func() time.Time) *Controller {
	c.now = now
	return c
}

// Handle runs one event to completion and returns the replies in send order.
// It never panics and, for every event that maps to a flow, returns at least one message.
func (c *Controller) Handle(ctx context.Context, ev Event) (out []Outbound) {
	if ev.At.IsZero() {
		ev.At = c.now()
	}

	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Dialogue", "Recovered from panic while handling event", map[string]interface{}{
				"chat_id": ev.ChatID,
				"kind":    ev.Kind.String(),
				"panic":   fmt.Sprint(r),
			})
			out = []Outbound{c.tip(ev.ChatID, constant.TipTryAgain, ""), c.menu(ev.ChatID)}
		}
	}()

	var action Action
	c.sessions.Update(ev.ChatID, func(s *store.Session) {
		var next store.Session
		next, action = Transition(ev, *s, c.cfg.IdleTimeout)
		*s = next
	})

	c.logger.Debug("Dialogue", "Event dispatched", map[string]interface{}{
		"chat_id": ev.ChatID,
		"kind":    ev.Kind.String(),
		"action":  action.Kind.String(),
	})

	return c.run(ctx, ev, action)
}

func (c *Controller) run(ctx context.Context, ev Event, action Action) []Outbound {
	chatID := ev.ChatID

	switch action.Kind {
	case ActionWelcome:
		return []Outbound{{ChatID: chatID, Kind: OutboundText, Text: constant.WelcomeMessage, WithMenu: true}}
	case ActionHelpPrompt:
		return []Outbound{{ChatID: chatID, Kind: OutboundText, Text: constant.NeedHelpMessage, WithMenu: true}}
	case ActionPromptProductSearch:
		return []Outbound{{ChatID: chatID, Kind: OutboundText, Text: constant.PromptProductSearch, HTML: true}}
	case ActionPromptQuestionSearch:
		return []Outbound{{ChatID: chatID, Kind: OutboundText, Text: constant.PromptQuestionSearch, HTML: true}}
	case ActionRequestLocation:
		return []Outbound{{
			ChatID:       chatID,
			Kind:         OutboundLocationRequest,
			Text:         fmt.Sprintf(constant.RequestLocationFormat, formatKm(c.cfg.RadiusKm)),
			RequestLabel: constant.ShareLocationLabel,
		}}
	case ActionPromo:
		return c.flow(ctx, chatID, action.Kind, "", func(context.Context) ([]Outbound, error) {
			return []Outbound{{ChatID: chatID, Kind: OutboundText, Text: constant.PromoMessage}}, nil
		})
	case ActionTopProducts:
		return c.flow(ctx, chatID, action.Kind, "", func(ctx context.Context) ([]Outbound, error) {
			return c.topProducts(ctx, chatID)
		})
	case ActionProductSearch:
		return c.flow(ctx, chatID, action.Kind, constant.TipsSearch, func(ctx context.Context) ([]Outbound, error) {
			return c.productSearch(ctx, chatID, action.Arg)
		})
	case ActionQuestionSearch:
		return c.flow(ctx, chatID, action.Kind, constant.TipsQuestions, func(ctx context.Context) ([]Outbound, error) {
			return c.questionSearch(ctx, chatID, action.Arg)
		})
	case ActionNearbyShops:
		return c.flow(ctx, chatID, action.Kind, constant.TipsNearby, func(ctx context.Context) ([]Outbound, error) {
			return c.nearbyShops(ctx, chatID, ev.Location)
		})
	}
	return nil
}

// flow is the fault boundary shared by every query flow. User input problems and
// empty results become tips, anything else becomes the generic failure tip. The
// main menu is always appended as the last message.
func (c *Controller) flow(ctx context.Context, chatID int64, kind ActionKind, hint string, fn func(context.Context) ([]Outbound, error)) (out []Outbound) {
	defer func() {
		if r := recover(); r != nil {
			c.logger.Error("Dialogue", "Recovered from panic in flow", map[string]interface{}{
				"chat_id": chatID,
				"flow":    kind.String(),
				"panic":   fmt.Sprint(r),
			})
			out = []Outbound{c.tip(chatID, constant.TipTryAgain, hint)}
		}
		out = append(out, c.menu(chatID))
	}()

	msgs, err := fn(ctx)
	if err == nil {
		return msgs
	}

	if inputErr, ok := isInputError(err); ok {
		return []Outbound{c.tip(chatID, inputErr.Reason, hint)}
	}
	if notFound, ok := isNotFound(err); ok {
		return []Outbound{c.tip(chatID, notFound.Reason, hint)}
	}

	c.logger.Error("Dialogue", "Flow failed", map[string]interface{}{
		"chat_id": chatID,
		"flow":    kind.String(),
		"error":   err.Error(),
	})
	return []Outbound{c.tip(chatID, constant.TipTryAgain, hint)}
}

func (c *Controller) productSearch(ctx context.Context, chatID int64, arg string) ([]Outbound, error) {
	q, err := ParseSearch(arg)
	if err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	var products []*entity.Product
	if q.Price != nil {
		products, err = c.catalog.SearchByNameAndPrice(qctx, q.Keyword, *q.Price)
	} else {
		products, err = c.catalog.SearchByName(qctx, q.Keyword)
	}
	if err != nil {
		return nil, fmt.Errorf("search products %q: %w", q.Keyword, err)
	}
	if len(products) == 0 {
		return nil, &NotFoundError{Reason: constant.TipNoProducts}
	}

	msgs := c.formatter.Products(chatID, products)
	c.recordShown(ctx, products)
	return msgs, nil
}

func (c *Controller) recordShown(ctx context.Context, products []*entity.Product) {
	if c.hot == nil {
		return
	}
	ids := make([]uuid.UUID, 0, len(products))
	for _, p := range products {
		if p != nil {
			ids = append(ids, p.Id)
		}
	}
	c.hot.RecordShown(ctx, ids)
}

func (c *Controller) questionSearch(ctx context.Context, chatID int64, arg string) ([]Outbound, error) {
	keyword, err := ParseQuestion(arg)
	if err != nil {
		return nil, err
	}

	qctx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	questions, err := c.catalog.SearchQuestions(qctx, keyword)
	if err != nil {
		return nil, fmt.Errorf("search questions %q: %w", keyword, err)
	}
	if len(questions) == 0 {
		return nil, &NotFoundError{Reason: constant.TipNoQuestions}
	}
	return c.formatter.Questions(chatID, questions), nil
}

func (c *Controller) nearbyShops(ctx context.Context, chatID int64, origin query.Point) ([]Outbound, error) {
	if !origin.Valid() {
		return nil, &InputError{Reason: constant.TipInvalidLocation}
	}

	qctx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	shops, err := c.catalog.NearbyShops(qctx, origin)
	if err != nil {
		return nil, fmt.Errorf("nearby shops: %w", err)
	}
	radius := formatKm(c.cfg.RadiusKm)
	if len(shops) == 0 {
		return nil, &NotFoundError{Reason: fmt.Sprintf(constant.NoShopsNearbyFormat, radius)}
	}

	out := []Outbound{{ChatID: chatID, Kind: OutboundText, Text: fmt.Sprintf(constant.NearbyHeaderFormat, radius)}}
	return append(out, c.formatter.Shops(chatID, shops)...), nil
}

func (c *Controller) topProducts(ctx context.Context, chatID int64) ([]Outbound, error) {
	qctx, cancel := context.WithTimeout(ctx, c.cfg.QueryTimeout)
	defer cancel()

	products, err := c.catalog.TopProducts(qctx)
	if err != nil {
		return nil, fmt.Errorf("top products: %w", err)
	}
	if len(products) == 0 {
		return nil, &NotFoundError{Reason: constant.TipNoTopProducts}
	}
	return []Outbound{c.formatter.TopProducts(chatID, products)}, nil
}

func (c *Controller) tip(chatID int64, reason, hint string) Outbound {
	text := reason
	if hint != "" {
		text = reason + "\n\n" + hint
	}
	return Outbound{ChatID: chatID, Kind: OutboundText, Text: text}
}

func (c *Controller) menu(chatID int64) Outbound {
	return Outbound{ChatID: chatID, Kind: OutboundText, Text: constant.RecallMessage, WithMenu: true}
}
