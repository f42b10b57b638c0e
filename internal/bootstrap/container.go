package bootstrap

import (
	"context"
	"log"

	"storefront-bot/internal/config"
	"storefront-bot/internal/controller"
	"storefront-bot/internal/pkg/logger"
	"storefront-bot/internal/pkg/serverutils"
	"storefront-bot/internal/repository/contract"
	"storefront-bot/internal/repository/implementation"
	"storefront-bot/internal/repository/memory"
	"storefront-bot/internal/repository/unitofwork"
	"storefront-bot/internal/service"
	"storefront-bot/pkg/audit"
	"storefront-bot/pkg/dialogue"
	"storefront-bot/pkg/dispatch"
	pktNats "storefront-bot/pkg/nats"
	"storefront-bot/pkg/telegram"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

type Container struct {
	// Controllers
	ProductController  controller.IProductController
	ShopController     controller.IShopController
	QuestionController controller.IQuestionController
	CatalogController  controller.ICatalogController
	AuthController     controller.IAuthController
	AdminController    controller.IAdminController
	JwtMiddleware      fiber.Handler

	// Background services, started by main.go
	HotCounterService service.IHotCounterService
	AuditService      service.IAuditService // nil without NATS
	BotRunner         *telegram.Runner      // nil when the bot is disabled

	Logger logger.ILogger

	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())
	auditLogger := logger.NewIsolatedLogger(cfg.App.AuditLogFilePath)

	c := &Container{Logger: sysLogger}

	// 2. In-process event bus for hot counter increments
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{OutputChannelBuffer: 256},
		watermill.NewStdLogger(false, false),
	)
	c.closers = append(c.closers, func() { _ = pubSub.Close() })

	// 3. NATS for audit events
	var eventPublisher audit.EventPublisher
	natsPub, err := pktNats.NewPublisher(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Publisher: %v", err)
	} else {
		eventPublisher = natsPub
		c.closers = append(c.closers, natsPub.Close)
	}
	natsSub, err := pktNats.NewSubscriber(cfg.App.NatsURL)
	if err != nil {
		log.Printf("[WARN] Failed to connect to NATS Subscriber: %v", err)
	} else {
		c.AuditService = service.NewAuditService(natsSub, auditLogger)
		c.closers = append(c.closers, natsSub.Close)
	}
	auditPublisher := audit.NewBusPublisher(eventPublisher, sysLogger)

	// 4. Services
	catalogService := service.NewCatalogService(uowFactory, cfg.Dialogue.RadiusKm, cfg.Dialogue.TopLimit, sysLogger)
	c.HotCounterService = service.NewHotCounterService(pubSub, pubSub, uowFactory, sysLogger)
	authService := service.NewAuthService(uowFactory, auditPublisher, cfg.Auth.JwtSecret, cfg.Auth.JwtTTL)

	// 5. Controllers
	c.ProductController = controller.NewProductController(service.NewProductService(uowFactory, auditPublisher))
	c.ShopController = controller.NewShopController(service.NewShopService(uowFactory, auditPublisher))
	c.QuestionController = controller.NewQuestionController(service.NewQuestionService(uowFactory, auditPublisher))
	c.CatalogController = controller.NewCatalogController(catalogService)
	c.AuthController = controller.NewAuthController(authService)
	c.AdminController = controller.NewAdminController(service.NewAdminService(sysLogger))
	c.JwtMiddleware = serverutils.JwtMiddleware(cfg.Auth.JwtSecret)

	// 6. Chat bot
	if !cfg.BotEnabled() {
		log.Println("[INFO] TELEGRAM_BOT_TOKEN not set, chat bot disabled")
		return c
	}

	bot, err := telegram.NewBotAPI(telegram.ClientConfig{
		Token:       cfg.Bot.Token,
		PollTimeout: cfg.Bot.PollTimeout,
		SendTimeout: cfg.Bot.SendTimeout,
		Debug:       cfg.Bot.Debug,
	})
	if err != nil {
		log.Printf("[WARN] Chat bot disabled: %v", err)
		return c
	}
	log.Printf("[INFO] Authorized on bot account %s", bot.Self.UserName)

	dedupe := service.NewUpdateDedupeService(
		c.newRedisDedupe(cfg),
		memory.NewProcessedUpdateRepository(cfg.Bot.DedupeTTL),
		sysLogger,
	)

	dialogueController := dialogue.NewController(
		dialogue.Config{
			IdleTimeout:  cfg.Dialogue.IdleTimeout,
			RadiusKm:     catalogService.RadiusKm(),
			QueryTimeout: cfg.Dialogue.QueryTimeout,
		},
		memory.NewSessionRepository(),
		catalogService,
		c.HotCounterService,
		sysLogger,
	)

	dispatcher := dispatch.New(context.Background(), cfg.Bot.Workers, 0, sysLogger)
	// Stop drains queued chats before the connections above are closed.
	c.closers = append([]func(){dispatcher.Stop}, c.closers...)

	c.BotRunner = telegram.NewRunner(bot, dialogueController, dedupe, dispatcher, cfg.Bot.PollTimeout, sysLogger)
	return c
}

// newRedisDedupe returns nil when Redis is not configured. The client is
// closed by Close.
func (c *Container) newRedisDedupe(cfg *config.Config) contract.ProcessedUpdateRepository {
	if cfg.App.RedisURL == "" {
		return nil
	}
	opt, err := redis.ParseURL(cfg.App.RedisURL)
	if err != nil {
		log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
		opt = &redis.Options{Addr: cfg.App.RedisURL}
	}
	rdb := redis.NewClient(opt)
	c.closers = append(c.closers, func() { _ = rdb.Close() })
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Printf("[WARN] Failed to connect to Redis: %v", err)
	}
	return implementation.NewProcessedUpdateRepositoryRedis(rdb, cfg.Bot.DedupeTTL)
}

// Close releases background resources in order.
func (c *Container) Close() {
	for _, fn := range c.closers {
		fn()
	}
}
