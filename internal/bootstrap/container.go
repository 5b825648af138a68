package bootstrap

import (
	"context"
	"fmt"
	"log"

	"ouderschapsplan-api/internal/auth"
	"ouderschapsplan-api/internal/config"
	"ouderschapsplan-api/internal/controller"
	"ouderschapsplan-api/internal/pkg/logger"
	"ouderschapsplan-api/internal/pkg/mailer"
	"ouderschapsplan-api/internal/pkg/serverutils"
	"ouderschapsplan-api/internal/repository/unitofwork"
	"ouderschapsplan-api/internal/service"
	"ouderschapsplan-api/pkg/mollie"
	pktNats "ouderschapsplan-api/pkg/nats"
	"ouderschapsplan-api/pkg/store"

	"github.com/ThreeDotsLabs/watermill"
	"github.com/ThreeDotsLabs/watermill/pubsub/gochannel"
	"github.com/gofiber/fiber/v2"
	"github.com/redis/go-redis/v9"
	"gorm.io/gorm"
)

const consumerDurable = "ouderschapsplan-mailer"

type Container struct {
	// Controllers
	DossierController         controller.IDossierController
	PartijController          controller.IPartijController
	KindController            controller.IKindController
	OmgangController          controller.IOmgangController
	ZorgController            controller.IZorgController
	OuderschapsplanController controller.IOuderschapsplanController
	LookupController          controller.ILookupController
	UserController            controller.IUserController
	PaymentController         controller.IPaymentController

	AuthMiddleware fiber.Handler
	Logger         logger.ILogger

	// Background Services (Exposed for main.go to run)
	ConsumerService service.IConsumerService

	natsSub *pktNats.Subscriber
	closers []func()
}

func NewContainer(db *gorm.DB, cfg *config.Config) *Container {
	// 1. Core Facades
	uowFactory := unitofwork.NewRepositoryFactory(db)
	sysLogger := logger.NewZapLogger(cfg.App.LogFilePath, cfg.IsProduction())

	emailService := mailer.NewEmailService(
		cfg.SMTP.Host,
		cfg.SMTP.Port,
		cfg.SMTP.Email,
		cfg.SMTP.Password,
		cfg.SMTP.Email,
		cfg.SMTP.SenderName,
		sysLogger,
	)

	// 2. Event Bus
	pubSub := gochannel.NewGoChannel(
		gochannel.Config{},
		watermill.NewStdLogger(false, false),
	)

	c := &Container{Logger: sysLogger}

	var external service.EventPublisher
	if cfg.Features.NatsEnabled {
		natsPub, natsSub, err := connectPair(
			func() (*pktNats.Publisher, error) { return pktNats.NewPublisher(cfg.App.NatsURL) },
			func() (*pktNats.Subscriber, error) { return pktNats.NewSubscriber(cfg.App.NatsURL) },
		)
		if err != nil {
			log.Printf("[WARN] NATS disabled, using in-process events: %v", err)
		} else {
			external = natsPub
			c.natsSub = natsSub
			c.closers = append(c.closers, natsPub.Close, natsSub.Close)
		}
	}

	// Redis
	var rdb *redis.Client
	if cfg.Features.CacheDriver == "redis" {
		opt, err := redis.ParseURL(cfg.App.RedisURL)
		if err != nil {
			log.Printf("[WARN] Failed to parse Redis URL: %v. Using direct Addr", err)
			opt = &redis.Options{Addr: cfg.App.RedisURL}
		}
		rdb = redis.NewClient(opt)
		c.closers = append(c.closers, func() { _ = rdb.Close() })
	}
	lookupCache := store.NewCache(context.Background(), cfg.Features.CacheDriver, rdb)

	// 3. Services
	publisherService := service.NewPublisherService(cfg.App.EventTopic, pubSub, external, sysLogger)
	c.ConsumerService = service.NewConsumerService(pubSub, cfg.App.EventTopic, uowFactory, emailService, sysLogger)

	userService := service.NewUserService(uowFactory, sysLogger)
	accessService := service.NewAccessService(uowFactory)
	dossierService := service.NewDossierService(uowFactory, accessService, publisherService, sysLogger)
	partijService := service.NewPartijService(uowFactory, accessService)
	kindService := service.NewKindService(uowFactory, accessService)
	omgangService := service.NewOmgangService(uowFactory, accessService)
	zorgService := service.NewZorgService(uowFactory, accessService)
	ouderschapsplanService := service.NewOuderschapsplanService(uowFactory, accessService)
	lookupService := service.NewLookupService(
		service.NewLookupSource(cfg.Features.UseRepositoryPattern, uowFactory, db),
		lookupCache,
		sysLogger,
	)
	mollieClient, err := mollie.NewClient(cfg.Mollie.BaseURL, cfg.Mollie.APIKey)
	if err != nil {
		log.Fatalf("Failed to create Mollie client: %v", err)
	}
	paymentService := service.NewPaymentService(
		uowFactory,
		mollieClient,
		publisherService,
		cfg.Mollie,
		sysLogger,
	)

	// 4. Auth
	keysCtx, stopKeyRefresh := context.WithCancel(context.Background())
	c.closers = append(c.closers, stopKeyRefresh)
	resolver := auth.NewResolver(
		auth.ResolverConfig{
			SkipAuth:  cfg.Auth.SkipAuth,
			DevUserId: cfg.Auth.DevUserId,
			Audience:  cfg.Auth.Audience,
			Issuer:    cfg.Auth.Issuer,
		},
		auth.NewKeySet(keysCtx, cfg.Auth.JWKSURL),
		userService,
		sysLogger,
	)
	c.AuthMiddleware = serverutils.AuthMiddleware(resolver)

	// 5. Controllers
	c.DossierController = controller.NewDossierController(dossierService)
	c.PartijController = controller.NewPartijController(partijService)
	c.KindController = controller.NewKindController(kindService)
	c.OmgangController = controller.NewOmgangController(omgangService)
	c.ZorgController = controller.NewZorgController(zorgService)
	c.OuderschapsplanController = controller.NewOuderschapsplanController(ouderschapsplanService)
	c.LookupController = controller.NewLookupController(lookupService)
	c.UserController = controller.NewUserController(userService)
	c.PaymentController = controller.NewPaymentController(paymentService, c.AuthMiddleware, sysLogger)

	return c
}

// StartConsumers attaches the mail consumer to NATS when a subscriber is
// connected, to the in-process topic otherwise.
func (c *Container) StartConsumers(ctx context.Context) error {
	if c.natsSub != nil {
		return c.natsSub.Subscribe(ctx, consumerDurable, c.ConsumerService.Handle)
	}
	return c.ConsumerService.Consume(ctx)
}

func (c *Container) Close() {
	for i := len(c.closers) - 1; i >= 0; i-- {
		c.closers[i]()
	}
	_ = c.Logger.Sync()
}

// connectPair dials both halves of an external transport. Either both are
// returned or neither, so events never go where no consumer listens.
func connectPair[P, S interface{ Close() }](dialPub func() (P, error), dialSub func() (S, error)) (P, S, error) {
	var noPub P
	var noSub S
	pub, err := dialPub()
	if err != nil {
		return noPub, noSub, fmt.Errorf("publisher: %w", err)
	}
	sub, err := dialSub()
	if err != nil {
		pub.Close()
		return noPub, noSub, fmt.Errorf("subscriber: %w", err)
	}
	return pub, sub, nil
}
