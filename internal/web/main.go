// Package web wires the fiber app: middleware, routes and graceful shutdown.
package web

import (
	"errors"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/goccy/go-json"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/filesystem"
	"github.com/gofiber/fiber/v2/middleware/limiter"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"

	"github.com/northsupermart/storefront/internal/config"
	"github.com/northsupermart/storefront/internal/events"
	fiberlogger "github.com/northsupermart/storefront/internal/logger/adapter/fiber"
	"github.com/northsupermart/storefront/internal/media"
	"github.com/northsupermart/storefront/internal/web/handler"
	adminlogin "github.com/northsupermart/storefront/internal/web/handler/admin/login"
	adminmessage "github.com/northsupermart/storefront/internal/web/handler/admin/message"
	adminorder "github.com/northsupermart/storefront/internal/web/handler/admin/order"
	adminproduct "github.com/northsupermart/storefront/internal/web/handler/admin/product"
	adminsettings "github.com/northsupermart/storefront/internal/web/handler/admin/settings"
	"github.com/northsupermart/storefront/internal/web/handler/admin/stats"
	"github.com/northsupermart/storefront/internal/web/handler/contact"
	"github.com/northsupermart/storefront/internal/web/handler/login"
	"github.com/northsupermart/storefront/internal/web/handler/order"
	"github.com/northsupermart/storefront/internal/web/handler/product"
	"github.com/northsupermart/storefront/internal/web/handler/settings"
	"github.com/northsupermart/storefront/internal/web/handler/signup"
)

const (
	// CheckAlivePath answers load balancer health checks.
	CheckAlivePath = "/checkalive"
)

// Deps are the collaborators of the web service besides config and db.
type Deps struct {
	Publisher events.Publisher
	Media     *media.Store
	// LimiterStorage backs the login rate limiter. Nil keeps it in memory.
	LimiterStorage fiber.Storage
}

// Service represents the web service.
type Service struct {
	App          *fiber.App
	cfg          *config.Config
	fastShutDown bool
	alive        atomic.Bool
	db           *gorm.DB
}

// Start starts the web service on the given address.
func (s *Service) Start(addr string) error {
	var doneFiber = make(chan bool)

	go func() {
		if err := s.App.Listen(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatal().Msgf("fiber listen error: %v", err)
		}

		doneFiber <- true
	}()

	<-doneFiber // wait for fiber to stop

	return nil
}

// WaitShutdown blocks until SIGINT or SIGTERM and stops the server.
func (s *Service) WaitShutdown() {
	irqSig := make(chan os.Signal, 1)
	signal.Notify(irqSig, syscall.SIGINT, syscall.SIGTERM)

	sig := <-irqSig
	log.Info().Msgf("shutdown request (signal: %v)", sig)

	s.Shutdown()
}

// Shutdown drains and stops the http server. Unless fast shutdown is
// configured, checkalive answers 503 for ShutDownTime seconds first so the
// load balancer can take this instance out of rotation.
func (s *Service) Shutdown() {
	if !s.fastShutDown {
		log.Info().Msgf(
			"graceful shutdown: return 503 while %d seconds to let LB to remove this pod from active targets",
			s.cfg.Webserver.ShutDownTime,
		)

		s.alive.Store(false)
		time.Sleep(time.Duration(s.cfg.Webserver.ShutDownTime) * time.Second)
	}

	serverShutdown := make(chan struct{})

	go func() {
		log.Info().Msg("stopping http server ...")

		err := s.App.Shutdown()
		if err != nil {
			log.Error().Err(err).Msg("")
		}

		serverShutdown <- struct{}{}
	}()

	<-serverShutdown
	log.Info().Msg("http server was stopped ... good bye...")
}

// CheckAlive answers 200 while serving and 503 once shutdown has begun.
func (s *Service) CheckAlive(c *fiber.Ctx) error {
	if !s.alive.Load() {
		return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{"status": "shutting down"})
	}

	return c.JSON(fiber.Map{"status": "ok"})
}

// New creates a new web service with the given configuration.
func New(cfg *config.Config, db *gorm.DB, deps Deps) (*Service, error) {
	if cfg == nil {
		panic("config cannot be nil")
	}

	if db == nil {
		panic("db cannot be nil")
	}

	if deps.Media == nil {
		deps.Media = media.New(cfg)
	}

	app := fiber.New(
		fiber.Config{
			ReadBufferSize: 8192,
			AppName:        cfg.Title,
			CaseSensitive:  true,
			Prefork:        false,
			Immutable:      true,
			JSONEncoder:    json.Marshal,
			JSONDecoder:    json.Unmarshal,
			ErrorHandler:   handler.ErrorHandler,
		},
	)

	if !cfg.Webserver.DisableRecover {
		app.Use(recover.New(recover.Config{EnableStackTrace: cfg.DevMode}))
	}

	app.Use(fiberlogger.New(fiberlogger.Config{
		Config:        cfg.Log,
		CheckAliveURI: CheckAlivePath,
	}))

	app.Use(cors.New(cors.Config{
		AllowOrigins:     strings.Join(cfg.Webserver.AllowOrigins, ","),
		AllowMethods:     strings.Join([]string{fiber.MethodGet, fiber.MethodPost, fiber.MethodPut, fiber.MethodDelete}, ","),
		AllowCredentials: true,
	}))

	if cfg.RateLimit.Enabled {
		loginLimiter := limiter.New(limiter.Config{
			Max:        cfg.RateLimit.Max,
			Expiration: cfg.RateLimit.Expiration,
			Storage:    deps.LimiterStorage,
			KeyGenerator: func(c *fiber.Ctx) string {
				return c.IP() + "|" + c.Path()
			},
			LimitReached: func(c *fiber.Ctx) error {
				log.Warn().Str("ip", c.IP()).Str("path", c.Path()).Msg("login rate limit reached")
				return handler.Error(c, fiber.StatusTooManyRequests, "too many login attempts")
			},
		})

		app.Post(login.Path, loginLimiter)
		app.Post(adminlogin.Path, loginLimiter)
	}

	app.Use(cfg.Media.Prefix, filesystem.New(filesystem.Config{
		Root:   http.Dir(cfg.Media.Dir),
		Browse: cfg.Webserver.BrowseStatic,
	}))

	if cfg.Metrics.Enabled {
		app.Get(cfg.Metrics.Path, adaptor.HTTPHandler(promhttp.Handler()))
	}

	service := &Service{
		cfg:          cfg,
		App:          app,
		db:           db,
		fastShutDown: cfg.Webserver.FastShutDown,
	}
	service.alive.Store(true)

	app.Get(CheckAlivePath, service.CheckAlive)

	// public routes
	for _, h := range []handler.Service{
		&settings.Handler,
		&product.Handler,
		&signup.Handler,
		&login.Handler,
		&contact.Handler,
	} {
		if err := h.Init(app, cfg, db); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	if err := order.Handler.Init(app, cfg, db, deps.Publisher); err != nil {
		return nil, err //nolint:wrapcheck
	}

	// admin routes
	for _, h := range []handler.Service{
		&adminsettings.Handler,
		&adminmessage.Handler,
		&adminlogin.Handler,
		&stats.Handler,
		&adminorder.Handler,
	} {
		if err := h.Init(app, cfg, db); err != nil {
			return nil, err //nolint:wrapcheck
		}
	}

	if err := adminproduct.Handler.Init(app, cfg, db, deps.Media); err != nil {
		return nil, err //nolint:wrapcheck
	}

	return service, nil
}
