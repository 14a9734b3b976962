package config

import (
	"time"

	"github.com/northsupermart/storefront/internal/logger"
)

// Config overall data structure.
type Config struct {
	DevMode   bool // enable dev mode for development
	DB        DB
	Log       logger.Log
	Title     string
	Webserver Webserver
	Media     Media
	Admin     Admin
	Kafka     Kafka
	RateLimit RateLimit
	Metrics   Metrics
}

// Webserver implement webserver settings.
type Webserver struct {
	BrowseStatic   bool     // enable directory listing on the uploads route
	DisableRecover bool     // disable recover middleware
	FastShutDown   bool     // skip the check-alive drain period on shutdown
	Port           int      `validate:"min=1,max=65535"` // listening port for the webserver
	ShutDownTime   int      // seconds to answer 503 on /checkalive before stopping
	URL            string   `validate:"url"` // public base url, prefixed to uploaded media links
	AllowOrigins   []string `validate:"min=1"` // CORS origins allowed to call the API, credentials rule out "*"
}

// Media holds upload settings.
type Media struct {
	Dir    string // directory uploaded files are written to
	Prefix string // route the directory is served under
}

// Admin holds the credentials of the admin account seeded into an empty admins table.
type Admin struct {
	Username string
	Password string // generated and logged once if empty
}

// Kafka configures order event publishing.
type Kafka struct {
	Enabled        bool
	Brokers        []string
	Topic          string
	PublishTimeout time.Duration
}

// RateLimit configures the limiter guarding the login routes.
type RateLimit struct {
	Enabled    bool
	Max        int
	Expiration time.Duration
	Table      string // storage table for mysql/postgres engines
}

// Metrics configures the prometheus endpoint.
type Metrics struct {
	Enabled bool
	Path    string
}
