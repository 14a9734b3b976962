// Package config loads the service configuration from etc/main.toml, the
// environment and an optional .env file.
package config

import (
	"bytes"
	"errors"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/goccy/go-json"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	pkgerrors "github.com/pkg/errors"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment override, e.g. STOREFRONT_DB_HOST.
	EnvPrefix = "STOREFRONT"

	// EnvConfigJSON holds a JSON document merged over the file configuration.
	EnvConfigJSON = "STOREFRONT_CONFIG_JSON"

	// DefaultPort is used when neither the file nor PORT sets one.
	DefaultPort = 8081

	redacted = "******"
)

// ReadConfig from config file.
func ReadConfig(path string) (Config, error) {
	var (
		c             Config
		JSONConfigEnv string
		err           error
	)

	// Read main configuration
	if path == "" {
		path = "./etc/"
	}

	// a missing .env is fine, variables may come from the real environment
	_ = godotenv.Load()

	v := viper.New()
	v.SetConfigName("main")
	v.SetConfigType("toml")
	v.AddConfigPath(path)

	setDefaults(v)

	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	// hosting panels hand the port over as plain PORT
	if err = v.BindEnv("webserver.port", "PORT", EnvPrefix+"_WEBSERVER_PORT"); err != nil {
		return Config{}, pkgerrors.Wrap(err, "failed to bind port env")
	}

	if err = v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return Config{}, pkgerrors.Wrap(err, "failed to read main config file")
		}
	}

	if err = v.Unmarshal(&c); err != nil {
		return Config{}, pkgerrors.Wrap(err, "failed to decode main config")
	}

	// override it from env
	JSONConfigEnv = os.Getenv(EnvConfigJSON)

	if JSONConfigEnv != "" {
		c, err = decodeAndMergeConfig(c, JSONConfigEnv)
		if err != nil {
			return c, err
		}
	}

	return c, validate(&c)
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("title", "North Supermart API")
	v.SetDefault("devmode", false)

	v.SetDefault("webserver.port", DefaultPort)
	v.SetDefault("webserver.url", "http://localhost:8081")
	v.SetDefault("webserver.shutdowntime", 5) //nolint:mnd
	v.SetDefault("webserver.fastshutdown", false)
	v.SetDefault("webserver.disablerecover", false)
	v.SetDefault("webserver.browsestatic", false)
	v.SetDefault("webserver.alloworigins", []string{"https://northsupermart.pk", "http://northsupermart.pk"})

	v.SetDefault("db.gormengine", EngineMySQL)
	v.SetDefault("db.host", "localhost")
	v.SetDefault("db.port", 3306) //nolint:mnd
	v.SetDefault("db.user", "")
	v.SetDefault("db.password", "")
	v.SetDefault("db.name", "")
	v.SetDefault("db.extras", "charset=utf8mb4&parseTime=True&loc=Local")
	v.SetDefault("db.maxopenconns", 10) //nolint:mnd
	v.SetDefault("db.maxidleconns", 5)  //nolint:mnd
	v.SetDefault("db.connmaxlifetime", time.Hour)
	v.SetDefault("db.slowthreshold", 200*time.Millisecond) //nolint:mnd

	v.SetDefault("media.dir", "uploads")
	v.SetDefault("media.prefix", "/uploads")

	v.SetDefault("admin.username", "admin")
	v.SetDefault("admin.password", "")

	v.SetDefault("kafka.enabled", false)
	v.SetDefault("kafka.brokers", []string{"localhost:9092"})
	v.SetDefault("kafka.topic", "orders.placed")
	v.SetDefault("kafka.publishtimeout", 5*time.Second) //nolint:mnd

	v.SetDefault("ratelimit.enabled", false)
	v.SetDefault("ratelimit.max", 10) //nolint:mnd
	v.SetDefault("ratelimit.expiration", time.Minute)
	v.SetDefault("ratelimit.table", "login_limiter")

	v.SetDefault("metrics.enabled", true)
	v.SetDefault("metrics.path", "/metrics")

	v.SetDefault("log.loglevel", "info")
	v.SetDefault("log.appname", "storefront")
	v.SetDefault("log.servicename", "storefront-api")
	v.SetDefault("log.console.enabled", true)
	v.SetDefault("log.console.useconsolewriter", false)
	v.SetDefault("log.enableaccesslogtoconsole", true)
	v.SetDefault("log.disablecheckalive", true)
}

func decodeAndMergeConfig(c Config, configAsJSON string) (Config, error) {
	err := json.Unmarshal([]byte(configAsJSON), &c)
	if err != nil {
		return Config{}, pkgerrors.Wrap(err, "failed to read json config override")
	}

	return c, nil
}

// Dump renders the config as "toml" or "json".
func Dump(c *Config, format string) (string, error) {
	r := c.Redacted()

	switch format {
	case "toml":
		return DumpConfig(&r)
	case "json":
		return DumpConfigJSON(&r)
	default:
		return "", pkgerrors.Wrap(ErrUnknownDumpFormat, format)
	}
}

// Redacted returns a copy of c with passwords masked.
func (c *Config) Redacted() Config {
	r := *c

	if r.DB.Password != "" {
		r.DB.Password = redacted
	}

	if r.Admin.Password != "" {
		r.Admin.Password = redacted
	}

	return r
}

// DumpConfig config as TOML String.
func DumpConfig(c *Config) (string, error) {
	var buffer bytes.Buffer
	t := toml.NewEncoder(&buffer)

	if err := t.Encode(c); err != nil {
		return "", err //nolint: wrapcheck
	}

	return buffer.String(), nil
}

// DumpConfigJSON config as JSON String.
func DumpConfigJSON(c *Config) (string, error) {
	out, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return "", err //nolint: wrapcheck
	}

	return string(out) + "\n", nil
}

// validate fills in the few defaults the service can not start without and
// checks the remaining fields against their struct tags.
func validate(c *Config) error {
	invalidErrMessage := "invalid config"

	// validate webserver listening port
	if c.Webserver.Port == 0 {
		return pkgerrors.Wrap(ErrWebServerPortCanNotBeZero, invalidErrMessage)
	}

	// media links are built from the public url
	if c.Webserver.URL == "" {
		return pkgerrors.Wrap(ErrEmptyURL, invalidErrMessage)
	}

	c.Webserver.URL = strings.TrimRight(c.Webserver.URL, "/")

	if c.Webserver.ShutDownTime == 0 {
		c.Webserver.ShutDownTime = 5 // set default of 5 seconds
	}

	if c.DB.GormEngine == "" {
		c.DB.GormEngine = EngineMySQL
	}

	if c.Media.Dir == "" {
		c.Media.Dir = "uploads"
	}

	if c.Media.Prefix == "" {
		c.Media.Prefix = "/uploads"
	}

	if strings.Trim(c.Media.Prefix, "/") == "" {
		return pkgerrors.Wrap(ErrMediaPrefixRoot, invalidErrMessage)
	}

	if err := validator.New().Struct(c); err != nil {
		return pkgerrors.Wrap(err, invalidErrMessage)
	}

	return nil
}
