package config

import (
	"errors"
)

var (
	// ErrEmptyURL error if config webserver.URL is empty.
	ErrEmptyURL = errors.New("config webserver.url can not be empty")

	// ErrWebServerPortCanNotBeZero error if config webserver listening port is 0.
	ErrWebServerPortCanNotBeZero = errors.New("config webserver.port listening port can not be 0")

	// ErrMediaPrefixRoot error if uploads would be served from the site root.
	ErrMediaPrefixRoot = errors.New("config media.prefix can not be the root path")

	// ErrUnknownDumpFormat is returned by Dump for formats other than toml and json.
	ErrUnknownDumpFormat = errors.New("unknown config dump format")
)
