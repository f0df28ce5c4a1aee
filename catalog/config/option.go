package config

import (
	"net"
	"time"

	"go.uber.org/zap/zapcore"
)

type Option func(c *Config)

func WithLogLevel(level zapcore.Level) Option {
	return func(c *Config) {
		c.Log.LogLevel = level
	}
}

func WithReadTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.ReadTimeout = d
	}
}

func WithWriteTimeout(d time.Duration) Option {
	return func(c *Config) {
		c.Server.WriteTimeout = d
	}
}

// WithAddr sets host and port from "host:port". Malformed values are ignored.
func WithAddr(addr string) Option {
	return func(c *Config) {
		host, port, err := net.SplitHostPort(addr)
		if err != nil {
			return
		}
		c.Server.Host = host
		c.Server.Port = port
	}
}
