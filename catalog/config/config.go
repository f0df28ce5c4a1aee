package config

import (
	"log"
	"sync"
	"time"

	"github.com/Astemirdum/library-catalog/pkg/kafka"
	"github.com/Astemirdum/library-catalog/pkg/logger"
	"github.com/kelseyhightower/envconfig"
	"github.com/pkg/errors"
	"go.uber.org/zap/zapcore"
)

type HTTPServer struct {
	Host         string        `yaml:"host" envconfig:"CATALOG_HTTP_HOST"`
	Port         string        `yaml:"port" envconfig:"CATALOG_HTTP_PORT"`
	ReadTimeout  time.Duration `yaml:"readTimeout" envconfig:"HTTP_READ"`
	WriteTimeout time.Duration `yaml:"writeTimeout" envconfig:"HTTP_WRITE"`
	RateLimitRPS float64       `yaml:"rateLimitRPS" envconfig:"RATE_LIMIT_RPS"`
}

type Config struct {
	Server HTTPServer   `yaml:"server"`
	Kafka  kafka.Config `yaml:"kafka"`
	Log    logger.Log   `yaml:"log"`
}

var (
	once sync.Once
	cfg  *Config
)

// NewConfig reads config from environment once per process.
func NewConfig(ops ...Option) *Config {
	once.Do(func() {
		c, err := Load(ops...)
		if err != nil {
			log.Fatal("NewConfig ", err)
		}
		cfg = c
	})

	return cfg
}

// Load builds a config from defaults, then ops, then the environment.
// A variable that is set always wins over an option.
func Load(ops ...Option) (*Config, error) {
	config := defaultConfig()
	for _, op := range ops {
		op(&config)
	}
	if err := envconfig.Process("", &config); err != nil {
		return nil, errors.Wrap(err, "envconfig")
	}
	return &config, nil
}

func defaultConfig() Config {
	return Config{
		Server: HTTPServer{
			Host:         "0.0.0.0",
			Port:         "8080",
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 15 * time.Second,
			RateLimitRPS: 100,
		},
		Kafka: kafka.Config{
			CirculationTopic: kafka.CirculationTopic,
		},
		Log: logger.Log{
			LogLevel: zapcore.InfoLevel,
		},
	}
}
