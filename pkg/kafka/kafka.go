package kafka

import (
	"time"

	"github.com/IBM/sarama"
)

const CirculationTopic = "circulation"

type Config struct {
	Addrs            []string `envconfig:"KAFKA_ADDRS"`
	CirculationTopic string   `envconfig:"KAFKA_CIRCULATION_TOPIC"`
}

// Enabled reports whether any broker is configured.
func (c Config) Enabled() bool {
	return len(c.Addrs) > 0
}

func NewProducer(cfg Config) (sarama.SyncProducer, error) {
	defaultCfg := NewProducerConfig()
	return sarama.NewSyncProducer(cfg.Addrs, defaultCfg)
}

func NewProducerConfig() *sarama.Config {
	defaultCfg := sarama.NewConfig()

	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Timeout = 5 * time.Second
	defaultCfg.Producer.Retry.Max = 1

	return defaultCfg
}
