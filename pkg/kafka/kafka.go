package kafka

import (
	"time"

	"farm-visit/pkg/utils"

	"github.com/IBM/sarama"
)

// NewProducer returns a producer that waits for all in-sync replicas. A
// positive timeout bounds each broker round trip and the replica ack wait.
func NewProducer(cfg utils.KafkaConfig, timeout time.Duration) (sarama.SyncProducer, error) {
	return sarama.NewSyncProducer(cfg.Brokers, producerConfig(cfg, timeout))
}

func producerConfig(cfg utils.KafkaConfig, timeout time.Duration) *sarama.Config {
	defaultCfg := sarama.NewConfig()

	defaultCfg.ClientID = cfg.ClientID
	defaultCfg.Producer.RequiredAcks = sarama.WaitForAll
	defaultCfg.Producer.Return.Successes = true
	defaultCfg.Producer.Retry.Max = 3

	if timeout > 0 {
		defaultCfg.Producer.Timeout = timeout
		defaultCfg.Net.DialTimeout = timeout
		defaultCfg.Net.ReadTimeout = timeout
		defaultCfg.Net.WriteTimeout = timeout
		defaultCfg.Producer.Retry.Backoff = timeout / 10
	}

	return defaultCfg
}
