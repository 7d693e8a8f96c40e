package kafka

import (
	"testing"
	"time"

	"farm-visit/pkg/utils"

	"github.com/IBM/sarama"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProducerConfig(t *testing.T) {
	cfg := utils.KafkaConfig{
		Brokers:  []string{"localhost:9092"},
		Topic:    "farm-visit.requests",
		ClientID: "farm-visit",
	}

	t.Run("timeout bounds broker calls", func(t *testing.T) {
		c := producerConfig(cfg, 5*time.Second)
		require.NoError(t, c.Validate())

		assert.Equal(t, "farm-visit", c.ClientID)
		assert.Equal(t, sarama.WaitForAll, c.Producer.RequiredAcks)
		assert.True(t, c.Producer.Return.Successes)
		assert.Equal(t, 5*time.Second, c.Producer.Timeout)
		assert.Equal(t, 5*time.Second, c.Net.DialTimeout)
		assert.Equal(t, 5*time.Second, c.Net.ReadTimeout)
		assert.Equal(t, 5*time.Second, c.Net.WriteTimeout)
		assert.Equal(t, 500*time.Millisecond, c.Producer.Retry.Backoff)
	})

	t.Run("zero timeout keeps client defaults", func(t *testing.T) {
		c := producerConfig(cfg, 0)
		require.NoError(t, c.Validate())

		defaults := sarama.NewConfig()
		assert.Equal(t, defaults.Producer.Timeout, c.Producer.Timeout)
		assert.Equal(t, defaults.Net.ReadTimeout, c.Net.ReadTimeout)
		assert.Equal(t, 3, c.Producer.Retry.Max)
	})
}
