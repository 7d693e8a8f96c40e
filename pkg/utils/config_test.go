package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_FromEnv(t *testing.T) {
	t.Setenv("PORT", "9090")
	t.Setenv("DB_NAME", "farm")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092, kafka-2:9092,")
	t.Setenv("NOTIFY_TIMEOUT", "2s")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, "9090", cfg.App.Port)
	require.Equal(t, "farm", cfg.Database.Name)
	require.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	require.True(t, cfg.Kafka.Enabled())
	require.Equal(t, 2*time.Second, cfg.Notify.Timeout)
	require.Equal(t, "farm-visit.requests", cfg.Kafka.Topic)
	require.Equal(t, 5, cfg.RateLimit.SubmitBurst)
}

func TestKafkaConfig_Enabled(t *testing.T) {
	require.False(t, KafkaConfig{Topic: "t"}.Enabled())
	require.False(t, KafkaConfig{Brokers: []string{"b:9092"}}.Enabled())
}
