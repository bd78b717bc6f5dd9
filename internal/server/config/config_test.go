package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestLoadConfig_Defaults(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":50051", cfg.EndpointAddrGRPC)
	require.Equal(t, ":9464", cfg.EndpointAddrMetrics)
	require.Equal(t, 12*time.Hour, cfg.SessionTokenValidityDuration)
	require.Equal(t, 5*time.Minute, cfg.RegistrationGracePeriod)
	require.Equal(t, "user-registered", cfg.AmqpQueue)
	require.Equal(t, 100, cfg.OutboxBatchSize)
}

func TestLoadConfig_Overrides(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("GRPC_ADDRESS", ":6000")
	t.Setenv("SESSION_TOKEN_TTL", "1h")
	t.Setenv("REGISTRATION_GRACE_PERIOD", "30s")
	t.Setenv("OUTBOX_BATCH_SIZE", "7")

	cfg, err := LoadConfig()
	require.NoError(t, err)

	require.Equal(t, ":6000", cfg.EndpointAddrGRPC)
	require.Equal(t, time.Hour, cfg.SessionTokenValidityDuration)
	require.Equal(t, 30*time.Second, cfg.RegistrationGracePeriod)
	require.Equal(t, 7, cfg.OutboxBatchSize)
}

func TestLoadConfig_MissingSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "")

	_, err := LoadConfig()
	require.Error(t, err)
}

func TestLoadConfig_InvalidDuration(t *testing.T) {
	t.Setenv("JWT_SECRET", "k")
	t.Setenv("SESSION_TOKEN_TTL", "soon")

	_, err := LoadConfig()
	require.Error(t, err)
}
