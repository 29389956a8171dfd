package config

import (
	"errors"
	"testing"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func failedFields(t *testing.T, err error) []string {
	t.Helper()
	var ve validator.ValidationErrors
	require.True(t, errors.As(err, &ve), "expected validation errors, got %v", err)

	fields := make([]string, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, fe.Namespace())
	}
	return fields
}

func TestNew_Defaults(t *testing.T) {
	t.Setenv("PRINTFUL_API_TOKEN", "token")

	cfg := New()

	assert.Equal(t, StoragePostgres, cfg.Storage)
	assert.Equal(t, "8080", cfg.Http.Port)
	assert.True(t, cfg.Kafka.Enabled)
	assert.Equal(t, []string{"localhost:9092"}, cfg.Kafka.Brokers)
	assert.False(t, cfg.Printful.Sandbox)
	assert.False(t, cfg.Fulfillment.AutoFulfill)
	assert.True(t, cfg.Catalog.FallbackPrice.Equal(decimal.RequireFromString("25")))
	assert.Equal(t, time.Minute, cfg.Fulfillment.LockTTL)
}

func TestNew_EnvOverrides(t *testing.T) {
	t.Setenv("STORAGE", StorageMemory)
	t.Setenv("PRINTFUL_API_TOKEN", "demo")
	t.Setenv("KAFKA_BROKERS", "kafka-1:9092,kafka-2:9092")
	t.Setenv("FULFILLMENT_AUTO", "true")
	t.Setenv("FULFILLMENT_LOCK_TTL", "90s")
	t.Setenv("CATALOG_FALLBACK_PRICE", "19.99")
	t.Setenv("CACHE_CAPACITY", "not a number")

	cfg := New()

	assert.Equal(t, StorageMemory, cfg.Storage)
	assert.True(t, cfg.Printful.Sandbox, "demo token enables sandbox")
	assert.Equal(t, []string{"kafka-1:9092", "kafka-2:9092"}, cfg.Kafka.Brokers)
	assert.True(t, cfg.Fulfillment.AutoFulfill)
	assert.Equal(t, 90*time.Second, cfg.Fulfillment.LockTTL)
	assert.True(t, cfg.Catalog.FallbackPrice.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, 1000, cfg.Cache.Capacity, "invalid value falls back to default")
}

func TestValidate(t *testing.T) {
	testCases := []struct {
		name       string
		env        map[string]string
		wantFields []string
	}{
		{
			name: "memory storage skips postgres",
			env:  map[string]string{"STORAGE": StorageMemory, "PRINTFUL_API_TOKEN": "token"},
		},
		{
			name: "postgres storage requires credentials",
			env:  map[string]string{"PRINTFUL_API_TOKEN": "token"},
			wantFields: []string{
				"Config.Postgres.User",
				"Config.Postgres.Password",
			},
		},
		{
			name:       "token required outside sandbox",
			env:        map[string]string{"STORAGE": StorageMemory, "PRINTFUL_SANDBOX": "false"},
			wantFields: []string{"Config.Printful.Token"},
		},
		{
			name: "sandbox works without token",
			env:  map[string]string{"STORAGE": StorageMemory, "PRINTFUL_SANDBOX": "true"},
		},
		{
			name: "lock must outlive submission",
			env: map[string]string{
				"STORAGE":              StorageMemory,
				"PRINTFUL_API_TOKEN":   "token",
				"FULFILLMENT_LOCK_TTL": "5s",
			},
			wantFields: []string{"Config.Fulfillment.LockTTL"},
		},
		{
			name: "lock must cover write retries and confirmation",
			env: map[string]string{
				"STORAGE":                     StorageMemory,
				"PRINTFUL_API_TOKEN":          "token",
				"FULFILLMENT_SUBMIT_TIMEOUT":  "20s",
				"FULFILLMENT_CONFIRM_TIMEOUT": "20s",
				"FULFILLMENT_LOCK_TTL":        "21s",
			},
			wantFields: []string{"Config.Fulfillment.LockTTL"},
		},
		{
			name: "disabled kafka needs no brokers",
			env: map[string]string{
				"STORAGE":            StorageMemory,
				"PRINTFUL_API_TOKEN": "token",
				"KAFKA_ENABLED":      "false",
				"KAFKA_TOPIC":        "",
				"KAFKA_GROUP_ID":     "",
			},
		},
		{
			name: "enabled kafka needs topic",
			env: map[string]string{
				"STORAGE":            StorageMemory,
				"PRINTFUL_API_TOKEN": "token",
				"KAFKA_TOPIC":        "",
			},
			wantFields: []string{"Config.Kafka.Topic"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			t.Setenv("PRINTFUL_API_TOKEN", "")
			t.Setenv("POSTGRES_USER", "")
			t.Setenv("POSTGRES_PASSWORD", "")
			for k, v := range tc.env {
				t.Setenv(k, v)
			}

			err := New().Validate()
			if len(tc.wantFields) == 0 {
				assert.NoError(t, err)
				return
			}
			assert.ElementsMatch(t, tc.wantFields, failedFields(t, err))
		})
	}
}

func TestFulfillment_LockBudget(t *testing.T) {
	f := Fulfillment{
		SubmitTimeout:     20 * time.Second,
		ConfirmTimeout:    10 * time.Second,
		WriteAttempts:     4,
		WriteInitialDelay: 100 * time.Millisecond,
	}

	// 100ms + 200ms + 400ms между четырьмя попытками записи
	assert.Equal(t, 30*time.Second+700*time.Millisecond, f.LockBudget())

	f.WriteAttempts = 1
	assert.Equal(t, 30*time.Second, f.LockBudget())
}
