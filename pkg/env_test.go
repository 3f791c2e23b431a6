package pkg

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGetenv(t *testing.T) {
	const (
		key          = "LEDGER_TEST_CONFIG_PATH"
		defaultValue = "/etc/ledger/config.yml"
	)

	t.Run("unset key falls back to default", func(t *testing.T) {
		assert.Equal(t, defaultValue, Getenv("LEDGER_TEST_UNSET_KEY", defaultValue))
	})
	t.Run("empty value wins over default", func(t *testing.T) {
		t.Setenv(key, "")
		assert.Equal(t, "", Getenv(key, defaultValue))
	})
	t.Run("value", func(t *testing.T) {
		t.Setenv(key, "/tmp/config.yml")
		assert.Equal(t, "/tmp/config.yml", Getenv(key, defaultValue))
	})
}
