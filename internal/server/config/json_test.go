package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempJSON(t *testing.T, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(p, []byte(content), 0o600))
	return p
}

func TestParseJson_OverridesOnlyGivenFields(t *testing.T) {
	p := writeTempJSON(t, `{
		"addr": ":9090",
		"storage_driver": "postgres",
		"secret_key": "json-secret",
		"cache_ttl": "2m",
		"degraded_items": false,
		"cors_origins": ["https://wtwr.example"]
	}`)

	var c Config
	c.LoadDefaults()
	parseJson(&c, []string{"-c", p})

	assert.Equal(t, ":9090", c.Addr)
	assert.Equal(t, "postgres", c.StorageDriver)
	assert.Equal(t, "json-secret", c.SecretKey)
	assert.Equal(t, 2*time.Minute, c.CacheTTL)
	assert.False(t, c.DegradedItems)
	assert.Equal(t, []string{"https://wtwr.example"}, c.CORSOrigins)

	assert.Equal(t, "wtwr_db", c.MongoDatabase, "absent fields keep defaults")
	assert.Equal(t, 12, c.BcryptCost)
}

func TestParseJson_LongFlag(t *testing.T) {
	p := writeTempJSON(t, `{"redis_addr": "cache:6379", "cache_ttl": 5000000000}`)

	var c Config
	c.LoadDefaults()
	parseJson(&c, []string{"-config=" + p})

	assert.Equal(t, "cache:6379", c.RedisAddr)
	assert.Equal(t, 5*time.Second, c.CacheTTL)
}

func TestParseJson_NoFlagNoop(t *testing.T) {
	var c Config
	c.LoadDefaults()
	parseJson(&c, []string{"-a", ":1"})
	assert.Equal(t, ":3001", c.Addr)
}

func TestParseJson_InvalidJSONPanics(t *testing.T) {
	p := writeTempJSON(t, `{"addr": `)

	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJson(&c, []string{"-c", p}) })
}

func TestParseJson_MissingFilePanics(t *testing.T) {
	var c Config
	c.LoadDefaults()
	assert.Panics(t, func() { parseJson(&c, []string{"-c", "/definitely/not/here.json"}) })
}
