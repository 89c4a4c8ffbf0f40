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

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSON(t, `{
		"app": {
			"token_sign_key": "json-sign-key",
			"token_issuer": "json-issuer",
			"token_duration": "12h",
			"bcrypt_cost": 10
		},
		"storage": {
			"db": {
				"driver": "sqlite3",
				"dsn": "warbler.db"
			}
		},
		"server": {
			"http_address": "localhost:7070",
			"request_timeout": "15s"
		}
	}`)

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-sign-key", cfg.App.TokenSignKey)
	assert.Equal(t, "json-issuer", cfg.App.TokenIssuer)
	assert.Equal(t, 12*time.Hour, cfg.App.TokenDuration)
	assert.Equal(t, 10, cfg.App.BcryptCost)
	assert.Equal(t, "sqlite3", cfg.Storage.DB.Driver)
	assert.Equal(t, "warbler.db", cfg.Storage.DB.DSN)
	assert.Equal(t, "localhost:7070", cfg.Server.HTTPAddress)
	assert.Equal(t, 15*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/file.json")
	assert.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	path := writeTempJSON(t, "{not json")

	_, err := parseJSON(path)
	assert.Error(t, err)
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	var d Duration

	require.NoError(t, d.UnmarshalJSON([]byte(`"1h30m"`)))
	assert.Equal(t, 90*time.Minute, time.Duration(d))

	require.NoError(t, d.UnmarshalJSON([]byte(`1000000000`)))
	assert.Equal(t, time.Second, time.Duration(d))

	assert.Error(t, d.UnmarshalJSON([]byte(`"not-a-duration"`)))
	assert.Error(t, d.UnmarshalJSON([]byte(`{`)))
}

func TestDuration_MarshalJSON(t *testing.T) {
	d := Duration(time.Minute)

	b, err := d.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1m0s"`, string(b))
}
