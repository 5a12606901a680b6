package config

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validAuth() Auth {
	return Auth{
		TokenSignKey:  "secret",
		TokenIssuer:   "auth-server",
		TokenAudience: "clinic-api",
		TokenDuration: time.Hour,
	}
}

func TestValidateIssuing(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(cfg *StructuredConfig)
		wantErr error
	}{
		{
			name:   "complete config passes",
			mutate: func(cfg *StructuredConfig) {},
		},
		{
			name:    "missing sign key",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenSignKey = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing issuer",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenIssuer = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing audience",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenAudience = "" },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "zero duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = 0 },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "negative duration",
			mutate:  func(cfg *StructuredConfig) { cfg.Auth.TokenDuration = -time.Minute },
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "missing DSN",
			mutate:  func(cfg *StructuredConfig) { cfg.Storage.DB.DSN = "" },
			wantErr: ErrInvalidStorageConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{
				Auth:    validAuth(),
				Storage: Storage{DB: DB{Driver: "pgx", DSN: "postgres://localhost/clinic"}},
				Server:  Server{HTTPAddress: "localhost:8080"},
			}
			tt.mutate(cfg)

			err := cfg.ValidateIssuing()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestValidateConsuming(t *testing.T) {
	tests := []struct {
		name    string
		adapter Adapter
		auth    Auth
		wantErr error
	}{
		{
			name:    "local mode with full trust contract",
			adapter: Adapter{ValidationMode: ValidationModeLocal},
			auth:    validAuth(),
		},
		{
			name:    "empty mode defaults to local",
			adapter: Adapter{},
			auth:    validAuth(),
		},
		{
			name:    "local mode without secret fails",
			adapter: Adapter{ValidationMode: ValidationModeLocal},
			auth:    Auth{},
			wantErr: ErrInvalidAuthConfigs,
		},
		{
			name:    "remote mode with address",
			adapter: Adapter{ValidationMode: ValidationModeRemote, AuthAddress: "http://auth:8080"},
		},
		{
			name:    "remote mode without address fails",
			adapter: Adapter{ValidationMode: ValidationModeRemote},
			wantErr: ErrInvalidAdapterConfigs,
		},
		{
			name:    "unknown mode fails",
			adapter: Adapter{ValidationMode: "proxy"},
			wantErr: ErrInvalidAdapterConfigs,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{
				Auth:    tt.auth,
				Adapter: tt.adapter,
				Storage: Storage{DB: DB{DSN: "clinic.db"}},
			}

			err := cfg.ValidateConsuming()
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
		})
	}
}

func TestNetAddress_Set(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{"localhost with port", "localhost:8080", "localhost:8080", false},
		{"ip with port", "127.0.0.1:9090", "127.0.0.1:9090", false},
		{"missing port", "localhost", "", true},
		{"bad port", "localhost:abc", "", true},
		{"zero port", "localhost:0", "", true},
		{"bad host", "not-an-ip:8080", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var addr NetAddress
			err := addr.Set(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, addr.String())
		})
	}
}

func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  time.Duration
	}{
		{"string form", `"1h30m"`, 90 * time.Minute},
		{"numeric form (nanoseconds)", `1000000000`, time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			require.NoError(t, json.Unmarshal([]byte(tt.input), &d))
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}

	t.Run("garbage fails", func(t *testing.T) {
		var d Duration
		assert.Error(t, json.Unmarshal([]byte(`"not-a-duration"`), &d))
	})
}

func TestParseJSON(t *testing.T) {
	raw := `{
		"auth": {
			"token_sign_key": "json-secret",
			"token_issuer": "auth-server",
			"token_audience": "clinic-api",
			"token_duration": "45m"
		},
		"storage": {"db": {"driver": "pgx", "dsn": "postgres://localhost/clinic"}},
		"server": {"http_address": "localhost:8080", "request_timeout": "30s"}
	}`

	path := filepath.Join(t.TempDir(), "config.json")
	require.NoError(t, os.WriteFile(path, []byte(raw), 0o600))

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "json-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, "auth-server", cfg.Auth.TokenIssuer)
	assert.Equal(t, "clinic-api", cfg.Auth.TokenAudience)
	assert.Equal(t, 45*time.Minute, cfg.Auth.TokenDuration)
	assert.Equal(t, "pgx", cfg.Storage.DB.Driver)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON(filepath.Join(t.TempDir(), "nope.json"))
	assert.Error(t, err)
}

func TestParseEnv(t *testing.T) {
	t.Setenv("AUTH_TOKEN_SIGN_KEY", "env-secret")
	t.Setenv("AUTH_TOKEN_DURATION", "2h")
	t.Setenv("SERVER_ADDRESS", "0.0.0.0:8080")
	t.Setenv("STORAGE_DB_DATABASE_URI", "postgres://localhost/clinic")

	cfg := &StructuredConfig{}
	require.NoError(t, parseEnv(cfg))

	assert.Equal(t, "env-secret", cfg.Auth.TokenSignKey)
	assert.Equal(t, 2*time.Hour, cfg.Auth.TokenDuration)
	assert.Equal(t, "0.0.0.0:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, "postgres://localhost/clinic", cfg.Storage.DB.DSN)
}
