package config

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestStructuredConfig_Validate(t *testing.T) {
	tests := []struct {
		name    string
		key     string
		iv      string
		wantErr bool
	}{
		{name: "valid", key: testKey, iv: testIV},
		{name: "missing key", key: "", iv: testIV, wantErr: true},
		{name: "missing iv", key: testKey, iv: "", wantErr: true},
		{name: "15 byte key", key: testKey[:15], iv: testIV, wantErr: true},
		{name: "17 byte key", key: testKey + "x", iv: testIV, wantErr: true},
		{name: "17 byte iv", key: testKey, iv: testIV + "x", wantErr: true},
		{name: "multibyte key counted in bytes", key: "é" + strings.Repeat("a", 14), iv: testIV},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := &StructuredConfig{App: App{AESSecretKey: tt.key, AESIV: tt.iv}}
			err := cfg.validate()
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrInvalidAppConfigs)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestClientConfig_Validate(t *testing.T) {
	valid := func() *ClientConfig {
		return &ClientConfig{
			App:     ClientApp{AESSecretKey: testKey, AESIV: testIV},
			Adapter: ClientAdapter{BaseURL: "https://api.example.com", RequestTimeout: time.Second},
			Storage: ClientStorage{DB: ClientDB{DSN: "memory"}},
			Workers: ClientWorkers{StatusRefreshInterval: time.Minute},
		}
	}

	assert.NoError(t, valid().validate())

	cfg := valid()
	cfg.Storage.DB.DSN = ""
	assert.ErrorIs(t, cfg.validate(), ErrInvalidStorageConfigs)

	cfg = valid()
	cfg.Adapter.RequestTimeout = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Adapter.BaseURL = "not a url"
	assert.ErrorIs(t, cfg.validate(), ErrInvalidAdapterConfigs)

	cfg = valid()
	cfg.Workers.StatusRefreshInterval = 0
	assert.ErrorIs(t, cfg.validate(), ErrInvalidWorkerConfigs)
}
