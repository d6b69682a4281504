package config

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func validConfig() *Config {
	cfg := &Config{}
	cfg.LoadDefaults()
	cfg.S3AccessKeyID = "AKIATEST"
	cfg.S3SecretAccessKey = "secret"
	cfg.S3Bucket = "idea-vault"
	return cfg
}

func TestDefaults(t *testing.T) {
	cfg := &Config{}
	cfg.LoadDefaults()

	assert.Equal(t, ":8080", cfg.EndpointAddrHTTP)
	assert.Equal(t, time.Hour, cfg.UploadURLExpiry)
	assert.Equal(t, 5*time.Minute, cfg.DownloadURLExpiry)
	assert.Equal(t, int64(10<<20), cfg.MaxFileSizeBytes)
	// download expiry is deliberately shorter than upload expiry
	assert.Less(t, cfg.DownloadURLExpiry, cfg.UploadURLExpiry)
}

func TestValidateRequiresCredentials(t *testing.T) {
	cfg := validConfig()
	assert.NoError(t, cfg.Validate())

	missing := []func(*Config){
		func(c *Config) { c.S3AccessKeyID = "" },
		func(c *Config) { c.S3SecretAccessKey = "" },
		func(c *Config) { c.S3Bucket = "" },
		func(c *Config) { c.S3Region = "" },
	}
	for _, clear := range missing {
		cfg := validConfig()
		clear(cfg)
		assert.Error(t, cfg.Validate())
	}
}

func TestValidateRejectsNonPositiveExpiry(t *testing.T) {
	cfg := validConfig()
	cfg.DownloadURLExpiry = 0
	assert.Error(t, cfg.Validate())
}
