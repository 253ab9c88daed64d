package utils

import (
	"os"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOverrideConfigFromEnvVars(t *testing.T) {
	os.Setenv(ConfigPathEnvVar, "../config.json")
	defer os.Unsetenv(ConfigPathEnvVar)

	// config read from config.json file using env var
	initOnce = sync.Once{}
	config := GetConfig()
	assert.Equal(t, "localhost", config.Mongo.Host)
	assert.Equal(t, "bogurabashi", config.Mongo.DB)
	assert.NotEmpty(t, config.AllowedOrigins)

	// override config from env vars
	expectedSecret := "override-secret"
	expectedPort := "8080"
	os.Setenv(JwtSecretEnvVar, expectedSecret)
	os.Setenv(PortEnvVar, expectedPort)
	defer os.Unsetenv(JwtSecretEnvVar)
	defer os.Unsetenv(PortEnvVar)

	// test config read from env vars
	initOnce = sync.Once{}
	config = GetConfig()
	assert.Equal(t, expectedSecret, config.Auth.Secret)
	assert.Equal(t, expectedPort, config.Port)

	// reset singleton
	initOnce = sync.Once{}
}
