package utils

import (
	"fmt"
	"os"
	"sync"

	"github.com/tkanos/gonfig"
)

const (
	ConfigPathEnvVar      = "CONFIG_PATH"
	MongoDbPasswordEnvVar = "MONGODB_PASSWORD"
	MongoDbUserEnvVar     = "MONGODB_USER"
	JwtSecretEnvVar       = "JWT_SECRET"
	PortEnvVar            = "PORT"
)

type Configuration struct {
	Port           string       `json:"port"`
	Mongo          MongoConfig  `json:"mongo"`
	LoggerConfig   LoggerConfig `json:"logger"`
	Auth           AuthConfig   `json:"auth"`
	AllowedOrigins []string     `json:"allowedOrigins"`
}

type LoggerConfig struct {
	Level       string `json:"level"`
	LogFileName string `json:"logFileName"`
}

type MongoConfig struct {
	Host       string `json:"host,omitempty"`
	Port       string `json:"port,omitempty"`
	User       string `json:"user,omitempty"`
	Password   string `json:"password,omitempty"`
	DB         string `json:"db,omitempty"`
	ReplicaSet string `json:"replicaSet"`
}

type AuthConfig struct {
	Secret string `json:"secret"`
}

// globalConfig with defaults
var globalConfig = Configuration{
	Port: "3000",
	Mongo: MongoConfig{
		Host: "localhost",
		Port: "27017",
		DB:   "bogurabashi",
	},
	AllowedOrigins: []string{
		"http://localhost:5173",
		"https://bogurabashi.netlify.app",
		"https://bogurabashi.com",
	},
}
var initOnce sync.Once

func GetConfig() Configuration {
	initOnce.Do(func() {
		configFileName := "config.json"
		if cfgPath := os.Getenv(ConfigPathEnvVar); cfgPath != "" {
			fmt.Printf("<----- Config file from environment variable: %s ----->\n", cfgPath)
			configFileName = cfgPath
		}
		if err := gonfig.GetConf(configFileName, &globalConfig); err != nil {
			errMsg := fmt.Sprintf("Cannot open config file: %s, Error: %s", configFileName, err.Error())
			panic(errMsg)
		}

		OverrideConfigFromEnvVars(&globalConfig)
	})
	return globalConfig
}

func OverrideConfigFromEnvVars(config *Configuration) {
	if user := os.Getenv(MongoDbUserEnvVar); user != "" {
		fmt.Println("overriding mongo db user from env var")
		config.Mongo.User = user
	}

	if password := os.Getenv(MongoDbPasswordEnvVar); password != "" {
		fmt.Println("overriding mongo db password from env var")
		config.Mongo.Password = password
	}

	if secret := os.Getenv(JwtSecretEnvVar); secret != "" {
		fmt.Println("overriding auth secret from env var")
		config.Auth.Secret = secret
	}

	if port := os.Getenv(PortEnvVar); port != "" {
		config.Port = port
	}
}
