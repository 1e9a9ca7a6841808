package config

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"inkwell/internal/infrastructure/broker"
	"inkwell/internal/infrastructure/database"
	"inkwell/internal/infrastructure/minio"
	"inkwell/internal/infrastructure/session"
	"inkwell/pkg/logger"
)

type HTTPConfig struct {
	Address   string `yaml:"address"`
	BodyLimit string `yaml:"body_limit"`
}

type AuthConfig struct {
	Secret            string `yaml:"-"`
	TokenTTLInMinutes int64  `yaml:"token_ttl_in_minutes"`
}

// Config represents the configs used by services on system.
type Config struct {
	Environment     string                 `yaml:"environment"`
	HTTPServer      HTTPConfig             `yaml:"http_server"`
	MinIOClient     minio.ClientConfig     `yaml:"minio_client"`
	MinIOUploader   minio.UploaderConfig   `yaml:"minio_uploader"`
	MinIORemover    minio.RemoverConfig    `yaml:"minio_remover"`
	DBConfig        database.Config        `yaml:"db_config"`
	BrokerConfig    broker.Config          `yaml:"redis_broker_config"`
	PublisherConfig broker.PublisherConfig `yaml:"publisher_config"`
	SessionConfig   session.Config         `yaml:"session_config"`
	Auth            AuthConfig             `yaml:"auth"`
	Logger          logger.Config          `yaml:"logger"`
}

// Load reads the yaml config at path and overlays the secrets from the
// environment. Outside prod a .env file supplies them.
func Load(path string) (*Config, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}
	defer file.Close()

	config := &Config{}

	decoder := yaml.NewDecoder(file)

	if err := decoder.Decode(config); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	if config.Environment != "prod" {
		if err := godotenv.Load(); err != nil {
			return nil, Error{
				reason: err.Error(),
			}
		}
	}

	config.MinIOClient.AccessKey = os.Getenv("MINIO_ROOT_USER")
	config.MinIOClient.SecretKey = os.Getenv("MINIO_ROOT_PASSWORD")
	config.DBConfig.URI = os.Getenv("DATABASE_URI")
	config.BrokerConfig.URI = os.Getenv("BROKER_URI")
	config.Auth.Secret = os.Getenv("JWT_SECRET")

	if err = config.basicCheck(); err != nil {
		return nil, Error{
			reason: err.Error(),
		}
	}

	return config, nil
}

// basicCheck validates the basic stuff in config.
func (c *Config) basicCheck() error {
	if c.Auth.Secret == "" {
		return fmt.Errorf("JWT_SECRET is not set")
	}
	if c.DBConfig.URI == "" {
		return fmt.Errorf("DATABASE_URI is not set")
	}
	if c.Auth.TokenTTLInMinutes <= 0 {
		return fmt.Errorf("auth.token_ttl_in_minutes must be positive")
	}

	return nil
}
