package config

import (
	"errors"
	"io/fs"
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const DefaultConfigurationFile = "whereisit.yaml"

type Configuration struct {
	Server   ServerConfig   `yaml:"server"`
	Database DatabaseConfig `yaml:"database"`
	Storage  StorageConfig  `yaml:"storage"`
	QR       QRConfig       `yaml:"qr"`
}

type ServerConfig struct {
	Port          int           `yaml:"port"`
	BasePath      string        `yaml:"base_path"`
	StaticPath    string        `yaml:"static_path"`
	Concurrency   int           `yaml:"concurrency"`
	RequestConfig RequestConfig `yaml:"request_config"`
	LogConfig     LogConfig     `yaml:"log_config"`
	CleanConfig   CleanConfig   `yaml:"clean_config"`
}

type RequestConfig struct {
	SizeLimit int `yaml:"size_limit"`
}

type LogConfig struct {
	Level   string `yaml:"level"`
	Format  string `yaml:"format"`
	Output  string `yaml:"output"`
	LogPath string `yaml:"log_path"`
}

type CleanConfig struct {
	Schedule string `yaml:"schedule"`
}

type DatabaseConfig struct {
	Driver string `yaml:"driver"`
	Path   string `yaml:"path"`
	DSN    string `yaml:"dsn"`
}

type StorageConfig struct {
	Driver string   `yaml:"driver"`
	Path   string   `yaml:"path"`
	S3     S3Config `yaml:"s3"`
}

type S3Config struct {
	Bucket    string `yaml:"bucket"`
	Region    string `yaml:"region"`
	Endpoint  string `yaml:"endpoint"`
	PathStyle bool   `yaml:"path_style"`
}

type QRConfig struct {
	LinkPrefix string `yaml:"link_prefix"`
	Size       int    `yaml:"size"`
}

// LoadConfiguration reads the yaml file at configurationFilePath, applies
// WHEREISIT_* environment overrides (a .env file in the working directory is
// loaded first) and fills defaults. A missing file is not an error.
func LoadConfiguration(configurationFilePath string) (*Configuration, error) {
	_ = godotenv.Load()

	var config Configuration
	data, err := os.ReadFile(configurationFilePath)
	switch {
	case err == nil:
		if err = yaml.Unmarshal(data, &config); err != nil {
			return nil, err
		}
	case errors.Is(err, fs.ErrNotExist):
	default:
		return nil, err
	}

	if err = applyEnvironment(&config); err != nil {
		return nil, err
	}
	config.applyDefaults()
	return &config, nil
}

func applyEnvironment(config *Configuration) error {
	if port := os.Getenv("WHEREISIT_PORT"); port != "" {
		value, err := strconv.Atoi(port)
		if err != nil {
			return errors.New("WHEREISIT_PORT must be a number")
		}
		config.Server.Port = value
	}
	overrides := map[string]*string{
		"WHEREISIT_BASE_PATH":      &config.Server.BasePath,
		"WHEREISIT_LOG_LEVEL":      &config.Server.LogConfig.Level,
		"WHEREISIT_DB_DRIVER":      &config.Database.Driver,
		"WHEREISIT_DB_PATH":        &config.Database.Path,
		"WHEREISIT_DB_DSN":         &config.Database.DSN,
		"WHEREISIT_STORAGE_DRIVER": &config.Storage.Driver,
		"WHEREISIT_STORAGE_PATH":   &config.Storage.Path,
		"WHEREISIT_S3_BUCKET":      &config.Storage.S3.Bucket,
		"WHEREISIT_S3_REGION":      &config.Storage.S3.Region,
		"WHEREISIT_S3_ENDPOINT":    &config.Storage.S3.Endpoint,
		"WHEREISIT_QR_LINK_PREFIX": &config.QR.LinkPrefix,
		"WHEREISIT_CLEAN_SCHEDULE": &config.Server.CleanConfig.Schedule,
	}
	for name, target := range overrides {
		if value, ok := os.LookupEnv(name); ok {
			*target = value
		}
	}
	if pathStyle := os.Getenv("WHEREISIT_S3_PATH_STYLE"); pathStyle != "" {
		config.Storage.S3.PathStyle = strings.EqualFold(pathStyle, "true")
	}
	return nil
}

func (c *Configuration) applyDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Server.Concurrency == 0 {
		c.Server.Concurrency = 256
	}
	if c.Server.RequestConfig.SizeLimit == 0 {
		c.Server.RequestConfig.SizeLimit = 10
	}
	c.Server.BasePath = strings.TrimRight(c.Server.BasePath, "/")
	if c.Server.LogConfig.Level == "" {
		c.Server.LogConfig.Level = "info"
	}
	if c.Server.LogConfig.Format == "" {
		c.Server.LogConfig.Format = "text"
	}
	if c.Server.LogConfig.Output == "" {
		c.Server.LogConfig.Output = "stdout"
	}
	if c.Server.CleanConfig.Schedule == "" {
		c.Server.CleanConfig.Schedule = "@every 1h"
	}
	if c.Database.Driver == "" {
		c.Database.Driver = "sqlite"
	}
	if c.Database.Path == "" {
		c.Database.Path = "whereisit.db"
	}
	if c.Storage.Driver == "" {
		c.Storage.Driver = "fs"
	}
	if c.Storage.Path == "" {
		c.Storage.Path = "photos"
	}
	if c.QR.LinkPrefix == "" {
		c.QR.LinkPrefix = "/hassio/ingress/whereisit"
	}
	c.QR.LinkPrefix = strings.TrimRight(c.QR.LinkPrefix, "/")
	if c.QR.Size == 0 {
		c.QR.Size = 256
	}
}
