package utils

import (
	"fmt"
	"os"
	"reflect"
	"strconv"

	"gopkg.in/yaml.v2"
)

type Config struct {
	// Server configuration
	AppPort      string `yaml:"APP_PORT"`
	LogLevel     string `yaml:"LOG_LEVEL"`
	RateLimitMax int    `yaml:"RATE_LIMIT_MAX"`

	// Database configuration
	DBDriver   string `yaml:"DB_DRIVER"`
	DBUser     string `yaml:"DB_USER"`
	DBName     string `yaml:"DB_NAME"`
	DBPassword string `yaml:"DB_PASSWORD"`
	DBPort     string `yaml:"DB_PORT"`
	DBHost     string `yaml:"DB_HOST"`
	DBTimeZone string `yaml:"DB_TIMEZONE"`
	SQLitePath string `yaml:"SQLITE_PATH"`

	// Identity verification
	AuthProvider       string `yaml:"AUTH_PROVIDER"`
	JWTSecret          string `yaml:"JWT_SECRET"`
	FirebaseServiceKey string `yaml:"FIREBASE_SERVICE_KEY"`

	// Mailing configuration
	AppURL           string `yaml:"APP_URL"`
	SMTPHost         string `yaml:"SMTP_HOST"`
	SMTPPort         string `yaml:"SMTP_PORT"`
	SMTPSenderName   string `yaml:"SMTP_SENDER_NAME"`
	SMTPAuthEmail    string `yaml:"SMTP_AUTH_EMAIL"`
	SMTPAuthPassword string `yaml:"SMTP_AUTH_PASSWORD"`

	// AWS S3 configuration
	AWSS3Bucket  string `yaml:"AWS_S3_BUCKET"`
	AWSS3Region  string `yaml:"AWS_S3_REGION"`
	AWSAccessKey string `yaml:"AWS_ACCESS_KEY"`
	AWSSecretKey string `yaml:"AWS_SECRET_KEY"`
}

func defaultConfig() Config {
	return Config{
		AppPort:      "5000",
		LogLevel:     "info",
		RateLimitMax: 20,
		DBDriver:     "postgres",
		DBPort:       "5432",
		DBTimeZone:   "UTC",
		SQLitePath:   "sharebite.db",
		AuthProvider: "firebase",
		SMTPPort:     "587",
	}
}

// LoadConfig reads the YAML file at path, then lets environment variables
// named after the yaml keys override it. A missing file is not an error.
func LoadConfig(path string) (*Config, error) {
	config := defaultConfig()

	file, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(file, &config); err != nil {
			return nil, fmt.Errorf("parse %s: %w", path, err)
		}
	case os.IsNotExist(err):
	default:
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	if err := applyEnv(&config); err != nil {
		return nil, err
	}
	return &config, nil
}

func applyEnv(config *Config) error {
	v := reflect.ValueOf(config).Elem()
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		key := t.Field(i).Tag.Get("yaml")
		value, ok := os.LookupEnv(key)
		if !ok {
			continue
		}

		field := v.Field(i)
		switch field.Kind() {
		case reflect.String:
			field.SetString(value)
		case reflect.Int:
			n, err := strconv.Atoi(value)
			if err != nil {
				return fmt.Errorf("env %s: %w", key, err)
			}
			field.SetInt(int64(n))
		}
	}
	return nil
}

func (c *Config) MailingEnabled() bool {
	return c.SMTPHost != "" && c.SMTPAuthEmail != ""
}

func (c *Config) StorageEnabled() bool {
	return c.AWSS3Bucket != "" && c.AWSS3Region != ""
}
