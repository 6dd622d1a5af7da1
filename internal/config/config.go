// Package config loads the server configuration once at startup so the
// rest of the code receives an explicit struct instead of reading the
// environment ad hoc.
package config

import (
	"errors"
	"os"

	"github.com/joho/godotenv"
)

// Config holds everything the server needs at startup.
type Config struct {
	Port      string
	JWTSecret string

	// DataDir is where the file backend keeps its collection files.
	DataDir string

	// AWS settings; when region, credentials and bucket are all set the
	// server stores collections in S3 instead of local files.
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	S3Bucket           string
	S3Prefix           string

	// Optional bootstrap admin account, created only when the users
	// collection is empty.
	AdminEmail    string
	AdminPassword string
}

// Load reads .env if present, then the environment. JWT_SECRET is the
// only required value.
func Load() (*Config, error) {
	_ = godotenv.Load()

	cfg := &Config{
		Port:               getEnv("PORT", "8080"),
		JWTSecret:          os.Getenv("JWT_SECRET"),
		DataDir:            getEnv("DATA_DIR", "./data"),
		AWSRegion:          os.Getenv("AWS_REGION"),
		AWSAccessKeyID:     os.Getenv("AWS_ACCESS_KEY_ID"),
		AWSSecretAccessKey: os.Getenv("AWS_SECRET_ACCESS_KEY"),
		S3Bucket:           os.Getenv("AWS_S3_BUCKET"),
		S3Prefix:           os.Getenv("AWS_S3_PREFIX"),
		AdminEmail:         os.Getenv("ADMIN_EMAIL"),
		AdminPassword:      os.Getenv("ADMIN_PASSWORD"),
	}

	if cfg.JWTSecret == "" {
		return nil, errors.New("JWT_SECRET is not set")
	}
	return cfg, nil
}

// UseS3 reports whether the S3 collection backend is fully configured.
func (c *Config) UseS3() bool {
	return c.AWSRegion != "" && c.AWSAccessKeyID != "" &&
		c.AWSSecretAccessKey != "" && c.S3Bucket != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
