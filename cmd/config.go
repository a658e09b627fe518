package cmd

import (
	"os"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPPort           string
	DBHost             string
	DBPort             string
	DBUser             string
	DBPassword         string
	DBName             string
	DBSslMode          string
	MailGatewayURL     string
	StatusFeedURL      string
	StatusSyncSchedule string
}

// LoadFromEnv reads the configuration from the process environment, with a
// .env file in the working directory layered in first. A missing .env file is
// fine when the variables are set in the environment.
func LoadFromEnv() Config {
	_ = godotenv.Load(".env")

	return Config{
		HTTPPort:           os.Getenv("HTTP_PORT"),
		DBHost:             os.Getenv("DB_HOST"),
		DBPort:             os.Getenv("DB_PORT"),
		DBUser:             os.Getenv("DB_USER"),
		DBPassword:         os.Getenv("DB_PASSWORD"),
		DBName:             os.Getenv("DB_NAME"),
		DBSslMode:          os.Getenv("DB_SSLMODE"),
		MailGatewayURL:     os.Getenv("MAIL_GATEWAY_URL"),
		StatusFeedURL:      os.Getenv("STATUS_FEED_URL"),
		StatusSyncSchedule: os.Getenv("STATUS_SYNC_SCHEDULE"),
	}
}
