package config

import (
	"errors"
	"io/fs"
	"os"
	"time"

	"github.com/dmitrijs2005/loanvault/internal/flagx"
	"github.com/joho/godotenv"
)

const envPrefix = "LOANVAULT_"

// parseEnv overlays LOANVAULT_* environment variables. A dotenv file named by
// -env-file, or ./.env when present, is loaded first; variables already set
// in the process environment win over the file.
func parseEnv(config *Config) {
	if file := flagx.EnvFile(); file != "" {
		if err := godotenv.Load(file); err != nil {
			panic(err)
		}
	} else if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic(err)
	}

	lookupString(&config.EndpointAddrGRPC, "GRPC_ADDR")
	lookupString(&config.DatabaseDSN, "DATABASE_DSN")
	lookupString(&config.SecretKey, "SECRET_KEY")
	lookupString(&config.CardEncryptionKey, "CARD_ENCRYPTION_KEY")
	lookupString(&config.CardKeySalt, "CARD_KEY_SALT")
	lookupDuration(&config.AccessTokenValidityDuration, "ACCESS_TOKEN_VALIDITY")
	lookupDuration(&config.RefreshTokenValidityDuration, "REFRESH_TOKEN_VALIDITY")
	lookupDuration(&config.PasswordResetTokenValidity, "PASSWORD_RESET_TOKEN_VALIDITY")
	lookupString(&config.ResendAPIKey, "RESEND_API_KEY")
	lookupString(&config.EmailSender, "EMAIL_SENDER")
	lookupString(&config.FrontendURL, "FRONTEND_URL")
	lookupString(&config.KafkaTopic, "KAFKA_TOPIC")
	lookupString(&config.LogLevel, "LOG_LEVEL")

	if v, ok := os.LookupEnv(envPrefix + "KAFKA_BROKERS"); ok {
		config.KafkaBrokers = splitList(v)
	}
}

func lookupString(dst *string, key string) {
	if v, ok := os.LookupEnv(envPrefix + key); ok && v != "" {
		*dst = v
	}
}

func lookupDuration(dst *time.Duration, key string) {
	v, ok := os.LookupEnv(envPrefix + key)
	if !ok || v == "" {
		return
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		panic(err)
	}
	*dst = d
}
