package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/loanvault/internal/flagx"
	"github.com/dmitrijs2005/loanvault/internal/timex"
)

// JsonConfig is the on-disk shape of the JSON config file. Durations use
// timex.Duration so both "15m" and integer nanoseconds are accepted.
// Fields left out of the file keep their current values.
type JsonConfig struct {
	EndpointAddrGRPC             string         `json:"endpoint_addr_grpc"`
	DatabaseDSN                  string         `json:"database_dsn"`
	SecretKey                    string         `json:"secret_key"`
	CardEncryptionKey            string         `json:"card_encryption_key"`
	CardKeySalt                  string         `json:"card_key_salt"`
	AccessTokenValidityDuration  timex.Duration `json:"access_token_validity_duration"`
	RefreshTokenValidityDuration timex.Duration `json:"refresh_token_validity_duration"`
	PasswordResetTokenValidity   timex.Duration `json:"password_reset_token_validity"`
	ResendAPIKey                 string         `json:"resend_api_key"`
	EmailSender                  string         `json:"email_sender"`
	FrontendURL                  string         `json:"frontend_url"`
	KafkaBrokers                 []string       `json:"kafka_brokers"`
	KafkaTopic                   string         `json:"kafka_topic"`
	LogLevel                     string         `json:"log_level"`
}

// parseJson loads the file named by -c/-config into config. Nothing happens
// when neither flag is given. An unreadable or invalid file panics.
func parseJson(config *Config) {
	jsonConfigFile := flagx.ConfigFile()
	if jsonConfigFile == "" {
		return
	}

	file, err := os.ReadFile(jsonConfigFile)
	if err != nil {
		panic(err)
	}

	c := &JsonConfig{}
	if err := json.Unmarshal(file, c); err != nil {
		panic(err)
	}

	c.apply(config)
}

func (c *JsonConfig) apply(config *Config) {
	setString(&config.EndpointAddrGRPC, c.EndpointAddrGRPC)
	setString(&config.DatabaseDSN, c.DatabaseDSN)
	setString(&config.SecretKey, c.SecretKey)
	setString(&config.CardEncryptionKey, c.CardEncryptionKey)
	setString(&config.CardKeySalt, c.CardKeySalt)
	setString(&config.ResendAPIKey, c.ResendAPIKey)
	setString(&config.EmailSender, c.EmailSender)
	setString(&config.FrontendURL, c.FrontendURL)
	setString(&config.KafkaTopic, c.KafkaTopic)
	setString(&config.LogLevel, c.LogLevel)

	if c.AccessTokenValidityDuration.Duration > 0 {
		config.AccessTokenValidityDuration = c.AccessTokenValidityDuration.Duration
	}
	if c.RefreshTokenValidityDuration.Duration > 0 {
		config.RefreshTokenValidityDuration = c.RefreshTokenValidityDuration.Duration
	}
	if c.PasswordResetTokenValidity.Duration > 0 {
		config.PasswordResetTokenValidity = c.PasswordResetTokenValidity.Duration
	}
	if len(c.KafkaBrokers) > 0 {
		config.KafkaBrokers = c.KafkaBrokers
	}
}

func setString(dst *string, v string) {
	if v != "" {
		*dst = v
	}
}
