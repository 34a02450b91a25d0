// Package config contains code to set the default values and read
// config files to be used throughout the whole application
package config

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"fmt"
	"os"
	"slices"

	"github.com/spf13/pflag"
	v "github.com/spf13/viper"
)

var (
	migrate        = pflag.Bool("migrate", true, "Runs database migrations on startup")
	validLogLevels = []string{"debug", "info", "warn", "error", "fatal"}
	validDrivers   = []string{"sqlite", "postgres"}
)

func genSecret(n int) string {
	b := make([]byte, n)
	rand.Read(b)
	return hex.EncodeToString(b)
}

// Setup prepares everything config-related so that the app can
// start working. Function will return an error if something
// is critically wrong and the application can't run because of
// that.
func Setup() error {
	pflag.Parse()
	v.BindPFlags(pflag.CommandLine)

	v.SetConfigName("config")
	v.SetConfigType("toml")
	v.AddConfigPath(".")

	v.AutomaticEnv()

	//
	// ENVS
	//
	v.BindEnv("app.log_level", "app_log_level")

	v.BindEnv("host.port", "host_port")
	v.BindEnv("host.domain", "host_domain")
	v.BindEnv("host.cors", "host_cors")

	v.BindEnv("host.ssl.enabled", "host_ssl_enabled")
	v.BindEnv("host.ssl.certificate_path", "host_ssl_certificate_path")
	v.BindEnv("host.ssl.certificate_key_path", "host_ssl_certificate_key_path")

	v.BindEnv("database.driver", "database_driver")
	v.BindEnv("database.dsn", "database_dsn")

	v.BindEnv("jwt.secret", "jwt_secret")
	v.BindEnv("crypto.secret", "crypto_secret")

	v.BindEnv("mail.enabled", "mail_enabled")
	v.BindEnv("mail.host", "mail_host")
	v.BindEnv("mail.port", "mail_port")
	v.BindEnv("mail.sender", "mail_sender")
	v.BindEnv("mail.password", "mail_password")

	v.BindEnv("security.rate_limit", "security_rate_limit")

	//
	// Defaults
	//
	v.SetDefault("app.log_level", "info")

	v.SetDefault("host.port", 8080)
	v.SetDefault("host.domain", "localhost")
	v.SetDefault("host.cors", "http://localhost:5173")

	v.SetDefault("host.ssl.enabled", false)

	v.SetDefault("database.driver", "sqlite")
	v.SetDefault("database.dsn", "database.db")

	v.SetDefault("mail.enabled", false)
	v.SetDefault("mail.port", 587)

	v.SetDefault("security.rate_limit", 20)

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(v.ConfigFileNotFoundError); !ok {
			return fmt.Errorf("failed to read config file, %w", err)
		}
	}

	if !slices.Contains(validLogLevels, v.GetString("app.log_level")) {
		return errors.New("invalid log level provided")
	}

	if v.GetInt("host.port") <= 0 {
		return errors.New("invalid port provided")
	}

	if v.GetBool("host.ssl.enabled") {
		if v.GetString("host.ssl.certificate_path") == "" {
			return errors.New("no ssl certificate path provided")
		}

		if v.GetString("host.ssl.certificate_key_path") == "" {
			return errors.New("no ssl certificate key path provided")
		}
	}

	if !slices.Contains(validDrivers, v.GetString("database.driver")) {
		return errors.New("invalid database driver provided")
	}

	if v.GetString("database.driver") == "postgres" && v.GetString("database.dsn") == "" {
		return errors.New("postgres driver requires a dsn")
	}

	if v.GetString("jwt.secret") == "" {
		fmt.Println("WARNING: You haven't set a JWT secret, so it has been generated for you. Please set it as an environment variable or in the config.toml file.\nYour random JWT secret:\n\n" + genSecret(64) + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	if v.GetString("crypto.secret") == "" {
		fmt.Println("WARNING: You haven't set an encryption secret, so it has been generated for you.\nYour random encryption secret:\n\n" + genSecret(32) + "\n\nPaste it into your config.toml file.")
		os.Exit(0)
	}

	key, err := hex.DecodeString(v.GetString("crypto.secret"))
	if err != nil || len(key) != 32 {
		return errors.New("crypto.secret must be 32 bytes of hex")
	}

	if v.GetBool("mail.enabled") {
		if v.GetString("mail.host") == "" {
			return errors.New("mail host can't be empty")
		}
		if v.GetString("mail.sender") == "" {
			return errors.New("mail sender can't be empty")
		}
		if v.GetString("mail.password") == "" {
			return errors.New("mail password can't be empty")
		}
	} else {
		fmt.Println("[WARNING]: Mail delivery is disabled. Verification keys will only be visible in the logs")
	}

	if v.GetInt("security.rate_limit") <= 0 {
		return errors.New("rate limit must be bigger than 0")
	}

	v.Set("app.migrate", *migrate)
	return nil
}
