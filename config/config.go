// Package config wires viper configuration and logging for embedders.
package config

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/getsentry/sentry-go"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/viper"
	prefixed "github.com/x-cray/logrus-prefixed-formatter"
)

// InitLog configures the global logger from the loaded configuration.
func InitLog() {
	logLevel, err := log.ParseLevel(viper.GetString("log.level"))
	if err != nil {
		log.SetLevel(log.InfoLevel)
	} else {
		log.SetLevel(logLevel)
	}

	log.SetOutput(os.Stdout)

	log.SetFormatter(&prefixed.TextFormatter{
		ForceFormatting: true,
		FullTimestamp:   true,
	})
}

// Load reads configuration from a yaml file when present, then overlays
// environment variables under the HEXAVAX prefix.
func Load(file string) {
	viper.SetConfigType("yaml")
	if file != "" {
		viper.SetConfigFile(file)
	}

	viper.AddConfigPath("/.config/")
	viper.AddConfigPath(".")
	err := viper.ReadInConfig()
	if err != nil {
		fmt.Println("No config file. Read config from env.")
		viper.AllowEmptyEnv(false)
	}

	viper.AutomaticEnv()
	viper.SetEnvPrefix("hexavax")
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
}

// InitSentry starts error reporting when a DSN is configured.
func InitSentry() error {
	dsn := viper.GetString("sentry.dsn")
	if dsn == "" {
		return nil
	}
	return sentry.Init(sentry.ClientOptions{
		Dsn:         dsn,
		Environment: viper.GetString("sentry.environment"),
	})
}

// DataBaseURL is the root the dataset fetcher resolves paths against.
func DataBaseURL() string {
	return viper.GetString("data.base_url")
}

// MapStyleURL is the basemap style handed to the render engine.
func MapStyleURL() string {
	return viper.GetString("map.style_url")
}

// MapToken is the basemap provider token.
func MapToken() string {
	return viper.GetString("map.token")
}

// SettleDelay is the view-transition quiet period, 0 when unset so the
// machine falls back to its default.
func SettleDelay() time.Duration {
	return viper.GetDuration("view.settle_delay")
}
