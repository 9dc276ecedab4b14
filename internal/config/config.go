package config

import (
	"log"

	"github.com/spf13/viper"
)

type Config struct {
	Port     string
	DBDSN    string
	MediaDir string
	LogFile  string
}

func Load() Config {
	viper.SetDefault("PORT", "8080")
	viper.SetDefault("DB_DSN", "catalogd.db") // sqlite file in project root
	viper.SetDefault("MEDIA_DIR", "./web/media")
	viper.SetDefault("LOG_FILE", "")
	viper.AutomaticEnv()

	cfg := Config{
		Port:     viper.GetString("PORT"),
		DBDSN:    viper.GetString("DB_DSN"),
		MediaDir: viper.GetString("MEDIA_DIR"),
		LogFile:  viper.GetString("LOG_FILE"),
	}
	log.Printf("[config] PORT=%s DB_DSN=%s MEDIA_DIR=%s LOG_FILE=%s", cfg.Port, cfg.DBDSN, cfg.MediaDir, cfg.LogFile)
	return cfg
}
