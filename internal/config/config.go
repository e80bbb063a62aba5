package config

import "github.com/spf13/viper"

type Config struct {
	ServerPort string `mapstructure:"SERVER_PORT"`
	UploadDir  string `mapstructure:"UPLOAD_DIR"`
	DBPath     string `mapstructure:"DB_PATH"`
}

func Load() Config {
	viper.AutomaticEnv()
	viper.SetDefault("SERVER_PORT", ":8080")
	viper.SetDefault("UPLOAD_DIR", "uploads")
	viper.SetDefault("DB_PATH", "train_analyser.db")

	var cfg Config
	_ = viper.Unmarshal(&cfg)
	return cfg
}
