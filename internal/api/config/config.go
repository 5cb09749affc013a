package config

import (
	"errors"
	"fmt"
	log "log/slog"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// Cfg 全局可访问的配置实例
var Cfg *Config

// EnvPrefix 环境变量前缀，如 PRISM_SOURCE_DATA_DIR
const EnvPrefix = "PRISM"

func setDefaults(v *viper.Viper) {
	v.SetDefault("server.port", 8080)
	v.SetDefault("log.level", "info")
	v.SetDefault("source.kind", "local")
	v.SetDefault("source.data_dir", "./data/exports")
	v.SetDefault("source.sample_dir", "./data/sample")
	v.SetDefault("parse.date_order", "mdy")
	v.SetDefault("ranking.top_posts", 5)
	v.SetDefault("ranking.content_types", 6)
	v.SetDefault("ranking.time_slots", 5)
	v.SetDefault("redis.db", 0)
	v.SetDefault("redis.pool_size", 10)
	v.SetDefault("audit.enable", false)
	v.SetDefault("audit.spec", "0 0 * * * *")
}

// LoadConfig 从文件加载配置并填充到 Cfg
func LoadConfig() error {
	if err := godotenv.Load(); err != nil {
		log.Info(".env not found, using process environment")
	}

	cfg, err := Load(viper.New(), "./configs")
	if err != nil {
		return err
	}
	Cfg = cfg
	return nil
}

// Load 读取指定目录下的 config.yaml，环境变量优先；文件缺失时只用默认值与环境变量
func Load(v *viper.Viper, paths ...string) (*Config, error) {
	v.SetConfigName("config")
	v.SetConfigType("yaml")
	for _, p := range paths {
		v.AddConfigPath(p)
	}
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	setDefaults(v)

	if err := v.ReadInConfig(); err != nil {
		var configFileNotFoundError viper.ConfigFileNotFoundError
		if !errors.As(err, &configFileNotFoundError) {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		log.Warn("config file not found, using defaults")
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	if err := validator.New().Struct(&cfg); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return &cfg, nil
}
