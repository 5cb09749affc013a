package config

// Config 配置主体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Log     LogConfig     `mapstructure:"log"`
	Source  SourceConfig  `mapstructure:"source"`
	MinIO   MinIOConfig   `mapstructure:"minio"`
	Parse   ParseConfig   `mapstructure:"parse"`
	Ranking RankingConfig `mapstructure:"ranking"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Audit   AuditConfig   `mapstructure:"audit"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port" validate:"min=1,max=65535"`
}

// LogConfig 日志级别：debug / info / warn / error
type LogConfig struct {
	Level string `mapstructure:"level" validate:"oneof=debug info warn error"`
}

// SourceConfig 导出文件来源
type SourceConfig struct {
	Kind      string `mapstructure:"kind" validate:"oneof=local minio"`
	DataDir   string `mapstructure:"data_dir"`
	SampleDir string `mapstructure:"sample_dir"`
	// Patterns 数据集 -> 文件名匹配模式，覆盖默认值
	Patterns map[string]string `mapstructure:"patterns"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint  string `mapstructure:"endpoint"`
	AccessKey string `mapstructure:"access_key"`
	SecretKey string `mapstructure:"secret_key"`
	Bucket    string `mapstructure:"bucket"`
	Prefix    string `mapstructure:"prefix"`
	UseSSL    bool   `mapstructure:"use_ssl"`
}

// ParseConfig 解析选项
type ParseConfig struct {
	DateOrder string `mapstructure:"date_order" validate:"oneof=mdy dmy"`
}

// RankingConfig 排行条数
type RankingConfig struct {
	TopPosts     int `mapstructure:"top_posts" validate:"min=1,max=50"`
	ContentTypes int `mapstructure:"content_types" validate:"min=1,max=50"`
	TimeSlots    int `mapstructure:"time_slots" validate:"min=1,max=50"`
}

type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
	PoolSize int    `mapstructure:"pool_size"`
}

// AuditConfig 定时校验任务
type AuditConfig struct {
	Enable bool   `mapstructure:"enable"`
	Spec   string `mapstructure:"spec" validate:"required_if=Enable true"`
}
