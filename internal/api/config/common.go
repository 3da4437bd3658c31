package config

// Config 配置主体
type Config struct {
	Server ServerConfig `mapstructure:"server"`
	DB     DBConfig     `mapstructure:"database"`
	Admin  AdminConfig  `mapstructure:"admin"`
	MinIO  MinIOConfig  `mapstructure:"minio"`
	Upload UploadConfig `mapstructure:"upload"`
	Site   SiteConfig   `mapstructure:"site"`
}

// ServerConfig Server配置
type ServerConfig struct {
	Port int `mapstructure:"port"`
}

// DBConfig 数据库配置
type DBConfig struct {
	DSN         string `mapstructure:"dsn"`
	MaxIdle     int    `mapstructure:"max_idle"`
	MaxOpen     int    `mapstructure:"max_open"`
	MaxLifetime int    `mapstructure:"max_lifetime"`
}

// AdminConfig 后台管理配置，Token 为所有后台路由共享的密钥
type AdminConfig struct {
	Token string `mapstructure:"token"`
}

// MinIOConfig MinIO配置
type MinIOConfig struct {
	Endpoint      string `mapstructure:"endpoint"`
	AccessKey     string `mapstructure:"access_key"`
	SecretKey     string `mapstructure:"secret_key"`
	Bucket        string `mapstructure:"bucket"`
	Region        string `mapstructure:"region"`
	UseSSL        bool   `mapstructure:"use_ssl"`
	PublicBaseURL string `mapstructure:"public_base_url"`
}

// UploadConfig 上传配置
type UploadConfig struct {
	MaxSize int64 `mapstructure:"max_size"`
}

// SiteConfig 前台站点配置
type SiteConfig struct {
	Name          string `mapstructure:"name"`
	BaseURL       string `mapstructure:"base_url"`
	DefaultLocale string `mapstructure:"default_locale"`
}

func (c *Config) setDefaults() {
	if c.Server.Port == 0 {
		c.Server.Port = 8080
	}
	if c.Upload.MaxSize == 0 {
		c.Upload.MaxSize = 10 << 20
	}
	if c.Site.Name == "" {
		c.Site.Name = "Imagine.club"
	}
	if c.Site.DefaultLocale == "" {
		c.Site.DefaultLocale = "pt"
	}
}
