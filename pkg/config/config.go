package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

type MongoConfig struct {
	Host       string `yaml:"host"`
	DBName     string `yaml:"dbname"`
	Username   string `yaml:"username"`
	Password   string `yaml:"password"`
	AuthSource string `yaml:"authSource"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

// SourceConfig Telegram 桥接服务的接入参数
type SourceConfig struct {
	BaseURL string `yaml:"baseURL"`
	Token   string `yaml:"token"` // 可用环境变量 SOURCE_TOKEN 覆盖
	Channel string `yaml:"channel"`
	Limit   int    `yaml:"limit"` // 单次拉取的消息条数上限
}

type PipelineConfig struct {
	WindowDays   int      `yaml:"windowDays"` // 只处理最近 N 天的消息
	Timezone     string   `yaml:"timezone"`   // 自然日分组用的时区
	Keywords     []string `yaml:"keywords"`   // 相关性关键词，留空用内置集合
	MinMarketCap int64    `yaml:"minMarketCap"`
}

type Config struct {
	Mongo    MongoConfig    `yaml:"mongo"`
	Server   ServerConfig   `yaml:"server"`
	Source   SourceConfig   `yaml:"source"`
	Pipeline PipelineConfig `yaml:"pipeline"`
}

func LoadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	cfg.applyDefaults()
	if v := os.Getenv("SOURCE_TOKEN"); v != "" {
		cfg.Source.Token = v
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func (c *Config) applyDefaults() {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.Source.Limit <= 0 {
		c.Source.Limit = 200
	}
	if c.Pipeline.WindowDays <= 0 {
		c.Pipeline.WindowDays = 30
	}
	if c.Pipeline.Timezone == "" {
		c.Pipeline.Timezone = "Asia/Seoul"
	}
	if c.Pipeline.MinMarketCap <= 0 {
		c.Pipeline.MinMarketCap = 1000
	}
}

// Validate 必填项缺失直接让启动失败，宁可不跑也不半跑
func (c *Config) Validate() error {
	if c.Mongo.Host == "" {
		return fmt.Errorf("config: mongo.host is required")
	}
	if c.Mongo.DBName == "" {
		return fmt.Errorf("config: mongo.dbname is required")
	}
	if c.Source.BaseURL == "" {
		return fmt.Errorf("config: source.baseURL is required")
	}
	if c.Source.Channel == "" {
		return fmt.Errorf("config: source.channel is required")
	}
	return nil
}
