// Package clicker serves the button page and the shared click counter
package clicker

import (
	"path/filepath"

	c "github.com/d0ngw/clicker/common"
	chttp "github.com/d0ngw/clicker/http"
)

// 默认配置
const (
	DefaultAddr      = ":8080"
	DefaultCountFile = "count.txt"
	DefaultIndexFile = "index.html"
)

// CounterConfig 计数器配置
type CounterConfig struct {
	File string `yaml:"file"` //保存计数的文件
}

// StaticConfig 静态页面配置
type StaticConfig struct {
	Index string `yaml:"index"` //根路径输出的html文件
}

// Config clicker的配置
type Config struct {
	c.AppConfig `yaml:",inline"`
	HTTP        *chttp.Config  `yaml:"http"`
	Counter     *CounterConfig `yaml:"counter"`
	Static      *StaticConfig  `yaml:"static"`
}

// NewConfig 创建使用默认值的配置
func NewConfig() *Config {
	p := &Config{}
	p.applyDefaults()
	return p
}

func (p *Config) applyDefaults() {
	if p.HTTP == nil {
		p.HTTP = chttp.NewConfig("")
	}
	if p.HTTP.Addr == "" {
		p.HTTP.Addr = DefaultAddr
	}
	if p.Counter == nil {
		p.Counter = &CounterConfig{}
	}
	if p.Counter.File == "" {
		p.Counter.File = DefaultCountFile
	}
	if p.Static == nil {
		p.Static = &StaticConfig{}
	}
	if p.Static.Index == "" {
		p.Static.Index = DefaultIndexFile
	}
}

// Parse implements Configurer.Parse,填充默认值并初始化日志等基础配置
func (p *Config) Parse() error {
	p.applyDefaults()
	return p.AppConfig.Parse()
}

// LoadConfig 从path加载YAML配置,addon是覆盖path中配置的YAML片段,都为空时使用默认配置
func LoadConfig(path string, addon string) (*Config, error) {
	conf := &Config{}
	if path != "" || addon != "" {
		var pathes []string
		dir := ""
		if path != "" {
			dir = filepath.Dir(path)
			pathes = append(pathes, filepath.Base(path))
		}
		if err := c.LoadConfig(conf, addon, dir, pathes...); err != nil {
			return nil, err
		}
	}
	if err := conf.Parse(); err != nil {
		return nil, err
	}
	return conf, nil
}

// DefaultConfigYAML 默认配置的YAML
const DefaultConfigYAML = `log:
  env: development
  level: info
  file_name: ""
http:
  addr: ":8080"
  read_timeout: 10s
  write_timeout: 10s
  shutdown_timeout: 10s
  max_conns: 0
counter:
  file: count.txt
static:
  index: index.html
`
