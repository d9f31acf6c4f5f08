// Package http 提供基本的http服务
package http

import (
	"fmt"
	"net/http"
	"time"
)

// Config Http配置
type Config struct {
	Addr            string        `yaml:"addr"`             //Http监听地址
	ReadTimeout     time.Duration `yaml:"read_timeout"`     //读超时,如"5s",0表示不限制
	WriteTimeout    time.Duration `yaml:"write_timeout"`    //写超时,0表示不限制
	ShutdownTimeout time.Duration `yaml:"shutdown_timeout"` //停止时等待处理完成的超时,默认10s
	MaxConns        int           `yaml:"max_conns"`        //最大的并发连接数,0表示不限制
	middlewares     []Middleware
	handler         http.Handler //处理所有请求的处理器,设置后不再使用ServeMux
	patterns        []string
	handles         map[string]http.Handler
}

// NewConfig 创建配置
func NewConfig(addr string) *Config {
	p := &Config{Addr: addr}
	p.ensure()
	return p
}

func (p *Config) ensure() {
	if p.handles == nil {
		p.handles = map[string]http.Handler{}
	}
}

// RegHandler 注册patternPath的处理器
func (p *Config) RegHandler(patternPath string, handler http.Handler) error {
	if handler == nil {
		return fmt.Errorf("Can't bind nil handler to path %s", patternPath)
	}
	p.ensure()
	if _, ok := p.handles[patternPath]; ok {
		return fmt.Errorf("Duplicate ,path:%s", patternPath)
	}
	p.handles[patternPath] = handler
	p.patterns = append(p.patterns, patternPath)
	return nil
}

// RegHandleFunc 注册patternPath的处理函数handlerFunc
func (p *Config) RegHandleFunc(patternPath string, handlerFunc http.HandlerFunc) error {
	if handlerFunc == nil {
		return fmt.Errorf("Can't bind nil handlerFunc to path %s", patternPath)
	}
	return p.RegHandler(patternPath, handlerFunc)
}

// RegMiddleware 注册middleware,按注册的次序由外向内执行
func (p *Config) RegMiddleware(middleware Middleware) error {
	if middleware == nil {
		return fmt.Errorf("invalid middleware")
	}
	p.middlewares = append(p.middlewares, middleware)
	return nil
}

// SetHandler 设置处理所有请求的处理器,请求的原始路径不经过ServeMux的清理和重定向,
// 不能与RegHandler同时使用
func (p *Config) SetHandler(handler http.Handler) error {
	if handler == nil {
		return fmt.Errorf("Can't set nil handler")
	}
	if p.handler != nil {
		return fmt.Errorf("Duplicate handler")
	}
	p.handler = handler
	return nil
}
