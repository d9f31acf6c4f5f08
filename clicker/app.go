package clicker

import (
	"fmt"

	c "github.com/d0ngw/clicker/common"
	chttp "github.com/d0ngw/clicker/http"
	"github.com/d0ngw/clicker/counter"
)

// App 组装计数器和Http服务
type App struct {
	Conf     *Config
	Store    *counter.Store
	HTTP     *chttp.Service
	services *c.Services
}

// NewApp 根据conf创建App,conf需要已经Parse
func NewApp(conf *Config) (*App, error) {
	if conf == nil || conf.HTTP == nil || conf.Counter == nil || conf.Static == nil {
		return nil, fmt.Errorf("invalid config")
	}

	store := counter.NewStore("clicks", counter.NewFilePersist(conf.Counter.File))

	router := NewRouter(store, conf.Static.Index)
	if err := conf.HTTP.RegMiddleware(chttp.RecoverMiddleware{}); err != nil {
		return nil, err
	}
	if err := conf.HTTP.RegMiddleware(chttp.AccessLogMiddleware{}); err != nil {
		return nil, err
	}
	if err := router.Register(conf.HTTP); err != nil {
		return nil, err
	}
	httpService := chttp.NewService("http", conf.HTTP)

	return &App{
		Conf:     conf,
		Store:    store,
		HTTP:     httpService,
		services: c.NewServices(store, httpService),
	}, nil
}

// Start 加载计数后开始监听,任何一步失败都返回错误
func (p *App) Start() error {
	if !p.services.Init() {
		return fmt.Errorf("init services fail")
	}
	if !p.services.Start() {
		p.services.Stop()
		return fmt.Errorf("start services fail, addr:%s", p.Conf.HTTP.Addr)
	}
	c.Infof("clicker is listening on %s, counter:%d", p.HTTP.Addr(), p.Store.Value())
	return nil
}

// Stop 停止Http服务
func (p *App) Stop() {
	p.services.Stop()
	c.SyncLog()
}
