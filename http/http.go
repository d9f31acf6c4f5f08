package http

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"
	"time"

	c "github.com/d0ngw/clicker/common"
	"golang.org/x/net/netutil"
)

const defaultShutdownTimeout = 10 * time.Second

type tcpKeepAliveListener struct {
	*net.TCPListener
}

// Accept接受连接
func (ln tcpKeepAliveListener) Accept() (net.Conn, error) {
	tc, err := ln.AcceptTCP()
	if err != nil {
		return nil, err
	}
	if err = tc.SetKeepAlive(true); err != nil {
		tc.Close()
		return nil, err
	}
	if err = tc.SetKeepAlivePeriod(3 * time.Minute); err != nil {
		tc.Close()
		return nil, err
	}
	return tc, nil
}

// Service Http服务
type Service struct {
	c.BaseService
	Conf     *Config
	listener net.Listener
	server   *http.Server
	serving  sync.WaitGroup
	lock     sync.Mutex
}

// NewService 使用conf创建Http服务
func NewService(name string, conf *Config) *Service {
	return &Service{
		BaseService: c.BaseService{SName: name, Order: 100},
		Conf:        conf,
	}
}

// Init 初始化Http服务
func (p *Service) Init() error {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.Conf == nil {
		return fmt.Errorf("no http config")
	}
	if p.Conf.handler == nil && len(p.Conf.patterns) == 0 {
		return fmt.Errorf("no handler registered")
	}
	if p.Conf.handler != nil && len(p.Conf.patterns) > 0 {
		return fmt.Errorf("handler and patterns can't be used together")
	}
	if p.Conf.Addr == "" {
		p.Conf.Addr = ":http"
	}

	var handler http.Handler
	if p.Conf.handler != nil {
		handler = p.handleWithMiddleware(p.Conf.handler)
	} else {
		serveMux := http.NewServeMux()
		for _, pattern := range p.Conf.patterns {
			serveMux.Handle(pattern, p.handleWithMiddleware(p.Conf.handles[pattern]))
		}
		handler = serveMux
	}

	p.server = &http.Server{
		Addr:         p.Conf.Addr,
		ReadTimeout:  p.Conf.ReadTimeout,
		WriteTimeout: p.Conf.WriteTimeout,
		Handler:      handler,
	}
	return nil
}

// rootHandler 返回处理所有请求的http.Handler,需要在Init之后调用
func (p *Service) rootHandler() http.Handler {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.server == nil {
		return nil
	}
	return p.server.Handler
}

// handleWithMiddleware 依次调用各个middleware
func (p *Service) handleWithMiddleware(handler http.Handler) http.Handler {
	h := MiddlewareFunc(handler.ServeHTTP)
	for i := len(p.Conf.middlewares) - 1; i >= 0; i-- {
		h = p.Conf.middlewares[i].Handle(h)
	}
	return http.HandlerFunc(h)
}

// Start 启动Http服务,开始端口监听和服务处理
func (p *Service) Start() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.server == nil {
		c.Errorf("%s not inited", p.Name())
		return false
	}

	ln, err := net.Listen("tcp", p.Conf.Addr)
	if err != nil {
		c.Errorf("Listen at %s fail,error:%v", p.Conf.Addr, err)
		return false
	}
	c.Infof("Listen at %s", ln.Addr())

	var listener net.Listener = ln
	if tl, ok := ln.(*net.TCPListener); ok {
		listener = tcpKeepAliveListener{tl}
	}
	if p.Conf.MaxConns > 0 {
		listener = netutil.LimitListener(listener, p.Conf.MaxConns)
	}
	p.listener = listener

	server := p.server
	p.serving.Add(1)
	go func() {
		defer p.serving.Done()
		if err := server.Serve(listener); err != nil {
			errLevel := c.Error
			if errors.Is(err, http.ErrServerClosed) {
				errLevel = c.Info
			}
			c.Logf(errLevel, "server.Serve return with %v", err)
		}
	}()
	return true
}

// Addr 实际监听的地址,未启动时返回nil
func (p *Service) Addr() net.Addr {
	p.lock.Lock()
	defer p.lock.Unlock()
	if p.listener == nil {
		return nil
	}
	return p.listener.Addr()
}

// Stop 停止Http服务,关闭端口监听并等待正在处理的请求完成
func (p *Service) Stop() bool {
	p.lock.Lock()
	defer p.lock.Unlock()

	if p.server == nil {
		return true
	}

	timeout := p.Conf.ShutdownTimeout
	if timeout <= 0 {
		timeout = defaultShutdownTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	c.Infof("Waiting shutdown")
	ok := true
	if err := p.server.Shutdown(ctx); err != nil {
		c.Errorf("Shutdown %s error:%v", p.Name(), err)
		p.server.Close()
		ok = false
	}
	p.serving.Wait()
	c.Infof("Finish shutdown")

	p.listener = nil
	p.server = nil
	return ok
}
