package common

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
)

// Shutdownhook 监听退出信号,收到信号后依次执行注册的hook函数
type Shutdownhook struct {
	ch    chan os.Signal //接收信号的channel
	hooks []func()       //停机时需要调用的方法列表
	mu    sync.Mutex
}

// NewShutdownhook 创建一个Shutdownhook,sig是要监听的信号,默认会监听syscall.SIGINT,syscall.SIGTERM
func NewShutdownhook(sig ...os.Signal) *Shutdownhook {
	if len(sig) == 0 {
		sig = []os.Signal{syscall.SIGINT, syscall.SIGTERM}
	}
	ch := make(chan os.Signal, len(sig))
	signal.Notify(ch, sig...)
	return &Shutdownhook{ch: ch}
}

// AddHook 增加一个Hook函数
func (p *Shutdownhook) AddHook(hookFunc func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.hooks = append(p.hooks, hookFunc)
}

// WaitShutdown 等待进程退出的信号,当收到进程退出的信号后,依次执行注册的hook函数
func (p *Shutdownhook) WaitShutdown() {
	s := <-p.ch
	signal.Stop(p.ch)
	Infof("Receive signal:%v,Run hooks", s)

	p.mu.Lock()
	hooks := make([]func(), len(p.hooks))
	copy(hooks, p.hooks)
	p.mu.Unlock()

	for _, f := range hooks {
		f()
	}
	Infof("Finished run hooks")
}

// trigger 模拟收到退出信号
func (p *Shutdownhook) trigger() {
	select {
	case p.ch <- syscall.SIGTERM:
	default:
	}
}
