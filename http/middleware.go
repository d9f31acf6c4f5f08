package http

import (
	"net/http"
	"runtime/debug"
	"time"

	c "github.com/d0ngw/clicker/common"
)

// MiddlewareFunc 处理函数
type MiddlewareFunc func(http.ResponseWriter, *http.Request)

// Middleware 在处理器前后执行的过滤操作
type Middleware interface {
	// Handle 包装next
	Handle(next MiddlewareFunc) MiddlewareFunc
}

// MiddlewareHandle 将函数适配为Middleware
type MiddlewareHandle func(next MiddlewareFunc) MiddlewareFunc

// Handle implements Middleware.Handle
func (f MiddlewareHandle) Handle(next MiddlewareFunc) MiddlewareFunc {
	return f(next)
}

// RecoverMiddleware 捕获处理器中的panic,记录日志并返回500
type RecoverMiddleware struct{}

// Handle implements Middleware.Handle
func (RecoverMiddleware) Handle(next MiddlewareFunc) MiddlewareFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if err := recover(); err != nil {
				if err == http.ErrAbortHandler {
					panic(err)
				}
				c.Errorf("handle %s %s panic:%v\n%s", r.Method, r.URL.Path, err, debug.Stack())
				w.WriteHeader(http.StatusInternalServerError)
			}
		}()
		next(w, r)
	}
}

type statusWriter struct {
	http.ResponseWriter
	status int
	size   int
}

func (w *statusWriter) WriteHeader(status int) {
	if w.status == 0 {
		w.status = status
	}
	w.ResponseWriter.WriteHeader(status)
}

func (w *statusWriter) Write(b []byte) (int, error) {
	if w.status == 0 {
		w.status = http.StatusOK
	}
	n, err := w.ResponseWriter.Write(b)
	w.size += n
	return n, err
}

// AccessLogMiddleware 以debug级别记录每个请求
type AccessLogMiddleware struct{}

// Handle implements Middleware.Handle
func (AccessLogMiddleware) Handle(next MiddlewareFunc) MiddlewareFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !c.DebugEnabled() {
			next(w, r)
			return
		}
		start := time.Now()
		sw := &statusWriter{ResponseWriter: w}
		next(sw, r)
		if sw.status == 0 {
			sw.status = http.StatusOK
		}
		c.Debugf("%s %s %s %d %dB %s", r.RemoteAddr, r.Method, r.URL.RequestURI(), sw.status, sw.size, time.Since(start))
	}
}
