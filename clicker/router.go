package clicker

import (
	"net/http"
	"strconv"
	"strings"

	chttp "github.com/d0ngw/clicker/http"
	"github.com/d0ngw/clicker/counter"
)

// 路径和响应内容
const (
	ButtonClickPath = "/button-click"
	NotFoundBody    = "404 (Not Found)\n"
)

// Router 将请求分派到静态页面或计数器
type Router struct {
	Counter counter.Counter
	Index   http.Handler
}

// NewRouter 创建Router,indexPath是根路径输出的html文件
func NewRouter(cnt counter.Counter, indexPath string) *Router {
	return &Router{
		Counter: cnt,
		Index: &chttp.StaticFile{
			Path:         indexPath,
			ContentType:  "text/html",
			NotFoundBody: NotFoundBody,
		},
	}
}

// Register 将Router设置为conf的唯一处理器
func (p *Router) Register(conf *chttp.Config) error {
	return conf.SetHandler(p)
}

// ServeHTTP 按原始路径分派,ButtonClickPath及其子路径交给ButtonClick,其他路径都输出Index
func (p *Router) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	path := r.URL.Path
	if path == ButtonClickPath || strings.HasPrefix(path, ButtonClickPath+"/") {
		p.ButtonClick(w, r)
		return
	}
	p.Index.ServeHTTP(w, r)
}

// ButtonClick 处理按钮点击,OPTIONS为CORS预检,POST增加计数
func (p *Router) ButtonClick(w http.ResponseWriter, r *http.Request) {
	header := w.Header()
	switch r.Method {
	case http.MethodOptions:
		header.Set("Access-Control-Allow-Origin", "*")
		header.Set("Access-Control-Allow-Methods", "POST, OPTIONS")
		header.Set("Access-Control-Allow-Headers", "Content-Type")
		chttp.RenderStatus(w, http.StatusNoContent)
	case http.MethodPost:
		header.Set("Access-Control-Allow-Origin", "*")
		value := p.Counter.Incr()
		chttp.RenderText(w, strconv.FormatInt(value, 10))
	default:
		chttp.RenderStatus(w, http.StatusMethodNotAllowed)
	}
}
