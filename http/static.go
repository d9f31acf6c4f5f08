package http

import (
	"errors"
	"io/fs"
	"net/http"
	"os"
	"strconv"

	c "github.com/d0ngw/clicker/common"
)

// StaticFile 每次请求时读取Path指定的文件并原样输出,不做缓存
type StaticFile struct {
	Path         string
	ContentType  string
	NotFoundBody string
}

// ServeHTTP implements http.Handler
func (p *StaticFile) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	content, err := os.ReadFile(p.Path)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			c.Warnf("read static file %s fail,err:%v", p.Path, err)
		}
		RenderStatusText(w, http.StatusNotFound, p.NotFoundBody)
		return
	}
	if p.ContentType != "" {
		w.Header().Set("Content-Type", p.ContentType)
	}
	w.Header().Set("Content-Length", strconv.Itoa(len(content)))
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(content); err != nil {
		c.Debugf("write static file %s to %s fail,err:%v", p.Path, r.RemoteAddr, err)
	}
}
