package http

import (
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

// RenderText 渲染Text
func RenderText(w http.ResponseWriter, text string) {
	RenderStatusText(w, http.StatusOK, text)
}

// RenderStatusText 以status渲染Text
func RenderStatusText(w http.ResponseWriter, status int, text string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Length", strconv.Itoa(len(text)))
	w.WriteHeader(status)
	io.WriteString(w, text)
}

// RenderStatus 只输出状态码,没有响应体
func RenderStatus(w http.ResponseWriter, status int) {
	w.WriteHeader(status)
}

// DoRequest 发送请求,返回状态码,响应头和响应体
func DoRequest(client *http.Client, method, url string, body io.Reader) (status int, header http.Header, respBody []byte, err error) {
	req, err := http.NewRequest(method, url, body)
	if err != nil {
		return 0, nil, nil, err
	}
	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, nil, err
	}
	defer resp.Body.Close()
	respBody, err = io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, resp.Header, nil, err
	}
	return resp.StatusCode, resp.Header, respBody, nil
}

// GetURL 请求URL,状态码不是200时返回错误
func GetURL(client *http.Client, url string) (string, error) {
	status, _, body, err := DoRequest(client, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	if status != http.StatusOK {
		return "", fmt.Errorf("Status:%d,msg:%s", status, http.StatusText(status))
	}
	return strings.TrimSpace(string(body)), nil
}
