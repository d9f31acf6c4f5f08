package clicker

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	c "github.com/d0ngw/clicker/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadConfigDefaults(t *testing.T) {
	conf, err := LoadConfig("", "")
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, conf.HTTP.Addr)
	assert.Equal(t, DefaultCountFile, conf.Counter.File)
	assert.Equal(t, DefaultIndexFile, conf.Static.Index)
}

func TestLoadConfigFromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clicker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`
log:
  level: warn
  no_caller: true
http:
  addr: "127.0.0.1:9090"
  read_timeout: 5s
  max_conns: 16
counter:
  file: /tmp/clicks.txt
`), 0644))

	conf, err := LoadConfig(path, "")
	require.NoError(t, err)
	defer c.SetLogLevel(c.Debug)

	assert.Equal(t, "127.0.0.1:9090", conf.HTTP.Addr)
	assert.Equal(t, 5*time.Second, conf.HTTP.ReadTimeout)
	assert.Equal(t, 16, conf.HTTP.MaxConns)
	assert.Equal(t, "/tmp/clicks.txt", conf.Counter.File)
	assert.Equal(t, DefaultIndexFile, conf.Static.Index)
	assert.False(t, c.InfoEnabled())
	assert.True(t, c.WarnEnabled())
}

func TestDefaultConfigYAML(t *testing.T) {
	conf := &Config{}
	require.NoError(t, c.LoadYAML([]byte(DefaultConfigYAML), conf))
	require.NoError(t, conf.Parse())
	assert.Equal(t, DefaultAddr, conf.HTTP.Addr)
	assert.Equal(t, 10*time.Second, conf.HTTP.ShutdownTimeout)
	assert.Equal(t, DefaultCountFile, conf.Counter.File)
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "none.yaml"), "")
	assert.Error(t, err)
}

func TestLoadConfigWithAddon(t *testing.T) {
	path := filepath.Join(t.TempDir(), "clicker.yaml")
	require.NoError(t, os.WriteFile(path, []byte(DefaultConfigYAML), 0644))

	conf, err := LoadConfig(path, "http:\n  addr: \"127.0.0.1:7070\"\ncounter:\n  file: clicks.txt\n")
	require.NoError(t, err)
	assert.Equal(t, "127.0.0.1:7070", conf.HTTP.Addr)
	assert.Equal(t, 10*time.Second, conf.HTTP.ReadTimeout)
	assert.Equal(t, "clicks.txt", conf.Counter.File)
	assert.Equal(t, DefaultIndexFile, conf.Static.Index)

	conf, err = LoadConfig("", "static:\n  index: page.html")
	require.NoError(t, err)
	assert.Equal(t, DefaultAddr, conf.HTTP.Addr)
	assert.Equal(t, "page.html", conf.Static.Index)

	_, err = LoadConfig(path, "http: [")
	assert.Error(t, err)
}
