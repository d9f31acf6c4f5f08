package common

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var data = `
a: Easy!
b:
  c: 2
  d: [3, 4]
`

type conf struct {
	A string
	B struct {
		C int
		D []int `yaml:",flow"`
	}
}

func (p *conf) Parse() error {
	return nil
}

func TestLoadYAML(t *testing.T) {
	config := conf{}
	err := LoadYAML([]byte(data), &config)
	assert.NoError(t, err)
	assert.Equal(t, "Easy!", config.A)
	assert.Equal(t, 2, config.B.C)
	assert.Equal(t, []int{3, 4}, config.B.D)

	assert.Error(t, LoadYAML(nil, &config))
}

var appConfigData = `
log:
  env: development
  level: info
  no_caller: true
runtime:
  maxprocs: 0
`

type appTestConfig struct {
	AppConfig `yaml:",inline"`
	Name      string `yaml:"name"`
}

func TestAppConfig(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "app.yaml"), []byte(appConfigData), 0644))

	var appConfig appTestConfig
	err := LoadConfig(&appConfig, "name: clicker", dir, "app.yaml")
	require.NoError(t, err)
	assert.Equal(t, "clicker", appConfig.Name)
	require.NotNil(t, appConfig.LogConfig)
	assert.Equal(t, "info", appConfig.LogConfig.Level)

	require.NoError(t, Parse(&appConfig))
	assert.False(t, DebugEnabled())
	assert.True(t, InfoEnabled())
	SetLogLevel(Debug)
}

func TestLoadConfigErrors(t *testing.T) {
	var c conf
	assert.Equal(t, errInvalidConf, LoadConfig(&c, "", t.TempDir()))
	assert.Error(t, LoadConfig(&c, "", t.TempDir(), "missing.yaml"))
	assert.Error(t, LoadConfigWithLoader(nil, &c, "a: x", ""))
}

func TestLoadConfigAddonOverrides(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.yaml"), []byte("name: from-a\nlog:\n  level: warn\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "b.yaml"), []byte("name: from-b\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "empty.yaml"), nil, 0644))

	var appConfig appTestConfig
	require.NoError(t, LoadConfig(&appConfig, "", dir, "a.yaml", "empty.yaml", "b.yaml"))
	assert.Equal(t, "from-b", appConfig.Name)
	require.NotNil(t, appConfig.LogConfig)
	assert.Equal(t, "warn", appConfig.LogConfig.Level)

	appConfig = appTestConfig{}
	require.NoError(t, LoadConfig(&appConfig, "name: from-addon\nlog:\n  env: production", dir, "a.yaml"))
	assert.Equal(t, "from-addon", appConfig.Name)
	assert.Equal(t, "warn", appConfig.LogConfig.Level)
	assert.Equal(t, EnvProduction, appConfig.LogConfig.Env)

	appConfig = appTestConfig{}
	assert.Equal(t, errInvalidConf, LoadConfig(&appConfig, "", dir, "empty.yaml"))
	assert.Error(t, LoadConfig(&appConfig, "name: [", dir, "a.yaml"))
}
