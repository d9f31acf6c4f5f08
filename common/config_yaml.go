package common

import (
	"errors"
	"fmt"
	"path"

	"gopkg.in/yaml.v3"
)

// LoadYAML 将data中的YAML配置加载到到结构体target中
func LoadYAML(data []byte, target interface{}) error {
	if len(data) == 0 {
		return fmt.Errorf("Can't load yaml config from empty data")
	}
	return yaml.Unmarshal(data, target)
}

// LoadConfig 从configDir目录下的多个path指定的YAML配置文件中加载配置,addonConfig最后加载,可覆盖文件中的配置
func LoadConfig(config Configurer, addonConfig string, configDir string, pathes ...string) (err error) {
	return LoadConfigWithLoader(FileLoader, config, addonConfig, configDir, pathes...)
}

// LoadConfigWithLoader 使用指定的加载器加载配置,每个配置依次解析到config中,后加载的覆盖先加载的
func LoadConfigWithLoader(loader ConfigLoader, config Configurer, addonConfig string, configDir string, pathes ...string) (err error) {
	if loader == nil {
		err = errors.New("no loader")
		return
	}
	if len(pathes) == 0 && addonConfig == "" {
		return errInvalidConf
	}

	var loaded int
	for _, p := range pathes {
		p = path.Join(configDir, p)
		Infof("load conf from:%s", p)
		cnt, err := loader.Load(p)
		if err != nil {
			return err
		}
		if len(cnt) == 0 {
			Warnf("empty content in %s", p)
			continue
		}
		if err = LoadYAML(cnt, config); err != nil {
			return fmt.Errorf("parse %s fail: %w", p, err)
		}
		loaded++
	}
	if addonConfig != "" {
		if err = LoadYAML([]byte(addonConfig), config); err != nil {
			return fmt.Errorf("parse addon config fail: %w", err)
		}
		loaded++
	}
	if loaded == 0 {
		return errInvalidConf
	}
	return nil
}
