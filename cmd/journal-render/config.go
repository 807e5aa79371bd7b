package main

// Config file support. Load defaults from "~/.config/journal-render/config.toml".

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"

	"github.com/pelletier/go-toml"

	"github.com/jrnl-render/jrender/internal/rlog"
)

type config struct {
	tree *toml.Tree
}

func (c *config) GetInt(key string) (val int, ok bool) {
	if c.tree == nil {
		return 0, false
	}
	item := c.tree.Get(key)
	if item == nil {
		return 0, false
	}
	val64, ok := item.(int64)
	if !ok {
		rlog.Warnf("ignore config value: not int: %s=%v (%T)", key, item, item)
		return 0, false
	}
	val = int(val64)
	if int64(val) != val64 {
		rlog.Warnf("ignore config value: int too large: %s=%d", key, val64)
		return 0, false
	}
	return
}

func (c *config) GetString(key string) (val string, ok bool) {
	if c.tree == nil {
		return "", false
	}
	item := c.tree.Get(key)
	if item == nil {
		return "", false
	}
	val, ok = item.(string)
	if !ok {
		rlog.Warnf("ignore config value: not string: %s=%v (%T)", key, item, item)
		return "", false
	}
	return
}

func configFilePath() string {
	var homeEnvVar string
	if runtime.GOOS == "windows" {
		homeEnvVar = "UserProfile"
	} else {
		homeEnvVar = "HOME"
	}
	homeDir, ok := os.LookupEnv(homeEnvVar)
	if !ok {
		return ""
	}
	return filepath.Join(homeDir, ".config", "journal-render", "config.toml")
}

func loadConfig() (*config, error) {
	cfgPath := configFilePath()
	if cfgPath == "" {
		return &config{}, nil
	}

	tree, err := toml.LoadFile(cfgPath)
	if err != nil {
		if os.IsNotExist(err) {
			return &config{}, nil
		}
		return nil, fmt.Errorf("error loading %q: %w", cfgPath, err)
	}

	return &config{tree}, nil
}
