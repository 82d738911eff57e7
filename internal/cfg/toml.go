package cfg

import (
	"fmt"
	"os"

	"mpvremote/internal/domain/keys"
	"mpvremote/internal/models"

	"github.com/BurntSushi/toml"
	"github.com/spf13/viper"
)

// applyConfigFile parses the TOML config file and feeds its values into
// viper as defaults, so explicit flags and environment variables win.
func applyConfigFile() error {
	config, err := parseTomlFile()
	if err != nil {
		return err
	}
	if config == nil {
		return nil
	}

	if config.Port != 0 {
		viper.SetDefault(keys.Port, config.Port)
	}
	if config.ConfigDir != "" {
		viper.SetDefault(keys.ConfigDir, config.ConfigDir)
	}
	if config.StaticDir != "" {
		viper.SetDefault(keys.StaticDir, config.StaticDir)
	}
	if config.MpvPath != "" {
		viper.SetDefault(keys.MpvPath, config.MpvPath)
	}
	if config.DBPath != "" {
		viper.SetDefault(keys.DBPath, config.DBPath)
	}
	if config.LogFile != "" {
		viper.SetDefault(keys.LogFile, config.LogFile)
	}
	if config.DebugLevel != 0 {
		viper.SetDefault(keys.DebugLevel, config.DebugLevel)
	}
	return nil
}

func parseTomlFile() (*models.Config, error) {
	path := viper.GetString(keys.TomlPath)
	if path == "" {
		return nil, nil
	}

	checkPath, err := os.Stat(path)

	switch {
	case err != nil:
		return nil, err
	case checkPath.IsDir():
		return nil, fmt.Errorf("toml file passed in as directory '%s', should be file", path)
	case !checkPath.Mode().IsRegular():
		return nil, fmt.Errorf("'%s' is not a regular file", path)
	case checkPath.Size() == 0:
		return nil, fmt.Errorf("file '%s' is empty", path)
	}

	var config models.Config

	if _, err := toml.DecodeFile(path, &config); err != nil {
		return nil, err
	}

	return &config, nil
}
