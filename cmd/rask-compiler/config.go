package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/christianalfoni/rask-ui/internal/server"
	"github.com/christianalfoni/rask-ui/internal/transform"
)

const (
	configName = "rask-compiler"
	configType = "yaml"
	envPrefix  = "RASK"
)

// Settings keys. Each is also read from RASK_<KEY> and bound to the flag of
// the same name with dashes.
const (
	keyDebug        = "debug"
	keyImportSource = "import_source"
	keyCacheSize    = "cache_size"
)

// loadConfig layers flags over environment over the config file over
// defaults. A missing default config file is not an error.
func (a *app) loadConfig(cmd *cobra.Command) error {
	v := a.v
	v.SetDefault(keyCacheSize, server.DefaultCacheSize)

	v.SetConfigType(configType)
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	for _, key := range []string{keyDebug, keyImportSource, keyCacheSize} {
		flag := cmd.Flags().Lookup(strings.ReplaceAll(key, "_", "-"))
		if flag == nil {
			continue
		}
		if err := v.BindPFlag(key, flag); err != nil {
			return fmt.Errorf("bind flag %s: %w", flag.Name, err)
		}
	}

	if a.configFile != "" {
		v.SetConfigFile(a.configFile)
	} else {
		v.SetConfigName(configName)
		v.AddConfigPath(".")
	}

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return fmt.Errorf("read config: %w", err)
		}
	}
	return nil
}

// transformConfig treats an empty import source as unset.
func (a *app) transformConfig() transform.Config {
	if source := a.v.GetString(keyImportSource); source != "" {
		return transform.NewConfig(source)
	}
	return transform.DefaultConfig()
}
