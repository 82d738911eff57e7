// Package cfg provides configuration and command-line interface setup.
package cfg

import (
	"fmt"
	"os"
	"strings"

	"mpvremote/internal/domain/keys"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var rootCmd = &cobra.Command{
	Use:   "mpvremote",
	Short: "mpvremote is a remote control server for the mpv media player.",
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if viper.IsSet(keys.TomlPath) {
			if err := applyConfigFile(); err != nil {
				fmt.Fprintf(os.Stderr, "failed loading config file: %v\n", err)
				os.Exit(1)
			}
		}
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		if cmd.Flags().Lookup("help").Changed {
			return nil
		}
		viper.Set(keys.Execute, true)
		return nil
	},
}

// Execute initializes flags and runs the root command.
func Execute() error {
	viper.AutomaticEnv()
	viper.SetEnvKeyReplacer(strings.NewReplacer("_", "-")) // Convert "config_dir" to "config-dir"

	initProgramFlags()

	return rootCmd.Execute()
}
