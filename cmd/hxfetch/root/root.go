package root

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/MakeNowJust/heredoc/v2"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/angelbeltran/hxassets/internal/logging"
)

const envPrefix = "HXASSETS"

func NewRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:   "hxfetch <command>",
		Short: "Issue htmx fragment requests carrying an asset registry",
		Long: heredoc.Doc(`
			hxfetch sends fragment requests the way an htmx page would, adding the
			X-Teapot-Styles and X-Teapot-Dependencies headers from a local registry.
		`),
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := v.BindPFlag("log-level", cmd.Root().PersistentFlags().Lookup("log-level")); err != nil {
				return fmt.Errorf("failed to bind --log-level: %w", err)
			}
			return initConfig(v, cfgFile)
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return cmd.Help()
		},
	}

	cmd.PersistentFlags().StringVar(&cfgFile, "config", "", "Config file (yaml, toml or json)")
	cmd.PersistentFlags().String("log-level", "info", "Log level (debug, info, warn, error)")

	cmd.AddCommand(NewGetCmd(v))

	return cmd
}

func initConfig(v *viper.Viper, cfgFile string) error {
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if cfgFile == "" {
		return nil
	}

	v.SetConfigFile(cfgFile)
	if err := v.ReadInConfig(); err != nil {
		return fmt.Errorf("failed to read config %s: %w", cfgFile, err)
	}
	return nil
}

func newLogger(cmd *cobra.Command, v *viper.Viper) *slog.Logger {
	return logging.New(cmd.ErrOrStderr(), logging.ParseLevel(v.GetString("log-level")))
}
