package main

import (
	"fmt"
	"strings"

	"github.com/Jaymin100/BooHoo/internal/app"
	"github.com/Jaymin100/BooHoo/internal/config"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

type flags struct {
	config  string
	port    string
	verbose bool
}

func newCmd() *cobra.Command {
	var f flags

	v := viper.New()
	v.SetEnvPrefix("BOOHOO")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	cmd := &cobra.Command{
		Use:     "boohoo",
		Short:   "Costume party game server.",
		Args:    cobra.ExactArgs(0),
		Version: releaseVersion,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(f.config)
			if err != nil {
				return err
			}
			apply(cfg, f)
			return app.Go(cfg)
		},
	}

	fs := cmd.Flags()
	fs.StringVarP(&f.config, "config", "c", "", "path to env file (env: BOOHOO_CONFIG)")
	fs.StringVarP(&f.port, "port", "p", "", "port to listen on, overrides HTTP_PORT (env: BOOHOO_PORT)")
	fs.BoolVarP(&f.verbose, "verbose", "v", false, "log at debug level (env: BOOHOO_VERBOSE)")

	fs.VisitAll(func(fl *pflag.Flag) {
		_ = v.BindPFlag(fl.Name, fl)
		_ = v.BindEnv(fl.Name)
		if !fl.Changed && v.IsSet(fl.Name) {
			_ = fs.Set(fl.Name, fmt.Sprintf("%v", v.Get(fl.Name)))
		}
	})

	cmd.CompletionOptions.HiddenDefaultCmd = true
	cmd.SetHelpCommand(&cobra.Command{Hidden: true})
	cmd.SetVersionTemplate("boohoo v{{.Version}}\n")

	cmd.SilenceErrors = true
	cmd.SilenceUsage = true

	return cmd
}

func apply(cfg *config.Config, f flags) {
	if f.port != "" {
		cfg.HTTP.Port = f.port
	}
	if f.verbose {
		cfg.Log.Level = "debug"
	}
}
