package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/trickstertwo/xconsole"
	slogconsole "github.com/trickstertwo/xconsole/adapter/slog"
	"github.com/trickstertwo/xconsole/adapter/terminal"
	zapconsole "github.com/trickstertwo/xconsole/adapter/zap"
	zerologconsole "github.com/trickstertwo/xconsole/adapter/zerolog"
	"github.com/trickstertwo/xconsole/console"
)

func newRootCmd(d *xconsole.Dispatcher) *cobra.Command {
	v := viper.New()

	cmd := &cobra.Command{
		Use:   "xconsole-demo",
		Short: "Emit sample records through the console adapter.",
		Long: `xconsole-demo installs the console adapter with the given level and
target prefix, emits a fixed set of sample records across several targets,
then initializes a second time to show how a repeated Init is reported.`,
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd.ErrOrStderr(), v, d)
		},
	}

	f := cmd.Flags()
	f.String("level", "debug", "Maximum level to emit (off, error, warn, info, debug, trace)")
	f.String("prefix", "", "Only emit records whose target starts with this prefix")
	f.String("sink", "terminal", "Console backend (terminal, zap, zerolog, slog)")
	f.Bool("no-color", false, "Disable colour on terminal backends")
	f.Bool("timestamps", false, "Prefix terminal lines with the current time")
	_ = v.BindPFlags(f)

	v.SetEnvPrefix("XCONSOLE")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	return cmd
}

func run(w io.Writer, v *viper.Viper, d *xconsole.Dispatcher) error {
	level, err := xconsole.ParseLevel(v.GetString("level"))
	if err != nil {
		return err
	}
	cfg := console.NewConfig(level)
	if v.IsSet("prefix") {
		cfg = console.WithPrefix(level, v.GetString("prefix"))
	}

	con, err := newConsole(w, v)
	if err != nil {
		return err
	}

	console.InitWith(d, cfg, con)
	emitSamples(d)

	// A second Init is reported on the console and leaves the first sink in place.
	console.InitWith(d, cfg, con)
	d.Flush()
	return nil
}

func newConsole(w io.Writer, v *viper.Viper) (console.Console, error) {
	noColor := v.GetBool("no-color")
	switch sink := strings.ToLower(v.GetString("sink")); sink {
	case "terminal":
		opts := terminal.Options{Writer: w, Timestamps: v.GetBool("timestamps")}
		if noColor {
			opts.Color = terminal.ColorNever
		}
		return terminal.New(opts), nil
	case "zap":
		return zapconsole.New(zapconsole.NewLogger(zapconsole.Config{Writer: w})), nil
	case "zerolog":
		return zerologconsole.New(zerologconsole.NewLogger(zerologconsole.Config{
			Writer:    w,
			Pretty:    true,
			NoColor:   noColor,
			Timestamp: v.GetBool("timestamps"),
		})), nil
	case "slog":
		return slogconsole.New(slogconsole.NewLogger(slogconsole.Config{
			Writer: w,
			Format: slogconsole.FormatText,
		})), nil
	default:
		return nil, fmt.Errorf("unknown sink %q", sink)
	}
}

func emitSamples(d *xconsole.Dispatcher) {
	d.For("app").Info("starting demo")
	d.For("app::math").Infof("Adding: %d+%d", 1, 2)

	db := d.For("app::db")
	db.Trace("opening pool")
	db.Debug("connecting")
	db.Warn("slow query")

	d.For("app::web").Errorf("request failed: %v", "boom")
	d.For("vendor::http").Info("keep-alive")
}
