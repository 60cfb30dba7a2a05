package command

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"sort"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/build"
	"github.com/bornholm/vitrine/internal/command/common"
	"github.com/bornholm/vitrine/internal/config"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

func Main(name string, usage string, defaultCommand string, commands ...*cli.Command) {
	app := NewApp(name, usage, defaultCommand, commands...)

	if err := app.Run(os.Args); err != nil {
		os.Exit(1)
	}
}

func NewApp(name string, usage string, defaultCommand string, commands ...*cli.Command) *cli.App {
	app := &cli.App{
		Name:           name,
		Usage:          usage,
		Commands:       commands,
		DefaultCommand: defaultCommand,
		Version:        build.LongVersion,
		Before: func(ctx *cli.Context) error {
			conf, err := config.Parse()
			if err != nil {
				return errors.Wrap(err, "could not parse config")
			}

			common.SetConfig(ctx, conf)

			slogLevel := conf.Logger.Level

			if ctx.IsSet("log-level") {
				logLevel := ctx.String("log-level")

				switch logLevel {
				case "debug":
					slogLevel = slog.LevelDebug
				case "info":
					slogLevel = slog.LevelInfo
				case "warn":
					slogLevel = slog.LevelWarn
				case "error":
					slogLevel = slog.LevelError
				default:
					return errors.Errorf("unknown log level '%s'", logLevel)
				}
			}

			logger := slog.New(slogx.ContextHandler{
				Handler: slog.NewTextHandler(logWriter(ctx), &slog.HandlerOptions{
					Level:     slogLevel,
					AddSource: true,
				}),
			})

			slog.SetDefault(logger)

			slog.DebugContext(ctx.Context, "using configuration",
				slog.String("version", build.ShortVersion),
				slog.Any("config", conf),
			)

			return nil
		},
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "debug",
				Value:   false,
				EnvVars: []string{"VITRINE_DEBUG"},
				Usage:   "Toggle debug mode",
			},
			&cli.StringFlag{
				Name:  "log-level",
				Usage: "Set logging level (debug, info, warn, error)",
				Value: "warn",
			},
		},
	}

	app.ExitErrHandler = func(ctx *cli.Context, err error) {
		if err == nil {
			return
		}

		debug := ctx.Bool("debug")

		if !debug {
			slog.ErrorContext(ctx.Context, err.Error())
		} else {
			slog.ErrorContext(ctx.Context, fmt.Sprintf("%+v", err))
		}
	}

	sort.Sort(cli.FlagsByName(app.Flags))
	sort.Sort(cli.CommandsByName(app.Commands))

	return app
}

func logWriter(ctx *cli.Context) io.Writer {
	if ctx.App.ErrWriter != nil {
		return ctx.App.ErrWriter
	}

	return os.Stderr
}
