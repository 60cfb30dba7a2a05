package common

import (
	"github.com/bornholm/vitrine/internal/config"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/inspect"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	paramHTML       = "html"
	paramDumpFormat = "dump-format"

	metadataConfig = "config"
)

var (
	flagHTML = &cli.BoolFlag{
		Name:  paramHTML,
		Usage: "End displayed lines with an HTML line break",
	}
	flagDumpFormat = &cli.StringFlag{
		Name:    paramDumpFormat,
		Aliases: []string{"f"},
		Usage:   "Format of the structure dumps (available: 'spew', 'yaml')",
	}
)

func WithDisplayFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagHTML,
	}, flags...)
}

func WithDumpFlags(flags ...cli.Flag) []cli.Flag {
	return append([]cli.Flag{
		flagDumpFormat,
	}, flags...)
}

func SetConfig(ctx *cli.Context, conf *config.Config) {
	if ctx.App.Metadata == nil {
		ctx.App.Metadata = map[string]any{}
	}

	ctx.App.Metadata[metadataConfig] = conf
}

// GetConfig returns the configuration loaded by the application or the
// default one.
func GetConfig(ctx *cli.Context) (*config.Config, error) {
	if conf, ok := ctx.App.Metadata[metadataConfig].(*config.Config); ok {
		return conf, nil
	}

	conf, err := config.Parse()
	if err != nil {
		return nil, errors.WithStack(err)
	}

	return conf, nil
}

// GetLineBreak returns the line break to use, the --html flag taking
// precedence over the configuration.
func GetLineBreak(ctx *cli.Context) (string, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	html := conf.Display.HTML
	if ctx.IsSet(paramHTML) {
		html = ctx.Bool(paramHTML)
	}

	if html {
		return model.HTMLLineBreak, nil
	}

	return "\n", nil
}

func GetDumpFormat(ctx *cli.Context) (inspect.Format, error) {
	conf, err := GetConfig(ctx)
	if err != nil {
		return "", errors.WithStack(err)
	}

	raw := conf.Inspect.Format
	if ctx.IsSet(paramDumpFormat) {
		raw = ctx.String(paramDumpFormat)
	}

	format, err := inspect.ParseFormat(raw)
	if err != nil {
		return "", errors.WithStack(err)
	}

	return format, nil
}
