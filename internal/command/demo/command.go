package demo

import (
	"log/slog"

	"github.com/bornholm/vitrine/internal/command/common"
	"github.com/bornholm/vitrine/internal/demo"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagNoDump = "no-dump"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "demo",
		Usage: "Build the sample products, dump them and display them along with a default user",
		Flags: common.WithDisplayFlags(
			common.WithDumpFlags(
				&cli.BoolFlag{
					Name:  flagNoDump,
					Usage: "Do not dump the raw structure of the products",
				},
			)...,
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			lineBreak, err := common.GetLineBreak(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			dumpFormat, err := common.GetDumpFormat(cCtx)
			if err != nil {
				return errors.Wrap(err, "could not resolve dump format")
			}

			slog.DebugContext(ctx, "running demo", slog.String("dumpFormat", string(dumpFormat)))

			err = demo.Run(
				ctx, cCtx.App.Writer,
				demo.WithDumpFormat(dumpFormat),
				demo.WithLineBreak(lineBreak),
				demo.WithSkipDump(cCtx.Bool(flagNoDump)),
			)
			if err != nil {
				return errors.Wrap(err, "could not run demo")
			}

			return nil
		},
	}
}
