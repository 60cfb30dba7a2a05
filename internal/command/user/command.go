package user

import (
	"github.com/bornholm/vitrine/internal/command/common"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/inspect"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagName  = "name"
	flagEmail = "email"
	flagDump  = "dump"
)

func Command() *cli.Command {
	return &cli.Command{
		Name:  "user",
		Usage: "Display a user",
		Flags: common.WithDisplayFlags(
			common.WithDumpFlags(
				&cli.StringFlag{
					Name:  flagName,
					Usage: "Name of the user",
					Value: model.DefaultUserName,
				},
				&cli.StringFlag{
					Name:  flagEmail,
					Usage: "Email of the user",
					Value: model.DefaultUserEmail,
				},
				&cli.BoolFlag{
					Name:  flagDump,
					Usage: "Dump the raw structure of the user before displaying it",
				},
			)...,
		),
		Action: func(cCtx *cli.Context) error {
			lineBreak, err := common.GetLineBreak(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			user := model.NewUser(
				model.WithUserName(cCtx.String(flagName)),
				model.WithUserEmail(cCtx.String(flagEmail)),
			)

			if cCtx.Bool(flagDump) {
				dumpFormat, err := common.GetDumpFormat(cCtx)
				if err != nil {
					return errors.Wrap(err, "could not resolve dump format")
				}

				if err := inspect.Dump(cCtx.App.Writer, user, dumpFormat); err != nil {
					return errors.Wrap(err, "could not dump user")
				}
			}

			w := model.NewLineBreakWriter(cCtx.App.Writer, lineBreak)

			if err := model.Display(w, user); err != nil {
				return errors.Wrap(err, "could not display user")
			}

			return nil
		},
	}
}
