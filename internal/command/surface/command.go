package surface

import (
	"log/slog"

	"github.com/bornholm/vitrine/internal/command/common"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/inspect"
	"github.com/dustin/go-humanize"
	"github.com/pkg/errors"
	"github.com/urfave/cli/v2"
)

const (
	flagShape       = "shape"
	flagName        = "name"
	flagPrice       = "price"
	flagDescription = "description"
	flagWidth       = "width"
	flagHeight      = "height"
	flagDiameter    = "diameter"
	flagDump        = "dump"
)

const (
	shapeRect = "rect"
	shapeCirc = "circ"
)

var ErrUnknownShape = errors.New("unknown shape")

func Command() *cli.Command {
	return &cli.Command{
		Name:  "surface",
		Usage: "Compute and display the surface of a product",
		Flags: common.WithDisplayFlags(
			common.WithDumpFlags(
				&cli.StringFlag{
					Name:    flagShape,
					Aliases: []string{"s"},
					Usage:   "Shape of the product (available: 'rect', 'circ')",
					Value:   shapeRect,
				},
				&cli.StringFlag{
					Name:     flagName,
					Aliases:  []string{"n"},
					Usage:    "Name of the product",
					Required: true,
				},
				&cli.Float64Flag{
					Name:  flagPrice,
					Usage: "Price of the product",
				},
				&cli.StringFlag{
					Name:  flagDescription,
					Usage: "Description of the product (defaults to a placeholder for rectangular products)",
				},
				&cli.IntFlag{
					Name:  flagWidth,
					Usage: "Width of a rectangular product",
				},
				&cli.IntFlag{
					Name:  flagHeight,
					Usage: "Height of a rectangular product",
				},
				&cli.IntFlag{
					Name:  flagDiameter,
					Usage: "Diameter of a circular product",
				},
				&cli.BoolFlag{
					Name:  flagDump,
					Usage: "Dump the raw structure of the product before displaying it",
				},
			)...,
		),
		Action: func(cCtx *cli.Context) error {
			ctx := cCtx.Context

			product, err := newProduct(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			slog.DebugContext(ctx, "computed product surface",
				slog.String("productID", string(product.ID())),
				slog.String("price", humanize.CommafWithDigits(product.Price(), 2)),
				slog.Float64("surface", product.Surface()),
			)

			if cCtx.Bool(flagDump) {
				dumpFormat, err := common.GetDumpFormat(cCtx)
				if err != nil {
					return errors.Wrap(err, "could not resolve dump format")
				}

				if err := inspect.Dump(cCtx.App.Writer, product, dumpFormat); err != nil {
					return errors.Wrap(err, "could not dump product")
				}
			}

			lineBreak, err := common.GetLineBreak(cCtx)
			if err != nil {
				return errors.WithStack(err)
			}

			w := model.NewLineBreakWriter(cCtx.App.Writer, lineBreak)

			if err := model.Display(w, product); err != nil {
				return errors.Wrap(err, "could not display product")
			}

			return nil
		},
	}
}

func newProduct(cCtx *cli.Context) (model.Product, error) {
	name := cCtx.String(flagName)
	price := cCtx.Float64(flagPrice)

	switch shape := cCtx.String(flagShape); shape {
	case shapeRect:
		funcs := make([]model.ProductOptionFunc, 0, 1)
		if cCtx.IsSet(flagDescription) {
			funcs = append(funcs, model.WithDescription(cCtx.String(flagDescription)))
		}

		return model.NewProductRect(name, price, cCtx.Int(flagWidth), cCtx.Int(flagHeight), funcs...), nil

	case shapeCirc:
		if !cCtx.IsSet(flagDescription) {
			return nil, errors.Errorf("flag '--%s' is required for circular products", flagDescription)
		}

		return model.NewProductCirc(name, price, cCtx.String(flagDescription), cCtx.Int(flagDiameter)), nil

	default:
		return nil, errors.Wrapf(ErrUnknownShape, "'%s'", shape)
	}
}
