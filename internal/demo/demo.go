package demo

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/bornholm/go-x/slogx"
	"github.com/bornholm/vitrine/internal/core/model"
	"github.com/bornholm/vitrine/internal/inspect"
	"github.com/pkg/errors"
)

const (
	SampleRectName   = "Téléviseur"
	SampleRectPrice  = 400
	SampleRectWidth  = 200
	SampleRectHeight = 80

	SampleCircName        = "Ballon"
	SampleCircPrice       = 25
	SampleCircDescription = "chance tired plus border individual carried foreign future careful managed arm know three disease missing basic led evidence science industry origin former car blanket"
	SampleCircDiameter    = 40
)

// Run builds the sample products, dumps them, prints their surfaces and
// displays them along with a default user.
func Run(ctx context.Context, w io.Writer, funcs ...OptionFunc) error {
	opts := NewOptions(funcs...)

	productRect := model.NewProductRect(SampleRectName, SampleRectPrice, SampleRectWidth, SampleRectHeight)
	if err := dump(ctx, w, productRect, opts); err != nil {
		return errors.Wrap(err, "could not dump rectangular product")
	}

	productCirc := model.NewProductCirc(SampleCircName, SampleCircPrice, SampleCircDescription, SampleCircDiameter)
	if err := dump(ctx, w, productCirc, opts); err != nil {
		return errors.Wrap(err, "could not dump circular product")
	}

	for _, product := range []model.Product{productCirc, productRect} {
		if err := inspect.Dump(w, product.Surface(), inspect.FormatSpew); err != nil {
			return errors.Wrapf(err, "could not dump surface of product '%s'", product.ID())
		}
	}

	display := model.NewLineBreakWriter(w, opts.LineBreak)

	slog.DebugContext(ctx, "listing products")

	if err := listProducts(display, productRect, productCirc); err != nil {
		return errors.WithStack(err)
	}

	slog.DebugContext(ctx, "displaying items")

	items := []model.Displayable{
		productCirc,
		productRect,
		model.NewUser(),
	}

	for _, item := range items {
		if err := model.Display(display, item); err != nil {
			return errors.Wrapf(err, "could not display item of type %T", item)
		}
	}

	return nil
}

func listProducts(w io.Writer, products ...model.Product) error {
	items := make([]model.Displayable, 0, len(products))
	for _, p := range products {
		items = append(items, p)
	}

	if err := model.DisplayAll(w, items...); err != nil {
		return errors.Wrap(err, "could not list products")
	}

	return nil
}

func dump(ctx context.Context, w io.Writer, v inspect.Snapshotter, opts *Options) error {
	if opts.SkipDump {
		return nil
	}

	format := opts.DumpFormat

	ctx = slogx.WithAttrs(ctx, slog.String("type", fmt.Sprintf("%T", v)), slog.String("format", string(format)))

	slog.DebugContext(ctx, "dumping value")

	if err := inspect.Dump(w, v, format); err != nil {
		slog.ErrorContext(ctx, "could not dump value", slogx.Error(err))
		return errors.WithStack(err)
	}

	return nil
}
