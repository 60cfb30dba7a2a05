package model

import (
	"io"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/rs/xid"
)

const DefaultProductDescription = "cabin old hunter quick team bag division short flame pretty mouse grandfather grandmother model carefully beside suppose doctor gather other laugh ahead color base"

// SurfaceDigits is the maximum number of decimals used when rendering a
// surface.
const SurfaceDigits = 10

type ProductID string

func NewProductID() ProductID {
	return ProductID(xid.New().String())
}

type Product interface {
	WithID[ProductID]
	WithName
	Displayable

	Price() float64
	Description() string
	Surface() float64
}

// BaseProduct holds the attributes shared by every product variant.
type BaseProduct struct {
	id          ProductID
	name        string
	price       float64
	description string
}

// ID implements Product.
func (p *BaseProduct) ID() ProductID {
	return p.id
}

// Name implements Product. The stored name is upper-cased on each read.
func (p *BaseProduct) Name() string {
	return strings.ToUpper(p.name)
}

// RawName returns the name as it was stored.
func (p *BaseProduct) RawName() string {
	return p.name
}

// Price implements Product.
func (p *BaseProduct) Price() float64 {
	return p.price
}

// Description implements Product.
func (p *BaseProduct) Description() string {
	return p.description
}

func (p *BaseProduct) snapshot() map[string]any {
	return map[string]any{
		"id":          string(p.id),
		"name":        p.name,
		"price":       p.price,
		"description": p.description,
	}
}

type ProductOptions struct {
	Description string
}

type ProductOptionFunc func(opts *ProductOptions)

func WithDescription(description string) ProductOptionFunc {
	return func(opts *ProductOptions) {
		opts.Description = description
	}
}

func NewProductOptions(funcs ...ProductOptionFunc) *ProductOptions {
	opts := &ProductOptions{
		Description: DefaultProductDescription,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}

func newBaseProduct(name string, price float64, funcs ...ProductOptionFunc) BaseProduct {
	opts := NewProductOptions(funcs...)
	return BaseProduct{
		id:          NewProductID(),
		name:        name,
		price:       price,
		description: opts.Description,
	}
}

// DisplayProduct renders the upper-cased name of the product followed by its
// surface.
func DisplayProduct(w io.Writer, p Product) error {
	return writeLine(w, p.Name(), FormatSurface(p.Surface()))
}

// FormatSurface renders a surface without trailing zeros, "16000" or
// "1256.6370614359" for instance.
func FormatSurface(surface float64) string {
	return humanize.FtoaWithDigits(surface, SurfaceDigits)
}
