package model

import "io"

type ProductRect struct {
	BaseProduct

	width  int
	height int
}

// Surface implements Product.
func (r *ProductRect) Surface() float64 {
	return float64(r.width) * float64(r.height)
}

// Display implements Displayable.
func (r *ProductRect) Display(w io.Writer) error {
	return DisplayProduct(w, r)
}

func (r *ProductRect) Width() int {
	return r.width
}

func (r *ProductRect) SetWidth(width int) *ProductRect {
	r.width = width
	return r
}

func (r *ProductRect) Height() int {
	return r.height
}

func (r *ProductRect) SetHeight(height int) *ProductRect {
	r.height = height
	return r
}

func (r *ProductRect) SetName(name string) *ProductRect {
	r.name = name
	return r
}

func (r *ProductRect) SetPrice(price float64) *ProductRect {
	r.price = price
	return r
}

func (r *ProductRect) SetDescription(description string) *ProductRect {
	r.description = description
	return r
}

// Snapshot returns the stored fields of the product.
func (r *ProductRect) Snapshot() map[string]any {
	snapshot := r.snapshot()
	snapshot["width"] = r.width
	snapshot["height"] = r.height
	return snapshot
}

var _ Product = &ProductRect{}

// NewProductRect creates a rectangular product. The default product
// description is used unless WithDescription is given.
func NewProductRect(name string, price float64, width int, height int, funcs ...ProductOptionFunc) *ProductRect {
	return &ProductRect{
		BaseProduct: newBaseProduct(name, price, funcs...),
		width:       width,
		height:      height,
	}
}
