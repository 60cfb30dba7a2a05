package model

import (
	"io"
	"math"
)

type ProductCirc struct {
	BaseProduct

	diameter int
}

// Surface implements Product.
func (c *ProductCirc) Surface() float64 {
	radius := float64(c.diameter) / 2
	return math.Pi * radius * radius
}

// Display implements Displayable.
func (c *ProductCirc) Display(w io.Writer) error {
	return DisplayProduct(w, c)
}

func (c *ProductCirc) Diameter() int {
	return c.diameter
}

func (c *ProductCirc) SetDiameter(diameter int) *ProductCirc {
	c.diameter = diameter
	return c
}

func (c *ProductCirc) SetName(name string) *ProductCirc {
	c.name = name
	return c
}

func (c *ProductCirc) SetPrice(price float64) *ProductCirc {
	c.price = price
	return c
}

func (c *ProductCirc) SetDescription(description string) *ProductCirc {
	c.description = description
	return c
}

// Snapshot returns the stored fields of the product.
func (c *ProductCirc) Snapshot() map[string]any {
	snapshot := c.snapshot()
	snapshot["diameter"] = c.diameter
	return snapshot
}

var _ Product = &ProductCirc{}

func NewProductCirc(name string, price float64, description string, diameter int) *ProductCirc {
	return &ProductCirc{
		BaseProduct: newBaseProduct(name, price, WithDescription(description)),
		diameter:    diameter,
	}
}
