package model

import (
	"bytes"
	"math"
	"strings"
	"testing"
)

const testCircDescription = "chance tired plus border individual carried foreign future careful managed arm know three disease missing basic led evidence science industry origin former car blanket"

func TestProductRectSurface(t *testing.T) {
	type testCase struct {
		Width  int
		Height int
	}

	testCases := []testCase{
		{Width: 0, Height: 0},
		{Width: 0, Height: 12},
		{Width: 1, Height: 1},
		{Width: 200, Height: 80},
		{Width: 1920, Height: 1080},
		{Width: 1 << 32, Height: 1 << 32},
	}

	for _, tc := range testCases {
		product := NewProductRect("rect", 10, tc.Width, tc.Height)

		if e, g := float64(tc.Width)*float64(tc.Height), product.Surface(); e != g {
			t.Errorf("Surface() for %dx%d: expected %v, got %v", tc.Width, tc.Height, e, g)
		}
	}
}

func TestProductCircSurface(t *testing.T) {
	for _, diameter := range []int{0, 1, 3, 40, 101} {
		product := NewProductCirc("circ", 10, testCircDescription, diameter)

		radius := float64(diameter) / 2
		if e, g := math.Pi*radius*radius, product.Surface(); math.Abs(e-g) > 1e-9 {
			t.Errorf("Surface() for diameter %d: expected %v, got %v", diameter, e, g)
		}
	}

	// An odd diameter must not be truncated before being squared
	product := NewProductCirc("circ", 10, testCircDescription, 3)
	if e, g := math.Pi*2.25, product.Surface(); math.Abs(e-g) > 1e-9 {
		t.Errorf("Surface(): expected %v, got %v", e, g)
	}
}

func TestProductScenarios(t *testing.T) {
	rect := NewProductRect("Téléviseur", 400, 200, 80)

	if e, g := 16000.0, rect.Surface(); e != g {
		t.Errorf("rect.Surface(): expected %v, got %v", e, g)
	}

	if e, g := "TÉLÉVISEUR", rect.Name(); e != g {
		t.Errorf("rect.Name(): expected %v, got %v", e, g)
	}

	if e, g := "Téléviseur", rect.RawName(); e != g {
		t.Errorf("rect.RawName(): expected %v, got %v", e, g)
	}

	if e, g := 400.0, rect.Price(); e != g {
		t.Errorf("rect.Price(): expected %v, got %v", e, g)
	}

	circ := NewProductCirc("Ballon", 25, testCircDescription, 40)

	if e, g := math.Pi*400, circ.Surface(); math.Abs(e-g) > 1e-9 {
		t.Errorf("circ.Surface(): expected %v, got %v", e, g)
	}

	if g := circ.Surface(); math.Abs(g-1256.637) > 1e-3 {
		t.Errorf("circ.Surface(): expected ~1256.637, got %v", g)
	}

	if e, g := testCircDescription, circ.Description(); e != g {
		t.Errorf("circ.Description(): expected %v, got %v", e, g)
	}
}

func TestProductName(t *testing.T) {
	for _, name := range []string{"", "ballon", "Téléviseur", "ALREADY UPPER", "mixed Case 42"} {
		rect := NewProductRect(name, 1, 1, 1)
		if e, g := strings.ToUpper(name), rect.Name(); e != g {
			t.Errorf("rect.Name(): expected %q, got %q", e, g)
		}

		circ := NewProductCirc("other", 1, "", 1).SetName(name)
		if e, g := strings.ToUpper(name), circ.Name(); e != g {
			t.Errorf("circ.Name() after SetName: expected %q, got %q", e, g)
		}

		if e, g := name, circ.RawName(); e != g {
			t.Errorf("circ.RawName() after SetName: expected %q, got %q", e, g)
		}
	}
}

func TestProductDefaultDescription(t *testing.T) {
	rect := NewProductRect("rect", 1, 1, 1)
	if e, g := DefaultProductDescription, rect.Description(); e != g {
		t.Errorf("rect.Description(): expected %q, got %q", e, g)
	}

	rect = NewProductRect("rect", 1, 1, 1, WithDescription("custom"))
	if e, g := "custom", rect.Description(); e != g {
		t.Errorf("rect.Description(): expected %q, got %q", e, g)
	}

	circ := NewProductCirc("circ", 1, "", 1)
	if e, g := "", circ.Description(); e != g {
		t.Errorf("circ.Description(): expected %q, got %q", e, g)
	}
}

func TestProductFluentSetters(t *testing.T) {
	rect := NewProductRect("rect", 1, 1, 1)

	if rect.SetName("a") != rect {
		t.Errorf("rect.SetName() should return the receiver")
	}

	chained := rect.SetWidth(3).SetHeight(4).SetPrice(9.5).SetDescription("first").SetDescription("second")
	if chained != rect {
		t.Errorf("chained setters should return the receiver")
	}

	if e, g := 12.0, rect.Surface(); e != g {
		t.Errorf("rect.Surface(): expected %v, got %v", e, g)
	}

	if e, g := 9.5, rect.Price(); e != g {
		t.Errorf("rect.Price(): expected %v, got %v", e, g)
	}

	if e, g := "second", rect.Description(); e != g {
		t.Errorf("rect.Description(): expected %v, got %v", e, g)
	}

	circ := NewProductCirc("circ", 1, "desc", 1)
	if circ.SetDiameter(10).SetPrice(2).SetName("c") != circ {
		t.Errorf("chained circ setters should return the receiver")
	}

	if e, g := 10, circ.Diameter(); e != g {
		t.Errorf("circ.Diameter(): expected %v, got %v", e, g)
	}
}

func TestProductID(t *testing.T) {
	first := NewProductRect("rect", 1, 1, 1)
	second := NewProductCirc("circ", 1, "desc", 1)

	if first.ID() == "" {
		t.Errorf("first.ID() should not be empty")
	}

	if second.ID() == "" {
		t.Errorf("second.ID() should not be empty")
	}

	if first.ID() == second.ID() {
		t.Errorf("product ids should be unique, got %s twice", first.ID())
	}
}

func TestProductDisplay(t *testing.T) {
	type testCase struct {
		Product  Product
		Expected string
	}

	testCases := []testCase{
		{
			Product:  NewProductRect("Téléviseur", 400, 200, 80),
			Expected: "TÉLÉVISEUR - 16000\n",
		},
		{
			Product:  NewProductCirc("Ballon", 25, testCircDescription, 40),
			Expected: "BALLON - 1256.6370614359\n",
		},
	}

	for _, tc := range testCases {
		var buff bytes.Buffer

		if err := tc.Product.Display(&buff); err != nil {
			t.Fatalf("%+v", err)
		}

		if e, g := tc.Expected, buff.String(); e != g {
			t.Errorf("Display(): expected %q, got %q", e, g)
		}
	}
}

func TestFormatSurface(t *testing.T) {
	type testCase struct {
		Surface  float64
		Expected string
	}

	testCases := []testCase{
		{Surface: 0, Expected: "0"},
		{Surface: 16000, Expected: "16000"},
		{Surface: 2.5, Expected: "2.5"},
		{Surface: math.Pi * 400, Expected: "1256.6370614359"},
	}

	for _, tc := range testCases {
		if e, g := tc.Expected, FormatSurface(tc.Surface); e != g {
			t.Errorf("FormatSurface(%v): expected %q, got %q", tc.Surface, e, g)
		}
	}
}
