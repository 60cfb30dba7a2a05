package main

import (
	"github.com/bornholm/vitrine/internal/command"
	"github.com/bornholm/vitrine/internal/command/demo"
	"github.com/bornholm/vitrine/internal/command/surface"
	"github.com/bornholm/vitrine/internal/command/user"
)

func main() {
	command.Main(
		"vitrine", "a tool displaying products and users",
		"demo",
		demo.Command(),
		surface.Command(),
		user.Command(),
	)
}
