package config

type Display struct {
	HTML bool `env:"HTML,expand" envDefault:"false"`
}

type Inspect struct {
	Format string `env:"FORMAT,expand" envDefault:"spew"`
}
