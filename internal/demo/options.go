package demo

import "github.com/bornholm/vitrine/internal/inspect"

type Options struct {
	DumpFormat inspect.Format
	LineBreak  string
	SkipDump   bool
}

type OptionFunc func(opts *Options)

func WithDumpFormat(format inspect.Format) OptionFunc {
	return func(opts *Options) {
		opts.DumpFormat = format
	}
}

func WithLineBreak(lineBreak string) OptionFunc {
	return func(opts *Options) {
		opts.LineBreak = lineBreak
	}
}

func WithSkipDump(skip bool) OptionFunc {
	return func(opts *Options) {
		opts.SkipDump = skip
	}
}

func NewOptions(funcs ...OptionFunc) *Options {
	opts := &Options{
		DumpFormat: inspect.FormatSpew,
		LineBreak:  "\n",
		SkipDump:   false,
	}
	for _, fn := range funcs {
		fn(opts)
	}
	return opts
}
