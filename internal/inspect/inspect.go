package inspect

import (
	"io"
	"strings"

	"github.com/davecgh/go-spew/spew"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

type Format string

const (
	FormatSpew Format = "spew"
	FormatYAML Format = "yaml"
)

var (
	ErrUnknownFormat  = errors.New("unknown format")
	ErrNotSnapshotter = errors.New("value does not provide a snapshot")
)

// Snapshotter is implemented by values able to expose their stored fields.
type Snapshotter interface {
	Snapshot() map[string]any
}

var spewConfig = spew.ConfigState{
	Indent:                  "  ",
	DisableMethods:          true,
	DisablePointerAddresses: true,
	SortKeys:                true,
}

func ParseFormat(raw string) (Format, error) {
	switch format := Format(strings.ToLower(strings.TrimSpace(raw))); format {
	case "", FormatSpew:
		return FormatSpew, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", errors.Wrapf(ErrUnknownFormat, "'%s'", raw)
	}
}

// Dump writes the raw structure of the given value.
func Dump(w io.Writer, v any, format Format) error {
	switch format {
	case FormatSpew, "":
		spewConfig.Fdump(w, v)
		return nil

	case FormatYAML:
		snapshotter, ok := v.(Snapshotter)
		if !ok {
			return errors.Wrapf(ErrNotSnapshotter, "could not dump value of type %T", v)
		}

		encoder := yaml.NewEncoder(w)
		encoder.SetIndent(2)

		if err := encoder.Encode(snapshotter.Snapshot()); err != nil {
			return errors.Wrap(err, "could not encode snapshot")
		}

		if err := encoder.Close(); err != nil {
			return errors.WithStack(err)
		}

		return nil

	default:
		return errors.Wrapf(ErrUnknownFormat, "'%s'", format)
	}
}
