package model

import (
	"bytes"
	"io"

	"github.com/pkg/errors"
)

const HTMLLineBreak = "<br />"

// Displayable is implemented by entities able to render themselves as a
// single human readable line.
type Displayable interface {
	Display(w io.Writer) error
}

// Display renders a single item.
func Display(w io.Writer, item Displayable) error {
	if err := item.Display(w); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

// DisplayAll renders items in order and stops on the first failure.
func DisplayAll(w io.Writer, items ...Displayable) error {
	for idx, item := range items {
		if err := item.Display(w); err != nil {
			return errors.Wrapf(err, "could not display item #%d", idx)
		}
	}

	return nil
}

func writeLine(w io.Writer, label string, value string) error {
	if _, err := io.WriteString(w, label+" - "+value+"\n"); err != nil {
		return errors.WithStack(err)
	}

	return nil
}

type lineBreakWriter struct {
	w         io.Writer
	lineBreak []byte
}

// Write implements io.Writer.
func (lw *lineBreakWriter) Write(p []byte) (int, error) {
	if _, err := lw.w.Write(bytes.ReplaceAll(p, []byte("\n"), lw.lineBreak)); err != nil {
		return 0, errors.WithStack(err)
	}

	return len(p), nil
}

// NewLineBreakWriter returns a writer replacing every line terminator
// written to it by the given line break.
func NewLineBreakWriter(w io.Writer, lineBreak string) io.Writer {
	if lineBreak == "" || lineBreak == "\n" {
		return w
	}

	return &lineBreakWriter{
		w:         w,
		lineBreak: []byte(lineBreak),
	}
}
