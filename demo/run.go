package main

import (
	"fmt"
	"github.com/gfolker/generics"
	jsoniter "github.com/json-iterator/go"
	"io"
	"log/slog"
)

const (
	formatText = "text"
	formatJSON = "json"

	defaultAnnouncement = "Today is someone's birthday!"
)

type options struct {
	format       string
	announcement string
}

func run(w io.Writer, opts options, logger *slog.Logger) error {
	out, err := newOutput(w, opts.format)
	if err != nil {
		return err
	}

	logger.Debug("demo started", slog.String("format", opts.format))

	out.line("greeting", "Hello, World!", nil)

	lists := [][]int{
		{34, 50, 25, 100, 65},
		{102, 34, 6000, 89, 52, 2, 43, 8},
	}

	for _, list := range lists {
		n, err := generics.ExtremumOf(list)
		if err != nil {
			return fmt.Errorf("failed to find largest of %v: %w", list, err)
		}

		logger.Debug("largest found", slog.Int("len", len(list)), slog.Int("value", *n))
		out.line("largest_int", fmt.Sprintf("largest_int is %d", *n), *n)
	}

	p := generics.NewPoint(5, 10)
	out.line("point", fmt.Sprintf("p.x = %d", *p.X()), *p.X())

	string1 := "abcd"
	string2 := "xyz"

	result := generics.Longest(string1, string2)
	out.line("longest", "The longest string is "+result, result)

	out.line("static", generics.Forever, generics.Forever)

	result = generics.LongestAnnounced(string1, string2, opts.announcement, out)
	out.line("longest_announced", result, result)

	if out.err != nil {
		return fmt.Errorf("failed to write output: %w", out.err)
	}

	logger.Debug("demo finished")
	return nil
}

type record struct {
	Kind  string `json:"kind"`
	Text  string `json:"text"`
	Value any    `json:"value,omitempty"`
}

type output struct {
	w   io.Writer
	enc *jsoniter.Encoder
	err error
}

func newOutput(w io.Writer, format string) (*output, error) {
	switch format {
	case formatText:
		return &output{w: w}, nil

	case formatJSON:
		return &output{w: w, enc: jsoniter.ConfigCompatibleWithStandardLibrary.NewEncoder(w)}, nil

	default:
		return nil, fmt.Errorf("unsupported format %q", format)
	}
}

func (o *output) line(kind, text string, value any) {
	if o.err != nil {
		return
	}

	if o.enc != nil {
		o.err = o.enc.Encode(record{Kind: kind, Text: text, Value: value})
	} else {
		_, o.err = fmt.Fprintln(o.w, text)
	}
}

func (o *output) Announce(text string) {
	o.line("announcement", "Announcement! "+text, text)
}

var _ generics.Announcer = (*output)(nil)
