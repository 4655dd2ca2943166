package generics

import (
	"fmt"
	"io"
	"log/slog"
	"os"
)

type Span interface {
	~string | ~[]byte | ~[]rune
}

// Longest returns x if it is strictly longer than y, otherwise y.
//
// The result shares storage with the input it was taken from. For byte and
// rune slices the caller must not modify that input while the result is in use.
func Longest[S Span](x, y S) S {
	if len(x) > len(y) {
		return x
	}

	return y
}

func LongestBy[S any](x, y S, length func(S) int) S {
	if length(x) > length(y) {
		return x
	}

	return y
}

// LongestAnnounced passes the textual form of ann to a exactly once and then
// returns Longest(x, y). A nil Announcer writes to os.Stdout.
func LongestAnnounced[S Span](x, y S, ann any, a Announcer) S {
	if a == nil {
		a = WriterAnnouncer{W: os.Stdout}
	}

	a.Announce(fmt.Sprint(ann))
	return Longest(x, y)
}

type Announcer interface {
	Announce(text string)
}

type AnnouncerFunc func(text string)

func (f AnnouncerFunc) Announce(text string) {
	f(text)
}

type WriterAnnouncer struct {
	W io.Writer
}

func (wa WriterAnnouncer) Announce(text string) {
	_, _ = fmt.Fprintf(wa.W, "Announcement! %s\n", text)
}

type LogAnnouncer struct {
	Logger *slog.Logger
}

func (la LogAnnouncer) Announce(text string) {
	la.Logger.Info("announcement", slog.String("announcement", text))
}

// type assertions
var _ Announcer = AnnouncerFunc(nil)
var _ Announcer = WriterAnnouncer{}
var _ Announcer = LogAnnouncer{}
