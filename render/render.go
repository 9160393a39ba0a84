package render

import (
	"bufio"
	"fmt"
	"io"
	"iter"

	"github.com/goccy/go-json"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/counted/errutil"
	"github.com/xeptore/counted/iterutil"
	"github.com/xeptore/counted/mathutil"
)

type TextOptions struct {
	Separator string
	// Width pads counts to this many columns. Zero sizes the column to the
	// widest count that will be written.
	Width int
}

func Text(w io.Writer, records iter.Seq2[uint, iterutil.View[string]], opts TextOptions) error {
	width := opts.Width
	if width == 0 {
		for c := range records {
			width = mathutil.Max(width, mathutil.Digits(c))
		}
	}

	bw := bufio.NewWriter(w)
	for c, v := range records {
		if _, err := fmt.Fprintf(bw, "%*d%s%s\n", width, c, opts.Separator, v.Get()); nil != err {
			return writeFlaw(err, c)
		}
	}
	if err := bw.Flush(); nil != err {
		return writeFlaw(err, 0)
	}
	return nil
}

type jsonRecord struct {
	Input string `json:"input,omitempty"`
	Count uint   `json:"count"`
	Value string `json:"value"`
}

// JSON writes one object per record. input is included in every object when
// not empty.
func JSON(w io.Writer, input string, records iter.Seq2[uint, iterutil.View[string]]) error {
	bw := bufio.NewWriter(w)
	enc := json.NewEncoder(bw)
	enc.SetEscapeHTML(false)
	for c, v := range records {
		if err := enc.Encode(jsonRecord{Input: input, Count: c, Value: v.Get()}); nil != err {
			return writeFlaw(err, c)
		}
	}
	if err := bw.Flush(); nil != err {
		return writeFlaw(err, 0)
	}
	return nil
}

func writeFlaw(err error, count uint) error {
	flawP := flaw.P{"count": count, "err_debug_tree": errutil.Tree(err).FlawP()}
	return flaw.From(fmt.Errorf("failed to write record: %v", err)).Append(flawP)
}
