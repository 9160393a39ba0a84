package source

import (
	"path/filepath"
	"strings"

	"github.com/xeptore/counted/iterutil"
)

type Kind string

const (
	KindLines Kind = "lines"
	KindJSON  Kind = "json"
	KindYAML  Kind = "yaml"
)

// Stdin is the input path that reads standard input.
const Stdin = "-"

func ParseKind(s string) (Kind, bool) {
	switch k := Kind(strings.ToLower(s)); k {
	case "", KindLines, KindJSON, KindYAML:
		return k, true
	default:
		return "", false
	}
}

func InferKind(path string) Kind {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return KindJSON
	case ".yaml", ".yml":
		return KindYAML
	default:
		return KindLines
	}
}

type Input struct {
	Path string
	Kind Kind
}

type Document struct {
	Name     string
	Kind     Kind
	Elements []string
}

// Counted hands the document's elements over to an owning range. The
// document is left empty.
func (d *Document) Counted(opts ...iterutil.Option) *iterutil.Owned[string] {
	own := iterutil.CountedOwn(d.Elements, opts...)
	d.Elements = nil
	return own
}
