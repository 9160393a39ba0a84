package source

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/samber/lo"
	"github.com/tidwall/gjson"
	"github.com/xeptore/flaw/v8"
	"gopkg.in/yaml.v3"

	"github.com/xeptore/counted/errutil"
)

var (
	ErrInvalidJSON  = errors.New("document is not valid JSON")
	ErrNotArray     = errors.New("selected JSON value is not an array")
	ErrNotSequence  = errors.New("YAML document is not a sequence")
	ErrUnknownKind  = errors.New("unknown input kind")
	ErrMultipleDocs = errors.New("YAML input contains more than one document")
)

func decode(kind Kind, jsonPath string, data []byte) ([]string, error) {
	switch kind {
	case KindLines:
		return decodeLines(data), nil
	case KindJSON:
		return decodeJSON(jsonPath, data)
	case KindYAML:
		return decodeYAML(data)
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}
}

func decodeLines(data []byte) []string {
	if len(data) == 0 {
		return nil
	}
	lines := strings.Split(string(data), "\n")
	if lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	for i, l := range lines {
		lines[i] = strings.TrimSuffix(l, "\r")
	}
	return lines
}

func decodeJSON(path string, data []byte) ([]string, error) {
	if !gjson.ValidBytes(data) {
		return nil, ErrInvalidJSON
	}

	var res gjson.Result
	if path == "" {
		res = gjson.ParseBytes(data)
	} else {
		res = gjson.GetBytes(data, path)
	}
	if !res.IsArray() {
		return nil, fmt.Errorf("%w: path %q", ErrNotArray, path)
	}

	items := res.Array()
	out := make([]string, len(items))
	for i, item := range items {
		out[i] = lo.Ternary(item.Type == gjson.String, item.String(), item.Raw)
	}
	return out, nil
}

func decodeYAML(data []byte) ([]string, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))

	var doc yaml.Node
	if err := dec.Decode(&doc); nil != err {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, err
	}
	var extra yaml.Node
	if err := dec.Decode(&extra); !errors.Is(err, io.EOF) {
		return nil, lo.Ternary(nil == err, ErrMultipleDocs, err)
	}

	root := &doc
	if root.Kind == yaml.DocumentNode && len(root.Content) > 0 {
		root = root.Content[0]
	}
	if root.Kind != yaml.SequenceNode {
		return nil, ErrNotSequence
	}

	out := make([]string, len(root.Content))
	for i, item := range root.Content {
		if item.Kind == yaml.ScalarNode {
			out[i] = item.Value
			continue
		}
		b, err := yaml.Marshal(item)
		if nil != err {
			flawP := flaw.P{"index": i, "line": item.Line, "err_debug_tree": errutil.Tree(err).FlawP()}
			return nil, flaw.From(fmt.Errorf("failed to encode YAML sequence item: %v", err)).Append(flawP)
		}
		out[i] = strings.TrimSuffix(string(b), "\n")
	}
	return out, nil
}
