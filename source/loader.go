package source

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"
	"sync"

	"github.com/rs/zerolog"
	"github.com/xeptore/flaw/v8"
	"golang.org/x/sync/errgroup"

	"github.com/xeptore/counted/cache"
	"github.com/xeptore/counted/errutil"
)

// Loader reads and decodes inputs. Decoded files are cached by path, size and
// modification time, so listing a file more than once decodes it once.
type Loader struct {
	docs     *cache.Documents
	jsonPath string
	logger   zerolog.Logger

	stdin     io.Reader
	stdinOnce sync.Once
	stdinData []byte
	stdinErr  error
}

func NewLoader(docs *cache.Documents, jsonPath string, stdin io.Reader, logger zerolog.Logger) *Loader {
	return &Loader{
		docs:     docs,
		jsonPath: jsonPath,
		logger:   logger,
		stdin:    stdin,
	}
}

func (l *Loader) readStdin() ([]byte, error) {
	l.stdinOnce.Do(func() {
		l.stdinData, l.stdinErr = io.ReadAll(l.stdin)
	})
	return l.stdinData, l.stdinErr
}

func (l *Loader) Load(ctx context.Context, in Input) (*Document, error) {
	if errutil.IsContext(ctx) {
		return nil, ctx.Err()
	}

	kind := in.Kind
	if kind == "" {
		kind = InferKind(in.Path)
	}

	if in.Path == Stdin {
		data, err := l.readStdin()
		if nil != err {
			flawP := flaw.P{"err_debug_tree": errutil.Tree(err).FlawP()}
			return nil, flaw.From(fmt.Errorf("failed to read standard input: %v", err)).Append(flawP)
		}
		elements, err := decode(kind, l.jsonPath, data)
		if nil != err {
			flawP := errutil.InputFlawPayload(in.Path, string(kind), len(data))
			flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
			return nil, flaw.From(fmt.Errorf("failed to decode standard input: %v", err)).Append(flawP)
		}
		return &Document{Name: "stdin", Kind: kind, Elements: elements}, nil
	}

	path, err := filepath.Abs(in.Path)
	if nil != err {
		return nil, fmt.Errorf("failed to resolve input path %q: %v", in.Path, err)
	}
	info, err := os.Stat(path)
	if nil != err {
		flawP := flaw.P{"path": path, "err_debug_tree": errutil.Tree(err).FlawP()}
		return nil, flaw.From(fmt.Errorf("failed to stat input file: %v", err)).Append(flawP)
	}

	key := fmt.Sprintf("%s|%s|%s|%d|%d", kind, l.jsonPath, path, info.Size(), info.ModTime().UnixNano())
	elements, err := l.docs.Fetch(key, cache.DefaultDocumentTTL, func() ([]string, error) {
		l.logger.Debug().Str("path", path).Str("kind", string(kind)).Msg("Decoding input file")
		data, err := os.ReadFile(path)
		if nil != err {
			flawP := flaw.P{"path": path, "err_debug_tree": errutil.Tree(err).FlawP()}
			return nil, flaw.From(fmt.Errorf("failed to read input file: %v", err)).Append(flawP)
		}
		elements, err := decode(kind, l.jsonPath, data)
		if nil != err {
			flawP := errutil.InputFlawPayload(path, string(kind), len(data))
			flawP["err_debug_tree"] = errutil.Tree(err).FlawP()
			return nil, flaw.From(fmt.Errorf("failed to decode input file: %v", err)).Append(flawP)
		}
		return elements, nil
	})
	if nil != err {
		return nil, err
	}

	// Cached slices are shared; every document owns its own copy.
	return &Document{Name: in.Path, Kind: kind, Elements: slices.Clone(elements)}, nil
}

// LoadAll loads inputs concurrently and returns their documents in input
// order. The first failure cancels the remaining loads.
func (l *Loader) LoadAll(ctx context.Context, inputs []Input, concurrency int) ([]*Document, error) {
	out := make([]*Document, len(inputs))

	wg, wgCtx := errgroup.WithContext(ctx)
	wg.SetLimit(max(concurrency, 1))
	for i, in := range inputs {
		wg.Go(func() error {
			doc, err := l.Load(wgCtx, in)
			if nil != err {
				return err
			}
			out[i] = doc
			return nil
		})
	}
	if err := wg.Wait(); nil != err {
		return nil, err
	}
	return out, nil
}
