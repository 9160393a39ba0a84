package main

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/xeptore/counted/cache"
	"github.com/xeptore/counted/config"
	"github.com/xeptore/counted/iterutil"
	"github.com/xeptore/counted/render"
	"github.com/xeptore/counted/source"
)

type numberJob struct {
	cfg     *config.Config
	kind    source.Kind
	reverse bool
	paths   []string
	stdin   io.Reader
	stdout  io.Writer
	logger  zerolog.Logger
}

func (j numberJob) run(ctx context.Context) error {
	paths := lo.Ternary(len(j.paths) == 0, []string{source.Stdin}, j.paths)
	inputs := lo.Map(paths, func(p string, _ int) source.Input {
		return source.Input{Path: p, Kind: j.kind}
	})

	docs := cache.NewDocuments(j.cfg.CacheSize)
	defer docs.Close()

	loadCtx, cancel := context.WithTimeout(ctx, config.InputLoadTimeout)
	defer cancel()

	loader := source.NewLoader(docs, j.cfg.JSONPath, j.stdin, j.logger)
	documents, err := loader.LoadAll(loadCtx, inputs, config.InputConcurrency)
	if nil != err {
		return err
	}

	counter := []iterutil.Option{iterutil.StartAt(j.cfg.Start), iterutil.StepBy(j.cfg.Step)}
	for _, doc := range documents {
		name := doc.Name
		own := doc.Counted(counter...)

		records := own.All()
		if j.reverse {
			records = own.Backward().All()
		}

		switch j.cfg.Format {
		case config.FormatJSON:
			err = render.JSON(j.stdout, lo.Ternary(len(documents) > 1, name, ""), records)
		case config.FormatText:
			err = render.Text(j.stdout, records, render.TextOptions{Separator: j.cfg.Separator, Width: j.cfg.Width})
		default:
			err = fmt.Errorf("unsupported format %q", j.cfg.Format)
		}
		if nil != err {
			return err
		}

		j.logger.Debug().Str("input", name).Str("kind", string(doc.Kind)).Int("elements", own.Len()).Bool("reverse", j.reverse).Msg("Input numbered")
	}
	return nil
}
