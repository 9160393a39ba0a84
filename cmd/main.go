package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/urfave/cli/v2"
	"github.com/xeptore/flaw/v8"

	"github.com/xeptore/counted/config"
	"github.com/xeptore/counted/constant"
	"github.com/xeptore/counted/errutil"
	"github.com/xeptore/counted/log"
	"github.com/xeptore/counted/source"
)

const (
	flagConfigFilePath = "config"
	flagStart          = "start"
	flagStep           = "step"
	flagFormat         = "format"
	flagSeparator      = "separator"
	flagWidth          = "width"
	flagJSONPath       = "json-path"
	flagKind           = "kind"
	flagReverse        = "reverse"
	flagLogLevel       = "log-level"
)

func main() {
	logger := log.NewPretty(os.Stderr).Level(zerolog.InfoLevel)
	if err := godotenv.Load(); nil != err {
		if errors.Is(err, os.ErrNotExist) {
			logger.Trace().Msg(".env file was not found")
		} else {
			logger.Fatal().Err(err).Msg("Failed to load .env file")
		}
	}

	//nolint:exhaustruct
	app := &cli.App{
		Name:     constant.AppName,
		Version:  constant.Version,
		Compiled: constant.CompileTime,
		Suggest:  true,
		Usage:    "Number the elements of line, JSON and YAML documents",
		Commands: []*cli.Command{
			//nolint:exhaustruct
			{
				Name:      "number",
				Aliases:   []string{"n"},
				Usage:     "Print every element of the inputs along with its count",
				ArgsUsage: "[FILE...]",
				Action:    number,
				Flags: []cli.Flag{
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:    flagConfigFilePath,
						Aliases: []string{"c"},
						Usage:   "Config file path",
					},
					//nolint:exhaustruct
					&cli.UintFlag{
						Name:    flagStart,
						Aliases: []string{"s"},
						Usage:   "Count of the first element",
						EnvVars: []string{"COUNTED_START"},
					},
					//nolint:exhaustruct
					&cli.IntFlag{
						Name:    flagStep,
						Aliases: []string{"d"},
						Usage:   "Amount added to the count after every element, may be negative or zero",
						EnvVars: []string{"COUNTED_STEP"},
					},
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:    flagFormat,
						Aliases: []string{"f"},
						Usage:   "Output format, text or json",
						EnvVars: []string{"COUNTED_FORMAT"},
					},
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:    flagSeparator,
						Usage:   "Text between count and element in text output",
						EnvVars: []string{"COUNTED_SEPARATOR"},
					},
					//nolint:exhaustruct
					&cli.IntFlag{
						Name:    flagWidth,
						Aliases: []string{"w"},
						Usage:   "Count column width in text output, 0 for automatic",
					},
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:  flagJSONPath,
						Usage: "gjson path selecting the array of JSON inputs",
					},
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:    flagKind,
						Aliases: []string{"k"},
						Usage:   "Input kind, lines, json or yaml; inferred from the file extension when empty",
					},
					//nolint:exhaustruct
					&cli.BoolFlag{
						Name:    flagReverse,
						Aliases: []string{"r"},
						Usage:   "Walk every input from its last element to its first",
					},
					//nolint:exhaustruct
					&cli.StringFlag{
						Name:    flagLogLevel,
						Usage:   "Log level",
						EnvVars: []string{"COUNTED_LOG_LEVEL"},
					},
				},
			},
			//nolint:exhaustruct
			{
				Name:  "version",
				Usage: "Print version information",
				Action: func(cliCtx *cli.Context) error {
					_, err := fmt.Fprintf(cliCtx.App.Writer, "%s %s (compiled at %s)\n", constant.AppName, constant.Version, constant.CompileTime.Format(time.RFC3339))
					return err
				},
			},
		},
	}

	if err := app.Run(os.Args); nil != err {
		if target, ok := errutil.IsAny(err, context.Canceled, context.DeadlineExceeded); ok {
			logger.Warn().Err(target).Msg("Application was interrupted")
			os.Exit(1)
		}
		if flawErr := new(flaw.Flaw); errors.As(err, &flawErr) {
			if b, yamlErr := errutil.FlawToYAML(flawErr); nil == yamlErr {
				logger.Debug().Bytes("flaw_yaml", b).Msg("Error details")
			}
			logger.Fatal().Func(log.Flaw(flawErr)).Msg("Application exited with flaw")
			return
		}
		logger.Fatal().Err(err).Msg("Application exited with error")
	}
}

func loadConfig(cliCtx *cli.Context, logger zerolog.Logger) (*config.Config, error) {
	var (
		cfgEnv      = os.Getenv("CONFIG")
		cfgFilePath = cliCtx.String(flagConfigFilePath)
	)
	switch {
	case cfgFilePath != "" && cfgEnv != "":
		return nil, errors.New("config file path and config environment variable are both set. specify only one")
	case cfgFilePath != "":
		logger.Debug().Str("config_file_path", cfgFilePath).Msg("Loading config from file")
		cfg, err := config.FromFile(cfgFilePath)
		if nil != err {
			return nil, fmt.Errorf("failed to load config file: %v", err)
		}
		return cfg, nil
	case cfgEnv != "":
		logger.Debug().Msg("Loading config from environment variable")
		cfg, err := config.FromString(cfgEnv)
		if nil != err {
			return nil, fmt.Errorf("failed to load config from environment variable: %v", err)
		}
		return cfg, nil
	default:
		return config.Default(), nil
	}
}

func applyFlags(cliCtx *cli.Context, cfg *config.Config) error {
	if cliCtx.IsSet(flagStart) {
		cfg.Start = cliCtx.Uint(flagStart)
	}
	if cliCtx.IsSet(flagStep) {
		cfg.Step = cliCtx.Int(flagStep)
	}
	if cliCtx.IsSet(flagFormat) {
		cfg.Format = cliCtx.String(flagFormat)
	}
	if cliCtx.IsSet(flagSeparator) {
		cfg.Separator = cliCtx.String(flagSeparator)
	}
	if cliCtx.IsSet(flagWidth) {
		cfg.Width = cliCtx.Int(flagWidth)
	}
	if cliCtx.IsSet(flagJSONPath) {
		cfg.JSONPath = cliCtx.String(flagJSONPath)
	}
	if cliCtx.IsSet(flagLogLevel) {
		cfg.LogLevel = cliCtx.String(flagLogLevel)
	}
	if err := cfg.Validate(); nil != err {
		return fmt.Errorf("invalid options: %v", err)
	}
	return nil
}

func number(cliCtx *cli.Context) (err error) {
	ctx, cancel := signal.NotifyContext(cliCtx.Context, syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	cfg, err := loadConfig(cliCtx, log.NewPretty(cliCtx.App.ErrWriter))
	if nil != err {
		return err
	}
	if err := applyFlags(cliCtx, cfg); nil != err {
		return err
	}

	lvl, err := log.ParseLevel(cfg.LogLevel)
	if nil != err {
		return err
	}
	logger := log.NewPretty(cliCtx.App.ErrWriter).Level(lvl)

	defer func() {
		if r := recover(); nil != r {
			logger.Error().Func(log.Panic(r)).Msg("Numbering panicked")
			err = fmt.Errorf("numbering panicked: %v", r)
		}
	}()

	kind, ok := source.ParseKind(cliCtx.String(flagKind))
	if !ok {
		return fmt.Errorf("unsupported input kind %q", cliCtx.String(flagKind))
	}

	job := numberJob{
		cfg:     cfg,
		kind:    kind,
		reverse: cliCtx.Bool(flagReverse),
		paths:   cliCtx.Args().Slice(),
		stdin:   cliCtx.App.Reader,
		stdout:  cliCtx.App.Writer,
		logger:  logger,
	}
	return job.run(ctx)
}
