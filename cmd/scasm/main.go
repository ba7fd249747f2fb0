// Command scasm classifies SC assembly sources.
//
//	scasm tokens contract.asm      # print the classified spans
//	scasm lint contract.asm        # report malformed lines, exit 1 on issues
//
// Sources are read from stdin when no file is given.
package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alecthomas/kong"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/tebeka/atexit"

	"github.com/sarchlab/scasm/config"
	"github.com/sarchlab/scasm/core"
	"github.com/sarchlab/scasm/metrics"
	"github.com/sarchlab/scasm/verify"
)

var errIssues = errors.New("lint issues found")

type CLI struct {
	Config      string `type:"existingfile" placeholder:"PATH" env:"SCASM_CONFIG" help:"YAML configuration file"`
	MetricsFile string `placeholder:"PATH" help:"Write classifier metrics in Prometheus text format at exit"`

	Tokens tokensCommand `cmd:"" help:"Print the classified spans of each line"`
	Lint   lintCommand   `cmd:"" help:"Report lines the classifier rejects"`
}

type runContext struct {
	cfg        config.Config
	classifier *core.Classifier
	stdin      io.Reader
	stdout     io.Writer
}

func (cli CLI) AfterApply(kongCtx *kong.Context) error {
	ctx, err := cli.newRunContext()
	if err != nil {
		return err
	}

	kongCtx.Bind(ctx)
	return nil
}

// newRunContext loads the configuration, installs the logger and builds
// the classifier.
func (cli CLI) newRunContext() (*runContext, error) {
	cfg := config.Default()
	if cli.Config != "" {
		var err error
		cfg, err = config.LoadFile(cli.Config)
		if err != nil {
			return nil, fmt.Errorf("command line options: %w", err)
		}
	}

	cfg = cfg.WithEnv()
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("configuration: %w", err)
	}

	level, err := cfg.SlogLevel()
	if err != nil {
		return nil, err
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(handler))

	registry := prometheus.NewRegistry()
	if cli.MetricsFile != "" {
		atexit.Register(metricsWriter(cli.MetricsFile, registry))
	}

	classifier := core.NewBuilder().
		WithCacheSize(cfg.CacheSize).
		WithObserver(metrics.NewRecorder(registry)).
		Build()

	return &runContext{
		cfg:        cfg,
		classifier: classifier,
		stdin:      os.Stdin,
		stdout:     os.Stdout,
	}, nil
}

// metricsWriter returns an exit handler that writes g to path in the
// Prometheus text format.
func metricsWriter(path string, g prometheus.Gatherer) func() {
	return func() {
		if err := prometheus.WriteToTextfile(path, g); err != nil {
			slog.Error("Write metrics", "File", path, "Error", err)
		}
	}
}

type tokensCommand struct {
	Format string   `help:"Output format (table or plain), overrides the configuration"`
	Files  []string `arg:"" optional:"" help:"Source files"`
}

func (c *tokensCommand) Run(ctx *runContext) error {
	cfg := ctx.cfg
	if c.Format != "" {
		cfg.Format = c.Format
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	return eachSource(ctx.stdin, c.Files, func(name, text string) error {
		lines := ctx.classifier.Classify(text)

		if cfg.Format == config.FormatPlain {
			core.WritePlain(ctx.stdout, lines)
		} else {
			core.WriteTable(ctx.stdout, lines)
		}

		return nil
	})
}

type lintCommand struct {
	Report string   `placeholder:"PATH" help:"Also save the report of the last source to a file"`
	Files  []string `arg:"" optional:"" help:"Source files"`
}

func (c *lintCommand) Run(ctx *runContext) error {
	failed := false

	err := eachSource(ctx.stdin, c.Files, func(name, text string) error {
		report := verify.GenerateReport(name, ctx.classifier.Classify(text))
		report.WriteReport(ctx.stdout)

		if !report.OK() {
			failed = true
		}

		if c.Report != "" {
			return report.SaveReportToFile(c.Report)
		}

		return nil
	})
	if err != nil {
		return err
	}

	if failed {
		return errIssues
	}

	return nil
}

// eachSource calls fn with every named file, or with stdin when there are none.
func eachSource(stdin io.Reader, files []string, fn func(name, text string) error) error {
	if len(files) == 0 {
		data, err := io.ReadAll(stdin)
		if err != nil {
			return fmt.Errorf("failed to read stdin: %w", err)
		}
		return fn("<stdin>", string(data))
	}

	for _, file := range files {
		data, err := os.ReadFile(file)
		if err != nil {
			return fmt.Errorf("failed to read source: %w", err)
		}
		if err := fn(file, string(data)); err != nil {
			return err
		}
	}

	return nil
}

func main() {
	var cli CLI
	kongCtx := kong.Parse(&cli,
		kong.Name("scasm"),
		kong.Description("Classify SC assembly sources line by line."),
	)

	err := kongCtx.Run()
	switch {
	case errors.Is(err, errIssues):
		atexit.Exit(1)
	case err != nil:
		slog.Error("scasm", "Error", err)
		atexit.Exit(2)
	}

	atexit.Exit(0)
}
