// Command shufflerooster splits a class roster into random fixed-size groups.
//
// Usage:
//
//	shufflerooster -input students.xlsx -size 4 -output groups.pdf
//
// Without -size (and without groupSize in the config file) the group size is
// asked for on stdin.
package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"go.opentelemetry.io/otel/exporters/stdout/stdouttrace"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	shufflerooster "github.com/sanodmendis/ShuffleRooster"
	"github.com/sanodmendis/ShuffleRooster/internal/logging"
	"github.com/sanodmendis/ShuffleRooster/internal/metrics"
	"github.com/sanodmendis/ShuffleRooster/sink"
	"github.com/sanodmendis/ShuffleRooster/source"
	"github.com/sanodmendis/ShuffleRooster/types"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		_, _ = fmt.Fprintf(os.Stderr, "error: %v\n", err)
		stop()
		os.Exit(1) //nolint:gocritic // stop already called
	}
}

// flags holds the parsed command line.
type flags struct {
	config      string
	input       string
	size        int
	seed        string
	noShuffle   bool
	output      string
	format      string
	quiet       bool
	metricsFile string
	trace       bool
	logLevel    string
	logFormat   string

	set map[string]bool
}

func parseFlags(args []string, stderr io.Writer) (*flags, error) {
	f := &flags{set: make(map[string]bool)}

	fs := flag.NewFlagSet("shufflerooster", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&f.config, "config", "", "Path to YAML configuration file")
	fs.StringVar(&f.input, "input", "", "Roster file (.csv or .xlsx)")
	fs.IntVar(&f.size, "size", 0, "Group size (asked on stdin when unset)")
	fs.StringVar(&f.seed, "seed", "", "Seed for reproducible groups (number or phrase)")
	fs.BoolVar(&f.noShuffle, "no-shuffle", false, "Group records in input order")
	fs.StringVar(&f.output, "output", "", "Output file (default <dir>/<prefix>_<timestamp>.<format>)")
	fs.StringVar(&f.format, "format", "", "Output format: "+strings.Join(fileFormats(), ", "))
	fs.BoolVar(&f.quiet, "quiet", false, "Do not print the groups table")
	fs.StringVar(&f.metricsFile, "metrics-file", "", "Write Prometheus metrics to this textfile")
	fs.BoolVar(&f.trace, "trace", false, "Print OpenTelemetry spans to stderr")
	fs.StringVar(&f.logLevel, "log-level", "", "Log level: debug, info, warn, error")
	fs.StringVar(&f.logFormat, "log-format", "", "Log format: text, json")

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	fs.Visit(func(fl *flag.Flag) { f.set[fl.Name] = true })

	return f, nil
}

// apply overlays explicitly set flags on the loaded configuration.
func (f *flags) apply(cfg *shufflerooster.Config) error {
	if f.set["size"] {
		cfg.GroupSize = f.size
	}
	if f.set["seed"] {
		cfg.Seed = f.seed
	}
	if f.set["no-shuffle"] {
		cfg.DisableShuffle = f.noShuffle
	}
	if f.set["metrics-file"] {
		cfg.Metrics.Textfile = f.metricsFile
	}
	if f.set["log-level"] {
		cfg.Logging.Level = f.logLevel
	}
	if f.set["log-format"] {
		cfg.Logging.Format = f.logFormat
	}

	switch {
	case f.set["format"]:
		cfg.Output.Format = strings.ToLower(f.format)
	case f.output != "" && filepath.Ext(f.output) != "":
		format, err := sink.FormatFromPath(f.output)
		if err != nil {
			return err
		}
		cfg.Output.Format = format
	}

	return cfg.Validate()
}

func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	f, err := parseFlags(args, stderr)
	if err != nil {
		return err
	}
	if f.input == "" {
		return errors.New("-input is required")
	}

	cfg, err := shufflerooster.LoadConfig(f.config)
	if err != nil {
		return err
	}
	if err := f.apply(&cfg); err != nil {
		return err
	}

	logger, err := logging.New(stderr, cfg.Logging.Level, cfg.Logging.Format)
	if err != nil {
		return err
	}
	cfg.ValidateWithWarnings(logger)

	opts := append(cfg.Options(), shufflerooster.WithLogger(logger))

	var registry *prometheus.Registry
	if cfg.Metrics.Textfile != "" {
		registry = prometheus.NewRegistry()
		opts = append(opts, shufflerooster.WithMetrics(metrics.NewPrometheus(registry, cfg.Metrics.Namespace)))
	}

	if f.trace {
		exporter, err := stdouttrace.New(stdouttrace.WithWriter(stderr), stdouttrace.WithPrettyPrint())
		if err != nil {
			return fmt.Errorf("failed to create trace exporter: %w", err)
		}
		tp := sdktrace.NewTracerProvider(sdktrace.WithSyncer(exporter))
		defer func() { _ = tp.Shutdown(context.Background()) }()
		opts = append(opts, shufflerooster.WithTracer(tp.Tracer(shufflerooster.TracerName)))
	}

	runErr := group(ctx, cfg, f, opts, stdin, stdout)

	if registry != nil {
		if err := prometheus.WriteToTextfile(cfg.Metrics.Textfile, registry); err != nil {
			logger.Error("failed to write metrics textfile", "path", cfg.Metrics.Textfile, "error", err)
		}
	}

	return runErr
}

// group runs one load, group and save cycle.
func group(ctx context.Context, cfg shufflerooster.Config, f *flags, opts []shufflerooster.Option,
	stdin io.Reader, stdout io.Writer,
) error {
	src, err := source.Open(f.input)
	if err != nil {
		return err
	}

	session := shufflerooster.NewSession(opts...)
	if err := session.Load(ctx, src); err != nil {
		return err
	}
	_, _ = fmt.Fprintln(stdout, session.Status())

	var p *shufflerooster.Partition
	if cfg.GroupSize > 0 {
		p, err = session.CreateGroups(ctx, cfg.GroupSize)
	} else {
		p, err = promptGroups(ctx, session, stdin, stdout)
	}
	if err != nil {
		return err
	}

	if !f.quiet {
		if err := sink.NewTable(stdout).WritePartition(ctx, p); err != nil {
			return err
		}
	}
	_, _ = fmt.Fprintf(stdout, "%s (seed %d)\n", session.Status(), p.Seed)

	path := f.output
	if path == "" {
		path = filepath.Join(cfg.Output.Dir, sink.DefaultFilename(cfg.Output.Prefix, cfg.Output.Format, time.Now()))
	}
	var fileOpts []sink.FileOption
	if cfg.Output.Format == sink.FormatPDF {
		title := cfg.Output.PDFTitle
		fileOpts = append(fileOpts, sink.WithFactory(func(w io.Writer) types.RecordSink {
			return sink.NewPDF(w, sink.WithTitle(title))
		}))
	}
	out, err := sink.Create(path, cfg.Output.Format, fileOpts...)
	if err != nil {
		return err
	}
	if err := session.Save(ctx, out); err != nil {
		return err
	}
	_, _ = fmt.Fprintf(stdout, "Saved groups to %s\n", out.Path())

	return nil
}

// promptGroups asks for a group size until one is accepted.
//
// Invalid sizes are reported and asked again; end of input is an error.
func promptGroups(ctx context.Context, session *shufflerooster.Session, stdin io.Reader, stdout io.Writer) (*shufflerooster.Partition, error) {
	n := session.Records().Len()
	scanner := bufio.NewScanner(stdin)

	for {
		_, _ = fmt.Fprintf(stdout, "Group size (1-%d): ", n)
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return nil, fmt.Errorf("read group size: %w", err)
			}

			return nil, fmt.Errorf("read group size: %w", io.ErrUnexpectedEOF)
		}

		line := strings.TrimSpace(scanner.Text())
		size, err := strconv.Atoi(line)
		if err != nil {
			_, _ = fmt.Fprintf(stdout, "%q is not a number\n", line)
			continue
		}

		p, err := session.CreateGroups(ctx, size)
		if errors.Is(err, shufflerooster.ErrInvalidGroupSize) {
			_, _ = fmt.Fprintln(stdout, err)
			continue
		}

		return p, err
	}
}

// fileFormats lists the formats that can be written to a file.
func fileFormats() []string {
	formats := make([]string, 0)
	for _, f := range sink.Formats() {
		if f != sink.FormatTable {
			formats = append(formats, f)
		}
	}

	return formats
}
