// Command cookiewire parses and formats RFC 6265 cookie pairs from the
// command line and can serve the same operations over HTTP.
//
//	cookiewire parse [-mode strict|tolerant] [-header] < cookies.txt
//	cookiewire format [-quote] [-codec identity|percent|base64] name=value...
//	cookiewire serve
package main

import (
	"bufio"
	"bytes"
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/dmitrymomot/cookiewire/pkg/config"
	"github.com/dmitrymomot/cookiewire/pkg/cookiecodec"
	"github.com/dmitrymomot/cookiewire/pkg/environment"
	"github.com/dmitrymomot/cookiewire/pkg/httpserver"
	"github.com/dmitrymomot/cookiewire/pkg/inspect"
	"github.com/dmitrymomot/cookiewire/pkg/logger"
	"github.com/dmitrymomot/cookiewire/pkg/rawcookie"
	"github.com/dmitrymomot/cookiewire/pkg/requestid"
)

const serviceName = "cookiewire"

var (
	errUsage        = errors.New("cookiewire.usage")
	errRejected     = errors.New("cookiewire.rejected_input")
	errUnknownCodec = errors.New("cookiewire.unknown_codec")
)

type appConfig struct {
	Env               environment.Environment `env:"COOKIEWIRE_ENV" envDefault:"development"`
	Addr              string                  `env:"COOKIEWIRE_ADDR" envDefault:":8080"`
	Mode              rawcookie.Mode          `env:"COOKIEWIRE_MODE" envDefault:"tolerant"`
	LogLevel          string                  `env:"COOKIEWIRE_LOG_LEVEL"`
	MaxHeaderBytes    int                     `env:"COOKIEWIRE_MAX_HEADER_BYTES" envDefault:"16384"`
	ReadHeaderTimeout time.Duration           `env:"COOKIEWIRE_READ_HEADER_TIMEOUT" envDefault:"5s"`
	ReadTimeout       time.Duration           `env:"COOKIEWIRE_READ_TIMEOUT" envDefault:"30s"`
	WriteTimeout      time.Duration           `env:"COOKIEWIRE_WRITE_TIMEOUT" envDefault:"30s"`
	IdleTimeout       time.Duration           `env:"COOKIEWIRE_IDLE_TIMEOUT" envDefault:"120s"`
	ShutdownTimeout   time.Duration           `env:"COOKIEWIRE_SHUTDOWN_TIMEOUT" envDefault:"5s"`
}

// httpConfig maps the COOKIEWIRE_* server settings onto httpserver.Config.
// Each setting has exactly one variable.
func (c appConfig) httpConfig() httpserver.Config {
	return httpserver.Config{
		Addr:              c.Addr,
		ReadHeaderTimeout: c.ReadHeaderTimeout,
		ReadTimeout:       c.ReadTimeout,
		WriteTimeout:      c.WriteTimeout,
		IdleTimeout:       c.IdleTimeout,
		ShutdownTimeout:   c.ShutdownTimeout,
		MaxHeaderBytes:    c.MaxHeaderBytes,
	}
}

func main() {
	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	err := run(context.Background(), cfg, os.Args[1:], os.Stdin, os.Stdout, os.Stderr)
	switch {
	case err == nil, errors.Is(err, flag.ErrHelp):
	case errors.Is(err, errUsage):
		os.Exit(2)
	default:
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg appConfig, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		usage(stderr)
		return errUsage
	}

	switch args[0] {
	case "parse":
		return runParse(cfg, args[1:], stdin, stdout, stderr)
	case "format":
		return runFormat(args[1:], stdout, stderr)
	case "serve":
		return runServe(ctx, cfg, stderr)
	case "help", "-h", "-help", "--help":
		usage(stdout)
		return nil
	}
	usage(stderr)
	return fmt.Errorf("%w: unknown command %q", errUsage, args[0])
}

func usage(w io.Writer) {
	fmt.Fprintln(w, "Usage: cookiewire <command> [flags]")
	fmt.Fprintln(w, "")
	fmt.Fprintln(w, "  parse   read cookie pairs (or Cookie headers with -header) from stdin")
	fmt.Fprintln(w, "  format  print a Cookie header built from name=value arguments")
	fmt.Fprintln(w, "  serve   run the inspection HTTP server")
}

func runParse(cfg appConfig, args []string, stdin io.Reader, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("parse", flag.ContinueOnError)
	fs.SetOutput(stderr)
	mode := cfg.Mode
	fs.TextVar(&mode, "mode", cfg.Mode, "parsing mode: strict or tolerant")
	header := fs.Bool("header", false, "treat each line as a full Cookie header")
	if err := fs.Parse(args); err != nil {
		return err
	}

	rejected := 0
	sc := bufio.NewScanner(stdin)
	sc.Buffer(make([]byte, 0, 4096), 1<<20)
	for sc.Scan() {
		line := sc.Bytes()
		// Blank lines carry no pair, like empty header segments.
		if len(bytes.Trim(line, " \t")) == 0 {
			continue
		}
		if *header {
			for _, res := range rawcookie.ParseHeader(line, mode) {
				if !printResult(stdout, res) {
					rejected++
				}
			}
			continue
		}
		c, err := rawcookie.Parse(line, mode)
		if !printResult(stdout, rawcookie.Result{Cookie: c, Err: err}) {
			rejected++
		}
	}
	if err := sc.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	if rejected > 0 {
		return fmt.Errorf("%w: %d pair(s)", errRejected, rejected)
	}
	return nil
}

// printResult writes one tab separated line and reports whether the pair
// was accepted.
func printResult(w io.Writer, res rawcookie.Result) bool {
	if res.Err != nil {
		fmt.Fprintf(w, "%d\terror\t%v\n", res.Offset, res.Err)
		return false
	}
	shown := cookiecodec.Display(res.Cookie)
	fmt.Fprintf(w, "%d\tok\t%q\t%q\n", res.Offset, shown.Name, shown.Value)
	return true
}

func runFormat(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("format", flag.ContinueOnError)
	fs.SetOutput(stderr)
	quote := fs.Bool("quote", false, "wrap every value in double quotes")
	codecName := fs.String("codec", "identity", "value codec: identity, percent or base64")
	if err := fs.Parse(args); err != nil {
		return err
	}
	if fs.NArg() == 0 {
		fmt.Fprintln(stderr, "Usage: cookiewire format [-quote] [-codec name] name=value...")
		return errUsage
	}

	codec, ok := cookiecodec.ByName(*codecName)
	if !ok {
		return fmt.Errorf("%w: %q", errUnknownCodec, *codecName)
	}

	cookies := make([]rawcookie.RawCookie, 0, fs.NArg())
	for _, arg := range fs.Args() {
		name, value, found := strings.Cut(arg, "=")
		if !found {
			return fmt.Errorf("%w: %q is not name=value", errUsage, arg)
		}
		c, err := codec.Encode(cookiecodec.DecodedCookie{Name: name, Value: value})
		if err != nil {
			return fmt.Errorf("%q: %w", arg, err)
		}
		cookies = append(cookies, c)
	}

	var opts []rawcookie.SerializeOption
	if *quote {
		opts = append(opts, rawcookie.WithQuoting())
	}
	_, err := fmt.Fprintf(stdout, "%s\n", rawcookie.SerializeHeader(cookies, opts...))
	return err
}

func runServe(ctx context.Context, cfg appConfig, stderr io.Writer) error {
	opts := []logger.Option{
		logger.WithEnvironment(cfg.Env, serviceName),
		logger.WithOutput(stderr),
		logger.WithContextExtractors(requestid.LoggerExtractor()),
	}
	if cfg.LogLevel != "" {
		var level slog.Level
		if err := level.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
			return fmt.Errorf("COOKIEWIRE_LOG_LEVEL: %w", err)
		}
		opts = append(opts, logger.WithLevel(level))
	}
	log := logger.New(opts...)
	logger.SetAsDefault(log)

	handler := inspect.New(
		inspect.WithLogger(log),
		inspect.WithMode(cfg.Mode),
	)

	srv := httpserver.NewFromConfig(cfg.httpConfig(), httpserver.WithLogger(log))

	log.InfoContext(ctx, "starting", logger.Mode(cfg.Mode), slog.String("addr", cfg.Addr))
	if err := srv.Run(ctx, handler.Router()); err != nil {
		log.ErrorContext(ctx, "server stopped", logger.Error(err))
		return err
	}
	return nil
}
