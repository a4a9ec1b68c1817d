// Command dungeonmst finds the shortest walks between the items of a text
// map and reduces them to a minimum spanning tree.
//
// Usage:
//
//	dungeonmst [flags] [-map file]     explore one map (stdin by default)
//	dungeonmst -serve [-addr host:port] serve the HTTP API
//
// The listen address defaults to $DUNGEONMST_ADDR, then ":$PORT", then ":8080".
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"
	"unicode/utf8"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/katalvlaran/dungeonmst/api"
	"github.com/katalvlaran/dungeonmst/explorer"
	"github.com/katalvlaran/dungeonmst/prim_kruskal"
)

const shutdownGrace = 5 * time.Second

const (
	exitOK    = 0
	exitError = 1
	exitUsage = 2
)

// options collects parsed command-line settings.
type options struct {
	mapPath string
	serve   bool
	addr    string
	origin  string
	maxKeys int
	verbose bool
	asJSON  bool
	paths   bool
	noColor bool
	cfg     explorer.Config
}

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	os.Exit(run(ctx, os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

// run is main without process globals, returning the exit code.
func run(ctx context.Context, args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	opts, err := parseFlags(args, stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return exitOK
		}
		fmt.Fprintln(stderr, "dungeonmst:", err)
		return exitUsage
	}

	level := slog.LevelWarn
	switch {
	case opts.verbose:
		level = slog.LevelDebug
	case opts.serve:
		level = slog.LevelInfo
	}
	logger := slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	if opts.serve {
		if err := serve(ctx, opts, logger); err != nil {
			logger.Error("server stopped", slog.String("error", err.Error()))
			return exitError
		}
		return exitOK
	}

	if err := explore(ctx, opts, logger, stdin, stdout); err != nil {
		fmt.Fprintln(stderr, "dungeonmst:", err)
		return exitError
	}
	return exitOK
}

func parseFlags(args []string, stderr io.Writer) (options, error) {
	var (
		opts       options
		open, wall string
	)
	cfg := explorer.DefaultConfig()

	fs := flag.NewFlagSet("dungeonmst", flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&opts.mapPath, "map", "", "map file, one row per line (default stdin)")
	fs.StringVar(&open, "open", string(cfg.Open), "walkable symbol")
	fs.StringVar(&wall, "wall", string(cfg.Wall), "wall symbol")
	fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "concurrent path searches")
	fs.BoolVar(&cfg.Strict, "strict", false, "abort on the first failed path search")
	fs.BoolVar(&cfg.BothDirections, "both-directions", false, "search A->B and B->A separately")
	fs.IntVar(&cfg.MaxExpansions, "max-expansions", 0, "per-search expansion ceiling (0 = unlimited)")
	fs.IntVar(&cfg.MaxKeys, "max-keys", 0, "reject maps with more key locations (0 = unlimited)")
	fs.StringVar(&cfg.Method, "method", cfg.Method, "spanning tree method: prim or kruskal")
	fs.StringVar(&cfg.Root, "root", "", "spanning tree root ID (default first key location)")
	fs.BoolVar(&cfg.RequireConnected, "require-connected", false, "fail when some key location is unreachable")
	fs.BoolVar(&cfg.Route, "route", cfg.Route, "plan a visiting route over the spanning tree")
	fs.BoolVar(&cfg.ClosedRoute, "closed-route", false, "the route returns to the root")
	fs.BoolVar(&opts.asJSON, "json", false, "print the report as JSON")
	fs.BoolVar(&opts.paths, "paths", false, "print every path's cells")
	fs.BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	fs.BoolVar(&opts.serve, "serve", false, "serve the HTTP API instead of exploring one map")
	fs.StringVar(&opts.addr, "addr", defaultAddr(), "listen address for -serve")
	fs.StringVar(&opts.origin, "origin", "*", "CORS origin for -serve")
	fs.IntVar(&opts.maxKeys, "serve-max-keys", api.DefaultOptions().MaxKeys, "key location cap per request for -serve")
	fs.BoolVar(&opts.verbose, "v", false, "verbose logging")

	if err := fs.Parse(args); err != nil {
		return opts, err
	}
	if fs.NArg() > 0 {
		return opts, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}

	var err error
	if cfg.Open, err = symbolFlag("open", open); err != nil {
		return opts, err
	}
	if cfg.Wall, err = symbolFlag("wall", wall); err != nil {
		return opts, err
	}
	if err = cfg.Validate(); err != nil {
		return opts, err
	}
	opts.cfg = cfg
	return opts, nil
}

func symbolFlag(name, v string) (rune, error) {
	if utf8.RuneCountInString(v) != 1 {
		return 0, fmt.Errorf("-%s must be a single character, got %q", name, v)
	}
	r, _ := utf8.DecodeRuneInString(v)
	return r, nil
}

// defaultAddr reads DUNGEONMST_ADDR, then PORT.
func defaultAddr() string {
	if addr := os.Getenv("DUNGEONMST_ADDR"); addr != "" {
		return addr
	}
	if port := os.Getenv("PORT"); port != "" {
		return ":" + port
	}
	return ":8080"
}

func explore(ctx context.Context, opts options, logger *slog.Logger, stdin io.Reader, stdout io.Writer) error {
	in := stdin
	if opts.mapPath != "" {
		f, err := os.Open(opts.mapPath)
		if err != nil {
			return err
		}
		defer f.Close()
		in = f
	}
	rows, err := readRows(in)
	if err != nil {
		return fmt.Errorf("read map: %w", err)
	}

	e, err := explorer.New(opts.cfg, logger)
	if err != nil {
		return err
	}
	report, runErr := e.Run(ctx, rows)
	if report == nil {
		return runErr
	}

	if opts.asJSON {
		enc := json.NewEncoder(stdout)
		enc.SetIndent("", "  ")
		if err := enc.Encode(report.Summary()); err != nil {
			return err
		}
	} else {
		newRenderer(stdout, opts.noColor).Report(report, opts.paths)
	}
	if errors.Is(runErr, prim_kruskal.ErrDisconnected) {
		return runErr
	}
	return nil
}

// readRows reads map lines, dropping carriage returns and trailing blank lines.
func readRows(r io.Reader) ([]string, error) {
	var rows []string
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 64*1024), 16*1024*1024)
	for sc.Scan() {
		rows = append(rows, strings.TrimRight(sc.Text(), "\r"))
	}
	if err := sc.Err(); err != nil {
		return nil, err
	}
	for len(rows) > 0 && rows[len(rows)-1] == "" {
		rows = rows[:len(rows)-1]
	}
	return rows, nil
}

func serve(ctx context.Context, opts options, logger *slog.Logger) error {
	ln, err := net.Listen("tcp", opts.addr)
	if err != nil {
		return err
	}
	return serveOn(ctx, ln, opts, logger)
}

// serveOn runs the API on ln until ctx is done, then drains in-flight
// requests for up to shutdownGrace. ln is closed on return.
func serveOn(ctx context.Context, ln net.Listener, opts options, logger *slog.Logger) error {
	if !opts.verbose {
		gin.SetMode(gin.ReleaseMode)
	}
	srv := &http.Server{
		Handler: api.NewRouter(opts.cfg, logger,
			api.WithAllowOrigin(opts.origin),
			api.WithMaxKeys(opts.maxKeys),
		),
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("listening", slog.String("addr", ln.Addr().String()))
		if err := srv.Serve(ln); !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})
	return g.Wait()
}
