package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/alecthomas/kong"
	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/browse"
	"github.com/fwojciec/docview/fs"
	"github.com/fwojciec/docview/goquery"
	"github.com/fwojciec/docview/htmltomarkdown"
	dvhttp "github.com/fwojciec/docview/http"
	dvslog "github.com/fwojciec/docview/slog"
	"github.com/fwojciec/docview/sqlite"
	"github.com/fwojciec/docview/yaml"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Fetcher overrides the source named on the command line. Set before
	// calling Run() for end-to-end testing.
	Fetcher docview.Fetcher

	// Converter overrides the HTML to markdown converter.
	Converter docview.Converter

	// SQLite database opened for a packed source.
	DB *sqlite.DB

	// HTTP options used for a remote source.
	HTTPTimeout time.Duration
	RetryDelays []time.Duration
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		HTTPTimeout: 30 * time.Second,
		RetryDelays: dvhttp.DefaultRetryDelays(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("docview"),
		kong.Description("Browse pre-generated API documentation from the terminal."),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}),
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'docview --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	deps.Format = cli.Format
	deps.Logger = slog.New(slog.DiscardHandler)
	if cli.Verbose {
		deps.Logger = slog.New(slog.NewTextHandler(stderr, nil))
	}
	deps.Converter = m.Converter
	if deps.Converter == nil {
		conv := htmltomarkdown.NewConverter()
		conv.LinkBase = cli.LinkBase
		deps.Converter = conv
	}
	deps.Comments = goquery.NewCommentParser()

	// pack opens its own source and destination.
	if strings.HasPrefix(kongCtx.Command(), "pack ") {
		return kongCtx.Run(deps)
	}

	fetcher := m.Fetcher
	if fetcher == nil {
		fetcher, err = m.openSource(cli.Source, cli.Rate)
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Set DOCVIEW_SOURCE to a docs directory, a packed .db file or an http(s) URL")
			return fmt.Errorf("failed to open source %q: %w", cli.Source, err)
		}
		defer m.Close()
	}
	if cli.Verbose {
		fetcher = dvslog.NewLoggingFetcher(fetcher, deps.Logger)
	}

	deps.Loader = browse.NewLoader(fetcher, yaml.NewDecoder(), docview.NewIndex())
	deps.Loader.Comments = deps.Comments
	deps.Viewer = browse.NewViewer(deps.Loader)
	deps.Navigator = deps.Viewer
	if cli.Verbose {
		deps.Navigator = dvslog.NewLoggingNavigator(deps.Viewer, deps.Logger)
	}

	return kongCtx.Run(deps)
}

// openSource returns the Fetcher for src: an http(s) URL, a packed .db
// file or a directory. rps limits HTTP requests when positive.
func (m *Main) openSource(src string, rps float64) (docview.Fetcher, error) {
	switch {
	case strings.HasPrefix(src, "http://"), strings.HasPrefix(src, "https://"):
		opts := []dvhttp.Option{
			dvhttp.WithTimeout(m.HTTPTimeout),
			dvhttp.WithRetryDelays(m.RetryDelays...),
		}
		if rps > 0 {
			opts = append(opts, dvhttp.WithRateLimit(rps))
		}
		return dvhttp.NewFetcher(src, opts...)
	case isPacked(src):
		m.DB = sqlite.NewDB(src)
		m.DB.ReadOnly = true
		if err := m.DB.Open(); err != nil {
			return nil, err
		}
		return sqlite.NewPayloadService(m.DB), nil
	default:
		info, err := os.Stat(src)
		if err != nil {
			return nil, err
		}
		if !info.IsDir() {
			return nil, docview.Errorf(docview.EINVALID, "%s is not a directory", src)
		}
		return fs.NewFetcher(src), nil
	}
}

func isPacked(path string) bool {
	return strings.HasSuffix(path, ".db")
}
