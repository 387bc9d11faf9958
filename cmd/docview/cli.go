package main

import (
	"context"
	"io"
	"log/slog"

	"github.com/fwojciec/docview"
	"github.com/fwojciec/docview/browse"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx       context.Context
	Stdout    io.Writer
	Stderr    io.Writer
	Logger    *slog.Logger
	Format    string
	Loader    *browse.Loader
	Viewer    *browse.Viewer
	Navigator docview.Navigator
	Converter docview.Converter
	Comments  docview.CommentParser
}

// Output formats for comments.
const (
	FormatMarkdown = "markdown"
	FormatHTML     = "html"
)

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Source   string  `short:"s" env:"DOCVIEW_SOURCE" default:"." help:"Docs directory, packed .db file or http(s) URL"`
	Format   string  `env:"DOCVIEW_FORMAT" enum:"markdown,html" default:"markdown" help:"Comment output format (markdown, html)"`
	LinkBase string  `env:"DOCVIEW_LINK_BASE" help:"URL of a hosted viewer; cross references become absolute links below it"`
	Rate     float64 `env:"DOCVIEW_RATE" default:"0" help:"Maximum HTTP requests per second (0 for no limit)"`
	Verbose  bool    `short:"v" help:"Log every fetch and navigation to stderr"`

	Show    ShowCmd    `cmd:"" help:"Show the page at an address"`
	Tree    TreeCmd    `cmd:"" help:"List libraries and packages"`
	Find    FindCmd    `cmd:"" help:"Find addresses by prefix"`
	Check   CheckCmd   `cmd:"" help:"Load every page and report broken references"`
	Pack    PackCmd    `cmd:"" help:"Copy a documentation set into a packed .db file or a directory"`
	Sitemap SitemapCmd `cmd:"" help:"Write a sitemap of every page for a hosted viewer"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Address       string `arg:"" optional:"" help:"Address such as dart-core.String.length"`
	Inherited     bool   `short:"i" help:"Include inherited members"`
	ObjectMembers bool   `help:"Include members inherited from Object"`
}

// TreeCmd is the "tree" subcommand.
type TreeCmd struct{}

// FindCmd is the "find" subcommand.
type FindCmd struct {
	Prefix string `arg:"" help:"Address or name prefix"`
	Limit  int    `short:"n" default:"20" help:"Maximum number of results (0 for all)"`
}

// CheckCmd is the "check" subcommand.
type CheckCmd struct {
	Concurrency int `short:"c" default:"10" help:"Concurrent page loads"`
}

// PackCmd is the "pack" subcommand.
type PackCmd struct {
	Source string `arg:"" help:"Docs directory or packed .db file"`
	Dest   string `arg:"" help:"Packed .db file or directory to create"`
}

// SitemapCmd is the "sitemap" subcommand.
type SitemapCmd struct {
	BaseURL string `arg:"" name:"base-url" help:"URL the viewer is hosted at"`
	Output  string `short:"o" help:"Write to a file instead of stdout"`
}
