package main

import (
	"context"
	"io"

	"github.com/fwojciec/folio"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx     context.Context
	Stdout  io.Writer
	Stderr  io.Writer
	Library *folio.Library
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Config  string `help:"Config file path" type:"path"`
	Corpus  string `help:"Corpus directory (overrides config)" type:"path"`
	Verbose bool   `short:"v" help:"Enable debug logging"`
	NoInput bool   `help:"Never prompt; ambiguous queries fail"`

	List    ListCmd    `cmd:"" help:"List the catalog of works"`
	Resolve ResolveCmd `cmd:"" help:"Resolve a query to a catalog key"`
	Show    ShowCmd    `cmd:"" help:"Materialize a work and print a summary"`
	Warm    WarmCmd    `cmd:"" help:"Pre-parse works into the artifact cache"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// ResolveCmd is the "resolve" subcommand.
type ResolveCmd struct {
	Query       string `arg:"" help:"Key or title fragment"`
	Materialize bool   `default:"true" negatable:"" help:"Append a synthetic entry when nothing matches"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	Query string `arg:"" help:"Key or title fragment"`
	Full  bool   `help:"Print the full body text"`
}

// WarmCmd is the "warm" subcommand.
type WarmCmd struct {
	Keys        []string `arg:"" optional:"" help:"Keys to warm (default: all)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent parse limit"`
}
