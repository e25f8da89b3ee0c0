package main

import (
	"context"
	"fmt"
	"io"

	"github.com/seolens/seolens"
	"github.com/seolens/seolens/crawl"
	"github.com/seolens/seolens/fs"
	"github.com/seolens/seolens/gin"
	"github.com/seolens/seolens/markdown"
	"github.com/seolens/seolens/sqlite"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Config seolens.Config

	DB         *sqlite.DB
	Audits     seolens.AuditService
	Pages      seolens.PageService
	Duplicates seolens.DuplicateService
	Sitemaps   seolens.SitemapService
	Feeds      seolens.FeedService

	Pipeline *crawl.Pipeline
	Importer *fs.Importer
	Exporter *fs.Exporter
	Reporter *markdown.Reporter
	Server   *gin.Server

	// Ad hoc analysis stack for the analyze command.
	Fetcher    seolens.Fetcher
	Extractors []seolens.Extractor
	Analyzer   seolens.TextAnalyzer
	Classifier seolens.Classifier
	Ranker     seolens.RelatedRanker
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Add     AddCmd     `cmd:"" help:"Add an audit and crawl its pages"`
	List    ListCmd    `cmd:"" help:"List all audits"`
	Delete  DeleteCmd  `cmd:"" help:"Delete an audit and its pages"`
	Pages   PagesCmd   `cmd:"" help:"List analyzed pages for an audit"`
	Analyze AnalyzeCmd `cmd:"" help:"Analyze a single URL ad hoc"`
	Import  ImportCmd  `cmd:"" help:"Import an offline HTML corpus from CSV"`
	Export  ExportCmd  `cmd:"" help:"Export audit results as CSV files"`
	Report  ReportCmd  `cmd:"" help:"Write a markdown audit report"`
	Serve   ServeCmd   `cmd:"" help:"Serve the dashboard API"`
}

// AddCmd is the "add" subcommand.
type AddCmd struct {
	Name        string   `arg:"" help:"Audit name"`
	URL         string   `arg:"" help:"Site or feed URL"`
	Feed        bool     `help:"Treat URL as an RSS/Atom feed"`
	Preview     bool     `short:"p" help:"Show URLs without creating the audit"`
	Force       bool     `short:"f" help:"Delete existing audit first"`
	Filter      []string `short:"F" name:"filter" help:"Filter URLs by regex (repeatable)"`
	Concurrency int      `short:"c" help:"Concurrent fetch limit"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct{}

// DeleteCmd is the "delete" subcommand.
type DeleteCmd struct {
	Name  string `arg:"" help:"Audit name"`
	Force bool   `help:"Confirm deletion"`
}

// PagesCmd is the "pages" subcommand.
type PagesCmd struct {
	Name    string `arg:"" help:"Audit name"`
	Thin    bool   `help:"Only thin pages"`
	Quality string `help:"Filter by quality label (low, medium, high)"`
}

// AnalyzeCmd is the "analyze" subcommand.
type AnalyzeCmd struct {
	URL   string `arg:"" help:"URL to analyze"`
	Audit string `help:"Audit name to rank related pages against"`
}

// ImportCmd is the "import" subcommand.
type ImportCmd struct {
	Name string `arg:"" help:"Audit name"`
	CSV  string `arg:"" type:"existingfile" help:"CSV file with url,html_content columns"`
}

// ExportCmd is the "export" subcommand.
type ExportCmd struct {
	Name string `arg:"" help:"Audit name"`
	Dir  string `arg:"" help:"Output directory"`
}

// ReportCmd is the "report" subcommand.
type ReportCmd struct {
	Name string `arg:"" help:"Audit name"`
	Out  string `short:"o" help:"Output file (default stdout)"`
}

// ServeCmd is the "serve" subcommand.
type ServeCmd struct {
	Addr string `default:":8080" help:"Listen address"`
}

// findAuditByName resolves an audit name to the stored audit.
func findAuditByName(deps *Dependencies, name string) (*seolens.Audit, error) {
	audits, err := deps.Audits.FindAudits(deps.Ctx, seolens.AuditFilter{Name: &name})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return nil, err
	}
	if len(audits) == 0 {
		fmt.Fprintf(deps.Stderr, "error: audit %q not found. Use 'seolens list' to see available audits.\n", name)
		return nil, seolens.Errorf(seolens.ENOTFOUND, "audit %q not found", name)
	}
	return audits[0], nil
}
