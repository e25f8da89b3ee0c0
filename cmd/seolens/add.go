package main

import (
	"fmt"
	"strings"

	"github.com/seolens/seolens"
	"github.com/seolens/seolens/crawl"
)

// Run executes the add command.
func (c *AddCmd) Run(deps *Dependencies) error {
	// Validate filter patterns early
	urlFilter, err := seolens.ParseURLFilter(c.Filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	// Preview mode: show URLs without creating the audit
	if c.Preview {
		var urls []string
		if c.Feed {
			urls, err = deps.Feeds.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
		} else {
			urls, err = deps.Sitemaps.DiscoverURLs(deps.Ctx, c.URL, urlFilter)
		}
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
			return err
		}
		for _, u := range urls {
			fmt.Fprintln(deps.Stdout, u)
		}
		return nil
	}

	// Force mode: delete existing audit first
	if c.Force {
		existing, err := deps.Audits.FindAudits(deps.Ctx, seolens.AuditFilter{Name: &c.Name})
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
			return err
		}
		if len(existing) > 0 {
			if err := deps.Audits.DeleteAudit(deps.Ctx, existing[0].ID); err != nil {
				fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
				return err
			}
		}
	}

	audit := &seolens.Audit{
		Name:      c.Name,
		SourceURL: c.URL,
		Filter:    strings.Join(c.Filter, "\n"),
	}

	if err := deps.Audits.CreateAudit(deps.Ctx, audit); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Added audit %q (%s)\n", c.Name, audit.ID)

	// Crawl pages if a pipeline is provided
	if deps.Pipeline != nil {
		if c.Concurrency > 0 {
			deps.Pipeline.Concurrency = c.Concurrency
		}

		progress := func(event crawl.ProgressEvent) {
			switch event.Type {
			case crawl.ProgressStarted:
				fmt.Fprintf(deps.Stdout, "  Found %d URLs\n", event.Total)
			case crawl.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  skip %s: %v\n", event.URL, event.Error)
			case crawl.ProgressFinished:
				// Summary printed after the crawl completes
			}
		}

		result, err := deps.Pipeline.RunAudit(deps.Ctx, audit, crawl.Options{Feed: c.Feed}, progress)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error crawling: %v\n", err)
			return err
		}

		fmt.Fprintf(deps.Stdout, "  Saved %d pages (%d words, %d failed, %d duplicate pairs)\n",
			result.Saved, result.Words, result.Failed, result.Duplicates)
	}

	return nil
}
