package main

import (
	"fmt"

	"github.com/seolens/seolens"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	html, err := deps.Fetcher.Fetch(deps.Ctx, c.URL)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	extracted, err := extractCascade(deps.Extractors, html)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	metrics := deps.Analyzer.Analyze(extracted.Text)
	label := deps.Classifier.Classify(metrics)

	fmt.Fprintf(deps.Stdout, "%s\n", c.URL)
	if extracted.Title != "" {
		fmt.Fprintf(deps.Stdout, "  Title:         %s\n", extracted.Title)
	}
	fmt.Fprintf(deps.Stdout, "  Words:         %d\n", metrics.WordCount)
	fmt.Fprintf(deps.Stdout, "  Sentences:     %d\n", metrics.SentenceCount)
	fmt.Fprintf(deps.Stdout, "  Reading ease:  %.1f\n", metrics.ReadingEase)
	fmt.Fprintf(deps.Stdout, "  Quality:       %s\n", label)
	if metrics.Thin(deps.Config.ThinWordLimit) {
		fmt.Fprintf(deps.Stdout, "  Thin content:  yes\n")
	}

	if c.Audit == "" {
		return nil
	}

	// Rank related pages from the audit's corpus
	audit, err := findAuditByName(deps, c.Audit)
	if err != nil {
		return err
	}

	corpus, err := deps.Pages.FindPages(deps.Ctx, seolens.PageFilter{AuditID: &audit.ID})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	related := deps.Ranker.Rank(c.URL, extracted.Text, corpus, deps.Config.RelatedTopN)
	if len(related) == 0 {
		fmt.Fprintf(deps.Stdout, "\nNo related pages in audit %q.\n", c.Audit)
		return nil
	}

	fmt.Fprintf(deps.Stdout, "\nRelated pages in %q:\n", c.Audit)
	for _, r := range related {
		fmt.Fprintf(deps.Stdout, "  %.0f%%  %s\n", r.Similarity*100, r.URL)
	}

	return nil
}

// extractCascade runs the extractors in order, returning the first success.
func extractCascade(extractors []seolens.Extractor, html string) (*seolens.ExtractResult, error) {
	var lastErr error
	for _, extractor := range extractors {
		extracted, err := extractor.Extract(html)
		if err == nil {
			return extracted, nil
		}
		lastErr = err
	}
	if lastErr == nil {
		lastErr = seolens.Errorf(seolens.EINTERNAL, "no extractors configured")
	}
	return nil, lastErr
}
