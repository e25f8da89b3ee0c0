package main

import (
	"fmt"

	"github.com/seolens/seolens"
)

// Run executes the pages command.
func (c *PagesCmd) Run(deps *Dependencies) error {
	audit, err := findAuditByName(deps, c.Name)
	if err != nil {
		return err
	}

	filter := seolens.PageFilter{
		AuditID: &audit.ID,
		SortBy:  seolens.SortByWordCount,
	}
	if c.Thin {
		thin := true
		filter.Thin = &thin
	}
	if c.Quality != "" {
		label := seolens.QualityLabel(c.Quality)
		if !label.Valid() {
			fmt.Fprintf(deps.Stderr, "error: unknown quality label %q (use low, medium, or high)\n", c.Quality)
			return seolens.Errorf(seolens.EINVALID, "unknown quality label %q", c.Quality)
		}
		filter.Quality = &label
	}

	pages, err := deps.Pages.FindPages(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	if len(pages) == 0 {
		fmt.Fprintln(deps.Stdout, "No matching pages found.")
		return nil
	}

	fmt.Fprintf(deps.Stdout, "Pages for %s (%d total):\n\n", c.Name, len(pages))
	for _, page := range pages {
		fmt.Fprintf(deps.Stdout, "  %-6s %6d words  %s\n",
			page.Quality, page.Metrics.WordCount, page.URL)
	}

	return nil
}
