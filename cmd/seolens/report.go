package main

import (
	"fmt"
	"io"
	"os"

	"github.com/seolens/seolens"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	audit, err := findAuditByName(deps, c.Name)
	if err != nil {
		return err
	}

	var out io.Writer = deps.Stdout
	if c.Out != "" {
		f, err := os.Create(c.Out)
		if err != nil {
			fmt.Fprintf(deps.Stderr, "error: %v\n", err)
			return err
		}
		defer f.Close()
		out = f
	}

	if err := deps.Reporter.WriteReport(deps.Ctx, audit.ID, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	if c.Out != "" {
		fmt.Fprintf(deps.Stdout, "Wrote report for %q to %s\n", c.Name, c.Out)
	}
	return nil
}
