package main

import (
	"fmt"

	"github.com/seolens/seolens"
)

// Run executes the export command.
func (c *ExportCmd) Run(deps *Dependencies) error {
	audit, err := findAuditByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Exporter.ExportAudit(deps.Ctx, audit.ID, c.Dir); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Exported audit %q to %s\n", c.Name, c.Dir)
	return nil
}
