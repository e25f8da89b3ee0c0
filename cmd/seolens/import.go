package main

import (
	"fmt"

	"github.com/seolens/seolens"
)

// Run executes the import command.
func (c *ImportCmd) Run(deps *Dependencies) error {
	audit, err := findAuditByName(deps, c.Name)
	if err != nil {
		return err
	}

	result, err := deps.Importer.ImportFile(deps.Ctx, audit.ID, c.CSV)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Imported %d pages into %q (%d failed)\n",
		result.Saved, c.Name, result.Failed)
	return nil
}
