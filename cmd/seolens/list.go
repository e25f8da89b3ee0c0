package main

import (
	"fmt"

	"github.com/seolens/seolens"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	audits, err := deps.Audits.FindAudits(deps.Ctx, seolens.AuditFilter{})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	if len(audits) == 0 {
		fmt.Fprintln(deps.Stdout, "No audits found. Use 'seolens add' to create one.")
		return nil
	}

	for _, a := range audits {
		fmt.Fprintf(deps.Stdout, "%s  %s  %s\n", a.ID, a.Name, a.SourceURL)
	}

	return nil
}
