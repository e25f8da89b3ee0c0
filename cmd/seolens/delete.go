package main

import (
	"fmt"

	"github.com/seolens/seolens"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return seolens.Errorf(seolens.EINVALID, "use --force to confirm deletion")
	}

	audit, err := findAuditByName(deps, c.Name)
	if err != nil {
		return err
	}

	if err := deps.Audits.DeleteAudit(deps.Ctx, audit.ID); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", seolens.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted audit %q\n", audit.Name)
	return nil
}
