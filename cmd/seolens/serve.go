package main

import (
	"fmt"
)

// Run executes the serve command.
func (c *ServeCmd) Run(deps *Dependencies) error {
	fmt.Fprintf(deps.Stdout, "Serving dashboard API on %s\n", c.Addr)

	errCh := make(chan error, 1)
	go func() {
		errCh <- deps.Server.Open(c.Addr)
	}()

	select {
	case err := <-errCh:
		return err
	case <-deps.Ctx.Done():
		return deps.Server.Close()
	}
}
