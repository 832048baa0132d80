package srv

import "context"

// cleanupService adapts a teardown function to the Service interface.
// Resources with nothing to start but an ordered close on shutdown (the
// sqlite handle, the scoring pool) register through this.
type cleanupService struct {
	cleanup func() error
}

func (c *cleanupService) Start(ctx context.Context) error {
	// Nothing to run until shutdown
	return nil
}

func (c *cleanupService) Shutdown(ctx context.Context) error {
	if c.cleanup != nil {
		return c.cleanup()
	}
	return nil
}

// NewCleanup wraps fn so it runs during the shutdown sequence.
func NewCleanup(fn func() error) Service {
	return &cleanupService{cleanup: fn}
}
