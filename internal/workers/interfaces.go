// Package workers runs the client's background jobs, such as replaying
// drafts that could not be saved in an earlier run.
package workers

import "context"

// Worker is one background job. Run blocks until the job is done or ctx is
// cancelled.
type Worker interface {
	Run(ctx context.Context) error
}
