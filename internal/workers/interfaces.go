// Package workers runs background jobs of the server, such as the periodic
// storage health check behind the gRPC health service.
package workers

import "context"

// Worker is a background job. Run blocks until ctx is done.
type Worker interface {
	Run(ctx context.Context)
}
