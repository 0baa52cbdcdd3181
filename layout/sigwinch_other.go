//go:build !unix

package layout

import "context"

// ResizeSignals is a no-op on platforms without SIGWINCH. The returned
// channel never delivers and is closed when ctx is done.
func (o *Observer) ResizeSignals(ctx context.Context) <-chan Snapshot {
	ch := make(chan Snapshot)
	go func() {
		<-ctx.Done()
		close(ch)
	}()
	return ch
}
