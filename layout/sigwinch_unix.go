//go:build unix

package layout

import (
	"context"
	"os"
	"os/signal"

	"golang.org/x/sys/unix"
)

// ResizeSignals re-samples on every SIGWINCH until ctx is cancelled, sending
// the fresh snapshot on the returned channel. The channel is closed when ctx
// is done. Hosts that already receive resize events from their own event loop
// (e.g. a bubbletea window-size message) should feed Resize directly instead.
func (o *Observer) ResizeSignals(ctx context.Context) <-chan Snapshot {
	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, unix.SIGWINCH)

	ch := make(chan Snapshot, 1)
	go func() {
		defer close(ch)
		defer signal.Stop(sigs)
		for {
			select {
			case <-ctx.Done():
				return
			case <-sigs:
				snap := o.Sample()
				select {
				case ch <- snap:
				case <-ctx.Done():
					return
				}
			}
		}
	}()
	return ch
}
