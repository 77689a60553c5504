// Package heartbeat runs a function on a fixed interval, independent of any
// other work the process is doing.
//
//	hb, err := heartbeat.New(func(ctx context.Context, at time.Time) {
//	    log.InfoContext(ctx, "tick", slog.Time("at", at))
//	}, heartbeat.WithInterval(2*time.Second))
//	if err != nil {
//	    return err
//	}
//	go hb.Run(ctx)
//
// Beats run sequentially on the goroutine that called Run; a slow beat delays
// the next one rather than overlapping it.
package heartbeat
