package coderland

import (
	"context"
	"fmt"
	"time"

	"github.com/dmitrymomot/coderland/pkg/logger"
)

// reportUptime is the heartbeat beat. The tick time is ignored; uptime is
// measured against the App clock.
func (a *App) reportUptime(ctx context.Context, _ time.Time) {
	up := a.Uptime()
	a.log.InfoContext(ctx, fmt.Sprintf("Server run time: %d seconds.", int64(up/time.Second)),
		logger.Uptime(up),
	)
}
