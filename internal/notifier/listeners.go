package notifier

import (
	"fmt"
	"io"

	"golang.org/x/time/rate"

	"daysched/pkg/logx"
)

// LogListener writes conflicts to the structured log. Bursts beyond
// ratePerSec are dropped (not queued); ratePerSec <= 0 means 1.
func LogListener(log logx.Logger, ratePerSec int) Listener {
	if ratePerSec <= 0 {
		ratePerSec = 1
	}
	// Token bucket: burst = rate per sec, so a short spike still gets logged.
	lim := rate.NewLimiter(rate.Limit(ratePerSec), ratePerSec)
	return func(e Event) error {
		if !lim.Allow() {
			return nil
		}
		log.Info("task conflict",
			logx.String("event_id", e.ID),
			logx.String("task", e.Task.Description),
			logx.String("interval", e.Task.Start.String()+"-"+e.Task.End.String()),
			logx.String("existing", e.Existing.Description),
		)
		return nil
	}
}

// WriterListener prints Event.Message as one line to w.
func WriterListener(w io.Writer) Listener {
	return func(e Event) error {
		_, err := fmt.Fprintln(w, e.Message())
		return err
	}
}
