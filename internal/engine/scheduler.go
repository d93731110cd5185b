package engine

import "time"

// Scheduler is the periodic timer that drives ticks.
type Scheduler interface {
	// C delivers one value per period. A nil channel blocks forever.
	C() <-chan time.Time

	// Restart begins a fresh period starting now and discards any tick
	// the previous schedule already delivered.
	Restart()

	// Stop halts delivery. Restart may be called again afterwards.
	Stop()
}

// TickerScheduler is a Scheduler backed by time.Ticker.
type TickerScheduler struct {
	interval time.Duration
	ticker   *time.Ticker
}

// NewTickerScheduler creates a stopped scheduler; call Restart to start it.
func NewTickerScheduler(interval time.Duration) *TickerScheduler {
	return &TickerScheduler{interval: interval}
}

// Interval returns the tick period.
func (s *TickerScheduler) Interval() time.Duration {
	return s.interval
}

// C returns the ticker channel, or nil before the first Restart.
func (s *TickerScheduler) C() <-chan time.Time {
	if s.ticker == nil {
		return nil
	}
	return s.ticker.C
}

// Restart starts the ticker or resets its phase to now.
func (s *TickerScheduler) Restart() {
	if s.ticker == nil {
		s.ticker = time.NewTicker(s.interval)
		return
	}
	s.ticker.Reset(s.interval)
	select {
	case <-s.ticker.C:
	default:
	}
}

// Stop halts the ticker.
func (s *TickerScheduler) Stop() {
	if s.ticker != nil {
		s.ticker.Stop()
	}
}
