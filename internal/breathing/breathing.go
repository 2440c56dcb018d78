package breathing

import (
	"fmt"
	"time"

	"github.com/julianstephens/mindmate/internal/constants"
	"github.com/julianstephens/mindmate/internal/logger"
	"github.com/julianstephens/mindmate/internal/models"
	"github.com/julianstephens/mindmate/internal/storage"
)

// Phase is the current half of the breathing cycle
type Phase int

const (
	Inhale Phase = iota
	Exhale
)

func (p Phase) String() string {
	if p == Exhale {
		return "exhale"
	}
	return "inhale"
}

// Instruction is the longer prompt shown under the animation
func (p Phase) Instruction() string {
	switch p {
	case Inhale:
		return "Breathe in slowly through your nose"
	case Exhale:
		return "Breathe out slowly through your mouth"
	default:
		return "Focus on your breath"
	}
}

// Text is the short label shown inside the animation
func (p Phase) Text() string {
	switch p {
	case Inhale:
		return "Breathe In"
	case Exhale:
		return "Breathe Out"
	default:
		return "Breathe"
	}
}

// PhaseAt maps elapsed seconds onto the repeating cycle
func PhaseAt(elapsed int) Phase {
	if elapsed%constants.BreathingCycleSec < constants.BreathingInhaleSecs {
		return Inhale
	}
	return Exhale
}

// Driver advances the breathing cycle one tick at a time. Every Start opens
// a new session; ticks for any other session are rejected, so a stopped
// session's pending tick never restarts the counter.
type Driver struct {
	running bool
	session int
	elapsed int
	phase   Phase
	started time.Time
}

// Start resets the counter and returns the id ticks must carry
func (d *Driver) Start(now time.Time) int {
	d.session++
	d.running = true
	d.elapsed = 0
	d.phase = Inhale
	d.started = now
	return d.session
}

// Stop ends the session and resets to the idle state. It returns the finished
// session and whether it ran for at least one full cycle.
func (d *Driver) Stop() (models.BreathingSession, bool) {
	finished := models.BreathingSession{Start: d.started, Seconds: d.elapsed}
	complete := d.running && d.elapsed >= constants.BreathingCycleSec

	// invalidate any tick still in flight
	d.session++
	d.running = false
	d.elapsed = 0
	d.phase = Inhale
	d.started = time.Time{}
	return finished, complete
}

// Tick advances one second for the given session. It reports false when the
// tick belongs to a stale session or the driver is idle.
func (d *Driver) Tick(session int) bool {
	if !d.running || session != d.session {
		return false
	}
	d.elapsed++
	d.phase = PhaseAt(d.elapsed)
	return true
}

func (d *Driver) Running() bool { return d.running }
func (d *Driver) Session() int  { return d.session }
func (d *Driver) Elapsed() int  { return d.elapsed }
func (d *Driver) Phase() Phase  { return d.phase }

// FormatElapsed renders seconds as m:ss
func FormatElapsed(seconds int) string {
	return fmt.Sprintf("%d:%02d", seconds/60, seconds%60)
}

// Record appends a completed session to the breathingSessions collection
func Record(store storage.Provider, session models.BreathingSession) error {
	res, err := storage.ReadCollection[models.BreathingSession](store, constants.KeyBreathingSessions)
	if err != nil {
		return fmt.Errorf("failed to read breathing sessions: %w", err)
	}
	sessions := append(res.Value, models.BreathingSession{
		Start:   session.Start.UTC(),
		Seconds: session.Seconds,
	})
	if err := storage.WriteValue(store, constants.KeyBreathingSessions, sessions); err != nil {
		return fmt.Errorf("failed to save breathing session: %w", err)
	}
	logger.Debug("Recorded breathing session", "seconds", session.Seconds, "total", len(sessions))
	return nil
}

// Sessions returns every recorded session
func Sessions(store storage.Provider) ([]models.BreathingSession, error) {
	res, err := storage.ReadCollection[models.BreathingSession](store, constants.KeyBreathingSessions)
	if err != nil {
		return nil, fmt.Errorf("failed to read breathing sessions: %w", err)
	}
	return res.Value, nil
}
