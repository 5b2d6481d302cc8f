package berth

import (
	"time"

	"github.com/harborops/harbormaster-go/internal/domain/shared"
)

// Window is a half-open berth occupancy interval [ETA, ETD).
type Window struct {
	eta time.Time
	etd time.Time
}

// NewWindow creates an occupancy window, requiring ETA strictly before ETD
func NewWindow(eta, etd time.Time) (Window, error) {
	if eta.IsZero() || etd.IsZero() {
		return Window{}, shared.NewValidationError("window", "ETA and ETD must be set")
	}
	if !eta.Before(etd) {
		return Window{}, shared.NewValidationError("window", "ETA must be before ETD")
	}
	return Window{eta: eta, etd: etd}, nil
}

func (w Window) ETA() time.Time { return w.eta }
func (w Window) ETD() time.Time { return w.etd }

// Overlaps reports strict half-open overlap: windows that merely touch at a
// boundary (one ETD equal to the next ETA) do not overlap.
func (w Window) Overlaps(other Window) bool {
	return w.eta.Before(other.etd) && w.etd.After(other.eta)
}

func (w Window) Duration() time.Duration {
	return w.etd.Sub(w.eta)
}
