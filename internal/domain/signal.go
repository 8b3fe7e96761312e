package domain

import "fmt"

// SignalKind represents the kind of interaction a user had with an entry.
type SignalKind string

const (
	// SignalView indicates the user opened the entry.
	SignalView SignalKind = "view"
	// SignalLike indicates the user liked the entry.
	SignalLike SignalKind = "like"
	// SignalSave indicates the user saved the entry to a collection.
	SignalSave SignalKind = "save"
)

// ParseSignalKind validates a signal kind received from the outside.
func ParseSignalKind(s string) (SignalKind, error) {
	switch kind := SignalKind(s); kind {
	case SignalView, SignalLike, SignalSave:
		return kind, nil
	default:
		return "", fmt.Errorf("unknown signal kind [%s]", s)
	}
}

// SignalWeights maps each signal kind to the learning rate used by the
// exponential interest update. Stronger signals pull harder.
type SignalWeights map[SignalKind]float64

// DefaultSignalWeights returns the production weights.
func DefaultSignalWeights() SignalWeights {
	return SignalWeights{
		SignalView: 0.08,
		SignalLike: 0.2,
		SignalSave: 0.3,
	}
}
