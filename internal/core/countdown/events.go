package countdown

import "time"

// Kind selects the countdown duration.
type Kind string

const (
	KindPomodoro   Kind = "pomodoro"
	KindShortBreak Kind = "shortBreak"
	KindLongBreak  Kind = "longBreak"
)

// Kinds lists the selectable kinds in display order.
var Kinds = []Kind{KindPomodoro, KindShortBreak, KindLongBreak}

// ParseKind maps a key to a kind, falling back to KindPomodoro.
func ParseKind(value string) Kind {
	for _, kind := range Kinds {
		if string(kind) == value {
			return kind
		}
	}
	return KindPomodoro
}

// Label returns the button caption for the kind.
func (kind Kind) Label() string {
	switch kind {
	case KindShortBreak:
		return "☕ Short Break"
	case KindLongBreak:
		return "🌴 Long Break"
	default:
		return "🍅 Pomodoro"
	}
}

// EventType defines the type of timer event.
type EventType string

const (
	EventStateChange EventType = "state_change"
	EventProgress    EventType = "progress"
	EventComplete    EventType = "complete"
)

// Event represents a timer update for observers.
type Event struct {
	Type      EventType
	Kind      Kind
	Running   bool
	Remaining time.Duration
	Progress  float64
	At        time.Time
}
