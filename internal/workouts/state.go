package workouts

import "fmt"

type SessionStatus string

const (
	StatusPlanned    SessionStatus = "planned"
	StatusInProgress SessionStatus = "in_progress"
	StatusCompleted  SessionStatus = "completed"
	StatusSkipped    SessionStatus = "skipped"
)

var SessionStatuses = []SessionStatus{StatusPlanned, StatusInProgress, StatusCompleted, StatusSkipped}

type SessionEvent string

const (
	EventStart       SessionEvent = "start"
	EventLogExercise SessionEvent = "log_exercise"
	EventComplete    SessionEvent = "complete"
	EventSkip        SessionEvent = "skip"
)

// transitions lists every allowed (state, event) pair, anything else is rejected.
// completed and skipped are terminal.
var transitions = map[SessionStatus]map[SessionEvent]SessionStatus{
	StatusPlanned: {
		EventStart: StatusInProgress,
		EventSkip:  StatusSkipped,
	},
	StatusInProgress: {
		EventLogExercise: StatusInProgress,
		EventComplete:    StatusCompleted,
		EventSkip:        StatusSkipped,
	},
}

func Transition(from SessionStatus, ev SessionEvent) (SessionStatus, error) {
	next, ok := transitions[from][ev]
	if !ok {
		return "", fmt.Errorf("%w: %s on %s session", ErrInvalidTransition, ev, from)
	}
	return next, nil
}

func (s SessionStatus) Terminal() bool {
	return s == StatusCompleted || s == StatusSkipped
}
