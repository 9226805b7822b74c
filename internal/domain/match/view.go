package match

import "github.com/google/uuid"

// SessionViews is the per-viewer projection of the match collection.
type SessionViews struct {
	Scheduled []Match
	Incoming  []Match
	Sent      []Match
}

// Views derives the three disjoint views for viewer, keeping input order.
func Views(viewer uuid.UUID, all []Match) SessionViews {
	v := SessionViews{
		Scheduled: []Match{},
		Incoming:  []Match{},
		Sent:      []Match{},
	}
	for _, m := range all {
		switch {
		case m.Status == StatusAccepted && m.Involves(viewer):
			v.Scheduled = append(v.Scheduled, m)
		case m.Status == StatusPending && m.MentorID == viewer:
			v.Incoming = append(v.Incoming, m)
		case m.Status == StatusPending && m.LearnerID == viewer:
			v.Sent = append(v.Sent, m)
		}
	}
	return v
}

func CompletedCount(viewer uuid.UUID, all []Match) int {
	n := 0
	for _, m := range all {
		if m.Status == StatusCompleted && m.Involves(viewer) {
			n++
		}
	}
	return n
}
