package models

import "time"

// Phase is a tournament stage.
type Phase string

const (
	PhaseGroup        Phase = "GROUP"
	PhaseRoundOf16    Phase = "R16"
	PhaseQuarterfinal Phase = "QF"
	PhaseSemifinal    Phase = "SF"
	PhaseFinal        Phase = "FINAL"
)

// Phases in bracket order.
var Phases = []Phase{PhaseGroup, PhaseRoundOf16, PhaseQuarterfinal, PhaseSemifinal, PhaseFinal}

func (p Phase) Valid() bool {
	switch p {
	case PhaseGroup, PhaseRoundOf16, PhaseQuarterfinal, PhaseSemifinal, PhaseFinal:
		return true
	}
	return false
}

// Elimination reports whether the phase is a knockout stage.
func (p Phase) Elimination() bool {
	return p.Valid() && p != PhaseGroup
}

// PlayerStats are the per-match events of a single player.
type PlayerStats struct {
	Goals    int  `json:"goals" db:"goals"`
	Yellow   int  `json:"yellow" db:"yellow"` // 0..2
	Red      bool `json:"red" db:"red"`
	Destaque bool `json:"destaque" db:"destaque"` // man of the match, at most one per match
}

type Match struct {
	ID          string                 `json:"id" db:"id"`
	LeftTeamID  string                 `json:"left_team_id" db:"left_team_id"`
	RightTeamID string                 `json:"right_team_id" db:"right_team_id"`
	Phase       Phase                  `json:"phase" db:"phase"`
	Half        int                    `json:"half" db:"half"` // 1 or 2
	StartedAt   *time.Time             `json:"started_at,omitempty" db:"started_at"`
	RemainingMs int64                  `json:"remaining_ms" db:"remaining_ms"`
	Events      map[string]PlayerStats `json:"events"` // by player id
	CategoryID  string                 `json:"category_id" db:"category_id"`
}

// Running reports whether the match clock is counting down.
func (m Match) Running() bool {
	return m.StartedAt != nil
}

func (m Match) Clone() Match {
	out := m
	if m.StartedAt != nil {
		t := *m.StartedAt
		out.StartedAt = &t
	}
	out.Events = make(map[string]PlayerStats, len(m.Events))
	for pid, ev := range m.Events {
		out.Events[pid] = ev
	}
	return out
}

// WithUniqueDestaque toggles the destaque flag for the given player and
// clears it on everyone else, keeping the one-per-match invariant.
func (m Match) WithUniqueDestaque(playerID string) Match {
	out := m.Clone()
	current := out.Events[playerID]
	willBe := !current.Destaque
	for pid, ev := range out.Events {
		ev.Destaque = false
		out.Events[pid] = ev
	}
	current.Destaque = willBe
	out.Events[playerID] = current
	return out
}
