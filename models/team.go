package models

type Team struct {
	ID         string `json:"id" db:"id"`
	Name       string `json:"name" db:"name"`
	Color      string `json:"color" db:"color"` // hex, e.g. "#ef4444"
	Capacity   int    `json:"capacity" db:"capacity"`
	CategoryID string `json:"category_id" db:"category_id"`
}

// Assignments maps a team id to the ordered list of player ids on that
// team. A player id appears in at most one list at any time.
type Assignments map[string][]string

func (a Assignments) Clone() Assignments {
	out := make(Assignments, len(a))
	for tid, ids := range a {
		out[tid] = append([]string(nil), ids...)
	}
	return out
}

// TeamOf returns the id of the team the player is assigned to, or "".
func (a Assignments) TeamOf(playerID string) string {
	for tid, ids := range a {
		for _, pid := range ids {
			if pid == playerID {
				return tid
			}
		}
	}
	return ""
}

// RemovePlayer purges the player from every team list.
func (a Assignments) RemovePlayer(playerID string) {
	for tid, ids := range a {
		kept := ids[:0]
		for _, pid := range ids {
			if pid != playerID {
				kept = append(kept, pid)
			}
		}
		a[tid] = kept
	}
}
