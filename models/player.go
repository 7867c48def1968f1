package models

// Position is a futsal playing position.
type Position string

const (
	PositionNone       Position = "NONE"
	PositionGoalkeeper Position = "GK"
	PositionFixed      Position = "FIXED"
	PositionMid        Position = "MID"
	PositionRightWing  Position = "RIGHT_WING"
	PositionLeftWing   Position = "LEFT_WING"
	PositionForward    Position = "FORWARD"
)

// BasePositions is the canonical draw order. NONE is excluded: players
// without a declared position are assigned as reserves only.
var BasePositions = []Position{
	PositionGoalkeeper,
	PositionFixed,
	PositionMid,
	PositionRightWing,
	PositionLeftWing,
	PositionForward,
}

func (p Position) Valid() bool {
	switch p {
	case PositionNone, PositionGoalkeeper, PositionFixed, PositionMid,
		PositionRightWing, PositionLeftWing, PositionForward:
		return true
	}
	return false
}

type Player struct {
	ID           string   `json:"id" db:"id"`
	JerseyNumber int      `json:"jersey_number" db:"jersey_number"`
	Name         string   `json:"name" db:"name"`
	Position     Position `json:"position" db:"position"`
	Paid         bool     `json:"paid" db:"paid"`
	CategoryID   string   `json:"category_id" db:"category_id"`
}
