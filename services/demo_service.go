package services

import (
	"context"
	"fmt"
	"math/rand"

	"github.com/google/uuid"

	"github.com/luismarketmedia/dash-fut/models"
	"github.com/luismarketmedia/dash-fut/state"
)

var demoTeamNames = []string{
	"Leões da Vila", "Furacão Azul", "Galo Doido", "Tigres do Norte",
	"Raio Verde", "Panteras FC", "Tubarões", "Águia Dourada",
}

var demoTeamColors = []string{
	"#ef4444", "#3b82f6", "#f59e0b", "#f97316",
	"#22c55e", "#a855f7", "#06b6d4", "#eab308",
}

var demoFirstNames = []string{
	"Carlos", "João", "Pedro", "Lucas", "Rafael", "Bruno", "Thiago", "Diego",
	"Felipe", "Gustavo", "Marcelo", "André", "Rodrigo", "Vinícius", "Eduardo", "Leandro",
}

var demoLastNames = []string{
	"Silva", "Santos", "Oliveira", "Souza", "Costa", "Pereira", "Almeida", "Nascimento",
	"Lima", "Araújo", "Ribeiro", "Carvalho", "Gomes", "Martins", "Rocha", "Barbosa",
}

// demoOutfield cycles for everyone who is not a goalkeeper.
var demoOutfield = []models.Position{
	models.PositionFixed,
	models.PositionMid,
	models.PositionRightWing,
	models.PositionLeftWing,
	models.PositionForward,
	models.PositionNone,
}

// DemoService seeds a ready-to-play workspace: one category, eight
// teams and a 64-player roster with one goalkeeper per team, so the
// draw and the schedule generators have something to chew on
// immediately.
type DemoService struct {
	dispatcher *Dispatcher
	rnd        *rand.Rand
}

func NewDemoService(dispatcher *Dispatcher, rnd *rand.Rand) *DemoService {
	return &DemoService{dispatcher: dispatcher, rnd: rnd}
}

// Seed wipes the workspace and installs the demo roster. The returned
// snapshot is what the caller should render.
func (s *DemoService) Seed(ctx context.Context, workspaceID string) (state.State, error) {
	s.dispatcher.Dispatch(ctx, workspaceID, state.ResetAll{})

	category := models.Category{
		ID:          uuid.NewString(),
		Name:        "Veteranos",
		WorkspaceID: workspaceID,
	}
	s.dispatcher.Dispatch(ctx, workspaceID, state.AddCategory{Category: category})

	for i, name := range demoTeamNames {
		team := models.Team{
			ID:         uuid.NewString(),
			Name:       name,
			Color:      demoTeamColors[i],
			Capacity:   defaultTeamCapacity,
			CategoryID: category.ID,
		}
		s.dispatcher.Dispatch(ctx, workspaceID, state.AddTeam{Team: team})
	}

	for i := 0; i < 64; i++ {
		position := demoOutfield[i%len(demoOutfield)]
		if i%8 == 0 {
			// One goalkeeper per team's worth of players.
			position = models.PositionGoalkeeper
		}
		player := models.Player{
			ID:           uuid.NewString(),
			JerseyNumber: i + 1,
			Name:         s.demoPlayerName(i),
			Position:     position,
			Paid:         i%7 != 6,
			CategoryID:   category.ID,
		}
		s.dispatcher.Dispatch(ctx, workspaceID, state.AddPlayer{Player: player})
	}

	next := s.dispatcher.Dispatch(ctx, workspaceID, state.SetActiveCategory{ID: category.ID})
	return next, nil
}

func (s *DemoService) demoPlayerName(i int) string {
	if s.rnd != nil {
		return fmt.Sprintf("%s %s",
			demoFirstNames[s.rnd.Intn(len(demoFirstNames))],
			demoLastNames[s.rnd.Intn(len(demoLastNames))])
	}
	return fmt.Sprintf("%s %s",
		demoFirstNames[i%len(demoFirstNames)],
		demoLastNames[(i/len(demoFirstNames)+i)%len(demoLastNames)])
}
