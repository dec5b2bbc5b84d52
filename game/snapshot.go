// File: game/snapshot.go
package game

import (
	"encoding/json"

	"github.com/arnozoon/haxgo/stadium"
)

// Snapshot is the read-only, JSON-marshalable view of a tick's result
// handed to downstream collaborators (spectator broadcaster, recorder
// tooling) -- never the live stadium itself, so nothing holding a
// Snapshot can feed back into the simulation. A flat struct of
// primitives rebuilt fresh each tick rather than marshaling internal
// pointers.
type Snapshot struct {
	MessageType string       `json:"messageType"`
	State       string       `json:"state"`
	TeamKickoff string       `json:"teamKickoff"`
	Ticks       int          `json:"ticks"`
	Time        float64      `json:"time"`
	ScoreRed    int          `json:"scoreRed"`
	ScoreBlue   int          `json:"scoreBlue"`
	Discs       []DiscView   `json:"discs"`
	Players     []PlayerView `json:"players"`
}

// DiscView is the subset of stadium.Disc a spectator client needs to
// render a frame: position, radius and color. Collision flags and
// physics tunables stay server-side.
type DiscView struct {
	X      float64 `json:"x"`
	Y      float64 `json:"y"`
	Radius float64 `json:"radius"`
	Color  [4]int  `json:"color"`
}

// PlayerView identifies which disc index belongs to which player.
type PlayerView struct {
	ID       int    `json:"id"`
	Name     string `json:"name"`
	Team     string `json:"team"`
	DiscIdx  int    `json:"discIdx"`
}

// Snapshot builds a Snapshot of the current tick's result. The
// spectator broadcaster is fed the same way every downstream
// collaborator is -- after Step returns, never during.
func (g *Game) Snapshot() Snapshot {
	discs := make([]DiscView, len(g.stadium.Discs))
	for i, d := range g.stadium.Discs {
		discs[i] = DiscView{
			X: d.Position.X, Y: d.Position.Y, Radius: d.Radius,
			Color: [4]int{int(d.Color.R), int(d.Color.G), int(d.Color.B), int(d.Color.A)},
		}
	}

	players := make([]PlayerView, len(g.Players))
	for i, p := range g.Players {
		idx := -1
		for di, d := range g.stadium.Discs {
			if d == p.Disc {
				idx = di
				break
			}
		}
		players[i] = PlayerView{ID: p.ID, Name: p.Name, Team: p.Team.String(), DiscIdx: idx}
	}

	return Snapshot{
		MessageType: "gameStateUpdate",
		State:       g.State.String(),
		TeamKickoff: teamKickoffString(g.TeamKickoff),
		Ticks:       g.Score.Ticks,
		Time:        g.Score.Time(),
		ScoreRed:    g.Score.Red,
		ScoreBlue:   g.Score.Blue,
		Discs:       discs,
		Players:     players,
	}
}

func teamKickoffString(t stadium.TeamID) string {
	return t.String()
}

// ToJson satisfies utils.JSONable for the spectator broadcaster.
func (s Snapshot) ToJson() []byte {
	data, _ := json.Marshal(s)
	return data
}
