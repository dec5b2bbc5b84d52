// File: game/recorder.go
package game

import (
	"fmt"
	"path/filepath"
	"time"

	"github.com/arnozoon/haxgo/record"
)

// ActionRecorder captures the per-tick action stream of a running game
// and packs it to the `.hbar` wire format on Stop. It never reads
// physics state, only the actions each player was given -- a
// non-authoritative, downstream-of-Step role shared by every
// recorder/renderer collaborator.
type ActionRecorder struct {
	folder string

	playerInfo []record.PlayerInfo
	actions    [][]byte
	options    int

	Filename string
}

// NewActionRecorder builds an idle recorder writing under folder.
func NewActionRecorder(folder string) *ActionRecorder {
	return &ActionRecorder{folder: folder}
}

// Start snapshots the player roster and the team_kickoff*8 options word.
func (r *ActionRecorder) Start(g *Game) {
	r.playerInfo = make([]record.PlayerInfo, len(g.Players))
	r.actions = make([][]byte, len(g.Players))
	for i, p := range g.Players {
		r.playerInfo[i] = record.PlayerInfo{
			Name: p.Name,
			ID:   fmt.Sprintf("%d", p.ID),
			Team: int(p.Team),
		}
	}
	r.options = int(g.TeamKickoff) * 8
}

// Step appends one packed byte per player for this tick.
func (r *ActionRecorder) Step(actions []Action) {
	for i, a := range actions {
		if i >= len(r.actions) {
			break
		}
		r.actions[i] = append(r.actions[i], record.PackAction(a.Dx, a.Dy, a.Kick))
	}
}

// Stop assembles and, if save is true, writes the replay file. red/blue
// are the final score, embedded in the filename. A filesystem failure
// is wrapped as RecordingIOError and the caller's game remains usable.
func (r *ActionRecorder) Stop(save bool, red, blue int) error {
	if len(r.playerInfo) == 0 {
		return nil
	}

	players := make([]record.PlayerRecord, len(r.playerInfo))
	for i, info := range r.playerInfo {
		players[i] = record.PlayerRecord{Info: info, Actions: r.actions[i]}
	}
	replay := record.Replay{Options: r.options, Players: players}
	r.Filename = record.Filename(time.Now().Unix(), red, blue, r.options)

	if !save {
		return nil
	}

	path := filepath.Join(r.folder, r.Filename)
	if err := record.Save(path, replay); err != nil {
		return &RecordingIOError{Op: "stop", Err: err}
	}
	return nil
}

// PositionRecorder captures the full physical state (position and
// velocity) of every disc each tick, a richer alternative to
// ActionRecorder's input-only trace. It reads the stadium after Resolve
// runs but, like every recorder, never writes to it.
type PositionRecorder struct {
	folder string

	ticks   [][]record.DiscFrame
	options int

	Filename string
}

// NewPositionRecorder builds an idle position recorder writing under
// folder.
func NewPositionRecorder(folder string) *PositionRecorder {
	return &PositionRecorder{folder: folder}
}

// Start snapshots the team_kickoff*8 options word, matching
// ActionRecorder.Start.
func (r *PositionRecorder) Start(g *Game) {
	r.ticks = nil
	r.options = int(g.TeamKickoff) * 8
}

// Step appends one frame per disc in stadium order (ball first).
func (r *PositionRecorder) Step(g *Game) {
	discs := g.stadium.Discs
	frame := make([]record.DiscFrame, len(discs))
	for i, d := range discs {
		frame[i] = record.DiscFrame{d.Position.X, d.Position.Y, d.Velocity.X, d.Velocity.Y}
	}
	r.ticks = append(r.ticks, frame)
}

// Stop assembles and, if save is true, writes the `.hbrp` position
// trace. A filesystem failure is wrapped as RecordingIOError; the
// caller's game remains usable.
func (r *PositionRecorder) Stop(save bool, red, blue int) error {
	if len(r.ticks) == 0 {
		return nil
	}

	replay := record.PositionReplay{Options: r.options, Ticks: r.ticks}
	r.Filename = record.PositionFilename(time.Now().Unix(), red, blue, r.options)

	if !save {
		return nil
	}

	path := filepath.Join(r.folder, r.Filename)
	if err := record.SavePositions(path, replay); err != nil {
		return &RecordingIOError{Op: "stop", Err: err}
	}
	return nil
}
