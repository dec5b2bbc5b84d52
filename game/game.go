// File: game/game.go
package game

import (
	"fmt"
	"os"

	"github.com/arnozoon/haxgo/physics"
	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
)

// Config bundles the construction-time options a game needs: the stadium
// source plus the recorder/renderer toggles and physics/timing tunables
// from utils.Config. StadiumData takes precedence over StadiumFile when
// both are set.
type Config struct {
	utils.Config

	StadiumData []byte // raw `.hbs` contents; nil -> read Config.StadiumFile
}

// Game ties every component together and runs the tick pipeline. Step
// is synchronous and atomic: no goroutines, no channels, no scheduling
// on the hot path. The actor model only ever applies downstream of
// Step, in the spectator broadcaster; the recorders are plain
// synchronous calls at the end of Step.
type Game struct {
	Config utils.Config

	Score *Score
	State GameState

	Players []*PlayerHandler

	TeamKickoff stadium.TeamID

	stadiumStore *stadium.Stadium
	stadium      *stadium.Stadium

	Recorder         *ActionRecorder
	PositionRecorder *PositionRecorder
}

// NewGame constructs a Game from a parsed stadium template and config.
// scoreLimit/timeLimit default to unlimited (0); call SetLimits
// afterward to override.
func NewGame(store *stadium.Stadium, cfg utils.Config) (*Game, error) {
	if cfg.TickRate <= 0 {
		return nil, &ConfigInvalidError{Reason: "tick rate must be positive"}
	}

	score, err := NewScore(0, 0, cfg.TickRate)
	if err != nil {
		return nil, err
	}

	g := &Game{
		Config:       cfg,
		Score:        score,
		State:        StateKickoff,
		TeamKickoff:  stadium.TeamRed,
		stadiumStore: store,
		stadium:      store.Clone(),
	}
	if cfg.EnableRecorder {
		g.Recorder = NewActionRecorder(cfg.FolderRec)
	}
	if cfg.EnablePositionRecorder {
		g.PositionRecorder = NewPositionRecorder(cfg.FolderRec)
	}
	return g, nil
}

// NewGameFromConfig is the one-call constructor: it loads the stadium
// named by cfg (inline data, or the configured `.hbs` file path) and
// builds the Game from it. An unreadable stadium source is a
// ConfigInvalidError; a malformed one surfaces the loader's
// stadium.InvalidError unchanged.
func NewGameFromConfig(cfg Config) (*Game, error) {
	data := cfg.StadiumData
	if data == nil {
		if cfg.StadiumFile == "" {
			return nil, &ConfigInvalidError{Reason: "no stadium configured: set StadiumData or StadiumFile"}
		}
		b, err := os.ReadFile(cfg.StadiumFile)
		if err != nil {
			return nil, &ConfigInvalidError{Reason: fmt.Sprintf("stadium file %s: %v", cfg.StadiumFile, err)}
		}
		data = b
	}

	store, err := stadium.Load(data, cfg.Config)
	if err != nil {
		return nil, err
	}
	return NewGame(store, cfg.Config)
}

// SetLimits validates and applies the game's time/score limits. A
// negative limit is a ConfigInvalidError; callers must not set
// g.Score's limit fields directly, since that bypasses this check.
func (g *Game) SetLimits(timeLimit float64, scoreLimit int) error {
	score, err := NewScore(timeLimit, scoreLimit, g.Config.TickRate)
	if err != nil {
		return err
	}
	g.Score = score
	return nil
}

// AddPlayer appends a player to the roster.
func (g *Game) AddPlayer(p *PlayerHandler) {
	g.Players = append(g.Players, p)
}

// AddPlayers appends every player in order.
func (g *Game) AddPlayers(players []*PlayerHandler) {
	for _, p := range players {
		g.AddPlayer(p)
	}
}

// GetPlayerByID returns the player with the given id, or nil.
func (g *Game) GetPlayerByID(id int) *PlayerHandler {
	for _, p := range g.Players {
		if p.ID == id {
			return p
		}
	}
	return nil
}

// Stadium exposes the live (mutable) stadium for read-only inspection by
// collaborators (recorder, spectator broadcaster, tests).
func (g *Game) Stadium() *stadium.Stadium {
	return g.stadium
}

// makePlayerAction normalizes the action and resolves its effect on the
// player's disc.
func (g *Game) makePlayerAction(p *PlayerHandler, action Action) {
	p.Action = normalizeAction(action)
	p.resolveMovement(g.stadium, g.stadiumStore.PlayerPhysics)
}

// Start injects every player's disc into the live stadium and places
// everyone at kickoff positions.
func (g *Game) Start() {
	for _, p := range g.Players {
		disc := g.stadium.PlayerPhysics.Disc.Clone()
		p.Disc = disc
		g.stadium.Discs = append(g.stadium.Discs, disc)
	}
	g.resetDiscsPositions()
	if g.Recorder != nil {
		g.Recorder.Start(g)
	}
	if g.PositionRecorder != nil {
		g.PositionRecorder.Start(g)
	}
}

// Step runs one complete tick: apply actions, integrate, resolve
// collisions, detect goals, advance the state machine.
// It returns true exactly on the tick after END's animation completes.
func (g *Game) Step(actions []Action) (bool, error) {
	if len(actions) != len(g.Players) {
		return false, &ActionShapeError{Expected: len(g.Players), Got: len(actions)}
	}

	for i, p := range g.Players {
		g.makePlayerAction(p, actions[i])
	}

	previous := snapshotScoringDiscs(g.stadium)

	physics.Integrate(g.stadium.Discs)
	physics.Resolve(g.stadium)

	done := g.handleGameState(previous)

	if g.Recorder != nil {
		g.Recorder.Step(actions)
	}
	if g.PositionRecorder != nil {
		g.PositionRecorder.Step(g)
	}

	return done, nil
}

// Stop tears the live stadium down to a fresh clone of the template and
// resets score/state.
func (g *Game) Stop(saveRecording bool) error {
	var recErr error
	if g.Recorder != nil {
		recErr = g.Recorder.Stop(saveRecording, g.Score.Red, g.Score.Blue)
		g.Recorder = NewActionRecorder(g.Config.FolderRec)
	}
	if g.PositionRecorder != nil {
		if err := g.PositionRecorder.Stop(saveRecording, g.Score.Red, g.Score.Blue); err != nil && recErr == nil {
			recErr = err
		}
		g.PositionRecorder = NewPositionRecorder(g.Config.FolderRec)
	}

	g.Score.Stop()
	g.State = StateKickoff
	g.TeamKickoff = stadium.TeamRed
	g.stadium = g.stadiumStore.Clone()

	return recErr
}

// Reset stops then restarts the game.
func (g *Game) Reset(saveRecording bool) error {
	if err := g.Stop(saveRecording); err != nil {
		return err
	}
	g.Start()
	return nil
}
