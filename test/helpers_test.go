// File: test/helpers_test.go
package test

import (
	"testing"

	"github.com/arnozoon/haxgo/game"
	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
	"github.com/stretchr/testify/require"
)

// classicLikeStadium is a small symmetric two-goal field used by every
// scenario in this package. Side walls leave a gap at each short end so
// the goal segment-crossing condition can actually fire instead of the
// ball being stopped by a solid wall. The midfield kickoff-barrier
// planes carry cMask ["red","blue"] so they only ever act on player
// discs whose mask holds the matching KO bit -- the ball's group never
// intersects them.
const classicLikeStadium = `{
	"name": "classic-like",
	"spawnDistance": 200,
	"kickoffReset": "full",
	"traits": {
		"wall": {"bCoef": 0.5, "cGroup": ["wall"], "cMask": ["all"]}
	},
	"vertexes": [
		{"x": -600, "y": -300, "trait": "wall"},
		{"x": 600, "y": -300, "trait": "wall"},
		{"x": 600, "y": 300, "trait": "wall"},
		{"x": -600, "y": 300, "trait": "wall"},
		{"x": -600, "y": -100, "trait": "wall"},
		{"x": -600, "y": 100, "trait": "wall"},
		{"x": 600, "y": -100, "trait": "wall"},
		{"x": 600, "y": 100, "trait": "wall"}
	],
	"segments": [
		{"v0": 0, "v1": 1, "trait": "wall"},
		{"v0": 3, "v1": 2, "trait": "wall"},
		{"v0": 0, "v1": 4, "trait": "wall"},
		{"v0": 5, "v1": 3, "trait": "wall"},
		{"v0": 1, "v1": 6, "trait": "wall"},
		{"v0": 7, "v1": 2, "trait": "wall"}
	],
	"planes": [
		{"normal": [1, 0], "dist": 0, "cGroup": ["redKO"], "cMask": ["red", "blue"]},
		{"normal": [-1, 0], "dist": 0, "cGroup": ["blueKO"], "cMask": ["red", "blue"]}
	],
	"discs": [
		{"x": 0, "y": -250, "radius": 10, "invMass": 1, "cGroup": ["c0"], "cMask": ["all"]}
	],
	"goals": [
		{"p0": [-600, -100], "p1": [-600, 100], "team": "red"},
		{"p0": [600, -100], "p1": [600, 100], "team": "blue"}
	],
	"redSpawnPoints": [[-300, 0]],
	"blueSpawnPoints": [[300, 0]],
	"playerPhysics": {"radius": 15, "bCoef": 0.5}
}`

// newTestGame builds a Game against classicLikeStadium with the fast
// (short-animation) test config, since a full game loop run to
// completion should not pay the 150-tick GOAL/END animation cost in
// every test.
func newTestGame(t *testing.T, scoreLimit int, timeLimit float64) *game.Game {
	t.Helper()
	cfg := utils.FastGameConfig()

	store, err := stadium.Load([]byte(classicLikeStadium), cfg)
	require.NoError(t, err)

	g, err := game.NewGame(store, cfg)
	require.NoError(t, err)
	require.NoError(t, g.SetLimits(timeLimit, scoreLimit))

	return g
}

// runToCompletion steps g with the given per-tick action source until
// Step reports done, returning the total ticks run. actionsFn is called
// once per tick per player in roster order.
func runToCompletion(t *testing.T, g *game.Game, actionsFn func(tick int, p *game.PlayerHandler) game.Action, maxTicks int) int {
	t.Helper()
	g.Start()

	actions := make([]game.Action, len(g.Players))
	for tick := 0; tick < maxTicks; tick++ {
		for i, p := range g.Players {
			actions[i] = actionsFn(tick, p)
		}
		done, err := g.Step(actions)
		require.NoError(t, err)
		if done {
			return tick + 1
		}
	}
	t.Fatalf("game did not complete within %d ticks", maxTicks)
	return -1
}
