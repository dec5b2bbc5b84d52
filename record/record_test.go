// File: record/record_test.go
package record

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPackUnpackActionRoundTrip(t *testing.T) {
	cases := []struct{ dx, dy, kick int }{
		{0, 0, 0},
		{-1, 0, 0},
		{1, 0, 1},
		{0, -1, 0},
		{0, 1, 1},
		{-1, 1, 1},
	}
	for _, c := range cases {
		b := PackAction(c.dx, c.dy, c.kick)
		dx, dy, kick := UnpackAction(b)
		assert.Equal(t, c.dx, dx)
		assert.Equal(t, c.dy, dy)
		assert.Equal(t, c.kick, kick)
	}
}

func TestFilename(t *testing.T) {
	assert.Equal(t, "HBR_1000_2-1_8.hbar", Filename(1000, 2, 1, 8))
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.hbar")
	replay := Replay{
		Options: 8,
		Players: []PlayerRecord{
			{Info: PlayerInfo{Name: "red", ID: "1", Team: 1}, Actions: []byte{0x01, 0x02, 0x10}},
			{Info: PlayerInfo{Name: "blue", ID: "2", Team: 2}, Actions: []byte{0x04, 0x00}},
		},
	}

	require.NoError(t, Save(path, replay))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, replay.Options, loaded.Options)
	require.Len(t, loaded.Players, 2)
	assert.Equal(t, replay.Players[0].Info, loaded.Players[0].Info)
	assert.Equal(t, replay.Players[0].Actions, loaded.Players[0].Actions)
	assert.Equal(t, replay.Players[1].Info, loaded.Players[1].Info)
	assert.Equal(t, replay.Players[1].Actions, loaded.Players[1].Actions)
}

func TestSavePositionsLoadPositionsRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "replay.hbrp")
	replay := PositionReplay{
		Options: 0,
		Ticks: [][]DiscFrame{
			{{0, 0, 1, 0}, {-300, 0, 0, 0}, {300, 0, 0, 0}},
			{{1, 0, 1, 0}, {-299, 0, 0, 0}, {300, 0, 0, 0}},
		},
	}

	require.NoError(t, SavePositions(path, replay))

	loaded, err := LoadPositions(path)
	require.NoError(t, err)
	assert.Equal(t, replay.Options, loaded.Options)
	assert.Equal(t, replay.Ticks, loaded.Ticks)
}
