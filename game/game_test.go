// File: game/game_test.go
package game

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameFromConfigInlineData(t *testing.T) {
	cfg := Config{Config: utils.FastGameConfig(), StadiumData: []byte(recorderTestStadium)}
	g, err := NewGameFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "recorder-test", g.Stadium().Name)
	require.NotNil(t, g.Stadium().Ball())
}

func TestNewGameFromConfigStadiumFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "field.hbs")
	require.NoError(t, os.WriteFile(path, []byte(recorderTestStadium), 0o644))

	cfg := Config{Config: utils.FastGameConfig()}
	cfg.StadiumFile = path

	g, err := NewGameFromConfig(cfg)
	require.NoError(t, err)
	assert.Equal(t, "recorder-test", g.Stadium().Name)
}

func TestNewGameFromConfigRejectsMissingStadium(t *testing.T) {
	_, err := NewGameFromConfig(Config{Config: utils.FastGameConfig()})
	require.Error(t, err)
	var invalid *ConfigInvalidError
	require.ErrorAs(t, err, &invalid)

	cfg := Config{Config: utils.FastGameConfig()}
	cfg.StadiumFile = filepath.Join(t.TempDir(), "does-not-exist.hbs")
	_, err = NewGameFromConfig(cfg)
	require.ErrorAs(t, err, &invalid)
}

func TestStepRejectsWrongActionCount(t *testing.T) {
	cfg := Config{Config: utils.FastGameConfig(), StadiumData: []byte(recorderTestStadium)}
	g, err := NewGameFromConfig(cfg)
	require.NoError(t, err)

	g.AddPlayer(NewPlayerHandler("red", 1, stadium.TeamRed, nil))
	g.Start()

	_, err = g.Step([]Action{{}, {}})
	require.Error(t, err)
	var shape *ActionShapeError
	require.ErrorAs(t, err, &shape)
	assert.Equal(t, 1, shape.Expected)
	assert.Equal(t, 2, shape.Got)

	// A corrected action slice on the next call keeps the game usable:
	// the error is fatal for that tick only.
	done, err := g.Step([]Action{{}})
	require.NoError(t, err)
	assert.False(t, done)
}
