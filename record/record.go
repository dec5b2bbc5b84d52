// File: record/record.go
package record

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/vmihailenco/msgpack/v5"
)

// Input bit flags packed into one byte per player per tick, the `.hbar`
// wire layout.
const (
	InputLeft  = 1 << 0
	InputRight = 1 << 1
	InputUp    = 1 << 2
	InputDown  = 1 << 3
	InputShoot = 1 << 4
)

// PackAction packs one action triple into a byte: dx selects
// LEFT/RIGHT, dy selects DOWN/UP, kick sets SHOOT.
func PackAction(dx, dy, kick int) byte {
	var b int
	switch dx {
	case -1:
		b += InputLeft
	case 1:
		b += InputRight
	}
	switch dy {
	case -1:
		b += InputDown
	case 1:
		b += InputUp
	}
	if kick != 0 {
		b += InputShoot
	}
	return byte(b)
}

// UnpackAction inverts PackAction, returning (dx, dy, kick).
func UnpackAction(b byte) (dx, dy, kick int) {
	if b&InputLeft != 0 {
		dx = -1
	} else if b&InputRight != 0 {
		dx = 1
	}
	if b&InputDown != 0 {
		dy = -1
	} else if b&InputUp != 0 {
		dy = 1
	}
	if b&InputShoot != 0 {
		kick = 1
	}
	return dx, dy, kick
}

// PlayerInfo is the `[name, id, team]` triple recorded once at the start
// of a game.
type PlayerInfo struct {
	Name string
	ID   string
	Team int
}

// PlayerRecord pairs a player's info with its per-tick action byte
// stream.
type PlayerRecord struct {
	Info    PlayerInfo
	Actions []byte
}

// Replay is the decoded form of a `.hbar` file: `[options, [[info,
// actions], ...]]`.
type Replay struct {
	Options int
	Players []PlayerRecord
}

// Filename builds the replay file name:
// `HBR_<unix seconds>_<red>-<blue>_<options>.hbar`.
func Filename(unixSeconds int64, red, blue, options int) string {
	return fmt.Sprintf("HBR_%d_%d-%d_%d.hbar", unixSeconds, red, blue, options)
}

// Save msgpack-encodes replay to path, creating parent directories as
// needed.
func Save(path string, replay Replay) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	players := make([][2]interface{}, len(replay.Players))
	for i, p := range replay.Players {
		players[i] = [2]interface{}{
			[3]interface{}{p.Info.Name, p.Info.ID, p.Info.Team},
			p.Actions,
		}
	}

	data, err := msgpack.Marshal([2]interface{}{replay.Options, players})
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// Load decodes a `.hbar` file written by Save back into a Replay.
func Load(path string) (Replay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Replay{}, err
	}

	var raw []interface{}
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return Replay{}, err
	}
	if len(raw) != 2 {
		return Replay{}, fmt.Errorf("record: malformed replay: expected 2 top-level elements, got %d", len(raw))
	}

	options, err := toInt(raw[0])
	if err != nil {
		return Replay{}, err
	}

	playersRaw, ok := raw[1].([]interface{})
	if !ok {
		return Replay{}, fmt.Errorf("record: malformed replay: players field is not a list")
	}

	players := make([]PlayerRecord, 0, len(playersRaw))
	for _, pr := range playersRaw {
		entry, ok := pr.([]interface{})
		if !ok || len(entry) != 2 {
			return Replay{}, fmt.Errorf("record: malformed player record")
		}
		info, ok := entry[0].([]interface{})
		if !ok || len(info) != 3 {
			return Replay{}, fmt.Errorf("record: malformed player info")
		}
		name, _ := info[0].(string)
		id, _ := info[1].(string)
		team, err := toInt(info[2])
		if err != nil {
			return Replay{}, err
		}

		actionsRaw, ok := entry[1].([]byte)
		if !ok {
			actionsRaw = nil
		}

		players = append(players, PlayerRecord{
			Info:    PlayerInfo{Name: name, ID: id, Team: team},
			Actions: actionsRaw,
		})
	}

	return Replay{Options: options, Players: players}, nil
}

// DiscFrame is one disc's physical state at a single tick, captured by
// the position recorder: x, y, vx, vy in that fixed order.
type DiscFrame [4]float64

// PositionReplay is the decoded form of a `.hbrp` position trace: one
// options int followed by one []DiscFrame slice per recorded tick, each
// holding every disc's frame in stadium order (ball first).
type PositionReplay struct {
	Options int
	Ticks   [][]DiscFrame
}

// PositionFilename builds the position-trace file name, `.hbrp` in
// place of `.hbar`.
func PositionFilename(unixSeconds int64, red, blue, options int) string {
	return fmt.Sprintf("HBR_%d_%d-%d_%d.hbrp", unixSeconds, red, blue, options)
}

// SavePositions msgpack-encodes a position replay to path, creating
// parent directories as needed.
func SavePositions(path string, replay PositionReplay) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return err
	}

	data, err := msgpack.Marshal([2]interface{}{replay.Options, replay.Ticks})
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0o644)
}

// LoadPositions decodes a `.hbrp` file written by SavePositions back
// into a PositionReplay.
func LoadPositions(path string) (PositionReplay, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return PositionReplay{}, err
	}

	var raw []interface{}
	if err := msgpack.Unmarshal(data, &raw); err != nil {
		return PositionReplay{}, err
	}
	if len(raw) != 2 {
		return PositionReplay{}, fmt.Errorf("record: malformed position replay: expected 2 top-level elements, got %d", len(raw))
	}

	options, err := toInt(raw[0])
	if err != nil {
		return PositionReplay{}, err
	}

	ticksRaw, ok := raw[1].([]interface{})
	if !ok {
		return PositionReplay{}, fmt.Errorf("record: malformed position replay: ticks field is not a list")
	}

	ticks := make([][]DiscFrame, 0, len(ticksRaw))
	for _, tr := range ticksRaw {
		discsRaw, ok := tr.([]interface{})
		if !ok {
			return PositionReplay{}, fmt.Errorf("record: malformed position replay: tick is not a list")
		}
		discs := make([]DiscFrame, 0, len(discsRaw))
		for _, dr := range discsRaw {
			values, ok := dr.([]interface{})
			if !ok || len(values) != 4 {
				return PositionReplay{}, fmt.Errorf("record: malformed disc frame")
			}
			var frame DiscFrame
			for i, v := range values {
				f, err := toFloat(v)
				if err != nil {
					return PositionReplay{}, err
				}
				frame[i] = f
			}
			discs = append(discs, frame)
		}
		ticks = append(ticks, discs)
	}

	return PositionReplay{Options: options, Ticks: ticks}, nil
}

func toFloat(v interface{}) (float64, error) {
	switch n := v.(type) {
	case float64:
		return n, nil
	case float32:
		return float64(n), nil
	case int:
		return float64(n), nil
	case int8:
		return float64(n), nil
	case int64:
		return float64(n), nil
	case uint64:
		return float64(n), nil
	default:
		return 0, fmt.Errorf("record: unexpected type %T for float field", v)
	}
}

func toInt(v interface{}) (int, error) {
	switch n := v.(type) {
	case int:
		return n, nil
	case int8:
		return int(n), nil
	case int64:
		return int(n), nil
	case uint64:
		return int(n), nil
	case float64:
		return int(n), nil
	default:
		return 0, fmt.Errorf("record: unexpected type %T for integer field", v)
	}
}
