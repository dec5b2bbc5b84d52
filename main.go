// File: main.go
package main

import (
	"fmt"
	"net/http"
	"os"
	"time"

	"github.com/arnozoon/haxgo/bollywood"
	"github.com/arnozoon/haxgo/game"
	"github.com/arnozoon/haxgo/server"
	"github.com/arnozoon/haxgo/stadium"
	"github.com/arnozoon/haxgo/utils"
	"golang.org/x/net/websocket"
)

const defaultPort = "8080"

// main runs a headless server: a single authoritative Game ticking at
// its configured rate, with two ChaseBot players, and a spectator
// WebSocket endpoint that mirrors every tick's Snapshot to connected
// viewers. Loads config, spawns the actor engine, builds the HTTP
// server, and serves. There is no room or matchmaking layer: haxgo runs
// one simulation.
func main() {
	cfg := utils.DefaultConfig()
	fmt.Println("Configuration loaded (using defaults).")
	fmt.Printf("Tick rate: %d Hz, goal animation: %d ticks\n", cfg.TickRate, cfg.GoalAnimationTicks)

	g, err := game.NewGameFromConfig(game.Config{Config: cfg, StadiumData: []byte(exampleStadium)})
	if err != nil {
		panic(fmt.Sprintf("invalid game config: %v", err))
	}
	if err := g.SetLimits(0, 3); err != nil {
		panic(fmt.Sprintf("invalid game limits: %v", err))
	}

	g.AddPlayers([]*game.PlayerHandler{
		game.NewPlayerHandler("red-bot", 1, stadium.TeamRed, game.NewChaseBot(1)),
		game.NewPlayerHandler("blue-bot", 2, stadium.TeamBlue, game.NewChaseBot(2)),
	})
	g.Start()

	engine := bollywood.NewEngine()
	fmt.Println("Bollywood engine created.")
	spectators := server.New(engine)
	fmt.Println("Spectator broadcaster spawned.")

	go runTickLoop(g, spectators, cfg.GameTickPeriod)

	http.HandleFunc("/", server.HandleHealthCheck())
	http.HandleFunc("/health-check/", server.HandleHealthCheck())
	http.Handle("/subscribe", websocket.Handler(spectators.HandleSubscribe()))

	port := os.Getenv("PORT")
	if port == "" {
		port = defaultPort
		fmt.Printf("PORT environment variable not set, defaulting to %s\n", port)
	}

	listenAddr := ":" + port
	fmt.Printf("Server starting on address %s\n", listenAddr)
	if err := http.ListenAndServe(listenAddr, nil); err != nil {
		fmt.Println("Server stopped:", err)
		fmt.Println("Shutting down engine...")
		engine.Shutdown(5 * time.Second)
		fmt.Println("Engine shutdown complete.")
	}
}

// runTickLoop drives Game.Step at the configured tick rate and publishes
// the resulting Snapshot to spectators -- strictly after Step returns,
// never concurrently with it.
func runTickLoop(g *game.Game, spectators *server.Server, period time.Duration) {
	actions := make([]game.Action, len(g.Players))
	ticker := time.NewTicker(period)
	defer ticker.Stop()

	for range ticker.C {
		for i, p := range g.Players {
			actions[i] = p.Step(g)
		}
		done, err := g.Step(actions)
		if err != nil {
			fmt.Println("tick error:", err)
			continue
		}
		spectators.Publish(g.Snapshot())
		if done {
			fmt.Printf("Game over: red %d - %d blue\n", g.Score.Red, g.Score.Blue)
			if err := g.Reset(false); err != nil {
				fmt.Println("reset error:", err)
			}
		}
	}
}

// exampleStadium is a minimal classic-style field: two straight side
// walls and a goal on each short side, enough to exercise the full tick
// pipeline (kickoff, collision, goal detection, state machine) without
// shipping much larger `.hbs` geometry, which is out of
// this repository's scope.
const exampleStadium = `{
	"name": "example",
	"spawnDistance": 200,
	"kickoffReset": "full",
	"traits": {
		"wall": {"bCoef": 0.5, "cGroup": ["wall"], "cMask": ["all"]}
	},
	"vertexes": [
		{"x": -500, "y": -250, "trait": "wall"},
		{"x": 500, "y": -250, "trait": "wall"},
		{"x": 500, "y": 250, "trait": "wall"},
		{"x": -500, "y": 250, "trait": "wall"},
		{"x": -500, "y": -100, "trait": "wall"},
		{"x": -500, "y": 100, "trait": "wall"},
		{"x": 500, "y": -100, "trait": "wall"},
		{"x": 500, "y": 100, "trait": "wall"}
	],
	"segments": [
		{"v0": 0, "v1": 1, "trait": "wall"},
		{"v0": 3, "v1": 2, "trait": "wall"},
		{"v0": 0, "v1": 4, "trait": "wall"},
		{"v0": 5, "v1": 3, "trait": "wall"},
		{"v0": 1, "v1": 6, "trait": "wall"},
		{"v0": 7, "v1": 2, "trait": "wall"}
	],
	"planes": [],
	"discs": [],
	"goals": [
		{"p0": [-500, -100], "p1": [-500, 100], "team": "red"},
		{"p0": [500, -100], "p1": [500, 100], "team": "blue"}
	],
	"redSpawnPoints": [],
	"blueSpawnPoints": [],
	"playerPhysics": {}
}`
