package levels

import (
	"embed"
	"encoding/json"
	"fmt"
	"io/fs"
	"sort"
)

//go:embed *.json
var LevelsFS embed.FS

// Level is an encounter layout along the flight route.
type Level struct {
	Name string `json:"name"`
	// Length is how far along X the route runs; zero means endless.
	Length float64 `json:"length"`
	// SpawnAhead is how far in front of the player placements are spawned.
	SpawnAhead float64 `json:"spawn_ahead"`
	// Script is an optional wave script under prefabs/scripts.
	Script   string   `json:"script,omitempty"`
	Entities []Entity `json:"entities,omitempty"`
}

// Entity places one prefab. Type is a hostile variant or a pickup tag.
type Entity struct {
	Type  string                 `json:"type"`
	X     float64                `json:"x"`
	Y     float64                `json:"y"`
	Z     float64                `json:"z"`
	Props map[string]interface{} `json:"props,omitempty"`
}

func LoadLevelFromFS(name string) (*Level, error) {
	data, err := fs.ReadFile(LevelsFS, name)
	if err != nil {
		return nil, fmt.Errorf("read level: %w", err)
	}
	return ParseLevel(data)
}

func ParseLevel(data []byte) (*Level, error) {
	var lvl Level
	if err := json.Unmarshal(data, &lvl); err != nil {
		return nil, fmt.Errorf("unmarshal level: %w", err)
	}
	for i, e := range lvl.Entities {
		if e.Type == "" {
			return nil, fmt.Errorf("level %q: entity %d has no type", lvl.Name, i)
		}
	}
	// Placements are consumed in route order.
	sort.SliceStable(lvl.Entities, func(i, j int) bool {
		return lvl.Entities[i].X < lvl.Entities[j].X
	})
	return &lvl, nil
}
