package system

import (
	"fmt"
	"strings"

	"github.com/d5/tengo/v2"
	"github.com/d5/tengo/v2/stdlib"
	"github.com/milk9111/gunship/common"
	"github.com/milk9111/gunship/ecs"
	"github.com/milk9111/gunship/prefabs"
)

// waveDispatchScript is appended to every wave script. Scripts define
// update(engine, state); state persists between ticks.
const waveDispatchScript = `
update(__engine, __state)
`

type waveScript struct {
	path     string
	compiled *tengo.Compiled
	state    *tengo.Map
	// failed stops a broken script from logging every tick until reloaded.
	failed bool
}

func newWaveScript(path string) *waveScript {
	return &waveScript{
		path:  path,
		state: &tengo.Map{Value: map[string]tengo.Object{}},
	}
}

func (ws *waveScript) invalidate() {
	ws.compiled = nil
	ws.failed = false
}

func (ws *waveScript) compile() error {
	src, err := prefabs.LoadScript(ws.path)
	if err != nil {
		return err
	}

	script := tengo.NewScript([]byte(string(src) + "\n" + waveDispatchScript))
	_ = script.Add("__engine", map[string]any{})
	_ = script.Add("__state", map[string]any{})
	script.SetImports(stdlib.GetModuleMap(stdlib.AllModuleNames()...))

	compiled, err := script.Compile()
	if err != nil {
		return err
	}
	ws.compiled = compiled
	return nil
}

func (ws *waveScript) update(w *ecs.World, enc *EncounterSystem, playerX float64) {
	if ws.failed {
		return
	}
	if ws.compiled == nil {
		if err := ws.compile(); err != nil {
			ws.failed = true
			w.Logger().Error().Err(err).Str("script", ws.path).Msg("encounter: compile wave script")
			return
		}
	}

	engine := buildWaveEngine(w, enc, playerX)
	if err := ws.compiled.Set("__engine", engine); err != nil {
		ws.fail(w, err)
		return
	}
	if err := ws.compiled.Set("__state", ws.state); err != nil {
		ws.fail(w, err)
		return
	}
	if err := ws.compiled.Run(); err != nil {
		ws.fail(w, err)
	}
}

func (ws *waveScript) fail(w *ecs.World, err error) {
	ws.failed = true
	w.Logger().Error().Err(err).Str("script", ws.path).Msg("encounter: run wave script")
}

func buildWaveEngine(w *ecs.World, enc *EncounterSystem, playerX float64) *tengo.ImmutableMap {
	values := map[string]tengo.Object{}

	values["now"] = &tengo.UserFunction{Name: "now", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: w.Now().Seconds()}, nil
	}}

	values["player_x"] = &tengo.UserFunction{Name: "player_x", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Float{Value: playerX}, nil
	}}

	values["kills"] = &tengo.UserFunction{Name: "kills", Value: func(args ...tengo.Object) (tengo.Object, error) {
		return &tengo.Int{Value: int64(enc.kills)}, nil
	}}

	values["spawn"] = &tengo.UserFunction{Name: "spawn", Value: func(args ...tengo.Object) (tengo.Object, error) {
		if len(args) != 4 {
			return nil, tengo.ErrWrongNumArguments
		}
		kind := strings.TrimSpace(objectAsString(args[0]))
		var coords [3]float64
		for i := range coords {
			v, ok := tengo.ToFloat64(args[i+1])
			if !ok {
				return nil, tengo.ErrInvalidArgumentType{
					Name:     fmt.Sprintf("arg%d", i+2),
					Expected: "float",
					Found:    args[i+1].TypeName(),
				}
			}
			coords[i] = v
		}

		pos := common.Vec3{X: coords[0], Y: coords[1], Z: coords[2]}
		if _, err := enc.spawner.Spawn(w, kind, pos); err != nil {
			w.Logger().Warn().Err(err).Str("kind", kind).Msg("encounter: scripted spawn skipped")
			return tengo.FalseValue, nil
		}
		return tengo.TrueValue, nil
	}}

	values["log"] = &tengo.UserFunction{Name: "log", Value: func(args ...tengo.Object) (tengo.Object, error) {
		parts := make([]string, 0, len(args))
		for _, a := range args {
			parts = append(parts, objectAsString(a))
		}
		w.Logger().Info().Str("script", "wave").Msg(strings.Join(parts, " "))
		return tengo.UndefinedValue, nil
	}}

	return &tengo.ImmutableMap{Value: values}
}

func objectAsString(obj tengo.Object) string {
	if obj == nil {
		return ""
	}
	switch v := obj.(type) {
	case *tengo.String:
		return v.Value
	default:
		return strings.Trim(v.String(), "\"")
	}
}
