package rules

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/entity"

	lua "github.com/yuin/gopher-lua"
	"go.uber.org/zap"
)

// Hook stages as named in scripts.
const (
	stageBefore      = "before"
	stageAfter       = "after"
	stageReactBefore = "react_before"
	stageReactAfter  = "react_after"
)

// anyAction registers a hook for every action.
const anyAction = "*"

// LuaActor runs hooks registered by Lua scripts. Scripts call
// on_before(action, fn), on_after, on_react_before and on_react_after; fn
// receives a table {action, actor, noun, second, self} and returns true when
// it handled the action. Entity ids are passed as strings such as
// "character#0", or as the sentinel name when Names resolves one.
//
// Single-goroutine access only.
type LuaActor struct {
	vm    *lua.LState
	log   *zap.Logger
	hooks map[string]map[string][]*lua.LFunction

	// Say receives text from the say() script function.
	Say func(text string)
	// Names optionally maps sentinel ids to readable names.
	Names func(entity.ID) (string, bool)
}

// NewLuaActor creates a VM and loads every .lua file in dir. A missing
// directory loads nothing.
func NewLuaActor(dir string, log *zap.Logger) (*LuaActor, error) {
	a := &LuaActor{
		vm:  lua.NewState(),
		log: log,
		hooks: map[string]map[string][]*lua.LFunction{
			stageBefore:      {},
			stageAfter:       {},
			stageReactBefore: {},
			stageReactAfter:  {},
		},
	}
	a.vm.SetGlobal("API_VERSION", lua.LNumber(1))
	for stage := range a.hooks {
		a.vm.SetGlobal("on_"+stage, a.vm.NewFunction(a.register(stage)))
	}
	a.vm.SetGlobal("say", a.vm.NewFunction(a.say))
	a.vm.SetGlobal("category", a.vm.NewFunction(luaCategory))

	if err := a.loadDir(dir); err != nil {
		a.vm.Close()
		return nil, fmt.Errorf("load rule scripts: %w", err)
	}
	return a, nil
}

// LoadString runs a script chunk, for tests and inline rules.
func (a *LuaActor) LoadString(src string) error {
	return a.vm.DoString(src)
}

func (a *LuaActor) loadDir(dir string) error {
	if dir == "" {
		return nil
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}
	for _, entry := range entries {
		if entry.IsDir() || filepath.Ext(entry.Name()) != ".lua" {
			continue
		}
		path := filepath.Join(dir, entry.Name())
		if err := a.vm.DoFile(path); err != nil {
			return fmt.Errorf("load %s: %w", path, err)
		}
		a.log.Debug("loaded rule script", zap.String("file", path))
	}
	return nil
}

func (a *LuaActor) register(stage string) lua.LGFunction {
	return func(L *lua.LState) int {
		name := L.CheckString(1)
		fn := L.CheckFunction(2)
		if name != anyAction {
			if _, err := action.Parse(name); err != nil {
				L.ArgError(1, err.Error())
				return 0
			}
		}
		a.hooks[stage][name] = append(a.hooks[stage][name], fn)
		return 0
	}
}

func (a *LuaActor) say(L *lua.LState) int {
	text := L.CheckString(1)
	if a.Say != nil {
		a.Say(text)
	}
	return 0
}

// luaCategory returns the category part of an id string, or the empty string
// for sentinel names and other values.
func luaCategory(L *lua.LState) int {
	s := L.CheckString(1)
	if c, _, ok := strings.Cut(s, "#"); ok {
		L.Push(lua.LString(c))
		return 1
	}
	L.Push(lua.LString(""))
	return 1
}

func (a *LuaActor) Before(ctx Context) bool      { return a.run(stageBefore, ctx) }
func (a *LuaActor) After(ctx Context) bool       { return a.run(stageAfter, ctx) }
func (a *LuaActor) ReactBefore(ctx Context) bool { return a.run(stageReactBefore, ctx) }
func (a *LuaActor) ReactAfter(ctx Context) bool  { return a.run(stageReactAfter, ctx) }

// run calls the hooks for the action, then the catch-all hooks. A script
// error is logged and counts as not handled.
func (a *LuaActor) run(stage string, ctx Context) bool {
	byAction := a.hooks[stage]
	fns := append(append([]*lua.LFunction(nil), byAction[ctx.Action.String()]...), byAction[anyAction]...)
	if len(fns) == 0 {
		return false
	}
	t := a.table(ctx)
	for _, fn := range fns {
		if err := a.vm.CallByParam(lua.P{
			Fn:      fn,
			NRet:    1,
			Protect: true,
		}, t); err != nil {
			a.log.Error("lua rule hook error",
				zap.String("stage", stage),
				zap.Stringer("action", ctx.Action),
				zap.Error(err))
			continue
		}
		result := a.vm.Get(-1)
		a.vm.Pop(1)
		if lua.LVAsBool(result) {
			return true
		}
	}
	return false
}

func (a *LuaActor) table(ctx Context) *lua.LTable {
	t := a.vm.NewTable()
	t.RawSetString("action", lua.LString(ctx.Action.String()))
	t.RawSetString("actor", a.id(ctx.Actor))
	t.RawSetString("noun", a.noun(ctx.Noun))
	t.RawSetString("second", a.noun(ctx.Second))
	t.RawSetString("self", a.id(ctx.Self))
	return t
}

func (a *LuaActor) id(id entity.ID) lua.LValue {
	if a.Names != nil {
		if name, ok := a.Names(id); ok {
			return lua.LString(name)
		}
	}
	return lua.LString(id.String())
}

func (a *LuaActor) noun(n action.Noun) lua.LValue {
	switch n.Kind() {
	case action.NounEntity:
		id, _ := n.Entity()
		return a.id(id)
	case action.NounLiteral:
		s, _ := n.Literal()
		return lua.LString(s)
	case action.NounMenu:
		m, _ := n.Menu()
		return lua.LString("menu:" + m.String())
	case action.NounNumber:
		v, _ := n.Number()
		return lua.LNumber(v)
	}
	return lua.LNil
}

// Close shuts down the VM.
func (a *LuaActor) Close() {
	a.vm.Close()
}
