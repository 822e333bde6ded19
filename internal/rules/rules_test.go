package rules

import (
	"os"
	"path/filepath"
	"terminal-rpg/internal/action"
	"terminal-rpg/internal/entity"
	"testing"

	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

// countingActor records how often each hook ran and answers with handled.
type countingActor struct {
	handled bool
	calls   int
}

func (c *countingActor) Before(Context) bool      { c.calls++; return c.handled }
func (c *countingActor) After(Context) bool       { c.calls++; return c.handled }
func (c *countingActor) ReactBefore(Context) bool { c.calls++; return c.handled }
func (c *countingActor) ReactAfter(Context) bool  { c.calls++; return c.handled }

func TestBookPrecedence(t *testing.T) {
	b := NewBook()
	player := entity.Encode(entity.Character, 0)
	other := entity.Encode(entity.Character, 1)
	rock := entity.Encode(entity.Object, 0)

	if _, ok := b.Actor(rock).(NoOp); !ok {
		t.Fatalf("unbound entity should resolve to NoOp, got %T", b.Actor(rock))
	}

	cat := &countingActor{}
	own := &countingActor{}
	b.BindCategory(entity.Character, cat)
	b.Bind(player, own)

	if b.Actor(player) != own {
		t.Error("per-entity binding should win")
	}
	if b.Actor(other) != cat {
		t.Error("category default should apply to unbound character")
	}
	b.Unbind(player)
	if b.Actor(player) != cat {
		t.Error("Unbind should fall back to category default")
	}

	fb := &countingActor{}
	b.SetFallback(fb)
	if b.Actor(rock) != fb {
		t.Error("fallback should apply to objects")
	}
	b.SetFallback(nil)
	if _, ok := b.Actor(rock).(NoOp); !ok {
		t.Error("SetFallback(nil) should restore NoOp")
	}
}

func TestChainStopsAtFirstHandler(t *testing.T) {
	first := &countingActor{}
	second := &countingActor{handled: true}
	third := &countingActor{}
	c := Chain{first, second, third}

	if !c.Before(Context{}) {
		t.Fatal("chain should report handled")
	}
	if first.calls != 1 || second.calls != 1 || third.calls != 0 {
		t.Fatalf("calls = %d/%d/%d; want 1/1/0", first.calls, second.calls, third.calls)
	}
}

func newLua(t *testing.T, src string) (*LuaActor, *[]string) {
	t.Helper()
	a, err := NewLuaActor("", zap.NewNop())
	if err != nil {
		t.Fatalf("NewLuaActor: %v", err)
	}
	t.Cleanup(a.Close)
	var said []string
	a.Say = func(s string) { said = append(said, s) }
	if err := a.LoadString(src); err != nil {
		t.Fatalf("LoadString: %v", err)
	}
	return a, &said
}

func TestLuaHooksByAction(t *testing.T) {
	a, said := newLua(t, `
		on_before("take", function(ctx)
			say("taking " .. ctx.noun)
			return ctx.noun == "object#2"
		end)
	`)
	ctx := Context{Action: action.Take, Noun: action.Entity(entity.Encode(entity.Object, 2))}
	if !a.Before(ctx) {
		t.Error("hook should handle object#2")
	}
	ctx.Noun = action.Entity(entity.Encode(entity.Object, 3))
	if a.Before(ctx) {
		t.Error("hook should not handle object#3")
	}
	if a.After(ctx) {
		t.Error("no after hook registered")
	}
	if a.Before(Context{Action: action.Drop}) {
		t.Error("take hook must not fire for drop")
	}
	if len(*said) != 2 || (*said)[0] != "taking object#2" {
		t.Errorf("said = %q", *said)
	}
}

func TestLuaCatchAllAndNames(t *testing.T) {
	a, _ := newLua(t, `
		on_react_after("*", function(ctx)
			return ctx.self == "world" and category(ctx.actor) == "character"
		end)
	`)
	world := entity.Encode(entity.Meta, 12)
	a.Names = func(id entity.ID) (string, bool) {
		if id == world {
			return "world", true
		}
		return "", false
	}
	ctx := Context{Action: action.Wave, Actor: entity.Encode(entity.Character, 0), Self: world}
	if !a.ReactAfter(ctx) {
		t.Error("catch-all hook should see the world sentinel by name")
	}
	ctx.Actor = entity.Encode(entity.Monster, 0)
	if a.ReactAfter(ctx) {
		t.Error("monster actor should not be handled")
	}
}

func TestLuaScriptErrorIsNotHandled(t *testing.T) {
	a, _ := newLua(t, `on_before("eat", function(ctx) error("boom") end)`)
	if a.Before(Context{Action: action.Eat}) {
		t.Error("erroring hook should count as not handled")
	}
}

func TestLuaRejectsUnknownAction(t *testing.T) {
	a, err := NewLuaActor("", zap.NewNop())
	if err != nil {
		t.Fatal(err)
	}
	defer a.Close()
	if err := a.LoadString(`on_before("dance", function() return true end)`); err == nil {
		t.Error("registering an unknown action should fail")
	}
}

func TestNewLuaActorLoadsDirectory(t *testing.T) {
	dir := t.TempDir()
	src := `on_before("pray", function(ctx) say("amen") return true end)`
	if err := os.WriteFile(filepath.Join(dir, "pray.lua"), []byte(src), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("not lua"), 0o644); err != nil {
		t.Fatal(err)
	}
	a, err := NewLuaActor(dir, zap.NewNop())
	if err != nil {
		t.Fatalf("NewLuaActor: %v", err)
	}
	defer a.Close()
	if !a.Before(Context{Action: action.Pray}) {
		t.Error("directory script not loaded")
	}
}

func TestNewLuaActorReportsBadScript(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "bad.lua"), []byte("this is not lua"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := NewLuaActor(dir, zap.NewNop()); err == nil {
		t.Fatal("expected load error")
	}
}

func TestShippedScriptsLoad(t *testing.T) {
	a, err := NewLuaActor(filepath.Join("..", "..", "scripts", "rules"), zap.NewNop())
	if err != nil {
		t.Fatalf("shipped scripts: %v", err)
	}
	defer a.Close()
	var said []string
	a.Say = func(s string) { said = append(said, s) }
	ctx := Context{Action: action.Attack, Noun: action.Entity(entity.Encode(entity.Character, 1))}
	if !a.Before(ctx) || len(said) != 1 {
		t.Fatalf("attack on a character should be refused, said=%q", said)
	}
}

func TestTraceInChainLogsAndPassesOn(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	inner := &countingActor{handled: true}
	c := Chain{NewTrace(zap.New(core)), inner}

	ctx := Context{Action: action.Sing, Actor: entity.Encode(entity.Character, 0), Self: entity.Encode(entity.Meta, 12)}
	if !c.ReactBefore(ctx) {
		t.Fatal("the actor after the trace should still handle the action")
	}
	if inner.calls != 1 {
		t.Fatalf("inner actor called %d times; want 1", inner.calls)
	}
	entries := logs.FilterMessage("hook").All()
	if len(entries) != 1 {
		t.Fatalf("logged %d hook entries; want 1", len(entries))
	}
	if got := entries[0].ContextMap()["stage"]; got != "react_before" {
		t.Errorf("stage = %v; want react_before", got)
	}
}
