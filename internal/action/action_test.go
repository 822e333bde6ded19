package action

import (
	"errors"
	"terminal-rpg/internal/entity"
	"terminal-rpg/internal/menu"
	"testing"
)

func TestIsMetaTotal(t *testing.T) {
	meta := map[Action]bool{
		Quit: true, Restart: true, Restore: true, Save: true,
		NewGame: true, OpenMenu: true, CloseMenu: true, NavigateMenu: true,
	}
	for _, a := range All() {
		if got := IsMeta(a); got != meta[a] {
			t.Errorf("IsMeta(%v) = %v; want %v", a, got, meta[a])
		}
	}
}

func TestIsMetaPanicsOutsideEnumeration(t *testing.T) {
	defer func() {
		err, _ := recover().(error)
		if !errors.Is(err, ErrUnknownAction) {
			t.Fatalf("expected ErrUnknownAction panic, got %v", err)
		}
	}()
	IsMeta(Count)
}

func TestNamesRoundTrip(t *testing.T) {
	seen := map[string]Action{}
	for _, a := range All() {
		name := a.String()
		if name == "" {
			t.Fatalf("action %d has no name", a)
		}
		if prev, dup := seen[name]; dup {
			t.Fatalf("%v and %v share name %q", prev, a, name)
		}
		seen[name] = a
		got, err := Parse(name)
		if err != nil || got != a {
			t.Errorf("Parse(%q) = %v, %v; want %v", name, got, err, a)
		}
	}
	if _, err := Parse("dance"); !errors.Is(err, ErrUnknownAction) {
		t.Errorf("Parse(dance) err = %v; want ErrUnknownAction", err)
	}
}

func TestNounVariants(t *testing.T) {
	id := entity.Encode(entity.Object, 4)
	cases := []struct {
		noun Noun
		kind NounKind
	}{
		{Nothing, NounNothing},
		{Entity(id), NounEntity},
		{Literal("rope"), NounLiteral},
		{Menu(menu.Test), NounMenu},
		{Number(3), NounNumber},
	}
	for _, tc := range cases {
		t.Run(tc.kind.String(), func(t *testing.T) {
			if tc.noun.Kind() != tc.kind {
				t.Fatalf("Kind = %v; want %v", tc.noun.Kind(), tc.kind)
			}
			_, isEntity := tc.noun.Entity()
			_, isLiteral := tc.noun.Literal()
			_, isMenu := tc.noun.Menu()
			_, isNumber := tc.noun.Number()
			got := [...]bool{tc.noun.IsNothing(), isEntity, isLiteral, isMenu, isNumber}
			for k, ok := range got {
				if ok != (NounKind(k) == tc.kind) {
					t.Errorf("accessor %v reports %v", NounKind(k), ok)
				}
			}
		})
	}
	if got, _ := Entity(id).Entity(); got != id {
		t.Errorf("Entity payload = %v; want %v", got, id)
	}
}

func TestQueueFIFO(t *testing.T) {
	q := NewQueue()
	if _, ok := q.Pop(); ok {
		t.Fatal("Pop on empty queue reported a request")
	}
	for i := 0; i < 40; i++ {
		q.Push(Request{Action: Go, Noun: Number(int64(i))})
	}
	if q.Len() != 40 {
		t.Fatalf("Len = %d; want 40", q.Len())
	}
	for i := 0; i < 40; i++ {
		r, ok := q.Pop()
		if !ok {
			t.Fatalf("Pop %d failed", i)
		}
		if n, _ := r.Noun.Number(); n != int64(i) {
			t.Fatalf("Pop %d returned request %d", i, n)
		}
	}
	if q.Len() != 0 {
		t.Fatalf("queue not drained, Len = %d", q.Len())
	}
}
