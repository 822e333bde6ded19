package entity

import (
	"errors"
	"testing"
)

func TestEncodeDecodeRoundTrip(t *testing.T) {
	cases := []struct {
		name string
		cat  Category
		seq  uint64
	}{
		{"character zero", Character, 0},
		{"meta small", Meta, 7},
		{"monster large", Monster, 1 << 40},
		{"object max", Object, MaxSequence},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			id := Encode(tc.cat, tc.seq)
			if got := CategoryOf(id); got != tc.cat {
				t.Errorf("CategoryOf = %v; want %v", got, tc.cat)
			}
			if got := Sequence(id); got != tc.seq {
				t.Errorf("Sequence = %d; want %d", got, tc.seq)
			}
		})
	}
}

func TestCategoriesDoNotCollide(t *testing.T) {
	seen := make(map[ID]Category)
	for _, c := range Categories {
		id := Encode(c, 3)
		if prev, ok := seen[id]; ok {
			t.Fatalf("%v and %v encode to the same id %d", prev, c, id)
		}
		seen[id] = c
	}
}

func TestEncodeOverflowPanics(t *testing.T) {
	defer func() {
		r := recover()
		err, ok := r.(error)
		if !ok || !errors.Is(err, ErrSequenceOverflow) {
			t.Fatalf("expected ErrSequenceOverflow panic, got %v", r)
		}
	}()
	Encode(Monster, MaxSequence+1)
}

func TestIDString(t *testing.T) {
	if got := Encode(Object, 12).String(); got != "object#12" {
		t.Errorf("String() = %q; want %q", got, "object#12")
	}
}
