package menu

// Focus is a bounded cursor over size slots.
type Focus struct {
	index int
	size  int
	wrap  bool
}

// NewFocus creates a focus at slot 0. With wrap set, moving past either end
// jumps to the other end; otherwise the cursor stops.
func NewFocus(size int, wrap bool) Focus {
	return Focus{size: size, wrap: wrap}
}

func (f *Focus) Index() int { return f.index }
func (f *Focus) Size() int  { return f.size }

func (f *Focus) Up() {
	if f.size == 0 {
		return
	}
	switch {
	case f.index > 0:
		f.index--
	case f.wrap:
		f.index = f.size - 1
	}
}

func (f *Focus) Down() {
	if f.size == 0 {
		return
	}
	switch {
	case f.index < f.size-1:
		f.index++
	case f.wrap:
		f.index = 0
	}
}

// Set moves the cursor to i, clamped to the valid range.
func (f *Focus) Set(i int) {
	if f.size == 0 {
		f.index = 0
		return
	}
	f.index = max(0, min(i, f.size-1))
}
