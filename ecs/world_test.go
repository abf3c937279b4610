package ecs

import (
	"testing"

	"github.com/milk9111/folio/ecs/component"
)

func intPtr(i int) *int {
	return &i
}

func stringPtr(s string) *string {
	return &s
}

func TestDestroyEntity(t *testing.T) {
	tests := []struct {
		name      string
		create    int
		destroy   []int
		wantAlive int
	}{
		{name: "single", create: 1, destroy: []int{0}, wantAlive: 0},
		{name: "middle_of_three", create: 3, destroy: []int{1}, wantAlive: 2},
		{name: "twice", create: 2, destroy: []int{0, 0}, wantAlive: 1},
		{name: "none", create: 2, wantAlive: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := NewWorld()
			h := component.NewComponent[int]()
			ents := make([]Entity, tt.create)
			for i := range ents {
				ents[i] = CreateEntity(w)
				if err := Add(w, ents[i], h.Kind(), intPtr(i)); err != nil {
					t.Fatal(err)
				}
			}

			destroyed := map[int]bool{}
			for _, i := range tt.destroy {
				got := DestroyEntity(w, ents[i])
				if got == destroyed[i] {
					t.Fatalf("DestroyEntity(%d) = %v on second call %v", i, got, destroyed[i])
				}
				destroyed[i] = true
				if IsAlive(w, ents[i]) {
					t.Fatalf("entity %d still alive", i)
				}
				if Has(w, ents[i], h.Kind()) {
					t.Fatalf("entity %d kept its component", i)
				}
			}

			if n := len(Entities(w)); n != tt.wantAlive {
				t.Fatalf("Entities = %d, want %d", n, tt.wantAlive)
			}
			if n := len(w.Query(h.Kind())); n != tt.wantAlive {
				t.Fatalf("Query = %d, want %d", n, tt.wantAlive)
			}
		})
	}
}

func TestAddReplacesValue(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()
	e := CreateEntity(w)

	for _, v := range []string{"hero", "title"} {
		if err := Add(w, e, h.Kind(), stringPtr(v)); err != nil {
			t.Fatal(err)
		}
	}
	got, ok := Get(w, e, h.Kind())
	if !ok || *got != "title" {
		t.Fatalf("Get = %v %v, want title", got, ok)
	}
	if n := len(w.Query(h.Kind())); n != 1 {
		t.Fatalf("replacing a value must not duplicate the entity, got %d", n)
	}
}

func TestForEachVisitsCarriers(t *testing.T) {
	w := NewWorld()
	ints := component.NewComponent[int]()
	strs := component.NewComponent[string]()

	a := CreateEntity(w)
	b := CreateEntity(w)
	c := CreateEntity(w)
	gone := CreateEntity(w)
	for _, e := range []Entity{a, c, gone} {
		if err := Add(w, e, ints.Kind(), intPtr(int(e.id()))); err != nil {
			t.Fatal(err)
		}
	}
	for _, e := range []Entity{b, c, gone} {
		if err := Add(w, e, strs.Kind(), stringPtr(e.String())); err != nil {
			t.Fatal(err)
		}
	}
	DestroyEntity(w, gone)

	var one []Entity
	ForEach(w, ints.Kind(), func(e Entity, v *int) {
		if *v != int(e.id()) {
			t.Fatalf("entity %v got value %d", e, *v)
		}
		one = append(one, e)
	})
	if len(one) != 2 || one[0] != a || one[1] != c {
		t.Fatalf("ForEach = %v, want [%v %v]", one, a, c)
	}

	var both []Entity
	ForEach2(w, ints.Kind(), strs.Kind(), func(e Entity, _ *int, s *string) {
		if *s != e.String() {
			t.Fatalf("entity %v got label %q", e, *s)
		}
		both = append(both, e)
	})
	if len(both) != 1 || both[0] != c {
		t.Fatalf("ForEach2 = %v, want [%v]", both, c)
	}

	if got := w.Query(ints.Kind(), component.NewComponent[float64]().Kind()); got != nil {
		t.Fatalf("query with an empty store = %v, want nil", got)
	}
}

func TestStaleHandleAfterSlotReuse(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[int]()

	old := CreateEntity(w)
	if err := Add(w, old, h.Kind(), intPtr(1)); err != nil {
		t.Fatal(err)
	}
	DestroyEntity(w, old)

	reused := CreateEntity(w)
	if reused.id() != old.id() {
		t.Fatalf("expected slot %d to be reused, got %d", old.id(), reused.id())
	}
	if reused == old {
		t.Fatalf("reused handle must differ from the stale one")
	}
	if _, ok := Get(w, old, h.Kind()); ok {
		t.Fatalf("stale handle must not see components")
	}
	if _, ok := Get(w, reused, h.Kind()); ok {
		t.Fatalf("destroyed entity's components leaked into the reused slot")
	}
	if err := Add(w, old, h.Kind(), intPtr(2)); err != component.ErrEntityNotAlive {
		t.Fatalf("Add on stale handle = %v, want ErrEntityNotAlive", err)
	}
}

func TestAddRejectsBadInput(t *testing.T) {
	w := NewWorld()
	e := CreateEntity(w)

	tests := []struct {
		name string
		add  func() error
		want error
	}{
		{name: "nil_value", add: func() error { return Add[int](w, e, component.NewComponent[int]().Kind(), nil) }, want: component.ErrNilComponent},
		{name: "zero_kind", add: func() error { return Add(w, e, component.ComponentKind[int]{}, intPtr(1)) }, want: component.ErrInvalidComponentKind},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if err := tc.add(); err != tc.want {
				t.Fatalf("got %v, want %v", err, tc.want)
			}
		})
	}
}

func TestQueryOrderAndSingle(t *testing.T) {
	w := NewWorld()
	h := component.NewComponent[string]()

	ents := make([]Entity, 4)
	for i := range ents {
		ents[i] = CreateEntity(w)
	}
	// insert out of slot order
	for _, i := range []int{3, 1, 2} {
		if err := Add(w, ents[i], h.Kind(), stringPtr(string(rune('a'+i)))); err != nil {
			t.Fatal(err)
		}
	}

	got := w.Query(h.Kind())
	want := []Entity{ents[1], ents[2], ents[3]}
	if len(got) != len(want) {
		t.Fatalf("query = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("query = %v, want %v", got, want)
		}
	}

	v, ok := Single(w, h.Kind())
	if !ok || *v != "b" {
		t.Fatalf("Single = %v %v, want b", v, ok)
	}

	if _, ok := Single(w, component.NewComponent[float64]().Kind()); ok {
		t.Fatalf("Single on an empty kind should fail")
	}
}

type countingSystem struct {
	updates int
	seen    int
}

func (c *countingSystem) Update(w *World) {
	c.updates++
	c.seen += len(w.Events().Peek())
	w.Events().Push(Event{Type: EventHoverEnter})
}

func TestSchedulerFlushesEventsEachTick(t *testing.T) {
	w := NewWorld()
	first := &countingSystem{}
	second := &countingSystem{}
	s := NewScheduler(first, nil, second)

	s.Update(w)
	s.Update(w)

	if first.updates != 2 || second.updates != 2 {
		t.Fatalf("updates = %d, %d", first.updates, second.updates)
	}
	// first never sees events, second sees the one pushed by first this tick
	if first.seen != 0 || second.seen != 2 {
		t.Fatalf("seen = %d, %d, want 0, 2", first.seen, second.seen)
	}
	if len(w.Events().Peek()) != 0 {
		t.Fatalf("events survived the tick")
	}
}
