package fsm

import "testing"

func TestSetStateEqualityIsOrderIndependent(t *testing.T) {
	a := newSetState(newSet(1, 2, 3))
	b := newSetState(newSet(3, 1, 2))
	if a != b {
		t.Fatalf("expected order-independent sets to produce equal SetStates, got %v != %v", a, b)
	}

	set := map[SetState[int]]struct{}{}
	set[a] = struct{}{}
	if _, ok := set[b]; !ok {
		t.Fatal("expected b to hash identically to a in a Go map")
	}
}

func TestSetStateDistinctBackingSetsDiffer(t *testing.T) {
	a := newSetState(newSet(1, 2))
	b := newSetState(newSet(1, 2, 3))
	if a == b {
		t.Fatal("expected distinct backing sets to produce distinct SetStates")
	}
}

func TestSetStateRegistryRecoversMembers(t *testing.T) {
	reg := newSetStateRegistry[int]()
	ss := reg.register(newSet(1, 2, 3))
	members := reg.Members(ss)
	if len(members) != 3 {
		t.Fatalf("expected 3 members, got %d: %v", len(members), members)
	}
	got := newSet(members...)
	for _, want := range []int{1, 2, 3} {
		if _, ok := got[want]; !ok {
			t.Errorf("missing member %d in %v", want, members)
		}
	}
}
