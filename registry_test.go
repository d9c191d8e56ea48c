package tween

import (
	"slices"
	"testing"
)

func TestRegistryGroupWithTag(t *testing.T) {
	reg := NewRegistry()
	a := reg.GroupWithTag("a")

	if reg.GroupWithTag("a") != a {
		t.Error("same tag should return the same group")
	}
	if a.Name() != "a" {
		t.Errorf("name = %q, want a", a.Name())
	}
	if reg.GroupWithTag(DefaultGroupTag) != reg.DefaultGroup() {
		t.Error("reserved tag should return the default group")
	}
}

func TestRegistryTaggedGroupPruned(t *testing.T) {
	reg := NewRegistry()
	old := reg.GroupWithTag("once")
	reg.NewWithTag(10, "once").Start()

	reg.Update(10)

	if _, ok := reg.Lookup("once"); ok {
		t.Fatal("completed tagged group should leave the registry")
	}
	if slices.Contains(reg.Tags(), "once") {
		t.Error("pruned tag still listed")
	}

	fresh := reg.GroupWithTag("once")
	if fresh == old {
		t.Error("lookup after pruning should create a new group")
	}
}

func TestRegistryDefaultGroupNeverPruned(t *testing.T) {
	reg := NewRegistry()
	def := reg.DefaultGroup()
	fired := 0
	def.OnComplete(func() { fired++ })

	reg.New(10).Start()
	reg.Update(10)

	if fired != 1 {
		t.Errorf("default group completion fired %d times, want 1", fired)
	}
	if g, ok := reg.Lookup(DefaultGroupTag); !ok || g != def {
		t.Error("default group must stay registered after completing")
	}
	if reg.DefaultGroup() != def {
		t.Error("default group must not be recreated")
	}
}

func TestRegistryTagsOrder(t *testing.T) {
	reg := NewRegistry()
	reg.GroupWithTag("b")
	reg.DefaultGroup()
	reg.GroupWithTag("a")

	if got, want := reg.Tags(), []string{"b", DefaultGroupTag, "a"}; !slices.Equal(got, want) {
		t.Errorf("tags = %v, want %v", got, want)
	}
}

func TestRegistryUpdatesGroupsInOrder(t *testing.T) {
	reg := NewRegistry()
	var order []string
	for _, tag := range []string{"first", "second", "third"} {
		reg.NewWithTag(100, tag).OnUpdate(func(float64, Target) { order = append(order, tag) }).Start()
	}

	reg.Update(1)
	if want := []string{"first", "second", "third"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v", order, want)
	}
}

func TestRegistryPrunedGroupFinishesPass(t *testing.T) {
	reg := NewRegistry()
	var order []string

	reg.NewWithTag(10, "short").OnUpdate(func(float64, Target) { order = append(order, "short") }).Start()
	reg.NewWithTag(100, "long").OnUpdate(func(float64, Target) { order = append(order, "long") }).Start()

	reg.Update(10)
	if want := []string{"short", "long"}; !slices.Equal(order, want) {
		t.Errorf("order = %v, want %v: pruning must not skip the next group", order, want)
	}
}

func TestRegistriesAreIsolated(t *testing.T) {
	one := NewRegistry()
	two := NewRegistry()
	a := Props{"x": 0}
	b := Props{"x": 0}

	one.New(100).From(a).To(Values{"x": Number(100)}).Start()
	two.New(100).From(b).To(Values{"x": Number(100)}).Start()

	one.Update(50)
	if a["x"] != 50 || b["x"] != 0 {
		t.Errorf("a=%f b=%f, want 50 and 0", a["x"], b["x"])
	}
	if one.GroupWithTag("shared") == two.GroupWithTag("shared") {
		t.Error("registries must not share groups")
	}
}

func TestNewWithGroupNilUsesDefault(t *testing.T) {
	reg := NewRegistry()
	if tw := reg.NewWithGroup(1, nil); tw.Group() != reg.DefaultGroup() {
		t.Error("nil group should mean the default group")
	}
}

func TestPackageLevelRegistry(t *testing.T) {
	obj := Props{"x": 0}
	tw := NewWithTag(100, "pkg-level-test").From(obj).To(Values{"x": Number(10)}).Start()

	if tw.Group() != GroupWithTag("pkg-level-test") {
		t.Error("package-level NewWithTag should use the default registry")
	}
	if g := NewWithGroup(1, nil).Group(); g != DefaultGroup() || g != Default().DefaultGroup() {
		t.Error("package-level default group mismatch")
	}

	Update(100)
	if obj["x"] != 10 {
		t.Errorf("x = %f, want 10", obj["x"])
	}
	if _, ok := Default().Lookup("pkg-level-test"); ok {
		t.Error("completed group should be pruned from the default registry")
	}
}
