/*
Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package clustertest is a reference cluster.Ops implementation for this
// module's own tests, in the style of the teacher's cloudprovider/fake
// package: small, deterministic stand-ins for the real scoring and
// action-building machinery this core treats as external.
package clustertest

import (
	"sync"

	"github.com/samber/lo"

	"github.com/clusterkit/rscsched/pkg/cluster"
)

// AlwaysAvailable is an Availability that is always available,
// regardless of include_standby/include_unclean.
type AlwaysAvailable struct{}

func (AlwaysAvailable) Available(_, _ bool) bool { return true }

// Unavailable is an Availability that is never available.
type Unavailable struct{}

func (Unavailable) Available(_, _ bool) bool { return false }

// FakeOps is a minimal, deterministic cluster.Ops: Assign picks the
// highest-scoring eligible node (ties broken by node id); the rest of
// the scoring/action-building machinery this core treats as external is
// stubbed to the simplest behavior that satisfies the data model's
// invariants.
type FakeOps struct {
	mu sync.Mutex

	// Locations overrides Location's answer for an instance id, keyed
	// by (instanceID, current) - current=true asks for live state,
	// false asks for this pass's assignment. Tests that need the
	// running-location and assigned-location to differ set both.
	Locations map[cluster.ResourceID]map[bool]cluster.NodeID
	// States overrides State's answer for an instance id.
	States map[cluster.ResourceID]string
	// Influence, if non-nil, is consulted by HasInfluence; defaults to
	// always true.
	Influence func(c *cluster.Colocation, child *cluster.Resource) bool
}

// NewFakeOps returns a FakeOps ready to use.
func NewFakeOps() *FakeOps {
	return &FakeOps{
		Locations: map[cluster.ResourceID]map[bool]cluster.NodeID{},
		States:    map[cluster.ResourceID]string{},
	}
}

func (f *FakeOps) Assign(instance *cluster.Resource, prefer cluster.NodeID) cluster.NodeID {
	f.mu.Lock()
	defer f.mu.Unlock()

	if prefer != "" {
		n, ok := instance.AllowedNodes[prefer]
		if !ok || n.Score < 0 {
			return ""
		}
		f.commit(instance, prefer)
		return prefer
	}

	best := lo.Values(instance.AllowedNodes)
	best = lo.Filter(best, func(n *cluster.Node, _ int) bool { return n.Available(false, false) && n.Score >= 0 })
	if len(best) == 0 {
		return ""
	}
	sorted := cluster.SortNodes(best, f.CompareNodes)
	chosen := sorted[len(sorted)-1].ID
	f.commit(instance, chosen)
	return chosen
}

func (f *FakeOps) commit(instance *cluster.Resource, node cluster.NodeID) {
	instance.AssignedNode = node
	instance.Flags = instance.Flags.Clear(cluster.ResourceProvisional)
	f.setLocation(instance, false, node)
}

func (f *FakeOps) AssignResource(instance *cluster.Resource, node cluster.NodeID, _ bool) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	instance.AssignedNode = node
	if node == "" {
		instance.Flags = instance.Flags.Set(cluster.ResourceProvisional)
	} else {
		instance.Flags = instance.Flags.Clear(cluster.ResourceProvisional)
	}
	f.setLocation(instance, false, node)
	return true
}

func (f *FakeOps) UnassignResource(instance *cluster.Resource, _ bool) bool {
	return f.AssignResource(instance, "", true)
}

func (f *FakeOps) CreateActions(instance *cluster.Resource) {
	if len(instance.Actions) > 0 {
		return
	}
	start := cluster.NewAction("start", instance, instance.AssignedNode, cluster.ActionRunnable)
	stop := cluster.NewAction("stop", instance, instance.AssignedNode, cluster.ActionRunnable)
	instance.Actions = append(instance.Actions, start, stop)
}

func (f *FakeOps) ActionFlags(instance *cluster.Resource, name string, node cluster.NodeID) (cluster.ActionFlag, bool) {
	a := cluster.FindFirstAction(instance, name, node)
	if a == nil {
		return 0, false
	}
	return a.Flags, true
}

func (f *FakeOps) UpdateOrderedActions(instance *cluster.Resource, task string, node cluster.NodeID, firstFlags, filter cluster.ActionFlag, kind cluster.OrderKind) cluster.UpdatedBits {
	a := cluster.FindFirstAction(instance, task, node)
	if a == nil {
		return 0
	}
	var updated cluster.UpdatedBits
	if kind.HasAny(cluster.OrderRunnableLeft) && !firstFlags.Has(cluster.ActionRunnable) && a.Flags.Has(cluster.ActionRunnable) {
		a.Flags = a.Flags.Clear(cluster.ActionRunnable)
		updated = updated.Set(cluster.UpdatedThen)
	}
	return updated
}

func (f *FakeOps) State(instance *cluster.Resource, current bool) string {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.States[instance.ID]; ok {
		return s
	}
	return ""
}

func (f *FakeOps) Location(instance *cluster.Resource, current bool) cluster.NodeID {
	f.mu.Lock()
	defer f.mu.Unlock()
	if byCurrent, ok := f.Locations[instance.ID]; ok {
		if loc, ok := byCurrent[current]; ok {
			return loc
		}
	}
	if current {
		return instance.Running
	}
	if instance.IsProvisional() {
		return ""
	}
	return instance.AssignedNode
}

func (f *FakeOps) setLocation(instance *cluster.Resource, current bool, node cluster.NodeID) {
	if _, ok := f.Locations[instance.ID]; !ok {
		f.Locations[instance.ID] = map[bool]cluster.NodeID{}
	}
	f.Locations[instance.ID][current] = node
}

func (f *FakeOps) HasInfluence(c *cluster.Colocation, child *cluster.Resource) bool {
	if f.Influence != nil {
		return f.Influence(c, child)
	}
	return true
}

func (f *FakeOps) CompareNodes(a, b *cluster.Node) int {
	switch {
	case a.Score < b.Score:
		return -1
	case a.Score > b.Score:
		return 1
	case a.ID < b.ID:
		return -1
	case a.ID > b.ID:
		return 1
	default:
		return 0
	}
}

var _ cluster.Ops = (*FakeOps)(nil)
