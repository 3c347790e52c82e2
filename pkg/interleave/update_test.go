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

package interleave

import (
	"context"
	"testing"

	"github.com/clusterkit/rscsched/pkg/cluster"
	"github.com/clusterkit/rscsched/pkg/clustertest"
)

// buildInterleavedClones sets up two interleaved clones A and B, each
// with one instance on n1 and one on n2, with a runnable "start" action
// on every instance (node left unset, since these are plain clone
// instances rather than bundle containers - spec section 4.9.3).
func buildInterleavedClones() (a, b *cluster.Resource, a1, a2, b1, b2 *cluster.Resource) {
	mkInstance := func(id cluster.ResourceID, node cluster.NodeID) *cluster.Resource {
		inst := cluster.NewResource(id, cluster.KindClone, nil)
		inst.AssignedNode = node
		inst.Flags = inst.Flags.Set(cluster.ResourceManaged)
		inst.Actions = append(inst.Actions, cluster.NewAction("start", inst, "", cluster.ActionRunnable))
		return inst
	}

	a1 = mkInstance("a1", "n1")
	a2 = mkInstance("a2", "n2")
	a = clustertest.NewCollective("A", cluster.KindClone, a1, a2)

	b1 = mkInstance("b1", "n1")
	b2 = mkInstance("b2", "n2")
	b = clustertest.NewCollective("B", cluster.KindClone, b1, b2)

	return a, b, a1, a2, b1, b2
}

func startAction(r *cluster.Resource) *cluster.Action {
	return cluster.FindFirstAction(r, "start", "")
}

// TestInterleaveMatchPairsByNode is scenario S4: clones A and B both
// interleave, each with instances on n1 and n2. Ordering start A -> start
// B installs per-instance orderings paired by node, never cross-node.
func TestInterleaveMatchPairsByNode(t *testing.T) {
	ctx := context.Background()
	ops := clustertest.NewFakeOps()

	a, b, a1, a2, b1, b2 := buildInterleavedClones()
	b.Meta["interleave"] = "true" // governing resource for a "start" then-task is B

	first := cluster.NewRscPseudoAction(a, "start", false)
	then := cluster.NewRscPseudoAction(b, "start", false)

	if !CanInterleave(first, then) {
		t.Fatal("both clones interleaved, differing collectives: should interleave")
	}

	InstanceUpdateOrderedActions(ctx, ops, first, then, "", 0, 0, cluster.OrderOptional)

	a1Start, b1Start := startAction(a1), startAction(b1)
	a2Start, b2Start := startAction(a2), startAction(b2)

	if len(a1Start.AsFirst) != 1 || a1Start.AsFirst[0].Then != b1Start {
		t.Fatalf("expected a1's start ordered before b1's start, got %+v", a1Start.AsFirst)
	}
	if len(a2Start.AsFirst) != 1 || a2Start.AsFirst[0].Then != b2Start {
		t.Fatalf("expected a2's start ordered before b2's start, got %+v", a2Start.AsFirst)
	}
	if len(b1Start.AsThen) != 1 || len(b2Start.AsThen) != 1 {
		t.Fatal("no cross orderings expected: each then-instance should have exactly one incoming ordering")
	}
}

// TestInterleaveNoMatchMandatoryUnassigns is scenario S5: as S4, but A
// has no instance on n2, and the ordering kind includes runnable_left.
// The then-instance on n2 must be forced unassigned.
func TestInterleaveNoMatchMandatoryUnassigns(t *testing.T) {
	ctx := context.Background()
	ops := clustertest.NewFakeOps()

	a, b, a1, _, _, b2 := buildInterleavedClones()
	b.Meta["interleave"] = "true"
	a.Children = []*cluster.Resource{a1} // A has no instance on n2

	first := cluster.NewRscPseudoAction(a, "start", false)
	then := cluster.NewRscPseudoAction(b, "start", false)

	bits := InstanceUpdateOrderedActions(ctx, ops, first, then, "", 0, 0, cluster.OrderRunnableLeft)

	if b2.AssignedNode != "" || !b2.IsProvisional() {
		t.Fatalf("b2 should have been forced unassigned, got node=%q provisional=%v", b2.AssignedNode, b2.IsProvisional())
	}
	if !bits.Has(cluster.UpdatedThen) {
		t.Fatal("forcing b2 unassigned should report updated_then")
	}
}

// TestInterleaveNoMatchNonMandatoryLeavesAssigned checks the other half
// of unassign_if_mandatory: without runnable_left/implies_then, a
// missing match does not force an unassignment.
func TestInterleaveNoMatchNonMandatoryLeavesAssigned(t *testing.T) {
	ctx := context.Background()
	ops := clustertest.NewFakeOps()

	a, b, a1, _, _, b2 := buildInterleavedClones()
	b.Meta["interleave"] = "true"
	a.Children = []*cluster.Resource{a1}

	first := cluster.NewRscPseudoAction(a, "start", false)
	then := cluster.NewRscPseudoAction(b, "start", false)

	InstanceUpdateOrderedActions(ctx, ops, first, then, "", 0, 0, cluster.OrderOptional)

	if b2.AssignedNode != "n2" {
		t.Fatalf("b2 should remain assigned without a mandatory ordering kind, got %q", b2.AssignedNode)
	}
}

func TestCanInterleaveRejectsSameResource(t *testing.T) {
	r := cluster.NewResource("C", cluster.KindClone, nil)
	r.Meta["interleave"] = "true"
	first := cluster.NewAction("start", r, "", cluster.ActionRunnable)
	then := cluster.NewAction("start", r, "", cluster.ActionRunnable)
	if CanInterleave(first, then) {
		t.Fatal("identical resources must never interleave")
	}
}

func TestCanInterleaveRejectsPrimitive(t *testing.T) {
	clone := cluster.NewResource("A", cluster.KindClone, nil)
	clone.Meta["interleave"] = "true"
	prim := cluster.NewResource("p", cluster.KindPrimitive, nil)
	prim.Meta["interleave"] = "true"
	first := cluster.NewAction("start", clone, "", cluster.ActionRunnable)
	then := cluster.NewAction("start", prim, "", cluster.ActionRunnable)
	if CanInterleave(first, then) {
		t.Fatal("a primitive resource must never interleave")
	}
}

func TestCanInterleaveRequiresMetaFlag(t *testing.T) {
	a := cluster.NewResource("A", cluster.KindClone, nil)
	b := cluster.NewResource("B", cluster.KindClone, nil)
	first := cluster.NewAction("start", a, "", cluster.ActionRunnable)
	then := cluster.NewAction("start", b, "", cluster.ActionRunnable)
	if CanInterleave(first, then) {
		t.Fatal("without the interleave meta flag on the governing resource, must not interleave")
	}
}

func TestCanInterleaveGoverningSideForStop(t *testing.T) {
	a := cluster.NewResource("A", cluster.KindClone, nil)
	b := cluster.NewResource("B", cluster.KindClone, nil)
	a.Meta["interleave"] = "true" // first's resource governs for a stop "then"
	first := cluster.NewAction("stop", a, "", cluster.ActionRunnable)
	then := cluster.NewAction("stop", b, "", cluster.ActionRunnable)
	if !CanInterleave(first, then) {
		t.Fatal("for a stop then-task, the first side's interleave flag should govern")
	}
}
