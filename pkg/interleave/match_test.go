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
	"testing"

	"github.com/clusterkit/rscsched/pkg/cluster"
	"github.com/clusterkit/rscsched/pkg/clustertest"
)

// TestFindCompatibleInstanceLocationFastPathChecksRole is the regression
// this exists for: when matchRsc already has a location, the candidates
// at that location must still pass InstanceMatches's role/blocked
// checks, not just a bare location equality test.
func TestFindCompatibleInstanceLocationFastPathChecksRole(t *testing.T) {
	ops := clustertest.NewFakeOps()

	n1 := clustertest.NewNode("n1", 0)
	matchRsc := clustertest.NewManagedInstance("match", cluster.KindClone, clustertest.NodeTable(n1))
	ops.Locations[matchRsc.ID] = map[bool]cluster.NodeID{false: "n1"}

	wrongRole := clustertest.NewManagedInstance("wrong-role", cluster.KindPrimitive, clustertest.NodeTable(n1))
	ops.Locations[wrongRole.ID] = map[bool]cluster.NodeID{false: "n1"}
	ops.States[wrongRole.ID] = "Stopped"

	rightRole := clustertest.NewManagedInstance("right-role", cluster.KindPrimitive, clustertest.NodeTable(n1))
	ops.Locations[rightRole.ID] = map[bool]cluster.NodeID{false: "n1"}
	ops.States[rightRole.ID] = "Started"

	rsc := clustertest.NewCollective("C", cluster.KindClone, wrongRole, rightRole)

	got := FindCompatibleInstance(ops, matchRsc, rsc, "Started", false)
	if got != rightRole {
		t.Fatalf("expected the role-matching instance at the shared location, got %v", got)
	}
}

// TestFindCompatibleInstanceLocationFastPathRejectsBlocked checks the
// other half of the same branch: a blocked candidate at the matching
// location must still be skipped.
func TestFindCompatibleInstanceLocationFastPathRejectsBlocked(t *testing.T) {
	ops := clustertest.NewFakeOps()

	n1 := clustertest.NewNode("n1", 0)
	matchRsc := clustertest.NewManagedInstance("match", cluster.KindClone, clustertest.NodeTable(n1))
	ops.Locations[matchRsc.ID] = map[bool]cluster.NodeID{false: "n1"}

	blocked := clustertest.NewManagedInstance("blocked", cluster.KindPrimitive, clustertest.NodeTable(n1))
	ops.Locations[blocked.ID] = map[bool]cluster.NodeID{false: "n1"}
	blocked.Flags = blocked.Flags.Set(cluster.ResourceBlock)

	rsc := clustertest.NewCollective("C", cluster.KindClone, blocked)

	if got := FindCompatibleInstance(ops, matchRsc, rsc, "", false); got != nil {
		t.Fatalf("a blocked candidate at the matching location must not be returned, got %v", got)
	}
}

// TestFindCompatibleInstanceNoLocationUsesNodeOrder covers the other
// branch: when matchRsc has no location yet, the first node in
// CompareNodes order with a matching instance wins.
func TestFindCompatibleInstanceNoLocationUsesNodeOrder(t *testing.T) {
	ops := clustertest.NewFakeOps()

	n1 := clustertest.NewNode("n1", 1)
	n2 := clustertest.NewNode("n2", 2)
	matchRsc := clustertest.NewManagedInstance("match", cluster.KindClone, clustertest.NodeTable(n1, n2))

	onN1 := clustertest.NewManagedInstance("on-n1", cluster.KindPrimitive, clustertest.NodeTable(n1))
	ops.Locations[onN1.ID] = map[bool]cluster.NodeID{false: "n1"}
	onN2 := clustertest.NewManagedInstance("on-n2", cluster.KindPrimitive, clustertest.NodeTable(n2))
	ops.Locations[onN2.ID] = map[bool]cluster.NodeID{false: "n2"}

	rsc := clustertest.NewCollective("C", cluster.KindClone, onN1, onN2)

	got := FindCompatibleInstance(ops, matchRsc, rsc, "", false)
	if got != onN1 {
		t.Fatalf("expected the instance on the first node in standard node order (n1), got %v", got)
	}
}

func TestInstanceMatchesRejectsBlocked(t *testing.T) {
	ops := clustertest.NewFakeOps()
	n1 := clustertest.NewNode("n1", 0)
	inst := clustertest.NewManagedInstance("i1", cluster.KindPrimitive, clustertest.NodeTable(n1))
	inst.Flags = inst.Flags.Set(cluster.ResourceBlock)
	ops.Locations[inst.ID] = map[bool]cluster.NodeID{false: "n1"}

	if InstanceMatches(ops, inst, "n1", "", false) {
		t.Fatal("a blocked instance must never match")
	}
}

func TestInstanceMatchesRejectsWrongNode(t *testing.T) {
	ops := clustertest.NewFakeOps()
	n1 := clustertest.NewNode("n1", 0)
	inst := clustertest.NewManagedInstance("i1", cluster.KindPrimitive, clustertest.NodeTable(n1))
	ops.Locations[inst.ID] = map[bool]cluster.NodeID{false: "n1"}

	if InstanceMatches(ops, inst, "n2", "", false) {
		t.Fatal("an instance located elsewhere must not match")
	}
}
