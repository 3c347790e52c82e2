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

package cluster

// Ops is the capability record the scheduling core is threaded through
// (spec section 9: "dispatch over variant ... as a capability record,
// not inheritance"). Every method here delegates to per-resource-variant
// behavior this core treats as out of scope to compute itself: location
// and colocation scoring, action-set construction, fencing (spec
// section 1's Non-goals). An external model loader supplies one Ops
// implementation shared by the whole pass; pkg/clustertest supplies a
// reference implementation for tests.
type Ops interface {
	// Assign is the per-resource "assign" cmd: pick a final node for
	// instance, honoring prefer if non-empty, and record the choice on
	// instance itself. Returns the chosen node id, or "" if none could
	// be chosen.
	Assign(instance *Resource, prefer NodeID) NodeID

	// AssignResource is the "assign_resource" helper: force instance
	// onto node outright (mandatory mirrors the source's
	// assign_resource(..., mandatory) convention).
	AssignResource(instance *Resource, node NodeID, mandatory bool) bool

	// UnassignResource is the "unassign_resource" helper: clear
	// instance's chosen node. Used by unassign_if_mandatory (spec
	// section 4.9.2).
	UnassignResource(instance *Resource, mandatory bool) bool

	// CreateActions is the per-resource "create_actions" cmd.
	// Per-primitive action-set computation is explicitly out of scope
	// for this core (spec section 1); this just invokes the external
	// builder once per instance.
	CreateActions(instance *Resource)

	// ActionFlags is the per-resource "action_flags" cmd: the flags of
	// the first action on instance matching name and node (node may be
	// "" for a collective-scoped lookup). Returns ok=false if no such
	// action exists.
	ActionFlags(instance *Resource, name string, node NodeID) (flags ActionFlag, ok bool)

	// UpdateOrderedActions is the per-resource "update_ordered_actions"
	// cmd: propagate an ordering constraint onto instance's action
	// matching task and node, reporting which side of the pair it
	// changed.
	UpdateOrderedActions(instance *Resource, task string, node NodeID, firstFlags ActionFlag, filter ActionFlag, kind OrderKind) UpdatedBits

	// State is the per-resource "state" fn used by the compatibility
	// matcher's role check (spec section 4.8) - e.g. "Started",
	// "Promoted" - not the instance_state bitset of section 4.6, which
	// this core computes itself without delegating.
	State(instance *Resource, current bool) string

	// Location is the per-resource "location" fn: the node instance
	// currently occupies with respect to current (true: live state,
	// false: as assigned so far this pass), or "" if none.
	Location(instance *Resource, current bool) NodeID

	// HasInfluence is the "colocation_has_influence" helper: whether a
	// primary-side constraint c propagates onto child (spec
	// section 4.3), a role-aware check this core does not compute
	// itself.
	HasInfluence(c *Colocation, child *Resource) bool

	// CompareNodes is the externally-provided total order "sort_nodes"
	// relies on (spec section 4.8: "the standard node comparator ...
	// provided externally"). Standard less-than/equal/greater-than
	// convention.
	CompareNodes(a, b *Node) int
}
