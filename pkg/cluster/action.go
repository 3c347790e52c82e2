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

// Action is one scheduled operation on a resource: start, stop, promote,
// demote, notify, or a collective-level pseudo-action.
type Action struct {
	// ID is an opaque, collision-proof identity for this action, used
	// as a map/log-correlation key; it carries no parseable structure.
	ID   ActionID
	Task string
	// Key is the operation key (spec section 3's "id string (uuid)"):
	// a structured, parseable name of the form "<rsc>_<task>_<interval>"
	// or, for a notify action, "<rsc>_{confirmed-}?{pre,post}_notify_
	// <inner>_<interval>". orig_action_name (section 4.10) and the
	// interleaved update (section 4.9.2) parse this field, not ID.
	Key      string
	Resource *Resource
	// Node is the node this action targets. Empty for an action whose
	// target is resolved elsewhere (e.g. a bundle's inner resource,
	// which runs on a guest node the action target resolver treats as
	// unaddressed - spec section 4.9.3).
	Node     NodeID
	Flags    ActionFlag
	Priority Score

	// AsFirst/AsThen index the orderings this action participates in,
	// populated by OrderActions. Used to walk "actions after" an action
	// when propagating updated_then (spec section 4.9).
	AsFirst []*Ordering
	AsThen  []*Ordering
}

// NewAction constructs an action with a fresh opaque id and the default
// operation-key convention "<rsc>_<task>_0". Callers that need a
// different key (e.g. a non-zero interval, or a notify key built by
// CloneNotifPseudoOps) set a.Key afterward.
func NewAction(task string, r *Resource, node NodeID, flags ActionFlag) *Action {
	key := task + "_0"
	if r != nil {
		key = string(r.ID) + "_" + key
	}
	return &Action{
		ID:       NewActionID(),
		Task:     task,
		Key:      key,
		Resource: r,
		Node:     node,
		Flags:    flags,
	}
}

// NewRscPseudoAction creates a collective-level pseudo-action (the
// "start"/"started"/"stop"/"stopped" anchors built by
// create_instance_actions, spec section 4.7). Pseudo-actions are never
// sent to an executor; they exist only as ordering anchors.
func NewRscPseudoAction(r *Resource, task string, optional bool) *Action {
	a := NewAction(task, r, "", ActionPseudo)
	if optional {
		a.Flags = a.Flags.Set(ActionOptional)
	}
	r.Actions = append(r.Actions, a)
	return a
}

// FindFirstAction returns the first action on r matching name and node,
// or nil. This is the "find_first_action" helper from spec section 6: a
// mechanical lookup over the resource's own action list, no scoring
// involved. An empty node matches an action on any node.
func FindFirstAction(r *Resource, name string, node NodeID) *Action {
	if r == nil {
		return nil
	}
	for _, a := range r.Actions {
		if a.Task == name && (node == "" || a.Node == node) {
			return a
		}
	}
	return nil
}
