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
	"strings"

	"github.com/clusterkit/rscsched/pkg/cluster"
)

// CanInterleave is the can-interleave predicate (spec section 4.9.1):
// true iff both actions have resources, the resources differ, both are
// at least clone-variant, and the interleave meta flag is set on the
// governing resource - first's if then is a stop or demote, otherwise
// then's.
func CanInterleave(first, then *cluster.Action) bool {
	if first.Resource == nil || then.Resource == nil {
		return false
	}
	if first.Resource == then.Resource {
		return false
	}
	if !first.Resource.Kind.IsCollective() || !then.Resource.Kind.IsCollective() {
		return false
	}
	governing := then.Resource
	if then.Task == "stop" || then.Task == "demote" {
		governing = first.Resource
	}
	return governing.Interleave()
}

// isStopOrDemoteCompletion reports whether then's operation key marks a
// stop or demote completion event (spec section 4.9.2).
func isStopOrDemoteCompletion(then *cluster.Action) bool {
	return strings.HasSuffix(then.Key, "_stopped_0") || strings.HasSuffix(then.Key, "_demoted_0")
}

// InstanceUpdateOrderedActions is the interleave updater's entry point
// (spec section 4.9): pairs matched instances and propagates ordering
// flags between them, or falls back to a collective-level ordering when
// interleaving doesn't apply.
func InstanceUpdateOrderedActions(ctx context.Context, ops cluster.Ops, first, then *cluster.Action, node cluster.NodeID, flags, filter cluster.ActionFlag, kind cluster.OrderKind) cluster.UpdatedBits {
	if first == nil || then == nil || then.Resource == nil {
		return 0
	}
	if CanInterleave(first, then) {
		return interleavedUpdate(ctx, ops, first, then, node, flags, filter, kind)
	}
	return nonInterleavedUpdate(ctx, ops, first, then, node, filter, kind)
}

// nonInterleavedUpdate is the non-interleaved path of spec section 4.9:
// update the collective-level ordering itself, then fan the update out
// to every then-side instance with a matching, runnable action.
func nonInterleavedUpdate(ctx context.Context, ops cluster.Ops, first, then *cluster.Action, node cluster.NodeID, filter cluster.ActionFlag, kind cluster.OrderKind) cluster.UpdatedBits {
	var updated cluster.UpdatedBits
	if _, newlyInstalled := cluster.OrderActions(first, then, kind); newlyInstalled {
		updated = updated.Set(cluster.UpdatedFirst).Set(cluster.UpdatedThen)
	}

	for _, instance := range then.Resource.Children {
		a := cluster.FindFirstAction(instance, then.Task, node)
		if a == nil || !a.Flags.Has(cluster.ActionRunnable) {
			continue
		}
		bits := ops.UpdateOrderedActions(instance, then.Task, node, first.Flags, filter, kind)
		if bits.Has(cluster.UpdatedThen) {
			updated = updated.Set(cluster.UpdatedThen)
			propagateUpdatedThen(a)
		}
		if bits.Has(cluster.UpdatedFirst) {
			updated = updated.Set(cluster.UpdatedFirst)
		}
	}
	return updated
}

// propagateUpdatedThen carries an updated_then change one hop forward,
// onto the actions ordered directly after a. Deeper, cascaded
// convergence is the caller's own fixpoint and out of scope here (spec
// section 5).
func propagateUpdatedThen(a *cluster.Action) {
	if a.Flags.Has(cluster.ActionRunnable) {
		return
	}
	for _, o := range a.AsFirst {
		if o.Kind.HasAny(cluster.OrderRunnableLeft) {
			o.Then.Flags = o.Then.Flags.Clear(cluster.ActionRunnable)
		}
	}
}

// interleavedUpdate is the interleaved path (spec section 4.9.2).
func interleavedUpdate(ctx context.Context, ops cluster.Ops, first, then *cluster.Action, node cluster.NodeID, flags, filter cluster.ActionFlag, kind cluster.OrderKind) cluster.UpdatedBits {
	origFirstTask, ok := cluster.OrigActionName(first)
	if !ok {
		origFirstTask = first.Task
	}
	current := isStopOrDemoteCompletion(then)

	var updated cluster.UpdatedBits
	for _, thenInstance := range then.Resource.Children {
		firstInstance := FindCompatibleInstance(ops, thenInstance, first.Resource, "", current)
		if firstInstance == nil {
			if unassignIfMandatory(ops, thenInstance, current, kind) {
				updated = updated.Set(cluster.UpdatedThen)
			}
			continue
		}

		firstAction := ResolveActionTarget(ctx, firstInstance, origFirstTask, node, true)
		if firstAction == nil {
			continue
		}
		thenOrigTask, ok := cluster.OrigActionName(then)
		if !ok {
			thenOrigTask = then.Task
		}
		thenAction := ResolveActionTarget(ctx, thenInstance, thenOrigTask, node, false)

		if thenAction != nil {
			if _, newlyInstalled := cluster.OrderActions(firstAction, thenAction, kind); newlyInstalled {
				updated = updated.Set(cluster.UpdatedFirst).Set(cluster.UpdatedThen)
			}
		}

		instFlags := firstAction.Flags
		if af, ok := ops.ActionFlags(firstInstance, origFirstTask, firstAction.Node); ok {
			instFlags = af
		}
		if thenAction != nil {
			bits := ops.UpdateOrderedActions(thenInstance, thenOrigTask, node, instFlags, filter, kind)
			if bits.Has(cluster.UpdatedThen) {
				updated = updated.Set(cluster.UpdatedThen)
				propagateUpdatedThen(thenAction)
			}
			if bits.Has(cluster.UpdatedFirst) {
				updated = updated.Set(cluster.UpdatedFirst)
			}
		}
	}
	return updated
}

// unassignIfMandatory is the "unassign_if_mandatory" rule (spec
// section 4.9.2): when no compatible first-instance was found, decide
// whether the then-instance must be forced unassigned.
func unassignIfMandatory(ops cluster.Ops, thenInstance *cluster.Resource, current bool, kind cluster.OrderKind) bool {
	if current {
		return false
	}
	if kind.HasAny(cluster.OrderRunnableLeft | cluster.OrderImpliesThen) {
		return ops.UnassignResource(thenInstance, true)
	}
	return false
}
