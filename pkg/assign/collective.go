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

package assign

import (
	"context"
	"errors"

	"github.com/awslabs/operatorpkg/serrors"
	"go.uber.org/multierr"

	"github.com/clusterkit/rscsched/pkg/cluster"
	"github.com/clusterkit/rscsched/pkg/clusterlog"
)

// banReason is the resource metadata key AssignInstances stamps on an
// instance it bans for overflowing max_total, surfaced for diagnostics
// (the plan inspector can report why an instance has no location).
const banReason = "ban_reason"

// collectiveLimitReached is the ban reason recorded when an instance is
// banned solely because the collective has already reached max_total
// (spec section 4.5 Pass 2, scenario S3).
const collectiveLimitReached = "collective_limit_reached"

// AssignInstances is the collective assigner (spec section 4.5): the
// two-pass driver over all instances of one collective. Pass 1 favors
// stickiness - keeping instances on the node they already occupy.
// Pass 2 places everything stickiness left provisional, up to
// max_total, and bans the rest.
func AssignInstances(ctx context.Context, ops cluster.Ops, collective *cluster.Resource, instances []*cluster.Resource, maxTotal, maxPerNode int) {
	log := clusterlog.FromContext(ctx).WithValues("collective", collective.ID)

	available := Reset(collective)
	allColoc := maxTotal < available
	optimalPerNode := max(1, maxTotal/max(1, available))

	assigned := 0
	var rejected error

	// Pass 1: stickiness.
	for _, instance := range instances {
		if assigned >= maxTotal {
			break
		}
		AppendParentColocation(collective, instance, ops, allColoc)
		prefer := PreferredNode(instance, optimalPerNode)
		if prefer == "" {
			continue
		}
		if AssignInstance(ctx, ops, instance, prefer, allColoc, maxPerNode) {
			assigned++
		}
	}

	// Pass 2: remainder.
	for _, instance := range instances {
		if !instance.IsProvisional() {
			continue
		}
		if instance.Running != "" && cluster.TopAllowedNode(collective, instance.Running) == nil {
			prefix := ""
			if !instance.Flags.Has(cluster.ResourceManaged) {
				prefix = "Unmanaged resource "
			}
			log.Info(prefix+"instance is running on a node no longer allowed", "instance", instance.ID, "node", instance.Running)
		}
		if assigned >= maxTotal {
			banInstance(instance, collectiveLimitReached)
			rejected = multierr.Append(rejected, serrors.Wrap(errors.New(collectiveLimitReached), "instance", instance.ID))
			continue
		}
		if AssignInstance(ctx, ops, instance, "", allColoc, maxPerNode) {
			assigned++
		} else {
			rejected = multierr.Append(rejected, serrors.Wrap(errors.New("no eligible node"), "instance", instance.ID))
		}
	}

	// Combined once per collective rather than per-instance, mirroring
	// the teacher's addToNewNodeClaim "combine and log once" shape.
	if rejected != nil {
		log.V(1).Info("some instances could not be placed", "reasons", rejected.Error())
	}
}

// banInstance forbids instance from running anywhere with a mandatory
// -inf location, the "ban this instance with a -inf resource-level
// location" step of Pass 2 (spec section 4.5, scenario S3).
func banInstance(instance *cluster.Resource, reason string) {
	for _, n := range instance.AllowedNodes {
		n.Score = cluster.ScoreNegInf
	}
	instance.Meta[banReason] = reason
}

// PreferredNode is the preferred-node rule (spec section 4.5.1): the
// stickiness candidate node for instance, or "" if none applies.
func PreferredNode(instance *cluster.Resource, optimalPerNode int) cluster.NodeID {
	if instance.Running == "" {
		return ""
	}
	if !instance.IsProvisional() {
		return ""
	}
	if instance.Flags.Has(cluster.ResourceFailed) {
		return ""
	}
	current, ok := instance.AllowedNodes[instance.Running]
	if !ok || !current.Available(true, false) {
		return ""
	}
	top := cluster.TopAllowedNode(instance.Parent, instance.Running)
	if top != nil && top.Count >= optimalPerNode {
		return ""
	}
	return instance.Running
}
