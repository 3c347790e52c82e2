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

	"github.com/clusterkit/rscsched/pkg/cluster"
	"github.com/clusterkit/rscsched/pkg/clusterlog"
)

// AssignInstance is the instance assigner (spec section 4.4): assigns
// one instance to a node, with an optional early-preference attempt and
// rollback if that preference can't be honored exactly.
func AssignInstance(ctx context.Context, ops cluster.Ops, instance *cluster.Resource, prefer cluster.NodeID, allColoc bool, maxPerNode int) bool {
	log := clusterlog.FromContext(ctx).WithValues("instance", instance.ID)

	if !instance.IsProvisional() {
		return instance.Assigned()
	}

	if instance.IsAllocating() {
		err := serrors.Wrap(errors.New("colocation cycle detected, cannot assign"), "instance", instance.ID)
		log.V(1).Info(err.Error())
		return false
	}

	instance.Flags = instance.Flags.Set(cluster.ResourceAllocating)
	defer func() {
		instance.Flags = instance.Flags.Clear(cluster.ResourceAllocating)
	}()

	if prefer != "" {
		preferNode, ok := instance.AllowedNodes[prefer]
		if !ok || preferNode.Score < 0 {
			err := serrors.Wrap(errors.New("preferred node not eligible"), "instance", instance.ID, "prefer", prefer)
			log.V(1).Info(err.Error())
			return false
		}
	}

	for _, node := range instance.AllowedNodes {
		if !Eligible(ctx, instance, node, maxPerNode) {
			// Propagating the -inf into every child's corresponding
			// entry (common_update_score in the source) is the
			// external scorer's job; this core only needs its own
			// view consistent for the assign cmd that follows.
			node.Score = cluster.ScoreNegInf
		}
	}

	var chosen cluster.NodeID
	if prefer == "" {
		chosen = ops.Assign(instance, "")
	} else {
		snapshot := cluster.CopyNodeTable(instance.AllowedNodes)
		chosen = ops.Assign(instance, prefer)
		if chosen != prefer {
			instance.AllowedNodes = snapshot
			ops.UnassignResource(instance, false)
			err := serrors.Wrap(errors.New("could not honor preferred node"), "instance", instance.ID, "prefer", prefer, "got", chosen)
			log.V(1).Info(err.Error())
			return false
		}
	}

	if chosen == "" {
		return false
	}

	top := cluster.TopAllowedNode(instance.Parent, chosen)
	if top != nil {
		top.Count++
	} else if instance.Flags.Has(cluster.ResourceManaged) {
		err := serrors.Wrap(errors.New("instance assigned with no parent view"), "instance", instance.ID, "node", chosen)
		log.Error(err, "invariant violation")
		panic(err)
	}
	return true
}
