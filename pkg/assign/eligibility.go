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

// Package assign implements instance assignment: picking a node for
// each instance of a collective resource subject to per-node caps,
// colocation preferences, and affinity to the instance's current
// location (spec section 4.1-4.5).
package assign

import (
	"context"

	"github.com/clusterkit/rscsched/pkg/cluster"
	"github.com/clusterkit/rscsched/pkg/clusterlog"
)

// Eligible is the eligibility filter (spec section 4.1): reports
// whether node may host instance given the collective's max_per_node
// cap. Every failure reason is traced; a missing parent view is logged
// at a higher level since it usually means the model loader built an
// inconsistent allowed-nodes table.
func Eligible(ctx context.Context, instance *cluster.Resource, node *cluster.Node, maxPerNode int) bool {
	log := clusterlog.FromContext(ctx).WithValues("instance", instance.ID)
	if node != nil {
		log = log.WithValues("node", node.ID)
	}

	if instance.IsOrphan() {
		log.V(1).Info("ineligible: instance is an orphan")
		return false
	}
	if node == nil || !node.Available(false, false) {
		log.V(1).Info("ineligible: node unavailable")
		return false
	}

	top := cluster.TopAllowedNode(instance.Parent, node.ID)
	if top == nil {
		log.Info("ineligible: collective has no view of this node")
		return false
	}
	if top.Score < 0 {
		log.V(1).Info("ineligible: collective's weight for this node is negative", "weight", top.Score)
		return false
	}
	if top.Count >= maxPerNode {
		log.V(1).Info("ineligible: per-node cap reached", "count", top.Count, "maxPerNode", maxPerNode)
		return false
	}
	return true
}
