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

// Package interleave pairs instances of two related collectives so
// ordering constraints propagate between matched instance pairs rather
// than between every cross product (spec sections 4.8, 4.9).
package interleave

import (
	"github.com/samber/lo"

	"github.com/clusterkit/rscsched/pkg/cluster"
)

// InstanceMatches is the compatibility matcher (spec section 4.8):
// true iff instance, considered at node with role, is a candidate to
// pair with whatever the caller is matching it against.
func InstanceMatches(ops cluster.Ops, instance *cluster.Resource, node cluster.NodeID, role string, current bool) bool {
	if role != "" && ops.State(instance, current) != role {
		return false
	}
	if cluster.IsSetRecursive(instance, cluster.ResourceBlock) {
		return false
	}
	loc := ops.Location(instance, current)
	if loc == "" {
		return false
	}
	return loc == node
}

// instanceList returns rsc's instance list for compatibility matching:
// a bundle's containers, or a clone's children.
func instanceList(rsc *cluster.Resource) []*cluster.Resource {
	if rsc.Kind == cluster.KindBundle {
		return cluster.BundleContainers(rsc)
	}
	return rsc.Children
}

// FindCompatibleInstance finds an instance of rsc compatible with
// matchRsc's current instance (spec section 4.8): the same node if
// matchRsc already has a location, otherwise the first node (by the
// standard node order) with a matching instance.
func FindCompatibleInstance(ops cluster.Ops, matchRsc, rsc *cluster.Resource, role string, current bool) *cluster.Resource {
	list := instanceList(rsc)

	if loc := ops.Location(matchRsc, current); loc != "" {
		for _, inst := range list {
			if InstanceMatches(ops, inst, loc, role, current) {
				return inst
			}
		}
		return nil
	}

	nodes := cluster.SortNodes(lo.Values(matchRsc.AllowedNodes), ops.CompareNodes)
	for _, n := range nodes {
		for _, inst := range list {
			if InstanceMatches(ops, inst, n.ID, role, current) {
				return inst
			}
		}
	}
	return nil
}
