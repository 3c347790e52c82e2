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

import "github.com/clusterkit/rscsched/pkg/cluster"

// AppendParentColocation is the colocation propagator (spec section
// 4.3): copies relevant colocation constraints from parent onto child.
// With all set, every dependent-side constraint and every
// influence-bearing primary-side constraint is copied, maximizing
// optimality when there's room to spare (max_total < available_nodes).
// Otherwise only negative and mandatory-positive dependent-side
// constraints, and only negative primary-side ones, are copied,
// avoiding shuffling instances between equally good nodes.
func AppendParentColocation(parent, child *cluster.Resource, ops cluster.Ops, all bool) {
	for _, c := range parent.RscCons {
		if all || c.Score < 0 || c.Score == cluster.ScorePosInf {
			cluster.AddThisWith(child, c)
		}
	}
	for _, c := range parent.RscConsLHS {
		if !ops.HasInfluence(c, child) {
			continue
		}
		if all || c.Score < 0 {
			cluster.AddWithThis(child, c)
		}
	}
}
