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

// Reset is the node-count tracker (spec section 4.2): zeroes count for
// every node in rsc's allowed-nodes table and returns how many of those
// nodes are currently available(false, false) - the assignment
// denominator the collective assigner divides max_total by.
func Reset(rsc *cluster.Resource) int {
	available := 0
	for _, n := range rsc.AllowedNodes {
		n.Count = 0
		if n.Available(false, false) {
			available++
		}
	}
	return available
}
