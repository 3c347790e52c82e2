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

	"github.com/clusterkit/rscsched/pkg/cluster"
	"github.com/clusterkit/rscsched/pkg/clusterlog"
)

// ResolveActionTarget is the action-target rule of spec section 4.9.3:
// for a bundle container, decide whether an action lookup targets the
// container itself or the resource running inside it, then find that
// action by name and node.
func ResolveActionTarget(ctx context.Context, instance *cluster.Resource, task string, node cluster.NodeID, forFirst bool) *cluster.Action {
	target := instance
	lookupNode := node

	useInner := forFirst && task != "stop" && task != "stopped"
	if !forFirst && (task == "promote" || task == "promoted" || task == "demote" || task == "demoted") {
		useInner = true
	}
	if useInner {
		// The inner-resource/null-node rule only applies to an actual
		// bundle container; a plain clone instance has no inner
		// resource to switch to and keeps running on its own node.
		if inner := cluster.GetRscInContainer(instance); inner != nil {
			target = inner
			lookupNode = ""
		}
	}

	action := cluster.FindFirstAction(target, task, lookupNode)
	if action == nil {
		log := clusterlog.FromContext(ctx).WithValues("instance", target.ID, "task", task)
		switch task {
		case "stop", "demote":
			log.V(1).Info("no action found for instance; likely an orphan or implied stop/demote")
		default:
			log.Error(nil, "no action found for instance; suspected bug")
		}
	}
	return action
}
