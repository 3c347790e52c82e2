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

package instancestate

import "github.com/clusterkit/rscsched/pkg/cluster"

// CollectiveActionFlags is the collective action-flag folder (spec
// section 4.11): folds per-instance action flags into action's flag
// word. optional folds as AND across instances; runnable folds as OR.
func CollectiveActionFlags(ops cluster.Ops, action *cluster.Action, instances []*cluster.Resource, node cluster.NodeID) cluster.ActionFlag {
	flags := cluster.ActionOptional | cluster.ActionRunnable | cluster.ActionPseudo
	anyRunnable := false

	name, ok := cluster.OrigActionName(action)
	if !ok {
		name = action.Task
	}

	for _, instance := range instances {
		lookupNode := cluster.NodeID("")
		if instance.Kind == cluster.KindPrimitive {
			lookupNode = node
		}
		instFlags, found := ops.ActionFlags(instance, name, lookupNode)
		if !found {
			continue
		}
		if flags.Has(cluster.ActionOptional) && !instFlags.Has(cluster.ActionOptional) {
			flags = flags.Clear(cluster.ActionOptional)
			action.Flags = action.Flags.Clear(cluster.ActionOptional)
		}
		if instFlags.Has(cluster.ActionRunnable) {
			anyRunnable = true
		}
	}

	if !anyRunnable {
		flags = flags.Clear(cluster.ActionRunnable)
		if node == "" {
			action.Flags = action.Flags.Clear(cluster.ActionRunnable)
		}
	}
	return flags
}
