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

// CreateInstanceActions is the pseudo-action builder (spec section
// 4.7): delegates per-instance action creation, folds instance state,
// then builds the collective's start/started and stop/stopped pseudo
// actions.
//
// startNotify and stopNotify follow the source's out-parameter
// convention: pass nil if the caller doesn't want notifications for
// that side; pass a non-nil pointer to a nil *cluster.NotifySet to have
// it built; pass a pointer to an already-built set to reuse it as-is.
func CreateInstanceActions(ops cluster.Ops, collective *cluster.Resource, instances []*cluster.Resource, startNotify, stopNotify **cluster.NotifySet) (start, started, stop, stopped *cluster.Action) {
	var state StateBits
	for _, instance := range instances {
		ops.CreateActions(instance)
		state = CheckInstanceState(instance, state)
	}

	start = cluster.NewRscPseudoAction(collective, "start", !state.Has(Starting))
	started = cluster.NewRscPseudoAction(collective, "started", !state.Has(Starting))
	started.Priority = cluster.ScorePosInf
	if state.Has(Active) || state.Has(Starting) {
		started.Flags = started.Flags.Set(cluster.ActionRunnable)
	}
	if startNotify != nil && *startNotify == nil {
		*startNotify = cluster.CloneNotifPseudoOps(collective, "start")
	}

	stop = cluster.NewRscPseudoAction(collective, "stop", !state.Has(Stopping))
	stopped = cluster.NewRscPseudoAction(collective, "stopped", !state.Has(Stopping))
	if !state.Has(Restarting) {
		stop.Flags = stop.Flags.Set(cluster.ActionMigrateRunnable)
	}
	if stopNotify != nil && *stopNotify == nil {
		*stopNotify = cluster.CloneNotifPseudoOps(collective, "stop")
	}

	if startNotify != nil && stopNotify != nil && *startNotify != nil && *stopNotify != nil {
		cluster.OrderActions((*stopNotify).PostDone, (*startNotify).Pre, cluster.OrderOptional)
	}

	return start, started, stop, stopped
}
