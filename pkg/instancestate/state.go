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

// Package instancestate aggregates per-instance action state into a
// collective-level summary and builds the collective's pseudo-actions
// (spec sections 4.6, 4.7, 4.11).
package instancestate

import (
	"strings"

	"github.com/clusterkit/rscsched/pkg/cluster"
)

// StateBits is the instance_state bitset (spec section 3): starting,
// stopping, restarting, active.
type StateBits uint32

const (
	Starting StateBits = 1 << iota
	Stopping
	Restarting
	Active
)

const allStateBits = Starting | Stopping | Restarting | Active

func (s StateBits) Has(bits StateBits) bool {
	return s&bits == bits
}

func (s StateBits) String() string {
	var names []string
	for bit, name := range map[StateBits]string{
		Starting:   "starting",
		Stopping:   "stopping",
		Restarting: "restarting",
		Active:     "active",
	} {
		if s.Has(bit) {
			names = append(names, name)
		}
	}
	if len(names) == 0 {
		return "none"
	}
	// Map iteration order is unspecified; a debug string's exact bit
	// order doesn't matter, but sort for reproducible test output.
	for i := 1; i < len(names); i++ {
		for j := i; j > 0 && names[j-1] > names[j]; j-- {
			names[j-1], names[j] = names[j], names[j-1]
		}
	}
	return strings.Join(names, "|")
}

// CheckInstanceState is the instance-state summarizer (spec section
// 4.6): folds instance's own action state into state, recursing into
// children whenever instance is non-primitive - a clone/bundle instance,
// or a group instance cloned by one of those (a "cloned group", whose
// children are its own member primitives). Stops early once state
// already carries all four bits.
func CheckInstanceState(instance *cluster.Resource, state StateBits) StateBits {
	if instance == nil || state == allStateBits {
		return state
	}

	if instance.Kind != cluster.KindPrimitive {
		for _, child := range instance.Children {
			state = CheckInstanceState(child, state)
			if state == allStateBits {
				break
			}
		}
		return state
	}

	if instance.Running != "" {
		state |= Active
	}

	var starting, stopping bool
	for _, a := range instance.Actions {
		if state == allStateBits {
			break
		}
		switch {
		case a.Task == "start" && !a.Flags.Has(cluster.ActionOptional) && a.Flags.Has(cluster.ActionRunnable):
			state |= Starting
			starting = true
		case a.Task == "stop" && !a.Flags.Has(cluster.ActionOptional) &&
			(a.Flags.Has(cluster.ActionRunnable) || a.Flags.Has(cluster.ActionPseudo)):
			state |= Stopping
			stopping = true
		}
	}
	if starting && stopping {
		state |= Restarting
	}
	return state
}
