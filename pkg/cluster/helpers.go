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

package cluster

import (
	"regexp"
	"sort"
	"strings"
)

// SortNodes is the "sort_nodes" helper (spec section 4.8): order nodes
// by the externally-supplied total order (Ops.CompareNodes), leaving the
// input slice untouched.
func SortNodes(nodes []*Node, cmp func(a, b *Node) int) []*Node {
	sorted := make([]*Node, len(nodes))
	copy(sorted, nodes)
	sort.SliceStable(sorted, func(i, j int) bool {
		return cmp(sorted[i], sorted[j]) < 0
	})
	return sorted
}

// completionToImperative maps a gerund-completion task name to its base
// verb, the mapping get_complex_task applies (spec section 4.10).
var completionToImperative = map[string]string{
	"stopped":  "stop",
	"started":  "start",
	"promoted": "promote",
	"demoted":  "demote",
}

// ComplexTask is the "get_complex_task" helper: collectives report
// completion events ("stopped", "promoted", ...) where the underlying
// instance action is the imperative ("stop", "promote", ...). child is
// not consulted: the same mapping applies whatever the resource kind.
func ComplexTask(child *Resource, task string) string {
	if base, ok := completionToImperative[task]; ok {
		return base
	}
	return task
}

// Task2Text is the "task2text" helper: a human-readable rendering of a
// task name for trace/log messages.
func Task2Text(task string) string {
	if task == "" {
		return task
	}
	return strings.ToUpper(task[:1]) + task[1:]
}

// notifyOpKey matches an action uuid of the form
// RSC_{confirmed-}?{pre,post}_notify_<inner>_<interval>, spec section
// 4.10.
var notifyOpKey = regexp.MustCompile(`^.+_(?:confirmed-)?(?:pre|post)_notify_(.+)_[0-9]+$`)

// ParseOpKey is the "parse_op_key" helper, narrowed to the one shape
// this core needs to parse: a notify/notified action's uuid, returning
// the inner task name it notifies about. ok is false on a uuid that
// doesn't match the expected shape (spec section 7, malformed input).
func ParseOpKey(uuid string) (inner string, ok bool) {
	m := notifyOpKey.FindStringSubmatch(uuid)
	if m == nil {
		return "", false
	}
	return m[1], true
}

// anyChild returns a representative child instance of r (used where
// get_complex_task needs "any child instance" to resolve a collective's
// mapping), or r itself if it has none.
func anyChild(r *Resource) *Resource {
	if r == nil || len(r.Children) == 0 {
		return r
	}
	return r.Children[0]
}

// OrigActionName is the "orig_action_name" / section 4.10 helper:
// recovers the underlying task an action represents, seeing through the
// confirmation-event naming notify actions use. ok is false on a
// malformed notify uuid; nothing is logged here, and the callers in this
// module then fall back to the action's own task name.
func OrigActionName(a *Action) (name string, ok bool) {
	if a == nil {
		return "", false
	}
	if a.Task == "notify" || a.Task == "notified" {
		inner, parsed := ParseOpKey(a.Key)
		if !parsed {
			return "", false
		}
		return ComplexTask(anyChild(a.Resource), inner), true
	}
	return ComplexTask(a.Resource, a.Task), true
}

// NotifySet is a clone's full set of notify pseudo-actions: pre/post
// anchors and their "done" completions (spec section 4.7 step 4).
type NotifySet struct {
	Pre      *Action
	PreDone  *Action
	Post     *Action
	PostDone *Action
}

// CloneNotifPseudoOps is the "clone_notif_pseudo_ops" helper: builds the
// four pseudo-actions a collective's start or stop notification anchors
// on.
func CloneNotifPseudoOps(collective *Resource, task string) *NotifySet {
	return &NotifySet{
		Pre:      NewRscPseudoAction(collective, "pre_notify_"+task, true),
		PreDone:  NewRscPseudoAction(collective, "pre_notify_"+task+"_done", true),
		Post:     NewRscPseudoAction(collective, "post_notify_"+task, true),
		PostDone: NewRscPseudoAction(collective, "post_notify_"+task+"_done", true),
	}
}
