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

// Package cluster holds the scheduling core's data model: nodes, resources,
// actions, colocation constraints, and orderings. It is the shared arena
// threaded explicitly through every entry point in pkg/assign,
// pkg/instancestate and pkg/interleave.
package cluster

import "github.com/google/uuid"

// NodeID identifies a cluster node. Kept distinct from ResourceID and
// ActionID so the three id spaces can't be swapped by accident.
type NodeID string

// ResourceID identifies a resource (primitive, group, clone, or bundle).
type ResourceID string

// ActionID is a resource action's uuid.
type ActionID uuid.UUID

// NewActionID generates a fresh action id.
func NewActionID() ActionID {
	return ActionID(uuid.New())
}

func (a ActionID) String() string {
	return uuid.UUID(a).String()
}
