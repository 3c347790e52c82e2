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

package clustertest

import (
	"github.com/awslabs/operatorpkg/option"

	"github.com/clusterkit/rscsched/pkg/cluster"
)

// NewNode builds a *cluster.Node backed by an always-available liveness
// predicate, the common case in tests.
func NewNode(id cluster.NodeID, score cluster.Score) *cluster.Node {
	return &cluster.Node{ID: id, Score: score, Live: AlwaysAvailable{}}
}

// NewStandbyNode builds a *cluster.Node whose liveness predicate only
// answers available when include_standby is requested.
func NewStandbyNode(id cluster.NodeID, score cluster.Score) *cluster.Node {
	return &cluster.Node{ID: id, Score: score, Live: standbyAvailable{}}
}

type standbyAvailable struct{}

func (standbyAvailable) Available(includeStandby, _ bool) bool { return includeStandby }

// NodeTable builds an allowed-nodes map from a list of nodes.
func NodeTable(nodes ...*cluster.Node) map[cluster.NodeID]*cluster.Node {
	table := make(map[cluster.NodeID]*cluster.Node, len(nodes))
	for _, n := range nodes {
		table[n.ID] = n
	}
	return table
}

// instanceConfig holds NewManagedInstance's overridable defaults, in the
// teacher's mock-fixture-builder style (filter_test.go's
// mockInstanceTypeOptions/option.Resolve pattern).
type instanceConfig struct {
	running cluster.NodeID
}

// InstanceOption overrides one of NewManagedInstance's defaults.
type InstanceOption = option.Function[instanceConfig]

// WithRunning marks the built instance as already running on node,
// still provisional for this pass, for tests exercising the stickiness
// pass's preferred-node rule (spec section 4.5.1).
func WithRunning(node cluster.NodeID) InstanceOption {
	return func(c *instanceConfig) { c.running = node }
}

// NewManagedInstance builds a provisional, managed resource of kind,
// ready to be assigned.
func NewManagedInstance(id cluster.ResourceID, kind cluster.Kind, allowed map[cluster.NodeID]*cluster.Node, opts ...InstanceOption) *cluster.Resource {
	cfg := option.Resolve(opts...)

	r := cluster.NewResource(id, kind, allowed)
	r.Flags = r.Flags.Set(cluster.ResourceManaged).Set(cluster.ResourceProvisional)
	if cfg.running != "" {
		r.Running = cfg.running
	}
	return r
}

// NewCollective builds a clone or bundle resource with instances as its
// children, mirroring each child's node ids into the collective's own
// allowed-nodes table with a zero score (the "top" view the assigner
// caps against).
func NewCollective(id cluster.ResourceID, kind cluster.Kind, instances ...*cluster.Resource) *cluster.Resource {
	allowed := map[cluster.NodeID]*cluster.Node{}
	for _, inst := range instances {
		for nodeID := range inst.AllowedNodes {
			if _, ok := allowed[nodeID]; !ok {
				allowed[nodeID] = &cluster.Node{ID: nodeID, Score: 0, Live: AlwaysAvailable{}}
			}
		}
	}
	c := cluster.NewResource(id, kind, allowed)
	c.Flags = c.Flags.Set(cluster.ResourceManaged)
	c.Children = instances
	for _, inst := range instances {
		inst.Parent = c
	}
	return c
}
