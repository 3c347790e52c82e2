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

import (
	"context"
	"testing"

	"github.com/clusterkit/rscsched/pkg/cluster"
	"github.com/clusterkit/rscsched/pkg/clustertest"
)

func newEligibleInstance() (*cluster.Resource, *cluster.Resource) {
	node := clustertest.NewNode("n1", 0)
	allowed := clustertest.NodeTable(node)
	instance := clustertest.NewManagedInstance("i1", cluster.KindClone, allowed)
	collective := clustertest.NewCollective("C", cluster.KindClone, instance)
	return instance, collective
}

func TestEligibleBaseline(t *testing.T) {
	instance, collective := newEligibleInstance()
	node := instance.AllowedNodes["n1"]
	if !Eligible(context.Background(), instance, node, 1) {
		t.Fatal("a plain instance on a fresh node under cap should be eligible")
	}
	_ = collective
}

func TestEligibleOrphanRejected(t *testing.T) {
	instance, _ := newEligibleInstance()
	instance.Flags = instance.Flags.Set(cluster.ResourceOrphan)
	node := instance.AllowedNodes["n1"]
	if Eligible(context.Background(), instance, node, 1) {
		t.Fatal("an orphan instance must never be eligible")
	}
}

func TestEligibleUnavailableNodeRejected(t *testing.T) {
	instance, _ := newEligibleInstance()
	node := &cluster.Node{ID: "n1", Score: 0, Live: clustertest.Unavailable{}}
	if Eligible(context.Background(), instance, node, 1) {
		t.Fatal("an unavailable node must never be eligible")
	}
}

func TestEligibleMissingParentViewRejected(t *testing.T) {
	instance, _ := newEligibleInstance()
	instance.Parent = nil
	node := instance.AllowedNodes["n1"]
	if Eligible(context.Background(), instance, node, 1) {
		t.Fatal("a node the parent has no view of must never be eligible")
	}
}

func TestEligibleNegativeParentWeightRejected(t *testing.T) {
	instance, collective := newEligibleInstance()
	collective.AllowedNodes["n1"].Score = -1
	node := instance.AllowedNodes["n1"]
	if Eligible(context.Background(), instance, node, 1) {
		t.Fatal("a node the parent scores negatively must never be eligible")
	}
}

func TestEligibleCapReachedRejected(t *testing.T) {
	instance, collective := newEligibleInstance()
	collective.AllowedNodes["n1"].Count = 1
	node := instance.AllowedNodes["n1"]
	if Eligible(context.Background(), instance, node, 1) {
		t.Fatal("a node already at max_per_node must never be eligible")
	}
}
