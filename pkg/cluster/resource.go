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

// Kind tags a Resource's variant. Dispatch over Kind uses a small set of
// capability-record interfaces (Ops) rather than a type hierarchy, per
// spec section 9: "Dispatch over variant ... as a capability record, not
// inheritance."
type Kind int

const (
	KindPrimitive Kind = iota
	KindGroup
	KindClone
	KindBundle
)

func (k Kind) String() string {
	switch k {
	case KindPrimitive:
		return "primitive"
	case KindGroup:
		return "group"
	case KindClone:
		return "clone"
	case KindBundle:
		return "bundle"
	default:
		return "unknown"
	}
}

// IsCollective reports whether the resource is a clone or bundle: a
// resource whose value is provided by N interchangeable instances.
func (k Kind) IsCollective() bool {
	return k == KindClone || k == KindBundle
}

// Resource is the tagged-variant data model from spec section 3:
// primitive, group, clone, or bundle.
type Resource struct {
	ID   ResourceID
	Kind Kind

	// Parent is a weak back-reference: lookup only, never ownership. The
	// parent owns Children, not the other way around (spec section 9).
	Parent *Resource
	// Children holds a clone's instances or a bundle's replica
	// containers; nil for primitives. A group is never itself a
	// collective assign_instances/create_instance_actions iterate as a
	// parent, but when a clone's instance is a group (a "cloned group")
	// that group instance carries its own member primitives here, which
	// CheckInstanceState (spec section 4.6) recurses into.
	Children []*Resource

	// AllowedNodes maps node id to this resource's own Node view: its
	// own score and its own running count on that node.
	AllowedNodes map[NodeID]*Node

	// RscCons are colocation constraints where this resource is the
	// dependent side ("this-with" list after propagation).
	RscCons []*Colocation
	// RscConsLHS are colocation constraints where this resource is the
	// primary side ("with-this" list after propagation).
	RscConsLHS []*Colocation

	Actions []*Action

	Flags ResourceFlag
	// Meta carries free-form resource metadata, notably the "interleave"
	// key that governs can_interleave (spec section 4.9.1).
	Meta map[string]string

	// Running is the node this instance is live on right now, as loaded
	// from cluster state; empty if it isn't running anywhere. Read-only
	// during the pass.
	Running NodeID
	// AssignedNode is the node chosen for this instance during the
	// current pass; meaningful only when Flags doesn't have
	// ResourceProvisional set.
	AssignedNode NodeID
}

// NewResource constructs a resource with its allowed-node table and an
// empty flag set; callers set flags (e.g. ResourceProvisional,
// ResourceManaged) afterward to match the loaded cluster state.
func NewResource(id ResourceID, kind Kind, allowed map[NodeID]*Node) *Resource {
	if allowed == nil {
		allowed = map[NodeID]*Node{}
	}
	return &Resource{
		ID:           id,
		Kind:         kind,
		AllowedNodes: allowed,
		Meta:         map[string]string{},
	}
}

// IsOrphan reports whether the resource is flagged orphan.
func (r *Resource) IsOrphan() bool {
	return r.Flags.Has(ResourceOrphan)
}

// IsProvisional reports whether the instance has not yet been assigned a
// node in this pass.
func (r *Resource) IsProvisional() bool {
	return r.Flags.Has(ResourceProvisional)
}

// IsAllocating reports whether the instance is currently being assigned;
// seeing this true re-entrantly indicates a colocation cycle.
func (r *Resource) IsAllocating() bool {
	return r.Flags.Has(ResourceAllocating)
}

// Assigned reports whether the instance currently has a chosen location:
// not provisional, and AssignedNode is set.
func (r *Resource) Assigned() bool {
	return !r.IsProvisional() && r.AssignedNode != ""
}

// Interleave reports the "interleave" meta flag used by can_interleave.
func (r *Resource) Interleave() bool {
	return r.Meta["interleave"] == "true"
}

// TopAllowedNode returns the parent's view of the given node id, or nil
// if the parent doesn't allow that node (or there is no parent). This is
// the "top_allowed_node" helper from spec section 6: a collective's view
// of per-node caps, as distinct from one instance's own allowed-node
// entry.
func TopAllowedNode(parent *Resource, id NodeID) *Node {
	if parent == nil {
		return nil
	}
	return parent.AllowedNodes[id]
}

// IsSetRecursive reports whether bits are set on r and, for collectives,
// also on every child. Spec section 4.8 uses this ("is not blocked-recursive")
// to check a flag across an instance and anything it contains.
func IsSetRecursive(r *Resource, bits ResourceFlag) bool {
	if r == nil {
		return false
	}
	if !r.Kind.IsCollective() {
		return r.Flags.Has(bits)
	}
	if !r.Flags.Has(bits) {
		return false
	}
	for _, c := range r.Children {
		if !IsSetRecursive(c, bits) {
			return false
		}
	}
	return true
}

// BundleContainers returns r's container list when r is a bundle, nil
// otherwise. For clones, the instance list is simply r.Children; bundle
// containers are kept as a distinct accessor (spec section 4.8/4.9.3)
// since bundles distinguish the container from the resource running
// inside it (GetRscInContainer).
func BundleContainers(r *Resource) []*Resource {
	if r == nil || r.Kind != KindBundle {
		return nil
	}
	return r.Children
}

// GetRscInContainer returns the inner resource running inside a bundle
// container, i.e. the resource whose actions actually execute on the
// bundle's guest node. In this core a bundle container's sole child (if
// any) plays that role.
func GetRscInContainer(container *Resource) *Resource {
	if container == nil || len(container.Children) == 0 {
		return nil
	}
	return container.Children[0]
}

// AddThisWith appends a colocation constraint to r's dependent-side
// ("this-with") list.
func AddThisWith(r *Resource, c *Colocation) {
	r.RscCons = append(r.RscCons, c)
}

// AddWithThis appends a colocation constraint to r's primary-side
// ("with-this") list.
func AddWithThis(r *Resource, c *Colocation) {
	r.RscConsLHS = append(r.RscConsLHS, c)
}
