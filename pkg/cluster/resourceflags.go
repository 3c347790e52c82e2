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

// ResourceFlag is the resource-level flag set described in spec section 3:
// orphan, provisional, allocating, managed, failed, block.
type ResourceFlag uint32

const (
	// ResourceOrphan marks a resource that no longer exists in the loaded
	// configuration. Orphans are never eligible for assignment.
	ResourceOrphan ResourceFlag = 1 << iota
	// ResourceProvisional marks an instance that has not yet been
	// assigned a node in this pass.
	ResourceProvisional
	// ResourceAllocating marks an instance currently being assigned;
	// seeing it set again on the same instance is a colocation cycle.
	ResourceAllocating
	// ResourceManaged marks a resource the cluster is allowed to act on.
	ResourceManaged
	// ResourceFailed marks a resource in a failed state.
	ResourceFailed
	// ResourceBlock marks a resource whose actions must not be scheduled.
	ResourceBlock
)

var resourceFlagNames = []flagEntry{
	{uint32(ResourceOrphan), "orphan"},
	{uint32(ResourceProvisional), "provisional"},
	{uint32(ResourceAllocating), "allocating"},
	{uint32(ResourceManaged), "managed"},
	{uint32(ResourceFailed), "failed"},
	{uint32(ResourceBlock), "block"},
}

func (f ResourceFlag) String() string {
	return flagString(uint32(f), resourceFlagNames)
}

// Has reports whether every bit in bits is set.
func (f ResourceFlag) Has(bits ResourceFlag) bool {
	return f&bits == bits
}

// Set returns f with bits set.
func (f ResourceFlag) Set(bits ResourceFlag) ResourceFlag {
	return f | bits
}

// Clear returns f with bits cleared.
func (f ResourceFlag) Clear(bits ResourceFlag) ResourceFlag {
	return f &^ bits
}
