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

// OrderKind is the bitset of ordering kinds an Ordering can carry, e.g.
// runnable_left, implies_then, optional (spec section 3).
type OrderKind uint32

const (
	// OrderRunnableLeft means "then" only becomes runnable once "first"
	// is runnable; an unsatisfiable "first" forces "then" down too.
	OrderRunnableLeft OrderKind = 1 << iota
	// OrderImpliesThen means "first" happening mandates "then" happens.
	OrderImpliesThen
	// OrderOptional marks the ordering itself as advisory, not mandatory.
	OrderOptional
)

var orderKindNames = []flagEntry{
	{uint32(OrderRunnableLeft), "runnable_left"},
	{uint32(OrderImpliesThen), "implies_then"},
	{uint32(OrderOptional), "optional"},
}

func (k OrderKind) String() string {
	return flagString(uint32(k), orderKindNames)
}

func (k OrderKind) Has(bits OrderKind) bool {
	return k&bits == bits
}

func (k OrderKind) HasAny(bits OrderKind) bool {
	return k&bits != 0
}
