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

// Ordering is a pair (first, then) with a bitset of ordering kinds (spec
// section 3).
type Ordering struct {
	First *Action
	Then  *Action
	Kind  OrderKind
}

// OrderActions installs an ordering first -> then with kind, merging
// into an existing identical-pair ordering if one is already present
// instead of creating a duplicate. Returns the ordering and whether it
// is new or an existing pair gained a kind bit (so callers can fold that
// into updated_first/updated_then, spec
// section 4.9.2 step 5).
func OrderActions(first, then *Action, kind OrderKind) (*Ordering, bool) {
	for _, o := range first.AsFirst {
		if o.Then == then {
			before := o.Kind
			o.Kind |= kind
			return o, o.Kind != before
		}
	}
	o := &Ordering{First: first, Then: then, Kind: kind}
	first.AsFirst = append(first.AsFirst, o)
	then.AsThen = append(then.AsThen, o)
	return o, true
}
