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

// Colocation is a pair (dependent, primary) with an integer score; +inf
// and -inf are mandatory (spec section 3).
type Colocation struct {
	ID        string
	Dependent *Resource
	Primary   *Resource
	Score     Score
	// Role, if non-empty, restricts which instance role of Primary this
	// constraint influences (used by HasInfluence).
	Role string
}

// Mandatory reports whether the constraint must be honored (+inf or
// -inf score) rather than merely preferred.
func (c *Colocation) Mandatory() bool {
	return c.Score.Mandatory()
}

// Negative reports whether the constraint actively forbids colocation.
func (c *Colocation) Negative() bool {
	return c.Score != ScorePosInf && (c.Score < 0 || c.Score == ScoreNegInf)
}
