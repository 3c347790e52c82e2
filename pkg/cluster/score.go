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

import "math"

// Score is an integer weight with distinguished mandatory-yes (+inf) and
// mandatory-no (-inf) sentinels. Node weights, colocation constraint
// scores, and per-node instance scores are all expressed as Score.
type Score int32

const (
	// ScorePosInf is a mandatory-yes score: the node (or colocation) must
	// be chosen if eligibility otherwise allows it.
	ScorePosInf Score = math.MaxInt32
	// ScoreNegInf is a mandatory-no score: the node (or colocation) must
	// never be chosen.
	ScoreNegInf Score = math.MinInt32
)

// Add combines two scores, saturating at the infinities rather than
// overflowing past them. Either operand being infinite dominates the
// result, matching the original scheduler's pcmk__add_scores behavior.
func (s Score) Add(other Score) Score {
	if s == ScorePosInf || other == ScorePosInf {
		if s == ScoreNegInf || other == ScoreNegInf {
			// Mandatory yes and mandatory no collide; mandatory no wins,
			// since a -inf veto must never be overridden by addition.
			return ScoreNegInf
		}
		return ScorePosInf
	}
	if s == ScoreNegInf || other == ScoreNegInf {
		return ScoreNegInf
	}
	sum := int64(s) + int64(other)
	if sum >= int64(ScorePosInf) {
		return ScorePosInf
	}
	if sum <= int64(ScoreNegInf) {
		return ScoreNegInf
	}
	return Score(sum)
}

// Mandatory reports whether the score is one of the two infinities.
func (s Score) Mandatory() bool {
	return s == ScorePosInf || s == ScoreNegInf
}
