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

import "testing"

func TestScoreAdd(t *testing.T) {
	cases := []struct {
		name     string
		a, b     Score
		expected Score
	}{
		{"finite plus finite", 10, 5, 15},
		{"finite plus negative", 10, -20, -10},
		{"plus inf wins over finite", ScorePosInf, 5, ScorePosInf},
		{"minus inf wins over finite", ScoreNegInf, 5, ScoreNegInf},
		{"plus inf plus plus inf", ScorePosInf, ScorePosInf, ScorePosInf},
		{"minus inf plus minus inf", ScoreNegInf, ScoreNegInf, ScoreNegInf},
		{"mandatory no beats mandatory yes", ScorePosInf, ScoreNegInf, ScoreNegInf},
		{"mandatory no beats mandatory yes, reversed", ScoreNegInf, ScorePosInf, ScoreNegInf},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.a.Add(tc.b); got != tc.expected {
				t.Errorf("%v.Add(%v) = %v, want %v", tc.a, tc.b, got, tc.expected)
			}
		})
	}
}

func TestScoreMandatory(t *testing.T) {
	if !ScorePosInf.Mandatory() {
		t.Error("+inf should be mandatory")
	}
	if !ScoreNegInf.Mandatory() {
		t.Error("-inf should be mandatory")
	}
	if Score(0).Mandatory() {
		t.Error("0 should not be mandatory")
	}
	if Score(100).Mandatory() {
		t.Error("100 should not be mandatory")
	}
}
