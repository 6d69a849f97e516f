// Copyright 2025 Talentsift Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package eval

import "math"

// RecallAt returns the fraction of relevant items found in the top k
// predictions. Returns 0 when there are no relevant items.
func RecallAt(predicted, relevant []string, k int) float64 {
	if len(relevant) == 0 {
		return 0
	}
	return float64(hitsAt(predicted, relevant, k)) / float64(len(relevant))
}

// PrecisionAt returns the fraction of the top k predictions that are
// relevant. The denominator is the number of predictions actually made,
// not k. Returns 0 when there are no predictions.
func PrecisionAt(predicted, relevant []string, k int) float64 {
	considered := min(k, len(predicted))
	if considered == 0 {
		return 0
	}
	return float64(hitsAt(predicted, relevant, k)) / float64(considered)
}

// NDCGAt returns the normalized discounted cumulative gain of the top k
// predictions under binary relevance.
func NDCGAt(predicted, relevant []string, k int) float64 {
	relevantSet := toSet(relevant)

	dcg := 0.0
	for i, name := range head(predicted, k) {
		if relevantSet[name] {
			dcg += 1.0 / math.Log2(float64(i+2))
		}
	}

	idcg := 0.0
	for i := 0; i < min(k, len(relevant)); i++ {
		idcg += 1.0 / math.Log2(float64(i+2))
	}
	if idcg == 0 {
		return 0
	}
	return dcg / idcg
}

// hitsAt counts distinct relevant names among the top k predictions.
func hitsAt(predicted, relevant []string, k int) int {
	relevantSet := toSet(relevant)
	seen := make(map[string]bool, k)
	hits := 0
	for _, name := range head(predicted, k) {
		if relevantSet[name] && !seen[name] {
			seen[name] = true
			hits++
		}
	}
	return hits
}

func toSet(names []string) map[string]bool {
	set := make(map[string]bool, len(names))
	for _, name := range names {
		set[name] = true
	}
	return set
}

func head(names []string, k int) []string {
	if len(names) > k {
		return names[:k]
	}
	return names
}
