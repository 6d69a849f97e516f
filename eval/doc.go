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


// Package eval measures recommendation quality against labeled queries.
//
// Relevance is binary: a prediction counts when its assessment name
// appears in the ground-truth list for the query. Reported metrics are
// Recall@K, Precision@K and NDCG@K averaged over all test queries.
package eval
