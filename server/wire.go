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


package server

import "github.com/talentsift/talentsift/core"

// queryRequest is the POST /recommend request body. Either a query, a
// job posting URL, or both must be given.
type queryRequest struct {
	Query string `json:"query"`
	URL   string `json:"url" validate:"omitempty,url"`
}

// assessmentView is the wire shape of one recommendation. Missing
// catalog fields come out as "Unknown" so clients never branch on empty
// strings.
type assessmentView struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	RemoteTesting string `json:"remote_testing"`
	AdaptiveIRT   string `json:"adaptive_irt"`
	Duration      string `json:"duration"`
	TestType      string `json:"test_type"`
}

// recommendResponse is the POST /recommend success body.
type recommendResponse struct {
	Recommendations []assessmentView `json:"recommendations"`
}

// errorResponse matches the error body shape clients already parse.
type errorResponse struct {
	Detail string `json:"detail"`
}

func newAssessmentView(a *core.Assessment) assessmentView {
	return assessmentView{
		Name:          orDefault(a.Name, "Unknown"),
		URL:           orDefault(a.URL, "#"),
		RemoteTesting: orDefault(a.RemoteTesting, "Unknown"),
		AdaptiveIRT:   orDefault(a.AdaptiveIRT, "Unknown"),
		Duration:      orDefault(a.Duration, "Unknown"),
		TestType:      orDefault(a.TestType, "Unknown"),
	}
}

func newAssessmentViews(results []*core.SearchResult) []assessmentView {
	views := make([]assessmentView, len(results))
	for i, r := range results {
		views[i] = newAssessmentView(r.Assessment)
	}
	return views
}

func orDefault(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
