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

import (
	"html/template"
	"net/http"
	"strings"
)

var dashboardTemplate = template.Must(template.New("dashboard").Parse(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>Assessment Recommender</title>
<style>
body { font-family: sans-serif; max-width: 960px; margin: 2em auto; padding: 0 1em; }
form { margin-bottom: 2em; }
input[type=text] { width: 100%; padding: 0.5em; margin: 0.25em 0 1em; }
table { border-collapse: collapse; width: 100%; }
th, td { border: 1px solid #ccc; padding: 0.5em; text-align: left; }
th { background: #f0f0f0; }
.notice { color: #a33; }
</style>
</head>
<body>
<h1>Assessment Recommender</h1>
<p>Describe the role or skills you are hiring for, or paste a job posting URL.</p>
<form method="get" action="/">
<label for="query">Query or job requirements</label>
<input type="text" id="query" name="query" value="{{.Query}}">
<label for="url">Job posting URL (optional)</label>
<input type="text" id="url" name="url" value="{{.URL}}">
<button type="submit">Find Relevant Assessments</button>
</form>
{{if .Message}}<p class="notice">{{.Message}}</p>{{end}}
{{if .Results}}
<h2>Recommended Assessments</h2>
<table>
<tr><th>Assessment Name</th><th>Remote Testing</th><th>Adaptive/IRT</th><th>Duration</th><th>Test Type</th></tr>
{{range .Results}}
<tr>
<td><a href="{{.URL}}" target="_blank" rel="noopener">{{.Name}}</a></td>
<td>{{.RemoteTesting}}</td>
<td>{{.AdaptiveIRT}}</td>
<td>{{.Duration}}</td>
<td>{{.TestType}}</td>
</tr>
{{end}}
</table>
{{end}}
</body>
</html>
`))

type dashboardData struct {
	Query   string
	URL     string
	Message string
	Results []assessmentView
}

func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	data := dashboardData{
		Query: strings.TrimSpace(r.URL.Query().Get("query")),
		URL:   strings.TrimSpace(r.URL.Query().Get("url")),
	}

	queryText := data.Query
	if data.URL != "" {
		pageText, err := s.pageText(r.Context(), data.URL)
		if err != nil {
			data.Message = "Could not read the job posting URL."
			s.renderDashboard(w, data)
			return
		}
		if queryText == "" {
			queryText = pageText
		} else {
			queryText = queryText + " " + pageText
		}
	}

	if len(queryText) >= minQueryLength {
		rec, err := s.engine.ProcessQuery(r.Context(), queryText, s.maxResults)
		switch {
		case err != nil:
			s.logger.Error("dashboard query failed", "err", err)
			data.Message = "Something went wrong while searching."
		case len(rec.Results) == 0:
			data.Message = "No relevant assessments found. Try different search terms."
		default:
			data.Results = newAssessmentViews(rec.Results)
		}
	} else if queryText != "" {
		data.Message = "Query must be at least 3 characters long."
	}

	s.renderDashboard(w, data)
}

func (s *Server) renderDashboard(w http.ResponseWriter, data dashboardData) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := dashboardTemplate.Execute(w, data); err != nil {
		s.logger.Error("failed to render dashboard", "err", err)
	}
}
