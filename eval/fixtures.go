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

import "os"

// sampleTestQueries and sampleGroundtruth are starter fixtures for trying
// out the evaluator before real labeled data exists.
var sampleTestQueries = map[string]string{
	"query1": "I need a programming assessment for Java developers that takes less than 30 minutes",
	"query2": "Looking for personality assessments for team collaboration",
	"query3": "Need cognitive assessments for data analyst role",
	"query4": "Python coding test for senior developers",
	"query5": "SQL assessment for database administrators under 45 minutes",
}

var sampleGroundtruth = map[string][]string{
	"query1": {
		"SHL Coding Simulations - Java",
		"SHL Software Development Aptitude Test",
	},
	"query2": {
		"SHL OPQ - Occupational Personality Questionnaire",
		"SHL Teamwork Styles Assessment",
	},
	"query3": {
		"SHL Verify Interactive - Deductive Reasoning",
		"SHL Verify - Numerical Reasoning",
	},
	"query4": {"SHL Coding Simulations - Python"},
	"query5": {"SHL Coding Simulations - SQL"},
}

// EnsureSampleFixtures writes sample test queries and ground truth to the
// given paths unless files already exist there.
func EnsureSampleFixtures(testQueriesPath, groundtruthPath string) error {
	if _, err := os.Stat(testQueriesPath); os.IsNotExist(err) {
		if err := writeJSON(testQueriesPath, sampleTestQueries); err != nil {
			return err
		}
	}
	if _, err := os.Stat(groundtruthPath); os.IsNotExist(err) {
		if err := writeJSON(groundtruthPath, sampleGroundtruth); err != nil {
			return err
		}
	}
	return nil
}
