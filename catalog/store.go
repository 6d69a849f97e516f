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


package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"

	"github.com/talentsift/talentsift/core"
)

// catalogRecord is the JSON cache shape. Field names follow the historical
// snake_case cache format so existing cache files keep working.
type catalogRecord struct {
	Name          string `json:"name"`
	URL           string `json:"url"`
	Description   string `json:"description"`
	Duration      string `json:"duration"`
	RemoteTesting string `json:"remote_testing"`
	AdaptiveIRT   string `json:"adaptive_irt"`
	TestType      string `json:"test_type"`
}

// loadCatalogFile reads the JSON catalog cache.
// Records missing a name or description are discarded.
func loadCatalogFile(path string) ([]*core.Assessment, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var records []catalogRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parsing catalog cache %s: %w", path, err)
	}

	assessments := make([]*core.Assessment, 0, len(records))
	for _, r := range records {
		a := &core.Assessment{
			Name:          r.Name,
			URL:           r.URL,
			Description:   r.Description,
			Duration:      r.Duration,
			RemoteTesting: r.RemoteTesting,
			AdaptiveIRT:   r.AdaptiveIRT,
			TestType:      r.TestType,
		}
		if core.ValidateAssessment(a) != nil {
			continue
		}
		core.Normalize(a)
		a.DurationMinutes = ParseDurationMinutes(a.Duration)
		a.Id = core.IDFromContent(a.Name)
		assessments = append(assessments, a)
	}

	return assessments, nil
}

// saveCatalogFile writes the JSON catalog cache, creating parent directories
// as needed.
func saveCatalogFile(path string, assessments []*core.Assessment) error {
	records := make([]catalogRecord, len(assessments))
	for i, a := range assessments {
		records[i] = catalogRecord{
			Name:          a.Name,
			URL:           a.URL,
			Description:   a.Description,
			Duration:      a.Duration,
			RemoteTesting: a.RemoteTesting,
			AdaptiveIRT:   a.AdaptiveIRT,
			TestType:      a.TestType,
		}
	}

	data, err := json.MarshalIndent(records, "", "  ")
	if err != nil {
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	return os.WriteFile(path, data, 0644)
}
