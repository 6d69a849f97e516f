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
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
	"github.com/talentsift/talentsift/core"
)

const (
	// DefaultCatalogURL is the product catalog page scraped by default.
	DefaultCatalogURL = "https://www.shl.com/solutions/products/product-catalog/view/account-manager-solution/"

	// DefaultDataPath is the default location of the JSON catalog cache.
	DefaultDataPath = "shl_catalog.json"

	defaultUserAgent = "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/119.0.0.0 Safari/537.36"
	defaultTimeout   = 30 * time.Second
)

// Selector cascade for locating product elements on the catalog page.
var productSelectors = []string{
	".product-item",
	".assessment-card",
	".product-card",
	".catalog-item",
	".test-product",
	".assessment-item",
	`div[data-product-type="assessment"]`,
}

var nameSelectors = []string{
	".product-name",
	".title",
	"h2",
	"h3",
	".card-title",
	"strong",
	".assessment-title",
}

var descriptionSelectors = []string{
	".product-description",
	".description",
	".card-text",
	"p",
	".summary",
	".assessment-desc",
}

var featureSelectors = []string{
	".product-features li",
	".details li",
	".features li",
	".specs li",
	"ul li",
	"dl dt, dl dd",
}

// Scraper fetches and parses the assessment catalog page.
type Scraper struct {
	url       string
	dataPath  string
	userAgent string
	client    *http.Client
	logger    *slog.Logger
}

// Option configures a Scraper.
type Option func(*Scraper)

// WithURL sets the catalog page URL.
func WithURL(u string) Option {
	return func(s *Scraper) {
		s.url = u
	}
}

// WithDataPath sets the JSON cache file location.
func WithDataPath(path string) Option {
	return func(s *Scraper) {
		s.dataPath = path
	}
}

// WithHTTPClient sets a custom HTTP client.
func WithHTTPClient(client *http.Client) Option {
	return func(s *Scraper) {
		if client != nil {
			s.client = client
		}
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(s *Scraper) {
		if logger == nil {
			logger = slog.Default()
		}
		s.logger = logger
	}
}

// NewScraper creates a catalog scraper.
func NewScraper(opts ...Option) *Scraper {
	s := &Scraper{
		url:       DefaultCatalogURL,
		dataPath:  DefaultDataPath,
		userAgent: defaultUserAgent,
		client:    &http.Client{Timeout: defaultTimeout},
		logger:    slog.Default().With("component", "catalog-scraper"),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// LoadData returns the cached catalog if present, scraping otherwise.
// The core treats any returned list uniformly regardless of freshness.
func (s *Scraper) LoadData(ctx context.Context) ([]*core.Assessment, error) {
	records, err := loadCatalogFile(s.dataPath)
	if err == nil {
		s.logger.Info("loaded catalog from cache", "path", s.dataPath, "count", len(records))
		return records, nil
	}
	s.logger.Info("catalog cache unavailable, scraping", "path", s.dataPath, "reason", err)
	return s.ScrapeCatalog(ctx)
}

// ScrapeCatalog fetches the catalog page, extracts assessment records and
// saves them to the JSON cache. Records missing a name or description are
// discarded.
func (s *Scraper) ScrapeCatalog(ctx context.Context) ([]*core.Assessment, error) {
	s.logger.Info("scraping product catalog", "url", s.url)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.url, nil)
	if err != nil {
		return nil, fmt.Errorf("building catalog request: %w", err)
	}
	req.Header.Set("User-Agent", s.userAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching catalog page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("%w: status %d", ErrCatalogFetch, resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing catalog page: %w", err)
	}

	elements := s.findProductElements(doc)
	if elements == nil {
		s.logger.Warn("no product elements found on catalog page")
		return nil, nil
	}

	var assessments []*core.Assessment
	elements.Each(func(_ int, sel *goquery.Selection) {
		a := s.extractAssessment(sel)
		if err := core.ValidateAssessment(a); err != nil {
			s.logger.Debug("skipping incomplete assessment", "name", a.Name, "err", err)
			return
		}
		core.Normalize(a)
		a.DurationMinutes = ParseDurationMinutes(a.Duration)
		a.Id = core.IDFromContent(a.Name)
		assessments = append(assessments, a)
	})

	if len(assessments) == 0 {
		s.logger.Warn("no complete assessments extracted")
		return nil, nil
	}

	if err := saveCatalogFile(s.dataPath, assessments); err != nil {
		// A failed cache write is not fatal; the scrape still succeeded.
		s.logger.Error("failed to save catalog cache", "path", s.dataPath, "err", err)
	} else {
		s.logger.Info("scraped catalog", "count", len(assessments), "path", s.dataPath)
	}

	return assessments, nil
}

// findProductElements locates product elements via the selector cascade,
// falling back to structural detection of repeated classed elements.
func (s *Scraper) findProductElements(doc *goquery.Document) *goquery.Selection {
	for _, selector := range productSelectors {
		found := doc.Find(selector)
		if found.Length() > 0 {
			s.logger.Info("found assessment elements", "selector", selector, "count", found.Length())
			return found
		}
	}

	s.logger.Info("attempting fallback extraction based on page layout")

	var fallback *goquery.Selection
	doc.Find("section, div.products, div.catalog, div.assessments").EachWithBreak(func(_ int, section *goquery.Selection) bool {
		grouped := make(map[string]*goquery.Selection)
		var order []string

		section.Find("div[class], article[class], li[class]").Each(func(_ int, item *goquery.Selection) {
			classKey, _ := item.Attr("class")
			if existing, ok := grouped[classKey]; ok {
				grouped[classKey] = existing.AddSelection(item)
			} else {
				grouped[classKey] = item
				order = append(order, classKey)
			}
		})

		for _, classKey := range order {
			if grouped[classKey].Length() >= 3 {
				s.logger.Info("fallback found potential elements", "class", classKey)
				fallback = grouped[classKey]
				return false
			}
		}
		return true
	})

	return fallback
}

// extractAssessment pulls one assessment record out of a product element.
func (s *Scraper) extractAssessment(sel *goquery.Selection) *core.Assessment {
	a := &core.Assessment{}

	for _, selector := range nameSelectors {
		name := strings.TrimSpace(sel.Find(selector).First().Text())
		if name != "" {
			a.Name = name
			break
		}
	}

	if href, ok := sel.Find("a[href]").First().Attr("href"); ok && href != "" {
		a.URL = s.resolveURL(href)
	}

	for _, selector := range descriptionSelectors {
		found := sel.Find(selector)
		if found.Length() == 0 {
			continue
		}
		var texts []string
		found.Each(func(_ int, desc *goquery.Selection) {
			if text := strings.TrimSpace(desc.Text()); text != "" {
				texts = append(texts, text)
			}
		})
		if len(texts) > 0 {
			a.Description = strings.Join(texts, " ")
			break
		}
	}

	s.extractFeatures(sel, a)

	return a
}

// extractFeatures scans the first non-empty feature list for duration,
// remote testing, adaptive/IRT and test type hints.
func (s *Scraper) extractFeatures(sel *goquery.Selection, a *core.Assessment) {
	for _, selector := range featureSelectors {
		features := sel.Find(selector)
		if features.Length() == 0 {
			continue
		}

		features.Each(func(_ int, feature *goquery.Selection) {
			text := strings.ToLower(strings.TrimSpace(feature.Text()))

			if containsAny(text, "remote testing", "remote", "online testing") {
				if containsAny(text, "yes", "available", "supported") {
					a.RemoteTesting = core.FlagYes
				} else {
					a.RemoteTesting = core.FlagNo
				}
			}
			if containsAny(text, "adaptive", "irt", "item response") {
				if containsAny(text, "yes", "available", "supported") {
					a.AdaptiveIRT = core.FlagYes
				} else {
					a.AdaptiveIRT = core.FlagNo
				}
			}
			if containsAny(text, "duration", "time", "minutes") {
				if m := durationTokenPattern.FindString(text); m != "" {
					a.Duration = m
				}
			}
			if containsAny(text, "type", "category", "assessment type") {
				if m := typeLabelPattern.FindStringSubmatch(text); m != nil {
					a.TestType = strings.TrimSpace(m[1])
				}
			} else if a.TestType == "" {
				// Guess the category from the feature wording
				switch {
				case containsAny(text, "cognitive", "aptitude", "reasoning", "ability"):
					a.TestType = "Cognitive Ability"
				case containsAny(text, "personality", "behavior", "trait"):
					a.TestType = "Personality & Behavior"
				case containsAny(text, "coding", "technical", "programming"):
					a.TestType = "Coding & Technical"
				case containsAny(text, "situation", "judgment", "skills"):
					a.TestType = "Situational & Skills"
				}
			}
		})

		return // first matching feature list only
	}
}

// resolveURL makes a scraped href absolute against the catalog origin.
func (s *Scraper) resolveURL(href string) string {
	if strings.HasPrefix(href, "http") {
		return href
	}
	base, err := url.Parse(s.url)
	if err != nil {
		return href
	}
	origin := base.Scheme + "://" + base.Host
	return origin + "/" + strings.TrimPrefix(href, "/")
}

func containsAny(text string, terms ...string) bool {
	for _, term := range terms {
		if strings.Contains(text, term) {
			return true
		}
	}
	return false
}
