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


// Package catalog acquires assessment records from the vendor's product
// catalog page.
//
// The page carries no stable markup contract, so extraction works through a
// cascade of known selectors with a structural fallback: any group of three
// or more sibling elements sharing a class is treated as a candidate product
// list. Scraped records are cached as JSON on disk; LoadData prefers the
// cache and scrapes only when it is absent.
package catalog
