package terms

import (
	"strings"
)

// ProductTypes are product nouns a store typically sells.
var ProductTypes = []string{
	"table", "tables", "desk", "desks", "chair", "chairs",
	"bowl", "bowls", "board", "boards",
	"cutting board", "serving board", "charcuterie board",
	"jewelry", "necklace", "necklaces", "bracelet", "bracelets",
	"earring", "earrings", "ring", "rings", "pendant", "pendants",
	"furniture", "decor", "art", "sculpture", "vase", "lamp", "lighting",
	"mirror", "frame", "coaster", "coasters", "tray", "trays",
}

// Materials are raw materials products are made from.
var Materials = []string{
	"wood", "wooden", "oak", "walnut", "maple", "cherry", "mahogany",
	"pine", "cedar", "bamboo", "teak", "epoxy", "resin",
	"metal", "steel", "brass", "copper", "aluminum",
	"glass", "ceramic", "stone", "marble", "granite",
	"leather", "fabric", "canvas",
}

// Craftsmanship describes how products are made.
var Craftsmanship = []string{
	"handmade", "handcrafted", "handcarved", "hand carved",
	"artisan", "artisanal", "craft", "crafted",
	"custom", "customized", "personalized", "bespoke",
	"unique", "one of a kind", "made to order",
	"hand turned", "hand finished",
}

// Styles are style words that are often part of a brand's positioning.
var Styles = []string{
	"rustic", "modern", "contemporary", "vintage", "industrial",
	"minimalist", "farmhouse", "bohemian", "scandinavian", "mid century",
	"traditional", "elegant", "luxury", "premium",
}

// Vocabulary returns all known terms in a stable order.
func Vocabulary() []string {
	all := make([]string, 0, len(ProductTypes)+len(Materials)+len(Craftsmanship)+len(Styles))
	all = append(all, ProductTypes...)
	all = append(all, Materials...)
	all = append(all, Craftsmanship...)
	return append(all, Styles...)
}

// Extract returns the known terms that occur in the description.
// Matching is a case-insensitive substring test, so "earrings" also yields "ring".
func Extract(description string) []string {
	desc := strings.ToLower(description)
	if strings.TrimSpace(desc) == "" {
		return []string{}
	}

	seen := make(map[string]bool)
	found := make([]string, 0)
	for _, term := range Vocabulary() {
		if seen[term] {
			continue
		}
		if strings.Contains(desc, term) {
			seen[term] = true
			found = append(found, term)
		}
	}

	return found
}

// Conflicts reports whether a keyword equals or contains any of the given terms.
func Conflicts(keyword string, positive []string) bool {
	normalized := strings.ToLower(strings.TrimSpace(keyword))
	if normalized == "" {
		return false
	}
	for _, term := range positive {
		t := strings.ToLower(strings.TrimSpace(term))
		if t == "" {
			continue
		}
		if normalized == t || strings.Contains(normalized, t) {
			return true
		}
	}
	return false
}

// FilterConflicts returns keywords that do not conflict with any positive term.
func FilterConflicts(keywords, positive []string) []string {
	result := make([]string, 0, len(keywords))
	for _, kw := range keywords {
		if !Conflicts(kw, positive) {
			result = append(result, kw)
		}
	}
	return result
}
