package campaign

import (
	"strings"
	"unicode/utf8"
)

// SanitizePlan trims every string, lowercases and deduplicates keyword and
// negative lists, and merges ad groups that share a name within a campaign.
// It never fails.
func SanitizePlan(raw CampaignPlan) CampaignPlan {
	plan := CampaignPlan{
		Brand:     strings.TrimSpace(raw.Brand),
		Campaigns: make([]Campaign, 0, len(raw.Campaigns)),
		Negatives: normalizeList(raw.Negatives, 0),
	}

	for _, c := range raw.Campaigns {
		groups := make([]AdGroup, 0, len(c.AdGroups))
		for _, g := range c.AdGroups {
			groups = append(groups, AdGroup{
				Name:         strings.TrimSpace(g.Name),
				Keywords:     normalizeList(g.Keywords, MaxKeywords),
				FinalURLHint: strings.TrimSpace(g.FinalURLHint),
			})
		}
		plan.Campaigns = append(plan.Campaigns, Campaign{
			CampaignName: strings.TrimSpace(c.CampaignName),
			AdGroups:     mergeAdGroups(groups),
		})
	}

	return plan
}

// mergeAdGroups folds groups with the same case-insensitive name into the first
// occurrence, unioning their keywords up to MaxKeywords.
func mergeAdGroups(groups []AdGroup) []AdGroup {
	index := make(map[string]int, len(groups))
	merged := make([]AdGroup, 0, len(groups))

	for _, g := range groups {
		key := strings.ToLower(g.Name)
		if i, ok := index[key]; ok {
			existing := merged[i]
			keywords := append(append([]string{}, existing.Keywords...), g.Keywords...)
			existing.Keywords = normalizeList(keywords, MaxKeywords)
			if existing.FinalURLHint == "" {
				existing.FinalURLHint = g.FinalURLHint
			}
			merged[i] = existing
			continue
		}
		index[key] = len(merged)
		merged = append(merged, g)
	}

	if len(merged) > MaxAdGroups {
		merged = merged[:MaxAdGroups]
	}
	return merged
}

// SanitizeCopy trims ad copy and clips headlines and descriptions to their
// maximum lengths.
func SanitizeCopy(raw AdCopy) AdCopy {
	ad := AdCopy{
		FinalURL:     strings.TrimSpace(raw.FinalURL),
		Headlines:    make([]string, len(raw.Headlines)),
		Descriptions: make([]string, len(raw.Descriptions)),
	}
	for i, h := range raw.Headlines {
		ad.Headlines[i] = Truncate(strings.TrimSpace(h), MaxHeadlineLen)
	}
	for i, d := range raw.Descriptions {
		ad.Descriptions[i] = Truncate(strings.TrimSpace(d), MaxDescriptionLen)
	}
	return ad
}

// normalizeList trims, lowercases and deduplicates values, dropping empties.
// A positive limit caps the result.
func normalizeList(values []string, limit int) []string {
	seen := make(map[string]bool, len(values))
	out := make([]string, 0, len(values))
	for _, v := range values {
		n := strings.ToLower(strings.TrimSpace(v))
		if n == "" || seen[n] {
			continue
		}
		seen[n] = true
		out = append(out, n)
	}
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// Truncate clips s to at most maxLen runes.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	runes := []rune(s)
	return strings.TrimRight(string(runes[:maxLen]), " ")
}
