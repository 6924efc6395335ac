package campaign

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/abdulachik/adskit/internal/terms"
)

// ForbiddenAdGroupNames are generic labels that say nothing about what is sold.
var ForbiddenAdGroupNames = []string{
	"core offers",
	"high intent",
	"competitor",
	"general",
	"misc",
	"miscellaneous",
	"core products",
	"top category",
	"best sellers",
	"premium products",
	"new arrivals",
	"sale items",
}

// maxSharedHeadlines is how many identical headlines two ad groups may share.
const maxSharedHeadlines = 5

// maxKeywordShare is the largest share of a campaign's keywords one ad group may hold.
const maxKeywordShare = 0.8

// GateResult is the outcome of one quality gate.
type GateResult struct {
	Valid  bool
	Errors []string
}

func result(errs []string) GateResult {
	return GateResult{Valid: len(errs) == 0, Errors: errs}
}

// Merge folds gate results into a single error list, preserving order.
func Merge(results ...GateResult) GateResult {
	var errs []string
	for _, r := range results {
		errs = append(errs, r.Errors...)
	}
	return result(errs)
}

// CheckAdGroupNames rejects ad groups named after a forbidden generic label.
func CheckAdGroupNames(plan CampaignPlan) GateResult {
	var errs []string
	for _, c := range plan.Campaigns {
		for _, g := range c.AdGroups {
			if isForbiddenName(g.Name) {
				errs = append(errs, fmt.Sprintf("forbidden generic ad group name: %q", g.Name))
			}
		}
	}
	return result(errs)
}

func isForbiddenName(name string) bool {
	n := strings.ToLower(strings.TrimSpace(name))
	for _, f := range ForbiddenAdGroupNames {
		if n == f {
			return true
		}
	}
	return false
}

// CheckNegativeCount requires at least MinNegatives negative keywords.
func CheckNegativeCount(negatives []string) GateResult {
	if len(negatives) < MinNegatives {
		return result([]string{fmt.Sprintf("only %d negatives provided, minimum required: %d", len(negatives), MinNegatives)})
	}
	return result(nil)
}

// CheckBrandLeakage rejects any value whose JSON form mentions the store platform.
func CheckBrandLeakage(v any) GateResult {
	data, err := json.Marshal(v)
	if err != nil {
		return result([]string{"could not serialize output for leakage check: " + err.Error()})
	}
	if strings.Contains(strings.ToLower(string(data)), "shopify") {
		return result([]string{`output mentions "Shopify"`})
	}
	return result(nil)
}

// ConflictResult extends GateResult with the negatives that survive filtering.
type ConflictResult struct {
	GateResult
	Filtered  []string
	Conflicts []string
}

// CheckNegativeConflicts finds negatives that equal or contain a positive term.
// Filtered always holds the non-conflicting negatives in their original order.
func CheckNegativeConflicts(negatives, positive []string) ConflictResult {
	filtered := make([]string, 0, len(negatives))
	var conflicts []string
	for _, n := range negatives {
		if terms.Conflicts(n, positive) {
			conflicts = append(conflicts, n)
			continue
		}
		filtered = append(filtered, n)
	}

	var errs []string
	if len(conflicts) > 0 {
		shown := conflicts
		suffix := ""
		if len(shown) > 5 {
			shown = shown[:5]
			suffix = "..."
		}
		errs = append(errs, fmt.Sprintf("%d negatives conflict with positive terms: %s%s",
			len(conflicts), strings.Join(shown, ", "), suffix))
	}

	return ConflictResult{GateResult: result(errs), Filtered: filtered, Conflicts: conflicts}
}

// CheckStructure checks ad group balance, duplicates and emptiness per campaign.
func CheckStructure(plan CampaignPlan) GateResult {
	var errs []string
	for _, c := range plan.Campaigns {
		if len(c.AdGroups) == 0 {
			errs = append(errs, fmt.Sprintf("campaign %q has no ad groups", c.CampaignName))
			continue
		}

		names := make(map[string]bool, len(c.AdGroups))
		for _, g := range c.AdGroups {
			names[strings.ToLower(strings.TrimSpace(g.Name))] = true
		}
		if len(names) < len(c.AdGroups) {
			errs = append(errs, fmt.Sprintf("campaign %q has duplicate ad group names", c.CampaignName))
		}

		if IsNonBrand(c.CampaignName) && len(c.AdGroups) < 3 {
			errs = append(errs, fmt.Sprintf("campaign %q must have at least 3 ad groups, found %d", c.CampaignName, len(c.AdGroups)))
		}

		total := 0
		for _, g := range c.AdGroups {
			total += len(g.Keywords)
		}

		for _, g := range c.AdGroups {
			if len(g.Keywords) == 0 {
				errs = append(errs, fmt.Sprintf("ad group %q has no keywords", g.Name))
				continue
			}
			if len(g.Keywords) < MinKeywords {
				errs = append(errs, fmt.Sprintf("ad group %q has %d keywords, minimum required: %d", g.Name, len(g.Keywords), MinKeywords))
			}

			// A lone ad group owns all of its campaign's keywords by definition.
			if len(c.AdGroups) > 1 && total > 0 {
				share := float64(len(g.Keywords)) / float64(total)
				if share > maxKeywordShare {
					errs = append(errs, fmt.Sprintf("ad group %q holds %.0f%% of campaign keywords", g.Name, share*100))
				}
			}

			unique := make(map[string]bool, len(g.Keywords))
			for _, k := range g.Keywords {
				unique[strings.ToLower(strings.TrimSpace(k))] = true
			}
			if len(unique) < len(g.Keywords) {
				errs = append(errs, fmt.Sprintf("ad group %q has duplicate keywords", g.Name))
			}
		}
	}
	return result(errs)
}

// CheckCopyUniqueness compares every pair of ad copies and flags pairs sharing
// more than maxSharedHeadlines headlines (case-insensitive).
func CheckCopyUniqueness(copies []AdCopy) GateResult {
	lowered := make([]map[string]bool, len(copies))
	for i, c := range copies {
		set := make(map[string]bool, len(c.Headlines))
		for _, h := range c.Headlines {
			set[strings.ToLower(strings.TrimSpace(h))] = true
		}
		lowered[i] = set
	}

	var errs []string
	for i := range copies {
		for j := i + 1; j < len(copies); j++ {
			overlap := 0
			for h := range lowered[i] {
				if lowered[j][h] {
					overlap++
				}
			}
			if overlap > maxSharedHeadlines {
				errs = append(errs, fmt.Sprintf("ad groups %d and %d share %d/%d identical headlines",
					i+1, j+1, overlap, HeadlineCount))
			}
		}
	}
	return result(errs)
}
