package kit

import (
	"cmp"
	"fmt"
	"slices"
	"strings"

	"github.com/abdulachik/adskit/internal/campaign"
)

// Quote wraps a field in double quotes, doubling any quotes inside it.
func Quote(value string) string {
	return `"` + strings.ReplaceAll(value, `"`, `""`) + `"`
}

func row(fields ...string) string {
	quoted := make([]string, len(fields))
	for i, f := range fields {
		quoted[i] = Quote(f)
	}
	return strings.Join(quoted, ",")
}

type keywordRow struct {
	campaign, adGroup, keyword string
	matchType                  campaign.MatchType
}

// KeywordsCSV renders one row per keyword, sorted by campaign, ad group and keyword.
func KeywordsCSV(groups []campaign.AdGroupData) string {
	var rows []keywordRow
	for _, g := range groups {
		for _, k := range g.Keywords {
			rows = append(rows, keywordRow{g.CampaignName, g.Name, k.Text, k.MatchType})
		}
	}

	slices.SortStableFunc(rows, func(a, b keywordRow) int {
		return cmp.Or(
			cmp.Compare(a.campaign, b.campaign),
			cmp.Compare(a.adGroup, b.adGroup),
			cmp.Compare(a.keyword, b.keyword),
		)
	})

	lines := make([]string, 0, len(rows)+1)
	lines = append(lines, "Campaign,Ad Group,Keyword,Match Type")
	for _, r := range rows {
		lines = append(lines, row(r.campaign, r.adGroup, r.keyword, string(r.matchType)))
	}
	return strings.Join(lines, "\n")
}

func rsaHeader() string {
	cols := []string{"Campaign", "Ad Group", "Final URL"}
	for i := 1; i <= campaign.HeadlineCount; i++ {
		cols = append(cols, fmt.Sprintf("Headline %d", i))
	}
	for i := 1; i <= campaign.DescriptionCount; i++ {
		cols = append(cols, fmt.Sprintf("Description %d", i))
	}
	return strings.Join(cols, ",")
}

// RsaCSV renders one row per ad, sorted by campaign then ad group. Missing
// headlines and descriptions are written as empty fields.
func RsaCSV(ads []campaign.RsaAd) string {
	sorted := slices.Clone(ads)
	slices.SortStableFunc(sorted, func(a, b campaign.RsaAd) int {
		return cmp.Or(
			cmp.Compare(a.CampaignName, b.CampaignName),
			cmp.Compare(a.AdGroupName, b.AdGroupName),
		)
	})

	lines := make([]string, 0, len(sorted)+1)
	lines = append(lines, rsaHeader())
	for _, ad := range sorted {
		fields := []string{ad.CampaignName, ad.AdGroupName, ad.FinalURL}
		fields = append(fields, pad(ad.Headlines, campaign.HeadlineCount)...)
		fields = append(fields, pad(ad.Descriptions, campaign.DescriptionCount)...)
		lines = append(lines, row(fields...))
	}
	return strings.Join(lines, "\n")
}

func pad(values []string, n int) []string {
	out := make([]string, n)
	copy(out, values)
	return out
}

// NegativesCSV renders negatives in the order given.
func NegativesCSV(negatives []campaign.NegativeKeyword) string {
	lines := make([]string, 0, len(negatives)+1)
	lines = append(lines, "Negative Keyword,Match Type,Level")
	for _, n := range negatives {
		lines = append(lines, row(n.Keyword, string(n.MatchType), string(n.Level)))
	}
	return strings.Join(lines, "\n")
}
