package campaign

import (
	"fmt"
	"strings"
)

func sixKeywords(prefix string) []string {
	return []string{
		"buy " + prefix,
		prefix,
		"shop " + prefix,
		prefix + " online",
		"order " + prefix,
		prefix + " near me",
	}
}

func manyNegatives(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("negative %d", i)
	}
	return out
}

func validPlan() CampaignPlan {
	return CampaignPlan{
		Brand: "acme",
		Campaigns: []Campaign{
			{
				CampaignName: NonBrandCampaign,
				AdGroups: []AdGroup{
					{Name: "Leather Wallets", Keywords: sixKeywords("leather wallet")},
					{Name: "Leather Belts", Keywords: sixKeywords("leather belt")},
					{Name: "Card Holders", Keywords: sixKeywords("card holder")},
				},
			},
			{
				CampaignName: BrandCampaign,
				AdGroups: []AdGroup{
					{Name: BrandAdGroup, Keywords: sixKeywords("acme")},
				},
			},
		},
		Negatives: manyNegatives(MinNegatives),
	}
}

func headlines(prefix string) []string {
	out := make([]string, HeadlineCount)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return out
}

func validCopy() AdCopy {
	return AdCopy{
		FinalURL:  "https://acme.com/wallets",
		Headlines: headlines("Leather Wallet"),
		Descriptions: []string{
			"Handmade leather wallets shipped fast.",
			"Full grain leather with a lifetime of use.",
			"Order online and get free returns.",
			"Slim designs that fit every pocket.",
		},
	}
}

func repeat(s string, n int) string {
	return strings.Repeat(s, n)
}
