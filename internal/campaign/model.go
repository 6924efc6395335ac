package campaign

import (
	"fmt"
	"net/url"
	"strings"
)

// Campaign names used by the plan prompt. Brand intent is encoded by name only.
const (
	NonBrandCampaign = "Search - NonBrand"
	BrandCampaign    = "Search - Brand"
	BrandAdGroup     = "Brand"
)

// PlaceholderBrand is used when no brand can be derived from the store URL.
const PlaceholderBrand = "YourBrand"

// Structural bounds of a campaign plan and its ad copy.
const (
	MinKeywords       = 6
	MaxKeywords       = 10
	MaxAdGroups       = 7
	MaxCampaigns      = 2
	MinNegatives      = 100
	HeadlineCount     = 15
	DescriptionCount  = 4
	MaxHeadlineLen    = 30
	MaxDescriptionLen = 90
)

// Input is what the caller supplies for one kit.
type Input struct {
	StoreURL    string `json:"storeUrl"`
	Description string `json:"description"`
	Country     string `json:"country"`
}

// Normalize returns a copy with surrounding whitespace removed.
func (in Input) Normalize() Input {
	return Input{
		StoreURL:    strings.TrimSpace(in.StoreURL),
		Description: strings.TrimSpace(in.Description),
		Country:     strings.TrimSpace(in.Country),
	}
}

// Validate checks that every field is present and the store URL is an absolute http(s) URL.
func (in Input) Validate() error {
	n := in.Normalize()

	var missing []string
	if n.StoreURL == "" {
		missing = append(missing, "storeUrl")
	}
	if n.Description == "" {
		missing = append(missing, "description")
	}
	if n.Country == "" {
		missing = append(missing, "country")
	}
	if len(missing) > 0 {
		return &InputError{Fields: missing}
	}

	u, err := url.Parse(n.StoreURL)
	if err != nil {
		return &InputError{Reason: "storeUrl is not a valid URL: " + err.Error()}
	}
	if (u.Scheme != "http" && u.Scheme != "https") || u.Hostname() == "" {
		return &InputError{Reason: fmt.Sprintf("storeUrl is not a valid URL: %q needs an http or https scheme and a host", n.StoreURL)}
	}

	return nil
}

// BrandFromURL infers a brand from the store's host name: "https://www.acme-leather.com" gives "acme-leather".
func BrandFromURL(raw string) string {
	u, err := url.Parse(strings.TrimSpace(raw))
	if err != nil || u.Hostname() == "" {
		return PlaceholderBrand
	}

	host := strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
	label, _, _ := strings.Cut(host, ".")
	if label == "" {
		return PlaceholderBrand
	}
	return label
}

// AdGroup is a themed keyword cluster in a generated plan.
type AdGroup struct {
	Name         string   `json:"name" validate:"required,max=80"`
	Keywords     []string `json:"keywords" validate:"required,min=6,max=10,dive,required"`
	FinalURLHint string   `json:"finalUrlHint,omitempty"`
}

// Campaign groups ad groups under one search intent.
type Campaign struct {
	CampaignName string    `json:"campaignName" validate:"required,max=100"`
	AdGroups     []AdGroup `json:"adGroups" validate:"required,min=1,max=7,dive"`
}

// CampaignPlan is the output of the plan phase.
type CampaignPlan struct {
	Brand     string     `json:"brand" validate:"required,max=100"`
	Campaigns []Campaign `json:"campaigns" validate:"required,min=1,max=2,dive"`
	Negatives []string   `json:"negatives" validate:"required,min=100,dive,required"`
}

// AdCopy is the output of the copy phase for one ad group.
type AdCopy struct {
	FinalURL     string   `json:"finalUrl" validate:"required"`
	Headlines    []string `json:"headlines" validate:"required,len=15,dive,required,max=30"`
	Descriptions []string `json:"descriptions" validate:"required,len=4,dive,required,max=90"`
}

// IsNonBrand reports whether a campaign name denotes non-brand intent.
func IsNonBrand(campaignName string) bool {
	n := strings.ToLower(campaignName)
	n = strings.NewReplacer(" ", "", "-", "", "_", "").Replace(n)
	return strings.Contains(n, "nonbrand")
}

// MatchType is a keyword matching strictness.
type MatchType string

const (
	MatchPhrase MatchType = "Phrase"
	MatchExact  MatchType = "Exact"
)

// Level is where a negative keyword is applied.
type Level string

const (
	LevelCampaign Level = "Campaign"
	LevelAdGroup  Level = "AdGroup"
)

// Keyword is a positive keyword with its match type.
type Keyword struct {
	Text      string
	MatchType MatchType
}

// NewKeyword normalizes value and alternates Phrase/Exact by position.
func NewKeyword(value string, index int) Keyword {
	mt := MatchPhrase
	if index%2 == 1 {
		mt = MatchExact
	}
	return Keyword{
		Text:      strings.ToLower(strings.TrimSpace(value)),
		MatchType: mt,
	}
}

// Keywords converts a list of keyword strings with alternating match types.
func Keywords(values []string) []Keyword {
	out := make([]Keyword, len(values))
	for i, v := range values {
		out[i] = NewKeyword(v, i)
	}
	return out
}

// AdGroupData is one flattened (campaign, ad group) row set.
type AdGroupData struct {
	CampaignName string
	Name         string
	Keywords     []Keyword
	FinalURL     string
}

// RsaAd is the responsive search ad for one ad group.
type RsaAd struct {
	CampaignName string
	AdGroupName  string
	FinalURL     string
	Headlines    []string
	Descriptions []string
}

// NegativeKeyword suppresses ads for matching queries.
type NegativeKeyword struct {
	Keyword   string
	MatchType MatchType
	Level     Level
}

// CampaignNegatives tags each entry as a campaign-level phrase negative.
func CampaignNegatives(values []string) []NegativeKeyword {
	out := make([]NegativeKeyword, len(values))
	for i, v := range values {
		out[i] = NegativeKeyword{Keyword: v, MatchType: MatchPhrase, Level: LevelCampaign}
	}
	return out
}

// ProcessedData is the normalized result handed to the kit assembler.
type ProcessedData struct {
	AdGroups  []AdGroupData
	RsaAds    []RsaAd
	Negatives []NegativeKeyword
	Brand     string
}
