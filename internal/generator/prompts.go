package generator

import (
	"fmt"
	"strings"
)

// SystemCampaignPlan is the system prompt for the plan phase.
const SystemCampaignPlan = `You are a senior Google Ads strategist specializing in high-performing Search campaigns.

CRITICAL RULES:
- Return ONLY valid JSON. No markdown, no code fences, no commentary.
- Infer the brand name from the website URL.
- Generate TWO campaigns: "Search - NonBrand" and "Search - Brand".
- NonBrand campaign must have 4-7 ad groups based on REAL product categories, services, or customer intent inferred from the business description.
- Brand campaign must have 1 ad group named "Brand" with brand-related keywords.
- FORBIDDEN ad group names: "Core Offers", "High Intent", "Competitor", "General", "Misc", "Miscellaneous", "Core Products", "Top Category", "Premium Products", "Best Sellers", "New Arrivals", "Sale Items". Use REAL product category names only (e.g., "Epoxy River Tables", "Wood Serving Boards", "Resin Jewelry").
- Each ad group must have 6-10 unique keywords with buyer intent modifiers: buy, shop, order, price, online, near me, gift.
- NO informational keywords: how to, tutorial, guide, what is, meaning, ideas, DIY.
- Include 100+ negative keywords covering: free, cheap, discount, coupon, DIY, how-to, tutorial, pattern, template, jobs, careers, wholesale, supplier, manufacturer, distributor, amazon, ebay, aliexpress, temu, walmart, target, reviews, images, meaning, definition, ideas, used, second hand, repair, rental.
- CRITICAL: Do NOT include any product-related terms, materials, or craftsmanship descriptors in negatives.
- Do NOT mention "Shopify" anywhere in the output.
- Optionally include finalUrlHint for category pages if confident.

OUTPUT SCHEMA:
{
  "brand": "Brand Name",
  "campaigns": [
    {
      "campaignName": "Search - NonBrand",
      "adGroups": [
        {"name": "Real Product Category Name", "keywords": ["keyword 1", "keyword 2"], "finalUrlHint": "optional URL"}
      ]
    },
    {
      "campaignName": "Search - Brand",
      "adGroups": [
        {"name": "Brand", "keywords": ["brand", "brand store", "brand official"]}
      ]
    }
  ],
  "negatives": ["negative1", "negative2"]
}`

// SystemAdCopy is the system prompt for the copy phase.
const SystemAdCopy = `You are a Google Ads copywriter specializing in policy-compliant Responsive Search Ads.

CRITICAL RULES:
- Return ONLY valid JSON. No markdown, no code fences, no commentary.
- Generate UNIQUE copy for this specific ad group that reflects its category or theme.
- At least 6 of the 15 headlines must clearly reference the ad group's category or theme.
- Generate exactly 15 headlines, each 30 characters or less.
- Generate exactly 4 descriptions, each 90 characters or less.
- NO generic fluff: avoid "Trusted by thousands", "Best selection", "Quality guaranteed", "Top-rated", "No.1".
- NO policy violations: avoid superlatives like "#1", "best ever", "guaranteed results".
- NO excessive punctuation (!!!, ???) or ALL CAPS.
- For Brand ad groups, use navigational copy ("Official", "Shop the Collection").
- Do NOT mention "Shopify" anywhere.
- Include finalUrl (use the base URL if no specific category page is known).

OUTPUT SCHEMA:
{
  "finalUrl": "https://example.com/category",
  "headlines": ["headline 1", "headline 2"],
  "descriptions": ["description 1", "description 2", "description 3", "description 4"]
}`

// RepairSuffix is appended to the user prompt on every retry.
const RepairSuffix = `The previous response was not valid JSON or violated constraints. Fix all issues:
- Use ONLY real product category names (no "Core Offers", "High Intent", "Competitor", "General", "Misc", "Premium Products", "Best Sellers", "New Arrivals", "Sale Items")
- Ensure 100+ negative keywords
- Do NOT include product-related terms, materials, or craftsmanship descriptors in negatives
- Ensure ad copy is unique per ad group
- Remove any "Shopify" mentions
- Return ONLY valid JSON with no markdown or commentary.`

const campaignPlanTemplate = `Website: %s
Business Description: %s
Target Country: %s

IMPORTANT: This business's core products/services involve these terms: %s
Never place any of these terms, or any phrase containing them, in the negative keywords list.

Generate a complete Google Ads Search campaign plan as strict JSON following the schema above.
Infer the brand name from the URL domain.
Create REAL product category ad groups for NonBrand (4-7 groups) using specific product types from the description, NOT generic labels like "Premium Products" or "Best Sellers".
Create the Brand campaign with brand variants.
Include at least 100 negative keywords.
Focus on high-intent buyer keywords.
Return ONLY the JSON object, nothing else.`

const adCopyTemplate = `Website: %s
Business: %s
Campaign: %s
Ad Group: %s
Keywords: %s

Generate UNIQUE RSA ad copy for this specific ad group as strict JSON following the schema above.
Copy must be different from other ad groups and reflect this category.
At least 6 headlines must reference the ad group's category.
Headlines must be 30 characters or less and descriptions 90 characters or less.
Include finalUrl.
Return ONLY the JSON object, nothing else.`

// CampaignPlanPrompt builds the plan-phase user prompt.
func CampaignPlanPrompt(storeURL, description, country string, positiveTerms []string) string {
	listed := "(none detected)"
	if len(positiveTerms) > 0 {
		listed = strings.Join(positiveTerms, ", ")
	}
	return fmt.Sprintf(campaignPlanTemplate, storeURL, description, country, listed)
}

// AdCopyPrompt builds the copy-phase user prompt for one ad group.
func AdCopyPrompt(campaignName, adGroupName string, keywords []string, storeURL, description string) string {
	return fmt.Sprintf(adCopyTemplate, storeURL, description, campaignName, adGroupName, strings.Join(keywords, ", "))
}

// withRepair appends RepairSuffix to prompt for every attempt after the first.
func withRepair(prompt string, attempt int) string {
	if attempt == 0 {
		return prompt
	}
	return prompt + "\n\n" + RepairSuffix
}
