package generator

import (
	"fmt"
	"strings"

	"github.com/abdulachik/adskit/internal/campaign"
	"github.com/abdulachik/adskit/internal/terms"
)

// category is one non-brand ad group template.
type category struct {
	name     string
	keywords []string
}

// categorySet is chosen when the description mentions any of its hints.
type categorySet struct {
	hints      []string
	categories []category
}

var categorySets = []categorySet{
	{
		hints: []string{"furniture", "table", "desk", "chair"},
		categories: []category{
			{"Living Room Furniture", []string{"buy living room furniture", "living room furniture", "shop furniture online", "furniture store online", "order furniture online", "furniture near me"}},
			{"Dining Tables", []string{"buy dining table", "dining table", "shop dining tables", "dining room table", "buy table online", "dining tables for sale"}},
			{"Office Desks", []string{"buy office desk", "office desk", "shop desks online", "desk for home office", "buy desk online", "work desk"}},
			{"Home Decor", []string{"buy home decor", "home decor", "shop decor online", "home accessories", "decorative items", "home decor online"}},
		},
	},
	{
		hints: []string{"jewelry", "necklace", "earring", "ring"},
		categories: []category{
			{"Necklaces", []string{"buy necklace online", "necklace", "shop necklaces", "necklaces for women", "pendant necklace", "buy necklaces online"}},
			{"Earrings", []string{"buy earrings online", "earrings", "shop earrings", "earrings for women", "buy earrings", "earrings online"}},
			{"Rings", []string{"buy ring online", "ring", "shop rings", "rings for women", "buy rings online", "statement ring"}},
			{"Bracelets", []string{"buy bracelet online", "bracelet", "shop bracelets", "bracelets for women", "buy bracelets", "bracelets online"}},
		},
	},
	{
		hints: []string{"bowl", "board", "kitchenware"},
		categories: []category{
			{"Serving Boards", []string{"buy serving board", "serving board", "shop serving boards", "charcuterie board", "buy charcuterie board", "serving boards online"}},
			{"Cutting Boards", []string{"buy cutting board", "cutting board", "shop cutting boards", "chopping board", "buy chopping board", "cutting boards online"}},
			{"Kitchen Bowls", []string{"buy kitchen bowls", "kitchen bowls", "shop serving bowls", "decorative bowls", "buy bowls online", "bowls for kitchen"}},
			{"Kitchen Accessories", []string{"buy kitchen accessories", "kitchen accessories", "shop kitchenware", "kitchen items", "buy kitchenware online", "kitchen accessories online"}},
		},
	},
}

var genericCategories = []category{
	{"Featured Collection", []string{"buy online", "shop online", "buy products online", "online store", "shop products", "order online"}},
	{"Gift Ideas", []string{"buy gift online", "gift ideas", "shop gifts", "gifts online", "buy gifts", "gift shop online"}},
	{"Special Occasions", []string{"buy special gift", "special occasion gifts", "shop occasion gifts", "gifts for events", "buy occasion gift", "celebration gifts"}},
	{"Custom Orders", []string{"buy custom online", "custom orders", "shop custom products", "custom made", "order custom", "custom products online"}},
}

// fallbackNegatives is filtered against the description's positive terms before use.
var fallbackNegatives = []string{
	"free", "cheap", "discount code", "coupon", "promo code", "voucher",
	"clearance", "liquidation", "closeout",
	"diy", "how to", "how to make", "tutorial", "guide", "pattern", "template",
	"blueprint", "plan", "plans", "instructions", "step by step",
	"job", "jobs", "career", "careers", "employment", "hiring", "vacancy", "positions",
	"work from home", "salary", "internship", "volunteer",
	"wholesale", "supplier", "manufacturer", "distributor", "bulk", "bulk order", "trade", "b2b",
	"amazon", "ebay", "aliexpress", "temu", "walmart", "target", "etsy", "wayfair", "overstock",
	"craigslist", "facebook marketplace",
	"review", "reviews", "rating", "ratings", "testimonial", "feedback",
	"image", "images", "photo", "photos", "pic", "pics", "picture", "pictures", "gallery",
	"video", "videos", "youtube",
	"meaning", "definition", "what is", "what are", "wiki", "wikipedia",
	"ideas", "inspiration", "examples", "sample", "samples",
	"used", "second hand", "secondhand", "pre owned", "refurbished", "reconditioned",
	"repair", "repairs", "fix", "fixing", "broken", "damaged", "replacement parts", "parts",
	"manual", "diagram", "schematic", "drawing",
	"printable", "coloring", "svg", "clipart", "3d model",
	"rent", "rental", "rentals", "lease", "leasing", "hire",
	"affiliate", "reseller", "dropship", "dropshipping",
	"pdf", "download", "torrent", "cracked", "nulled", "pirated",
	"comparison", "compare", "vs", "versus", "alternative", "alternatives",
	"workshop", "class", "classes", "course", "courses", "training", "certification",
	"blog", "article", "news", "forum", "reddit", "pinterest",
	"kit", "kits",
}

// Headline templates; %[1]s is the ad group name and %[2]s the brand.
// Templates that render longer than the headline limit are skipped.
var categoryHeadlines = []string{
	"Shop %[1]s",
	"%[1]s Online",
	"Buy %[1]s",
	"Explore %[1]s",
	"Discover %[1]s",
	"Browse %[1]s",
	"Quality %[1]s",
	"%[1]s by %[2]s",
	"Order %[1]s Today",
	"New %[1]s Styles",
	"Handpicked %[1]s",
	"%[1]s Delivered",
	"Find Your %[1]s",
	"%[1]s Made to Last",
	"%[1]s for Every Style",
}

var brandHeadlines = []string{
	"Official %[2]s Store",
	"%[2]s - Shop Direct",
	"Buy from %[2]s",
	"%[2]s Website",
	"%[2]s Official Site",
	"Shop %[2]s Collection",
	"%[2]s Products",
	"%[2]s Online Store",
	"Genuine %[2]s",
	"%[2]s - Authentic",
	"%[2]s Direct",
	"Visit %[2]s Store",
	"%[2]s Official Shop",
	"%[2]s - Order Now",
	"Shop %[2]s Online",
	"Official Online Store",
	"Shop Direct From Us",
	"Visit Our Official Site",
	"Order From the Maker",
	"Our Full Collection",
	"Shop the Official Range",
	"Buy Direct Online",
	"Authentic Products",
}

// paddingHeadlines fill groups whose templated headlines do not reach
// HeadlineCount. Each group starts at a different offset.
var paddingHeadlines = []string{
	"Secure Checkout",
	"Fast Shipping Available",
	"Easy Returns",
	"Shop the Collection",
	"Order Online Today",
	"Browse the Catalog",
	"Fresh Designs Added",
	"Carefully Made Pieces",
	"Gift Ready Packaging",
	"Thoughtful Gift Ideas",
	"Made With Care",
	"Friendly Support",
	"Shop Securely Online",
	"Ships Fast",
	"Find the Right Fit",
	"Pieces You Will Love",
	"Order in Minutes",
	"Simple Checkout",
	"Everyday Favorites",
	"Designed to Last",
}

var categoryDescriptions = []string{
	"Shop %[3]s from %[2]s. Secure checkout and easy returns.",
	"Browse our %[3]s and order online today with reliable delivery.",
	"Discover %[3]s made with care, for yourself or as a gift.",
	"Order %[3]s directly from %[2]s with friendly support.",
}

var brandDescriptions = []string{
	"Shop the official %[2]s collection. Authentic products with fast shipping.",
	"Buy directly from %[2]s. Secure checkout and reliable customer service.",
	"Official %[2]s store online. Browse our full collection and order today.",
	"%[2]s products delivered fast. Order from the official store.",
}

// Fallback builds complete kit data from templates without any network access.
// The non-brand categories come from the first hint set the description
// mentions, and a Brand group is always appended.
func Fallback(in campaign.Input) campaign.ProcessedData {
	in = in.Normalize()
	brand := campaign.BrandFromURL(in.StoreURL)
	categories := selectCategories(in.Description)

	data := campaign.ProcessedData{
		AdGroups:  make([]campaign.AdGroupData, 0, len(categories)+1),
		RsaAds:    make([]campaign.RsaAd, 0, len(categories)+1),
		Negatives: campaign.CampaignNegatives(terms.FilterConflicts(fallbackNegatives, terms.Extract(in.Description))),
		Brand:     brand,
	}

	for i, c := range categories {
		data.AdGroups = append(data.AdGroups, campaign.AdGroupData{
			CampaignName: campaign.NonBrandCampaign,
			Name:         c.name,
			Keywords:     campaign.Keywords(c.keywords),
			FinalURL:     in.StoreURL,
		})
		data.RsaAds = append(data.RsaAds, campaign.RsaAd{
			CampaignName: campaign.NonBrandCampaign,
			AdGroupName:  c.name,
			FinalURL:     in.StoreURL,
			Headlines:    fillHeadlines(categoryHeadlines, c.name, brand, i),
			Descriptions: renderDescriptions(categoryDescriptions, c.name, brand),
		})
	}

	lower := strings.ToLower(brand)
	data.AdGroups = append(data.AdGroups, campaign.AdGroupData{
		CampaignName: campaign.BrandCampaign,
		Name:         campaign.BrandAdGroup,
		Keywords: campaign.Keywords([]string{
			lower,
			lower + " store",
			lower + " official",
			lower + " website",
			"buy from " + lower,
			lower + " shop",
		}),
		FinalURL: in.StoreURL,
	})
	data.RsaAds = append(data.RsaAds, campaign.RsaAd{
		CampaignName: campaign.BrandCampaign,
		AdGroupName:  campaign.BrandAdGroup,
		FinalURL:     in.StoreURL,
		Headlines:    fillHeadlines(brandHeadlines, campaign.BrandAdGroup, brand, len(categories)),
		Descriptions: renderDescriptions(brandDescriptions, campaign.BrandAdGroup, brand),
	})

	return data
}

func selectCategories(description string) []category {
	desc := strings.ToLower(description)
	for _, set := range categorySets {
		for _, hint := range set.hints {
			if strings.Contains(desc, hint) {
				return set.categories
			}
		}
	}
	return genericCategories
}

// fillHeadlines renders templates that fit the headline limit, then pads from
// paddingHeadlines starting at a per-group offset until HeadlineCount unique
// headlines exist.
func fillHeadlines(templates []string, name, brand string, group int) []string {
	out := make([]string, 0, campaign.HeadlineCount)
	seen := make(map[string]bool, campaign.HeadlineCount)

	add := func(h string) {
		key := strings.ToLower(h)
		if len(out) >= campaign.HeadlineCount || seen[key] || len([]rune(h)) > campaign.MaxHeadlineLen {
			return
		}
		seen[key] = true
		out = append(out, h)
	}

	for _, tmpl := range templates {
		add(fmt.Sprintf(tmpl, name, brand))
	}

	offset := group * 4
	for i := 0; i < len(paddingHeadlines) && len(out) < campaign.HeadlineCount; i++ {
		add(paddingHeadlines[(offset+i)%len(paddingHeadlines)])
	}

	return out
}

func renderDescriptions(templates []string, name, brand string) []string {
	out := make([]string, len(templates))
	for i, tmpl := range templates {
		out[i] = campaign.Truncate(fmt.Sprintf(tmpl, name, brand, strings.ToLower(name)), campaign.MaxDescriptionLen)
	}
	return out
}
