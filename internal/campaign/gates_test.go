package campaign

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCheckAdGroupNames(t *testing.T) {
	t.Run("real category names pass", func(t *testing.T) {
		assert.True(t, CheckAdGroupNames(validPlan()).Valid)
	})

	for _, name := range []string{"Premium Products", "BEST SELLERS", " misc ", "General"} {
		t.Run(name, func(t *testing.T) {
			p := validPlan()
			p.Campaigns[0].AdGroups[1].Name = name
			res := CheckAdGroupNames(p)
			assert.False(t, res.Valid)
			require.Len(t, res.Errors, 1)
			assert.Contains(t, res.Errors[0], name)
		})
	}

	t.Run("containing a forbidden name is fine", func(t *testing.T) {
		p := validPlan()
		p.Campaigns[0].AdGroups[0].Name = "General Store Wallets"
		assert.True(t, CheckAdGroupNames(p).Valid)
	})
}

func TestCheckNegativeCount(t *testing.T) {
	assert.True(t, CheckNegativeCount(manyNegatives(100)).Valid)
	assert.True(t, CheckNegativeCount(manyNegatives(140)).Valid)

	res := CheckNegativeCount(manyNegatives(99))
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"only 99 negatives provided, minimum required: 100"}, res.Errors)
}

func TestCheckBrandLeakage(t *testing.T) {
	assert.True(t, CheckBrandLeakage(validPlan()).Valid)

	ad := validCopy()
	ad.Headlines[4] = "Powered by ShopIFY"
	assert.False(t, CheckBrandLeakage(ad).Valid)

	p := validPlan()
	p.Negatives[10] = "shopify themes"
	assert.False(t, CheckBrandLeakage(p).Valid)
}

func TestCheckNegativeConflicts(t *testing.T) {
	negatives := []string{"free", "leather", "cheap leather", "jobs", "handmade soap", "diy"}

	res := CheckNegativeConflicts(negatives, []string{"Leather", "handmade"})

	assert.False(t, res.Valid)
	assert.Equal(t, []string{"free", "jobs", "diy"}, res.Filtered)
	assert.Equal(t, []string{"leather", "cheap leather", "handmade soap"}, res.Conflicts)
	require.Len(t, res.Errors, 1)
	assert.Contains(t, res.Errors[0], "3 negatives conflict")

	t.Run("no positive terms", func(t *testing.T) {
		res := CheckNegativeConflicts(negatives, nil)
		assert.True(t, res.Valid)
		assert.Equal(t, negatives, res.Filtered)
	})
}

func TestCheckStructure(t *testing.T) {
	t.Run("valid plan", func(t *testing.T) {
		res := CheckStructure(validPlan())
		assert.True(t, res.Valid, res.Errors)
	})

	t.Run("single brand group is not unbalanced", func(t *testing.T) {
		p := validPlan()
		p.Campaigns[1].AdGroups[0].Keywords = append(p.Campaigns[1].AdGroups[0].Keywords, "acme shop", "acme store")
		assert.True(t, CheckStructure(p).Valid)
	})

	t.Run("deduplication can leave too few keywords", func(t *testing.T) {
		p := validPlan()
		p.Campaigns[0].AdGroups[1].Keywords = []string{"belt", "Belt", "strap", "STRAP", "buckle", "Buckle"}
		require.NoError(t, ValidatePlan(p))

		res := CheckStructure(SanitizePlan(p))
		assert.False(t, res.Valid)
		assert.Contains(t, res.Errors, `ad group "Leather Belts" has 3 keywords, minimum required: 6`)
	})

	tests := []struct {
		name   string
		mutate func(p *CampaignPlan)
		want   string
	}{
		{
			name: "duplicate group names",
			mutate: func(p *CampaignPlan) {
				p.Campaigns[0].AdGroups[1].Name = "leather wallets"
			},
			want: `campaign "Search - NonBrand" has duplicate ad group names`,
		},
		{
			name: "too few non-brand groups",
			mutate: func(p *CampaignPlan) {
				p.Campaigns[0].AdGroups = p.Campaigns[0].AdGroups[:2]
			},
			want: `campaign "Search - NonBrand" must have at least 3 ad groups, found 2`,
		},
		{
			name: "empty campaign",
			mutate: func(p *CampaignPlan) {
				p.Campaigns[1].AdGroups = nil
			},
			want: `campaign "Search - Brand" has no ad groups`,
		},
		{
			name: "empty group",
			mutate: func(p *CampaignPlan) {
				p.Campaigns[0].AdGroups[2].Keywords = nil
			},
			want: `ad group "Card Holders" has no keywords`,
		},
		{
			name: "duplicate keywords",
			mutate: func(p *CampaignPlan) {
				p.Campaigns[0].AdGroups[0].Keywords[1] = "Buy Leather Wallet"
			},
			want: `ad group "Leather Wallets" has duplicate keywords`,
		},
		{
			name: "dominant group",
			mutate: func(p *CampaignPlan) {
				p.Campaigns[0].AdGroups[1].Keywords = []string{"belt"}
				p.Campaigns[0].AdGroups[2].Keywords = []string{"holder"}
				kws := make([]string, 0, 10)
				for i := 0; i < 10; i++ {
					kws = append(kws, "wallet "+string(rune('a'+i)))
				}
				p.Campaigns[0].AdGroups[0].Keywords = kws
			},
			want: `ad group "Leather Wallets" holds 83% of campaign keywords`,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := validPlan()
			tt.mutate(&p)
			res := CheckStructure(p)
			assert.False(t, res.Valid)
			assert.Contains(t, res.Errors, tt.want)
		})
	}
}

func TestCheckCopyUniqueness(t *testing.T) {
	a := validCopy()
	b := validCopy()
	b.Headlines = headlines("Leather Belt")

	assert.True(t, CheckCopyUniqueness([]AdCopy{a, b}).Valid)

	t.Run("five shared headlines are allowed", func(t *testing.T) {
		c := validCopy()
		c.Headlines = headlines("Card Holder")
		copy(c.Headlines, a.Headlines[:5])
		assert.True(t, CheckCopyUniqueness([]AdCopy{a, c}).Valid)
	})

	t.Run("six shared headlines are flagged", func(t *testing.T) {
		c := validCopy()
		c.Headlines = headlines("Card Holder")
		for i := 0; i < 6; i++ {
			c.Headlines[i] = "LEATHER WALLET " + string(rune('1'+i))
		}
		res := CheckCopyUniqueness([]AdCopy{a, b, c})
		assert.False(t, res.Valid)
		assert.Equal(t, []string{"ad groups 1 and 3 share 6/15 identical headlines"}, res.Errors)
	})
}

func TestMerge(t *testing.T) {
	res := Merge(GateResult{Valid: true}, GateResult{Errors: []string{"a"}}, GateResult{Errors: []string{"b", "c"}})
	assert.False(t, res.Valid)
	assert.Equal(t, []string{"a", "b", "c"}, res.Errors)
	assert.True(t, Merge().Valid)
}
