package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/abdulachik/adskit/internal/campaign"
	"github.com/abdulachik/adskit/internal/llm"
)

type reply struct {
	text string
	err  error
}

// scriptedProvider answers plan calls from a queue and copy calls through a
// function keyed by ad group name and attempt number.
type scriptedProvider struct {
	mu           sync.Mutex
	plans        []reply
	copyFn       func(adGroup string, attempt int) reply
	planPrompts  []string
	copyAttempts map[string]int
	copyPrompts  map[string][]string
	options      map[llm.Phase]llm.Options
}

func newScripted(plans ...reply) *scriptedProvider {
	return &scriptedProvider{
		plans:        plans,
		copyAttempts: make(map[string]int),
		copyPrompts:  make(map[string][]string),
		options:      make(map[llm.Phase]llm.Options),
		copyFn: func(adGroup string, _ int) reply {
			return reply{text: copyJSON(adGroup)}
		},
	}
}

func (p *scriptedProvider) Name() string { return "scripted" }

func (p *scriptedProvider) ChatJSON(ctx context.Context, phase llm.Phase, system, user string, opts llm.Options) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	p.mu.Lock()
	p.options[phase] = opts

	if phase == llm.PhasePlan {
		defer p.mu.Unlock()
		p.planPrompts = append(p.planPrompts, user)
		if len(p.plans) == 0 {
			return "", &llm.ProviderError{Provider: "scripted", Message: "no scripted plan reply"}
		}
		r := p.plans[0]
		p.plans = p.plans[1:]
		return r.text, r.err
	}

	group := adGroupFromPrompt(user)
	attempt := p.copyAttempts[group]
	p.copyAttempts[group]++
	p.copyPrompts[group] = append(p.copyPrompts[group], user)
	fn := p.copyFn
	p.mu.Unlock()

	r := fn(group, attempt)
	return r.text, r.err
}

func (p *scriptedProvider) planCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return len(p.planPrompts)
}

func (p *scriptedProvider) totalCopyCalls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	n := 0
	for _, c := range p.copyAttempts {
		n += c
	}
	return n
}

func adGroupFromPrompt(prompt string) string {
	for _, line := range strings.Split(prompt, "\n") {
		if name, ok := strings.CutPrefix(line, "Ad Group: "); ok {
			return name
		}
	}
	return ""
}

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

func negatives(n int) []string {
	out := make([]string, n)
	for i := range out {
		out[i] = fmt.Sprintf("negative term %d", i)
	}
	return out
}

func testPlan() campaign.CampaignPlan {
	return campaign.CampaignPlan{
		Brand: "acme-leather",
		Campaigns: []campaign.Campaign{
			{
				CampaignName: campaign.NonBrandCampaign,
				AdGroups: []campaign.AdGroup{
					{Name: "Leather Wallets", Keywords: sixKeywords("leather wallet"), FinalURLHint: "https://acme-leather.com/wallets"},
					{Name: "Leather Belts", Keywords: sixKeywords("leather belt")},
					{Name: "Card Holders", Keywords: sixKeywords("card holder")},
				},
			},
			{
				CampaignName: campaign.BrandCampaign,
				AdGroups: []campaign.AdGroup{
					{Name: campaign.BrandAdGroup, Keywords: sixKeywords("acme leather")},
				},
			},
		},
		Negatives: negatives(campaign.MinNegatives),
	}
}

func planJSON(plan campaign.CampaignPlan) string {
	return mustMarshal(plan)
}

func headlinesFor(prefix string) []string {
	out := make([]string, campaign.HeadlineCount)
	for i := range out {
		out[i] = fmt.Sprintf("%s %d", prefix, i+1)
	}
	return out
}

func adCopyFor(adGroup string) campaign.AdCopy {
	return campaign.AdCopy{
		FinalURL:  "https://acme-leather.com/" + strings.ToLower(strings.ReplaceAll(adGroup, " ", "-")),
		Headlines: headlinesFor(adGroup),
		Descriptions: []string{
			"Shop " + adGroup + " online.",
			"Made by hand in small batches.",
			"Secure checkout and easy returns.",
			"Order today, ships within two days.",
		},
	}
}

func copyJSON(adGroup string) string {
	return mustMarshal(adCopyFor(adGroup))
}

func mustMarshal(v any) string {
	data, err := json.Marshal(v)
	if err != nil {
		panic(err)
	}
	return string(data)
}

var testInput = campaign.Input{
	StoreURL:    "https://acme-leather.com",
	Description: "We sell handmade leather wallets and belts",
	Country:     "United States",
}

// newTestGenerator returns a generator whose logs are captured as JSON lines.
func newTestGenerator(t *testing.T, p llm.Provider) (*Generator, *bytes.Buffer) {
	t.Helper()
	var buf bytes.Buffer
	logger := slog.New(slog.NewJSONHandler(&syncWriter{w: &buf}, &slog.HandlerOptions{Level: slog.LevelDebug}))
	return New(Config{Provider: p, Logger: logger}), &buf
}

type syncWriter struct {
	mu sync.Mutex
	w  *bytes.Buffer
}

func (s *syncWriter) Write(b []byte) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.w.Write(b)
}

// logMessages decodes captured JSON log lines.
func logMessages(t *testing.T, buf *bytes.Buffer) []map[string]any {
	t.Helper()
	var out []map[string]any
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry map[string]any
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		out = append(out, entry)
	}
	return out
}

func findLog(entries []map[string]any, msg string) map[string]any {
	for _, e := range entries {
		if e["msg"] == msg {
			return e
		}
	}
	return nil
}
