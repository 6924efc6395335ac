package generator

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/abdulachik/adskit/internal/campaign"
	"github.com/abdulachik/adskit/internal/llm"
	"github.com/abdulachik/adskit/internal/terms"
)

// DefaultMaxAttempts bounds the attempts per plan call and per ad group copy call.
const DefaultMaxAttempts = 2

// ErrGenerationFailed is returned when a phase exhausts its attempts.
var ErrGenerationFailed = errors.New("generation failed")

var (
	planOptions = llm.Options{MaxTokens: 2000, Temperature: 0.2}
	copyOptions = llm.Options{MaxTokens: 1500, Temperature: 0.3}
)

// Generator drives the plan and copy phases against a chat provider.
type Generator struct {
	provider    llm.Provider
	maxAttempts int
	log         *slog.Logger
}

// Config holds configuration for the generator.
type Config struct {
	// Provider may be nil, in which case only fallback content is produced.
	Provider    llm.Provider
	MaxAttempts int
	Logger      *slog.Logger
}

// New creates a new Generator.
func New(cfg Config) *Generator {
	if cfg.MaxAttempts <= 0 {
		cfg.MaxAttempts = DefaultMaxAttempts
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Generator{
		provider:    cfg.Provider,
		maxAttempts: cfg.MaxAttempts,
		log:         cfg.Logger,
	}
}

// WithLogger returns a copy of g that logs to logger.
func (g *Generator) WithLogger(logger *slog.Logger) *Generator {
	clone := *g
	clone.log = logger
	return &clone
}

// Result is generated data and whether it came from the fallback generator.
type Result struct {
	Data     campaign.ProcessedData
	Fallback bool
}

// GenerateOrFallback runs the AI pipeline and substitutes deterministic data on
// any failure. It never fails.
func (g *Generator) GenerateOrFallback(ctx context.Context, in campaign.Input) Result {
	if g.provider == nil {
		g.log.Info("no chat provider configured, using fallback content")
		return Result{Data: Fallback(in), Fallback: true}
	}

	data, err := g.Generate(ctx, in)
	if err != nil {
		g.log.Error("AI generation failed, using fallback content", "error", err)
		return Result{Data: Fallback(in), Fallback: true}
	}
	return Result{Data: data}
}

// Generate runs the plan phase, then the copy phase for every ad group, and
// merges the results. Any exhausted phase fails the whole call.
func (g *Generator) Generate(ctx context.Context, in campaign.Input) (campaign.ProcessedData, error) {
	if g.provider == nil {
		return campaign.ProcessedData{}, fmt.Errorf("%w: no chat provider configured", ErrGenerationFailed)
	}

	positive := terms.Extract(in.Description)
	g.log.Debug("extracted positive terms", "terms", positive)

	plan, err := g.campaignPlan(ctx, in, positive)
	if err != nil {
		return campaign.ProcessedData{}, err
	}

	tasks := copyTasks(plan)
	g.log.Info("campaign plan accepted",
		"brand", plan.Brand,
		"campaigns", len(plan.Campaigns),
		"ad_groups", len(tasks),
		"negatives", len(plan.Negatives),
	)

	copies, err := g.adCopies(ctx, in, tasks)
	if err != nil {
		return campaign.ProcessedData{}, err
	}

	if res := campaign.CheckCopyUniqueness(copies); !res.Valid {
		g.log.Warn("ad copy uniqueness check failed", "errors", res.Errors)
	}

	return merge(in, plan, tasks, copies), nil
}

func (g *Generator) campaignPlan(ctx context.Context, in campaign.Input, positive []string) (campaign.CampaignPlan, error) {
	prompt := CampaignPlanPrompt(in.StoreURL, in.Description, in.Country, positive)

	var lastErr error
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return campaign.CampaignPlan{}, err
		}

		plan, err := g.planAttempt(ctx, withRepair(prompt, attempt), positive)
		if err == nil {
			return plan, nil
		}

		lastErr = err
		g.log.Warn("campaign plan attempt failed",
			"attempt", attempt+1,
			"max_attempts", g.maxAttempts,
			"error", err,
		)
	}

	return campaign.CampaignPlan{}, fmt.Errorf("%w: campaign plan: %w", ErrGenerationFailed, lastErr)
}

func (g *Generator) planAttempt(ctx context.Context, prompt string, positive []string) (campaign.CampaignPlan, error) {
	raw, err := g.provider.ChatJSON(ctx, llm.PhasePlan, SystemCampaignPlan, prompt, planOptions)
	if err != nil {
		return campaign.CampaignPlan{}, err
	}

	parsed, err := campaign.DecodePlan(raw)
	if err != nil {
		return campaign.CampaignPlan{}, err
	}
	plan := campaign.SanitizePlan(parsed)

	names := campaign.CheckAdGroupNames(plan)
	leakage := campaign.CheckBrandLeakage(plan)
	structure := campaign.CheckStructure(plan)

	// Conflicting negatives are removed rather than retried.
	if conflicts := campaign.CheckNegativeConflicts(plan.Negatives, positive); !conflicts.Valid {
		g.log.Warn("filtering negatives that conflict with positive terms",
			"removed", len(conflicts.Conflicts),
			"errors", conflicts.Errors,
		)
		plan.Negatives = conflicts.Filtered
	}
	count := campaign.CheckNegativeCount(plan.Negatives)

	if res := campaign.Merge(names, count, leakage, structure); !res.Valid {
		return campaign.CampaignPlan{}, &campaign.QualityGateError{Phase: llm.PhasePlan.String(), Errors: res.Errors}
	}
	return plan, nil
}

// copyTask is one (campaign, ad group) pair of an accepted plan.
type copyTask struct {
	campaignName string
	group        campaign.AdGroup
}

func copyTasks(plan campaign.CampaignPlan) []copyTask {
	var tasks []copyTask
	for _, c := range plan.Campaigns {
		for _, group := range c.AdGroups {
			tasks = append(tasks, copyTask{campaignName: c.CampaignName, group: group})
		}
	}
	return tasks
}

// adCopies generates copy for every task concurrently. The first task to
// exhaust its attempts cancels the rest.
func (g *Generator) adCopies(ctx context.Context, in campaign.Input, tasks []copyTask) ([]campaign.AdCopy, error) {
	copies := make([]campaign.AdCopy, len(tasks))

	eg, egCtx := errgroup.WithContext(ctx)
	for i, task := range tasks {
		eg.Go(func() error {
			ad, err := g.adCopy(egCtx, in, task)
			if err != nil {
				return err
			}
			copies[i] = ad
			return nil
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	return copies, nil
}

func (g *Generator) adCopy(ctx context.Context, in campaign.Input, task copyTask) (campaign.AdCopy, error) {
	prompt := AdCopyPrompt(task.campaignName, task.group.Name, task.group.Keywords, in.StoreURL, in.Description)
	log := g.log.With("campaign", task.campaignName, "ad_group", task.group.Name)

	var lastErr error
	for attempt := 0; attempt < g.maxAttempts; attempt++ {
		if err := ctx.Err(); err != nil {
			return campaign.AdCopy{}, err
		}

		ad, err := g.copyAttempt(ctx, withRepair(prompt, attempt))
		if err == nil {
			return ad, nil
		}

		lastErr = err
		log.Warn("ad copy attempt failed",
			"attempt", attempt+1,
			"max_attempts", g.maxAttempts,
			"error", err,
		)
	}

	return campaign.AdCopy{}, fmt.Errorf("%w: ad copy for %q: %w", ErrGenerationFailed, task.group.Name, lastErr)
}

func (g *Generator) copyAttempt(ctx context.Context, prompt string) (campaign.AdCopy, error) {
	raw, err := g.provider.ChatJSON(ctx, llm.PhaseCopy, SystemAdCopy, prompt, copyOptions)
	if err != nil {
		return campaign.AdCopy{}, err
	}

	parsed, err := campaign.DecodeCopy(raw)
	if err != nil {
		return campaign.AdCopy{}, err
	}
	ad := campaign.SanitizeCopy(parsed)

	if res := campaign.CheckBrandLeakage(ad); !res.Valid {
		return campaign.AdCopy{}, &campaign.QualityGateError{Phase: llm.PhaseCopy.String(), Errors: res.Errors}
	}
	return ad, nil
}

// merge flattens an accepted plan and its copies into ProcessedData.
func merge(in campaign.Input, plan campaign.CampaignPlan, tasks []copyTask, copies []campaign.AdCopy) campaign.ProcessedData {
	data := campaign.ProcessedData{
		AdGroups:  make([]campaign.AdGroupData, 0, len(tasks)),
		RsaAds:    make([]campaign.RsaAd, 0, len(tasks)),
		Negatives: campaign.CampaignNegatives(plan.Negatives),
		Brand:     plan.Brand,
	}

	for i, task := range tasks {
		ad := copies[i]
		finalURL := firstNonEmpty(ad.FinalURL, task.group.FinalURLHint, in.StoreURL)

		data.AdGroups = append(data.AdGroups, campaign.AdGroupData{
			CampaignName: task.campaignName,
			Name:         task.group.Name,
			Keywords:     campaign.Keywords(task.group.Keywords),
			FinalURL:     finalURL,
		})
		data.RsaAds = append(data.RsaAds, campaign.RsaAd{
			CampaignName: task.campaignName,
			AdGroupName:  task.group.Name,
			FinalURL:     finalURL,
			Headlines:    ad.Headlines,
			Descriptions: ad.Descriptions,
		})
	}

	return data
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
