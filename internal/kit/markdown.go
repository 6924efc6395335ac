package kit

import (
	"fmt"

	"github.com/abdulachik/adskit/internal/campaign"
)

const trackingTemplate = `# Tracking Setup Guide

Target Country: %s
Website: %s

## Step 1: Install Google Tag Manager
- Create a GTM account at tagmanager.google.com
- Install the GTM container code on all pages of your website
- Verify installation using GTM Preview mode

## Step 2: Connect GA4
- Create a GA4 property in Google Analytics
- Add GA4 configuration tag in GTM
- Test with GA4 Realtime report

## Step 3: Define Conversion Events
For eCommerce: Track "purchase" event
For Lead Generation: Track "generate_lead" or "contact" event

## Step 4: Import Conversions to Google Ads
- In Google Ads, go to Tools > Conversions
- Import GA4 conversions
- Set your primary conversion (purchase or lead)

## Step 5: Test Before Launch
- Use GTM Preview mode
- Complete a test conversion
- Verify in GA4 Realtime and Google Ads

## Important Notes
- Allow 24-48 hours for conversion data to populate
- Ensure conversion values are tracked for eCommerce
- Set up enhanced conversions for better accuracy`

// OptimizationChecklist is the static 7-day optimization guide.
const OptimizationChecklist = `# 7-Day Optimization Checklist

## Day 1: Verify Setup
- Confirm conversions are tracking correctly
- Check budget pacing (should spend ~14% of weekly budget)
- Verify location settings match target country
- Review impression share

## Day 2-3: Search Terms Review
- Download search terms report
- Add 15-30 negative keywords based on irrelevant searches
- Identify high-performing search queries
- Consider adding exact match keywords for top performers

## Day 4-5: Performance Optimization
- Pause keywords with CTR < 1% after 100+ impressions
- Increase bids on ad groups with CTR > 3%
- Consider tightening match types for broad performers
- Review Quality Scores (target 6+)

## Day 6-7: Conversion Analysis
- Identify converting ad groups
- Shift 20-30% more budget to winners
- Add 3-5 new related keywords to winning ad groups
- Pause ad groups with 0 conversions after 50+ clicks

## Realistic Thresholds
- CTR Target: 2-4% (varies by industry)
- Quality Score Target: 6+
- Don't pause based on <3 days data
- Wait for 20+ clicks before major decisions

## What NOT to Do
- Don't check every hour (once per day is enough)
- Don't pause after 10-20 clicks
- Don't ignore search terms report
- Don't make changes based on 1-2 days
- Don't set and forget`

// LandingChecklist is the static landing page checklist.
const LandingChecklist = `# Landing Page Checklist

Before launching your Google Ads campaign, ensure your landing pages are optimized:

## Page Quality
- [ ] Headline matches ad message and keyword intent
- [ ] Primary CTA is visible above the fold
- [ ] Mobile-friendly and loads in under 3 seconds
- [ ] Clear pricing and shipping information
- [ ] Return policy is easy to find

## Trust Signals
- [ ] Customer reviews or testimonials visible
- [ ] Security badges (SSL, payment icons)
- [ ] Money-back guarantee or warranty
- [ ] Contact information is easy to find
- [ ] About us / company credibility

## Conversion Optimization
- [ ] Single clear CTA (don't offer too many choices)
- [ ] Remove unnecessary navigation links
- [ ] Add urgency (limited stock, sale ends, etc.) - if true
- [ ] Include product/service benefits, not just features
- [ ] Test checkout flow before launch

## Technical
- [ ] GTM and GA4 tracking verified
- [ ] Conversion events firing correctly
- [ ] Form validation working properly
- [ ] Thank you page set up
- [ ] No broken links or images

## Google Ads Specific
- [ ] URL parameters preserved (?gclid=)
- [ ] No pop-ups or interstitials on mobile
- [ ] Content matches ad promises (policy compliance)`

// TrackingGuide renders the tracking setup guide for the input's country and URL.
func TrackingGuide(in campaign.Input) string {
	return fmt.Sprintf(trackingTemplate, in.Country, in.StoreURL)
}
