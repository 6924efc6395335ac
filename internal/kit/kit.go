package kit

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/abdulachik/adskit/internal/campaign"
)

// Archive entry names.
const (
	KeywordsFile     = "campaigns_keywords.csv"
	RsaAdsFile       = "rsa_ads.csv"
	NegativesFile    = "negatives.csv"
	TrackingFile     = "tracking.md"
	LandingFile      = "landing-checklist.md"
	OptimizationFile = "optimization-7days.md"
)

// File is one named text artifact of a kit.
type File struct {
	Name    string
	Content string
}

// Files renders the six kit artifacts in archive order.
func Files(data campaign.ProcessedData, in campaign.Input) []File {
	return []File{
		{Name: KeywordsFile, Content: KeywordsCSV(data.AdGroups)},
		{Name: RsaAdsFile, Content: RsaCSV(data.RsaAds)},
		{Name: NegativesFile, Content: NegativesCSV(data.Negatives)},
		{Name: TrackingFile, Content: TrackingGuide(in)},
		{Name: LandingFile, Content: LandingChecklist},
		{Name: OptimizationFile, Content: OptimizationChecklist},
	}
}

// WriteZip writes files to w as a DEFLATE-compressed archive.
func WriteZip(w io.Writer, files []File) error {
	zw := zip.NewWriter(w)
	for _, f := range files {
		fw, err := zw.CreateHeader(&zip.FileHeader{Name: f.Name, Method: zip.Deflate})
		if err != nil {
			return fmt.Errorf("create %s: %w", f.Name, err)
		}
		if _, err := io.WriteString(fw, f.Content); err != nil {
			return fmt.Errorf("write %s: %w", f.Name, err)
		}
	}
	if err := zw.Close(); err != nil {
		return fmt.Errorf("close archive: %w", err)
	}
	return nil
}

// Build renders the kit for data and returns the archive bytes.
func Build(data campaign.ProcessedData, in campaign.Input) ([]byte, error) {
	var buf bytes.Buffer
	if err := WriteZip(&buf, Files(data, in)); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

var unsafeFilename = regexp.MustCompile(`[^a-z0-9-]+`)

// Filename returns the download name for a brand's kit.
func Filename(brand string) string {
	slug := strings.Trim(unsafeFilename.ReplaceAllString(strings.ToLower(brand), "-"), "-")
	if slug == "" {
		slug = strings.ToLower(campaign.PlaceholderBrand)
	}
	return fmt.Sprintf("adskit-%s-campaign.zip", slug)
}
