package fetch

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Platform represents a known job board platform.
type Platform string

const (
	// PlatformGreenhouse is the Greenhouse ATS platform.
	PlatformGreenhouse Platform = "greenhouse"
	// PlatformLever is the Lever ATS platform.
	PlatformLever Platform = "lever"
	// PlatformWorkday is the Workday ATS platform.
	PlatformWorkday Platform = "workday"
	// PlatformUnknown is an unrecognized platform.
	PlatformUnknown Platform = "unknown"
)

// DetectPlatform identifies the job board platform from a URL.
func DetectPlatform(urlStr string) Platform {
	parsed, err := url.Parse(urlStr)
	if err != nil {
		return PlatformUnknown
	}
	host := strings.ToLower(parsed.Host)
	switch {
	case strings.Contains(host, "greenhouse.io"):
		return PlatformGreenhouse
	case strings.Contains(host, "lever.co"):
		return PlatformLever
	case strings.Contains(host, "workday.com"), strings.Contains(host, "myworkdayjobs.com"):
		return PlatformWorkday
	}
	return PlatformUnknown
}

// PlatformContentSelectors returns content selectors for a platform,
// most specific first, ending with the generic job-page selectors.
func PlatformContentSelectors(platform Platform) []string {
	var specific []string
	switch platform {
	case PlatformGreenhouse:
		specific = []string{".job__description.body", ".job__description", "#content"}
	case PlatformLever:
		specific = []string{".posting-page", ".section-wrapper.posting-wrapper", ".posting"}
	case PlatformWorkday:
		specific = []string{"[data-automation-id='jobPostingDescription']", ".jobPostingDescription"}
	}
	return append(specific, jobPostingSelectors...)
}

// jobPostingSelectors are generic selectors that work across most job
// boards, tried in order.
var jobPostingSelectors = []string{
	".job-description",
	".job-content",
	"#job-description",
	"#job-content",
	".posting-content",
	".job-details",
	"[data-testid='job-description']",
	"main",
	"article",
	".content",
	"#content",
}

// noiseSelector matches elements that never carry posting content.
const noiseSelector = "nav, footer, header, script, style, noscript, .ad, .advertisement, .ads, .sidebar, .cookie-banner, .popup"

// ExtractMainText parses HTML and returns the main body text. Content
// selectors are tried in order; if none match, the whole body is used.
func ExtractMainText(html string, contentSelectors []string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	doc.Find(noiseSelector).Remove()

	var mainContent *goquery.Selection
	for _, selector := range contentSelectors {
		if selection := doc.Find(selector); selection.Length() > 0 {
			mainContent = selection.First()
			break
		}
	}
	if mainContent == nil {
		mainContent = doc.Find("body")
	}

	return cleanWhitespace(mainContent.Text()), nil
}

// cleanWhitespace trims every line and drops the empty ones.
func cleanWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	var cleaned []string
	for _, line := range lines {
		line = strings.TrimSpace(line)
		if line != "" {
			cleaned = append(cleaned, line)
		}
	}
	return strings.Join(cleaned, "\n")
}
