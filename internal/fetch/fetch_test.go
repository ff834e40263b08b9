package fetch

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const jobPageHTML = `<html><head><title>Job</title></head><body>
<nav>Home | Jobs | About</nav>
<div class="job-description">
<h1>Backend Engineer</h1>
<p>We are looking for an engineer with Go and Kubernetes experience.</p>
</div>
<footer>Copyright</footer>
</body></html>`

func TestURLFetchesPage(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		w.Header().Set("Content-Type", "text/html")
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Contains(t, result.HTML, "Backend Engineer")
}

func TestURLDefaultsZeroOptions(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, DefaultUserAgent, r.Header.Get("User-Agent"))
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	// A caller-constructed Options with zero fields must still get a
	// request timeout and a user agent.
	opts := &Options{UseBrowser: false}
	result, err := URL(context.Background(), srv.URL, opts)
	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, result.StatusCode)
	assert.Equal(t, DefaultTimeout, opts.Timeout)
	assert.Equal(t, DefaultUserAgent, opts.UserAgent)
}

func TestURLRejectsInvalidURL(t *testing.T) {
	_, err := URL(context.Background(), "not-a-url", nil)
	require.Error(t, err)

	var fetchErr *Error
	require.True(t, errors.As(err, &fetchErr))
	assert.Contains(t, fetchErr.Message, "invalid URL")
}

func TestURLReportsHTTPStatus(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	result, err := URL(context.Background(), srv.URL, nil)
	require.Error(t, err)
	require.NotNil(t, result)
	assert.Equal(t, http.StatusNotFound, result.StatusCode)
}

func TestJobDescriptionExtractsText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(jobPageHTML))
	}))
	defer srv.Close()

	result, err := JobDescription(context.Background(), srv.URL, nil)
	require.NoError(t, err)
	assert.Contains(t, result.Text, "Go and Kubernetes experience")
	assert.NotContains(t, result.Text, "Copyright")
	assert.NotContains(t, result.Text, "Home | Jobs")
	assert.False(t, result.Rendered)
}

func TestExtractMainTextFallsBackToBody(t *testing.T) {
	html := `<html><body><p>Plain posting text.</p></body></html>`
	text, err := ExtractMainText(html, jobPostingSelectors)
	require.NoError(t, err)
	assert.Equal(t, "Plain posting text.", text)
}

func TestExtractMainTextPrefersSelectors(t *testing.T) {
	html := `<html><body><div class="sidebar">Noise</div>
<div class="job-description">The real description.</div></body></html>`
	text, err := ExtractMainText(html, jobPostingSelectors)
	require.NoError(t, err)
	assert.Equal(t, "The real description.", text)
}

func TestDetectPlatform(t *testing.T) {
	tests := []struct {
		url  string
		want Platform
	}{
		{"https://boards.greenhouse.io/acme/jobs/1", PlatformGreenhouse},
		{"https://jobs.lever.co/acme/abc", PlatformLever},
		{"https://acme.wd1.myworkdayjobs.com/careers/job/1", PlatformWorkday},
		{"https://example.com/careers/1", PlatformUnknown},
		{"::bad::", PlatformUnknown},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, DetectPlatform(tt.url), tt.url)
	}
}

func TestPlatformContentSelectorsEndWithGeneric(t *testing.T) {
	selectors := PlatformContentSelectors(PlatformGreenhouse)
	assert.Equal(t, ".job__description.body", selectors[0])
	assert.Contains(t, selectors, "main")
}

func TestShouldUseBrowser(t *testing.T) {
	assert.True(t, ShouldUseBrowser("short"))
	assert.True(t, ShouldUseBrowser("   "))
	assert.False(t, ShouldUseBrowser(strings.Repeat("long enough content ", 30)))
}

func TestCleanWhitespace(t *testing.T) {
	in := "  line one  \n\n\t\n  line two\n"
	assert.Equal(t, "line one\nline two", cleanWhitespace(in))
}
