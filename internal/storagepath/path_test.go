package storagepath

import (
	"regexp"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func withFixedMillis(t *testing.T, ms int64) {
	t.Helper()
	orig := nowMillis
	nowMillis = func() int64 { return ms }
	t.Cleanup(func() { nowMillis = orig })
}

func TestSanitizeIdeaName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"simple", "My Awesome Idea!", "my-awesome-idea"},
		{"whitespace runs", "a  \t  b", "a-b"},
		{"punctuation stripped", "so/lar?panels*v2", "solarpanelsv2"},
		{"underscores kept", "snake_case_name", "snake_case_name"},
		{"empty", "", "untitled"},
		{"only punctuation", "!!!???", "untitled"},
		{"truncated to 50", strings.Repeat("A", 80), strings.Repeat("a", 50)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, SanitizeIdeaName(tt.in))
		})
	}
}

func TestSanitizeIdeaNameDeterministic(t *testing.T) {
	in := "  Grüße  from  Mars!  "
	first := SanitizeIdeaName(in)
	for i := 0; i < 5; i++ {
		assert.Equal(t, first, SanitizeIdeaName(in))
	}
}

func TestBuildBasePathShape(t *testing.T) {
	re := regexp.MustCompile(`^idea-files/[^/]+$`)
	for _, name := range []string{"My Awesome Idea!", "", "   ", "a.b/c\\d", "ünïcödé"} {
		p := BuildBasePath("42", name)
		assert.Regexp(t, re, p, "input %q", name)
		assert.True(t, IsValid(p))
	}
}

func TestBuildBasePathConcrete(t *testing.T) {
	assert.Equal(t, "idea-files/42-my-awesome-idea", BuildBasePath("42", "My Awesome Idea!"))
}

func TestBuildFilePath(t *testing.T) {
	withFixedMillis(t, 1712345678901)

	base := BuildBasePath("42", "My Awesome Idea!")
	p := BuildFilePath(base, "pitch_deck", "report.pdf")

	assert.Equal(t, "idea-files/42-my-awesome-idea/pitch_deck/report_1712345678901.pdf", p)
	assert.True(t, IsValid(p))
}

func TestBuildFilePathExtensionPreserved(t *testing.T) {
	withFixedMillis(t, 1000)

	p := BuildFilePath("idea-files/1-x", "video", "demo final.mp4")
	assert.True(t, strings.HasSuffix(p, ".mp4"), p)
	assert.Contains(t, p, "_1000")
}

func TestBuildImagePath(t *testing.T) {
	withFixedMillis(t, 1712345678901)

	p := BuildImagePath("idea-files/42-my-awesome-idea", "team photo.png")
	assert.Equal(t, "idea-files/42-my-awesome-idea/images/1712345678901-team-photo.png", p)
	assert.True(t, IsValid(p))
}

func TestFormatDisplayFileName(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"report_1712345678901.pdf", "report.pdf"},
		{"my_notes_1712345678901.txt", "my_notes.txt"},
		{"noext_1712345678901", "noext"},
		{"plain.pdf", "plain.pdf"},
		{"under_score.pdf", "under_score.pdf"},
		{"_123.pdf", ".pdf"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, FormatDisplayFileName(tt.in), "input %q", tt.in)
	}
}

func TestIsValid(t *testing.T) {
	valid := []string{
		"idea-files/1-a/pitch_deck/x_1.pdf",
		"idea-files/1-untitled/images/2-y.png",
	}
	for _, p := range valid {
		assert.True(t, IsValid(p), p)
	}

	invalid := []string{
		"",
		"other/1-a/x.pdf",
		"idea-files/../secrets",
		"idea-files/1-a/..",
		"../idea-files/1-a/x.pdf",
		"/idea-files/1-a/x.pdf",
	}
	for _, p := range invalid {
		assert.False(t, IsValid(p), p)
	}
}

func TestIsSignedURL(t *testing.T) {
	signed := "https://b.s3.us-east-1.amazonaws.com/idea-files/1-a/x.pdf?X-Amz-Algorithm=AWS4-HMAC-SHA256&X-Amz-Signature=abc"
	assert.True(t, IsSignedURL(signed))
	assert.False(t, IsSignedURL("https://b.s3.us-east-1.amazonaws.com/idea-files/1-a/x.pdf"))
	assert.False(t, IsSignedURL("idea-files/1-a/x.pdf"))
}

func TestExtractKey(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			"aws virtual-hosted",
			"https://bucket.s3.us-east-1.amazonaws.com/idea-files/1-a/pitch_deck/x_1.pdf",
			"idea-files/1-a/pitch_deck/x_1.pdf",
		},
		{
			"aws with query",
			"https://bucket.s3.us-east-1.amazonaws.com/idea-files/1-a/x.pdf?X-Amz-Signature=abc",
			"idea-files/1-a/x.pdf",
		},
		{
			"path-style custom endpoint",
			"http://127.0.0.1:9000/bucket/idea-files/1-a/x.pdf",
			"idea-files/1-a/x.pdf",
		},
		{
			"bare key",
			"idea-files/1-a/x.pdf",
			"idea-files/1-a/x.pdf",
		},
		{
			"legacy record outside namespace",
			"https://bucket.s3.us-east-1.amazonaws.com/old-uploads/x.pdf",
			"old-uploads/x.pdf",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ExtractKey(tt.in))
		})
	}
}
