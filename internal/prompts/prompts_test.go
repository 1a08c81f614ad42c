package prompts

import (
	"strings"
	"testing"
)

func TestReview_EmbedsResumeAndSections(t *testing.T) {
	got, err := Review("Jane Doe\nGo engineer, 5 years")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if !strings.Contains(got, "Resume Content:\nJane Doe\nGo engineer, 5 years\n") {
		t.Fatalf("resume text not embedded verbatim:\n%s", got)
	}
	for _, section := range []string{"OVERALL SCORE:", "STRENGTHS:", "AREAS FOR IMPROVEMENT:", "KEY RECOMMENDATIONS:"} {
		if !strings.Contains(got, section) {
			t.Fatalf("missing section %q", section)
		}
	}
	if !strings.HasSuffix(got, "Keep your analysis concise, specific, and actionable.") {
		t.Fatalf("unexpected prompt ending:\n%s", got)
	}
}

func TestReview_DoesNotEscapeText(t *testing.T) {
	got, err := Review(`R&D <lead> "quoted"`)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !strings.Contains(got, `R&D <lead> "quoted"`) {
		t.Fatalf("expected raw text, got:\n%s", got)
	}
}

func TestSystem(t *testing.T) {
	got, err := System()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got != "You are an experienced HR professional and resume expert. Provide honest, constructive feedback." {
		t.Fatalf("unexpected system prompt: %q", got)
	}
}
