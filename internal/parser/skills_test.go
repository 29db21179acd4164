package parser

import (
	"reflect"
	"testing"
)

func TestParseSkills(t *testing.T) {
	entries := parseSkills([]string{"Python, React; Docker • Kubernetes"})

	if len(entries) != 1 {
		t.Fatalf("expected 1 category, got %d: %+v", len(entries), entries)
	}
	if entries[0].Category != "Skills" {
		t.Errorf("category = %q, want Skills", entries[0].Category)
	}
	want := []string{"Python", "React", "Docker", "Kubernetes"}
	if !reflect.DeepEqual(entries[0].Skills, want) {
		t.Errorf("skills = %v, want %v", entries[0].Skills, want)
	}
}

func TestParseSkillsMultipleLines(t *testing.T) {
	entries := parseSkills([]string{"Go, SQL", "Terraform | Ansible"})

	if len(entries) != 1 {
		t.Fatalf("expected 1 category, got %d: %+v", len(entries), entries)
	}
	want := []string{"Go", "SQL", "Terraform", "Ansible"}
	if !reflect.DeepEqual(entries[0].Skills, want) {
		t.Errorf("skills = %v, want %v", entries[0].Skills, want)
	}
}

func TestSplitSkillTokens(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want []string
	}{
		{"drops single chars", "C, Go, R", []string{"Go"}},
		{"drops numeric junk", "2020, Rust, 42", []string{"Rust"}},
		{"drops overlong tokens", "Go, this token is far far far far far too long to plausibly be one skill name", []string{"Go"}},
		{"keeps duplicates", "Go, Go", []string{"Go", "Go"}},
		{"empty", "", nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := splitSkillTokens(tc.in)
			if len(got) == 0 && len(tc.want) == 0 {
				return
			}
			if !reflect.DeepEqual(got, tc.want) {
				t.Errorf("splitSkillTokens(%q) = %v, want %v", tc.in, got, tc.want)
			}
		})
	}
}
