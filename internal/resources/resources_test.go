package resources

import (
	"strings"
	"testing"
)

func TestTopics_Embedded(t *testing.T) {
	topics := Topics()
	if len(topics) != 8 {
		t.Fatalf("got %d topics, want 8", len(topics))
	}
	if topics[0].Title != "Understanding Mental Health" {
		t.Errorf("first topic = %q", topics[0].Title)
	}
	for _, tp := range topics {
		if len(tp.Links) != 2 {
			t.Errorf("topic %q has %d links, want 2", tp.Title, len(tp.Links))
		}
	}
}

func TestTopics_ReturnsCopy(t *testing.T) {
	topics := Topics()
	topics[0].Title = "mutated"
	topics[0].Links[0].URL = "mutated"

	again := Topics()
	if again[0].Title == "mutated" || again[0].Links[0].URL == "mutated" {
		t.Error("Topics must not expose internal storage")
	}
}

func TestQuotes(t *testing.T) {
	qs := Quotes()
	if len(qs) != 2 {
		t.Fatalf("got %d quotes, want 2", len(qs))
	}
	for _, q := range qs {
		if q.Text == "" || q.Author == "" {
			t.Errorf("incomplete quote %+v", q)
		}
	}
}

func TestParse_Invalid(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want string
	}{
		{"not yaml", "topics: [", "parse resources"},
		{"empty", "topics: []", "no topics"},
		{"untitled", "topics:\n  - links: [{title: a, url: 'https://x.org'}]", "has no title"},
		{"no links", "topics:\n  - title: Sleep", "has no links"},
		{"plain http", "topics:\n  - title: Sleep\n    links: [{title: a, url: 'http://x.org'}]", "bad link"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.raw))
			if err == nil || !strings.Contains(err.Error(), tt.want) {
				t.Errorf("Parse() error = %v, want containing %q", err, tt.want)
			}
		})
	}
}
