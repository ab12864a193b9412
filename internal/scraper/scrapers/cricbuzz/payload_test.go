package cricbuzz

import (
	"errors"
	"strings"
	"testing"
)

func TestLocatePayload(t *testing.T) {
	html := `<html><head><script>var analytics = {};</script></head><body>
<div>content</div>
<script>window.__data = "{\"currentMatchesList\":[{\"matchId\":101}]}";</script>
</body></html>`

	got, err := locatePayload(html)
	if err != nil {
		t.Fatalf("locatePayload: %v", err)
	}
	if !strings.Contains(got, `"matchId":101`) {
		t.Errorf("payload not normalized, got %q", got)
	}
}

func TestLocatePayloadPicksFirstMarker(t *testing.T) {
	html := `<html><body>
<script>var scheduleData = {"adjustedWeeks": 1};</script>
<script>var matchesList = {"adjustedWeeks": 2};</script>
</body></html>`

	got, err := locatePayload(html)
	if err != nil {
		t.Fatalf("locatePayload: %v", err)
	}
	if !strings.Contains(got, "scheduleData") {
		t.Errorf("expected first marked script, got %q", got)
	}
}

func TestLocatePayloadNotFound(t *testing.T) {
	html := `<html><body><script>var unrelated = 1;</script></body></html>`

	_, err := locatePayload(html)
	if !errors.Is(err, errPayloadNotFound) {
		t.Errorf("err = %v, want errPayloadNotFound", err)
	}
}

func TestNormalizeEscapes(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{`\"matchId\":5`, `"matchId":5`},
		{`path\\to\\file`, `path\to\file`},
		{`\"a\\b\"`, `"a\b"`},
		{`plain`, `plain`},
	}
	for _, tt := range tests {
		got := normalizeEscapes(tt.in)
		if got != tt.want {
			t.Errorf("normalizeEscapes(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
