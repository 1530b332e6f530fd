package engine

import (
	"testing"
	"time"
)

func TestNew(t *testing.T) {
	e := New()

	if e.resolveTimeout != DefaultResolveTimeout {
		t.Errorf("resolveTimeout = %v, expected %v", e.resolveTimeout, DefaultResolveTimeout)
	}

	e.SetResolveTimeout(5 * time.Second)
	if e.resolveTimeout != 5*time.Second {
		t.Errorf("resolveTimeout = %v, expected %v", e.resolveTimeout, 5*time.Second)
	}
}

func TestEscapeTemplate(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Plain Name", "Plain Name"},
		{"50% Mix", "50%% Mix"},
		{"%(title)s", "%%(title)s"},
		{"", ""},
	}

	for _, tt := range tests {
		result := escapeTemplate(tt.input)
		if result != tt.expected {
			t.Errorf("escapeTemplate(%q) = %q, expected %q", tt.input, result, tt.expected)
		}
	}
}

func TestConvertedPath(t *testing.T) {
	tests := []struct {
		reported string
		format   string
		expected string
	}{
		{"/music/track.webm", "mp3", "/music/track.mp3"},
		{"/music/track.m4a", "opus", "/music/track.opus"},
		{"/music/track", "mp3", "/music/track.mp3"},
		{"/music/a.b/track.webm", "flac", "/music/a.b/track.flac"},
	}

	for _, tt := range tests {
		result := convertedPath(tt.reported, tt.format)
		if result != tt.expected {
			t.Errorf("convertedPath(%q, %q) = %q, expected %q", tt.reported, tt.format, result, tt.expected)
		}
	}
}

func TestStringValue(t *testing.T) {
	title := "Some Track"

	if stringValue(&title) != "Some Track" {
		t.Errorf("stringValue(&title) = %q, expected %q", stringValue(&title), "Some Track")
	}
	if stringValue(nil) != "" {
		t.Errorf("stringValue(nil) = %q, expected empty", stringValue(nil))
	}
}
