package platform

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSanitizeFileName(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"Midnight City", "Midnight City"},                    // already clean
		{"My Mix: Vol. 1", "My Mix_ Vol. 1"},                  // colon replaced
		{"AC/DC Covers", "AC_DC Covers"},                      // slash replaced
		{"What? Why?", "What_ Why_"},                          // question marks replaced
		{`Best "Hits"`, "Best _Hits_"},                        // quotes replaced
		{"Trailing dots...", "Trailing dots"},                 // trailing dots removed
		{"Too   many    spaces", "Too many spaces"},           // whitespace collapsed
		{"  padded  ", "padded"},                              // trimmed
		{"a\tb\nc", "a_b_c"},                                  // control characters replaced
		{"", "untitled"},                                      // empty falls back
		{"???", "___"},                                        // nothing but illegal characters
		{"mix<1>|part\\two*", "mix_1__part_two_"},             // remaining illegal set
	}

	for _, test := range tests {
		result := SanitizeFileName(test.input)
		if result != test.expected {
			t.Errorf("SanitizeFileName(%q) = %q, expected %q", test.input, result, test.expected)
		}
	}
}

func TestSanitizeFileName_CapsLength(t *testing.T) {
	long := strings.Repeat("x", MaxComponentLength+50)
	result := SanitizeFileName(long)

	if len([]rune(result)) > MaxComponentLength {
		t.Errorf("SanitizeFileName should cap length at %d, got %d", MaxComponentLength, len([]rune(result)))
	}
}

func TestSanitizeDirName_CleanTitleUnchanged(t *testing.T) {
	result := SanitizeDirName("Summer Playlist 2026")
	if result != "Summer Playlist 2026" {
		t.Errorf("Clean title should pass through unchanged, got %q", result)
	}
}

func TestSanitizeDirName_Disambiguates(t *testing.T) {
	// Both titles sanitize to "My_Mix" but must not share a folder.
	a := SanitizeDirName("My:Mix")
	b := SanitizeDirName("My/Mix")

	if a == b {
		t.Errorf("Different raw titles must yield different folder names, both got %q", a)
	}
	for _, name := range []string{a, b} {
		if strings.ContainsAny(name, `<>:"/\|?*`) {
			t.Errorf("Sanitized folder name still contains illegal characters: %q", name)
		}
	}
}

func TestSanitizeDirName_Deterministic(t *testing.T) {
	first := SanitizeDirName("My:Mix")
	second := SanitizeDirName("My:Mix")

	if first != second {
		t.Errorf("Same title should always map to the same folder: %q vs %q", first, second)
	}
}

func TestEnsureUniqueName(t *testing.T) {
	taken := make(map[string]bool)

	first := EnsureUniqueName("Track", taken)
	second := EnsureUniqueName("Track", taken)
	third := EnsureUniqueName("Track", taken)
	other := EnsureUniqueName("Other", taken)

	if first != "Track" {
		t.Errorf("First use should keep the name, got %q", first)
	}
	if second != "Track (2)" {
		t.Errorf("Second use should get suffix (2), got %q", second)
	}
	if third != "Track (3)" {
		t.Errorf("Third use should get suffix (3), got %q", third)
	}
	if other != "Other" {
		t.Errorf("Unrelated name should be untouched, got %q", other)
	}
}

func TestCreateDirectoryIfNotExists(t *testing.T) {
	// Create temporary directory for testing
	tempDir := t.TempDir()
	testDir := filepath.Join(tempDir, "test_dir")

	// Directory should not exist initially
	if _, err := os.Stat(testDir); !os.IsNotExist(err) {
		t.Fatalf("Test directory already exists: %s", testDir)
	}

	// Create directory
	err := CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to create directory: %v", err)
	}

	// Directory should now exist
	if _, err := os.Stat(testDir); os.IsNotExist(err) {
		t.Fatalf("Directory was not created: %s", testDir)
	}

	// Second call should not fail
	err = CreateDirectoryIfNotExists(testDir)
	if err != nil {
		t.Fatalf("Failed to handle existing directory: %v", err)
	}
}

func TestGetHomeDownloadsDir(t *testing.T) {
	downloadsDir, err := GetHomeDownloadsDir()
	if err != nil {
		t.Fatalf("Failed to get downloads directory: %v", err)
	}

	if downloadsDir == "" {
		t.Fatal("Downloads directory is empty")
	}

	// Should end with "Downloads"
	if filepath.Base(downloadsDir) != "Downloads" {
		t.Errorf("Expected directory to end with 'Downloads', got: %s", downloadsDir)
	}
}

func TestLookupTool_Missing(t *testing.T) {
	_, err := LookupTool("definitely-not-a-real-tool-name")
	if err == nil {
		t.Error("Expected error for missing tool, got nil")
	}
}

func TestOpenFolderInManager_NonExistentDir(t *testing.T) {
	tempDir := t.TempDir()
	missing := filepath.Join(tempDir, "missing")

	err := OpenFolderInManager(missing)
	if err == nil {
		t.Error("Expected error for non-existent folder, got nil")
	}

	if !strings.Contains(err.Error(), "folder does not exist") {
		t.Errorf("Error message should contain 'folder does not exist', got: %v", err)
	}
}
