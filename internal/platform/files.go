package platform

import (
	"fmt"
	"hash/fnv"
	"os"
	"os/exec"
	"path/filepath"
	"regexp"
	"runtime"
	"strings"
)

// Operating system constants
const (
	OSDarwin  = "darwin"
	OSWindows = "windows"
	OSLinux   = "linux"
)

// File permissions
const (
	DefaultDirPermissions = 0755
)

// Command constants
const (
	OpenCommand     = "open"
	ExplorerCommand = "explorer"
	XDGOpenCommand  = "xdg-open"
)

// File manager names
var (
	LinuxFileManagers = []string{"nautilus", "dolphin", "thunar", "nemo", "pcmanfm"}
)

// Sanitization constants
const (
	// SanitizeReplacement substitutes characters that are illegal in path components
	SanitizeReplacement = "_"

	// FallbackName is used when sanitizing leaves nothing
	FallbackName = "untitled"

	// MaxComponentLength caps a single path component to stay clear of
	// filesystem limits once the parent directory is prepended
	MaxComponentLength = 150
)

var (
	invalidPathChars   = regexp.MustCompile(`[<>:"/\\|?*\x00-\x1f]`)
	trailingDots       = regexp.MustCompile(`\.+$`)
	repeatedWhitespace = regexp.MustCompile(`\s+`)
)

// SanitizeFileName transforms a title into a string that is safe as a single
// path component: illegal characters replaced, trailing dots removed,
// whitespace collapsed, length capped.
func SanitizeFileName(name string) string {
	// Replace invalid path/file characters
	name = invalidPathChars.ReplaceAllString(name, SanitizeReplacement)

	// Remove trailing dots
	name = trailingDots.ReplaceAllString(name, "")

	// Replace multiple whitespace with single space
	name = repeatedWhitespace.ReplaceAllString(name, " ")

	name = strings.TrimSpace(name)

	if name == "" {
		return FallbackName
	}

	runes := []rune(name)
	if len(runes) > MaxComponentLength {
		name = strings.TrimSpace(string(runes[:MaxComponentLength]))
	}

	return name
}

// SanitizeDirName sanitizes a playlist title for use as a folder name. When
// sanitizing changed the title, a short hash of the raw title is appended so
// two playlists whose titles differ only in illegal characters never map to
// the same folder, while re-running the same playlist reuses its folder.
func SanitizeDirName(title string) string {
	sanitized := SanitizeFileName(title)
	if sanitized == strings.TrimSpace(title) {
		return sanitized
	}
	return fmt.Sprintf("%s [%s]", sanitized, shortHash(title))
}

// shortHash returns a deterministic 8-hex-digit FNV-1a hash of s.
func shortHash(s string) string {
	h := fnv.New32a()
	h.Write([]byte(s))
	return fmt.Sprintf("%08x", h.Sum32())
}

// EnsureUniqueName returns name, or name with a " (2)"-style suffix when the
// name was already taken, and records the result in taken. Used to keep
// track filenames distinct within one destination folder.
func EnsureUniqueName(name string, taken map[string]bool) string {
	if !taken[name] {
		taken[name] = true
		return name
	}
	for i := 2; ; i++ {
		candidate := fmt.Sprintf("%s (%d)", name, i)
		if !taken[candidate] {
			taken[candidate] = true
			return candidate
		}
	}
}

// CreateDirectoryIfNotExists creates directory if it doesn't exist
func CreateDirectoryIfNotExists(dirPath string) error {
	if _, err := os.Stat(dirPath); os.IsNotExist(err) {
		return os.MkdirAll(dirPath, DefaultDirPermissions)
	}
	return nil
}

// GetHomeDownloadsDir returns the standard Downloads directory for the user
func GetHomeDownloadsDir() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("failed to get user home directory: %w", err)
	}

	downloadsDir := filepath.Join(homeDir, "Downloads")
	return downloadsDir, nil
}

// LookupTool checks that an external tool is present on PATH and returns its
// resolved location.
func LookupTool(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found on PATH: %w", name, err)
	}
	return path, nil
}

// OpenFolderInManager opens the directory in the system file manager
func OpenFolderInManager(dirPath string) error {
	info, err := os.Stat(dirPath)
	if err != nil {
		return fmt.Errorf("folder does not exist: %w", err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", dirPath)
	}

	absPath, err := filepath.Abs(dirPath)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %w", err)
	}

	switch runtime.GOOS {
	case OSDarwin:
		return openFolderMacOS(absPath)
	case OSWindows:
		return openFolderWindows(absPath)
	case OSLinux:
		return openFolderLinux(absPath)
	default:
		return fmt.Errorf("unsupported operating system: %s", runtime.GOOS)
	}
}

// openFolderMacOS opens the folder in Finder on macOS
func openFolderMacOS(dirPath string) error {
	cmd := exec.Command(OpenCommand, dirPath)
	return cmd.Run()
}

// openFolderWindows opens the folder in Explorer on Windows
func openFolderWindows(dirPath string) error {
	cmd := exec.Command(ExplorerCommand, dirPath)
	return cmd.Run()
}

// openFolderLinux opens the folder in the default file manager on Linux
func openFolderLinux(dirPath string) error {
	// Try xdg-open first (most common)
	cmd := exec.Command(XDGOpenCommand, dirPath)
	if err := cmd.Run(); err == nil {
		return nil
	}

	// Fallback to common file managers
	for _, fm := range LinuxFileManagers {
		if _, err := exec.LookPath(fm); err == nil {
			cmd := exec.Command(fm, dirPath)
			return cmd.Run()
		}
	}

	return fmt.Errorf("no suitable file manager found")
}
