package utils

import (
	"path/filepath"
	"runtime"
	"testing"
)

func TestGetAbsolutePath_AlreadyAbsolute(t *testing.T) {
	var absolutePath string
	if runtime.GOOS == "windows" {
		absolutePath = "C:\\test\\file.txt"
	} else {
		absolutePath = "/test/file.txt"
	}

	result := GetAbsolutePath(absolutePath, "/base/dir")

	if result != absolutePath {
		t.Errorf("Expected %s, got %s", absolutePath, result)
	}
}

func TestGetAbsolutePath_Relative(t *testing.T) {
	if runtime.GOOS == "windows" {
		t.Skip("POSIX separators")
	}

	tests := []struct {
		name     string
		path     string
		baseDir  string
		expected string
	}{
		{"plain", "logs/debug.txt", "/base/dir", "/base/dir/logs/debug.txt"},
		{"dot", "./debug.txt", "/base/dir", "/base/dir/debug.txt"},
		{"double dot", "../debug.txt", "/base/dir", "/base/debug.txt"},
		{"empty path", "", "/base/dir", "/base/dir"},
		{"empty base", "debug.txt", "", "debug.txt"},
		{"cleaning", "a//b/../c/debug.txt", "/base//dir", "/base/dir/a/c/debug.txt"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := GetAbsolutePath(tt.path, tt.baseDir); got != tt.expected {
				t.Errorf("Expected %s, got %s", tt.expected, got)
			}
		})
	}
}

func TestGetAbsolutePath_WithFilepathSeparator(t *testing.T) {
	relativePath := filepath.Join("subdir", "file.txt")
	baseDir := filepath.Join("/", "base", "dir")

	result := GetAbsolutePath(relativePath, baseDir)
	expected := filepath.Join("/", "base", "dir", "subdir", "file.txt")

	if result != expected {
		t.Errorf("Expected %s, got %s", expected, result)
	}
}

func TestCygwinPath(t *testing.T) {
	tests := []struct {
		name     string
		path     string
		expected string
	}{
		{"backslashes", `C:\Users\x\log.txt`, "/cygdrive/C/Users/x/log.txt"},
		{"forward slashes", "D:/User/Downloads/debug.txt", "/cygdrive/D/User/Downloads/debug.txt"},
		{"mixed separators", `e:\logs/sub\debug.txt`, "/cygdrive/e/logs/sub/debug.txt"},
		{"posix absolute", "/var/log/debug.txt", "/var/log/debug.txt"},
		{"relative", `logs\debug.txt`, `logs\debug.txt`},
		{"drive relative", "C:debug.txt", "C:debug.txt"},
		{"empty", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CygwinPath(tt.path); got != tt.expected {
				t.Errorf("CygwinPath(%q) = %q, want %q", tt.path, got, tt.expected)
			}
		})
	}
}

func TestResolveLogPath(t *testing.T) {
	path := `C:\Users\x\log.txt`

	if got := ResolveLogPath(path, true); got != "/cygdrive/C/Users/x/log.txt" {
		t.Errorf("Expected cygdrive path, got %s", got)
	}
	if got := ResolveLogPath(path, false); got != path {
		t.Errorf("Expected unchanged path outside Cygwin, got %s", got)
	}
}

func TestIsCygwinSysname(t *testing.T) {
	tests := []struct {
		sysname  string
		expected bool
	}{
		{"CYGWIN_NT-10.0-19045", true},
		{"cygwin", true},
		{"Linux", false},
		{"Darwin", false},
		{"", false},
	}

	for _, tt := range tests {
		if got := isCygwinSysname(tt.sysname); got != tt.expected {
			t.Errorf("isCygwinSysname(%q) = %v, want %v", tt.sysname, got, tt.expected)
		}
	}
}

func TestIsCygwin_HostIsNotCygwin(t *testing.T) {
	if runtime.GOOS != "linux" && runtime.GOOS != "darwin" {
		t.Skip("host probe only checked on linux and darwin")
	}
	if IsCygwin() {
		t.Error("Expected IsCygwin to be false on this host")
	}
}
