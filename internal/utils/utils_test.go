package utils

import (
	"os"
	"path/filepath"
	"testing"
)

func TestIsValidInput(t *testing.T) {
	testCases := []struct {
		input string
		want  bool
	}{
		{"hel", true},
		{"Hé", true},
		{"rock-n", true},
		{"", false},
		{"1234", false},
		{"he$", false},
		{"aaa", false},
		{"aa", true},
		{"\xff", false},
	}

	for _, tc := range testCases {
		if got := IsValidInput(tc.input); got != tc.want {
			t.Errorf("IsValidInput(%q) = %v, want %v", tc.input, got, tc.want)
		}
	}
}

func TestFormatWithCommas(t *testing.T) {
	testCases := map[int]string{
		0:        "0",
		999:      "999",
		1000:     "1,000",
		1234567:  "1,234,567",
		-1234567: "-1,234,567",
	}
	for n, want := range testCases {
		if got := FormatWithCommas(n); got != want {
			t.Errorf("FormatWithCommas(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestSaveTOMLFileRoundTrip(t *testing.T) {
	type section struct {
		Limit int    `toml:"limit"`
		Path  string `toml:"path"`
	}
	type doc struct {
		Dict section `toml:"dict"`
	}

	path := filepath.Join(t.TempDir(), "config.toml")
	if err := SaveTOMLFile(doc{Dict: section{Limit: 7, Path: "words.txt"}}, path); err != nil {
		t.Fatalf("SaveTOMLFile failed: %v", err)
	}

	var got doc
	if err := LoadTOMLFile(path, &got); err != nil {
		t.Fatalf("LoadTOMLFile failed: %v", err)
	}
	if got.Dict.Limit != 7 || got.Dict.Path != "words.txt" {
		t.Errorf("decoded %+v", got)
	}

	raw, err := ParseTOMLWithRecovery(path)
	if err != nil {
		t.Fatalf("ParseTOMLWithRecovery failed: %v", err)
	}
	dict, ok := ExtractSection(raw, "dict")
	if !ok {
		t.Fatalf("missing dict section in %v", raw)
	}
	if v, ok := ExtractInt64(dict, "limit"); !ok || v != 7 {
		t.Errorf("ExtractInt64(limit) = %d, %v", v, ok)
	}
	if v, ok := ExtractString(dict, "path"); !ok || v != "words.txt" {
		t.Errorf("ExtractString(path) = %q, %v", v, ok)
	}
}

func TestCheckDirStatus(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "config")
	result := CheckDirStatus(dir)
	if !result.Exists || !result.Writable || result.Error != nil {
		t.Fatalf("CheckDirStatus(%s) = %+v", dir, result)
	}
	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 0 {
		t.Errorf("write probe left files behind: %v", entries)
	}
}
