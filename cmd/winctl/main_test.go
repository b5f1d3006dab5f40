package main

import (
	"strings"
	"testing"

	"github.com/1broseidon/winctl"
)

func TestParsePID(t *testing.T) {
	pid, err := parsePID("4242")
	if err != nil {
		t.Fatalf("parsePID(4242) failed: %v", err)
	}
	if pid != 4242 {
		t.Fatalf("expected 4242, got %d", pid)
	}

	for _, bad := range []string{"", "abc", "-1", "0x10", "99999999999"} {
		if _, err := parsePID(bad); err == nil {
			t.Fatalf("expected error for %q", bad)
		}
	}
}

func TestFormatWindowLinePlain(t *testing.T) {
	w := winctl.Window{Handle: 0x3400007, PID: 1234, Title: "Editor", Visible: true}

	line := formatWindowLine(w, "code", false)
	fields := strings.Split(line, "\t")
	if len(fields) != 4 {
		t.Fatalf("expected 4 tab-separated fields, got %d: %q", len(fields), line)
	}
	if fields[0] != "0x3400007" || fields[1] != "1234" || fields[2] != "code" || fields[3] != "Editor" {
		t.Fatalf("unexpected fields: %q", line)
	}
}

func TestFormatWindowLinePlaceholders(t *testing.T) {
	w := winctl.Window{Handle: 0x10, PID: 0}

	line := formatWindowLine(w, "", false)
	fields := strings.Split(line, "\t")
	if fields[2] != "-" || fields[3] != "-" {
		t.Fatalf("expected placeholders for empty name and title, got %q", line)
	}
}

func TestFormatWindowLineTerminal(t *testing.T) {
	w := winctl.Window{Handle: 0x10, PID: 7, Title: "T", Visible: true}

	line := formatWindowLine(w, "sh", true)
	if strings.Contains(line, "\t") {
		t.Fatalf("terminal output should not contain tabs: %q", line)
	}
	if !strings.HasPrefix(line, "0x10") || !strings.HasSuffix(line, "T") {
		t.Fatalf("unexpected terminal row: %q", line)
	}
}
