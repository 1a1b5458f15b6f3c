package main

import (
	"bytes"
	"encoding/hex"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tanklash/flagwire/internal/flags"
)

func TestRunList(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, true, "", "", ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "good:") || !strings.Contains(text, "bad:") {
		t.Fatalf("list missing sections:\n%s", text)
	}
	if !strings.Contains(text, "GM") || !strings.Contains(text, "Colorblindness") {
		t.Fatalf("list missing entries:\n%s", text)
	}
}

func TestRunInfo(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, false, "SH", "", ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Shield (+SH): ") {
		t.Fatalf("unexpected info output:\n%s", out.String())
	}
	if err := run(&out, false, "zz", "", ""); err == nil {
		t.Fatalf("expected error for unknown abbreviation")
	}
}

func TestRunDecode(t *testing.T) {
	reg := flags.NewRegistry()
	ft, _ := reg.Lookup("V")
	fi := flags.Instance{
		Type:      ft,
		Status:    flags.StatusCarried,
		Endurance: flags.EnduranceUnstable,
		Owner:     9,
	}
	record := hex.EncodeToString(fi.Pack(nil))

	var out bytes.Buffer
	if err := run(&out, false, "", record, ""); err != nil {
		t.Fatalf("run: %v", err)
	}
	text := out.String()
	if !strings.Contains(text, "High Speed") || !strings.Contains(text, "owner: 9") {
		t.Fatalf("unexpected decode output:\n%s", text)
	}

	if err := run(&out, false, "", "zz", ""); err == nil {
		t.Fatalf("expected error for bad hex")
	}
	if err := run(&out, false, "", "abcd", ""); err == nil {
		t.Fatalf("expected error for short record")
	}
}

func TestRunWithCustomFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "flags.toml")
	body := `
[[flag]]
abbrev = "VN"
name = "Vanish"
effect = "cloaking"
`
	if err := os.WriteFile(path, []byte(body), 0o600); err != nil {
		t.Fatalf("write flag file: %v", err)
	}

	var out bytes.Buffer
	if err := run(&out, false, "VN", "", path); err != nil {
		t.Fatalf("run: %v", err)
	}
	if !strings.Contains(out.String(), "Vanish") {
		t.Fatalf("custom flag not registered:\n%s", out.String())
	}
}

func TestRunRequiresAnAction(t *testing.T) {
	var out bytes.Buffer
	if err := run(&out, false, "", "", ""); err == nil {
		t.Fatalf("expected error when no action given")
	}
}
