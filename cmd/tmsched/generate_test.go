package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"transit-mixer-scheduler/internal/api/dto"
)

func runCmd(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newGenerateCmd()
	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()
	return out.String(), err
}

var sampleArgs = []string{
	"--start", "05:00", "--total", "40", "--load", "10", "--travel", "30",
	"--unload", "15", "--buffer", "5", "--per-trip", "10", "--vehicles", "2",
}

func TestGenerateTable(t *testing.T) {
	out, err := runCmd(t, sampleArgs...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	lines := strings.Split(out, "\n")
	if !strings.HasPrefix(lines[0], "Trip No.") {
		t.Fatalf("first line = %q", lines[0])
	}

	fields := strings.Fields(lines[2])
	want := []string{"2", "2", "06:30", "06:40", "07:10", "07:15", "07:30", "08:00", "5", "90", "10", "20"}
	if strings.Join(fields, " ") != strings.Join(want, " ") {
		t.Fatalf("trip 2 row = %v, want %v", fields, want)
	}

	if !strings.Contains(out, "Last return: 09:30") {
		t.Fatalf("missing summary in output:\n%s", out)
	}
	if !strings.Contains(out, "TM1=2 TM2=2") {
		t.Fatalf("missing per-vehicle counts in output:\n%s", out)
	}
}

func TestGenerateJSON(t *testing.T) {
	out, err := runCmd(t, append(sampleArgs, "--format", "json")...)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res dto.ScheduleResponse
	if err := json.Unmarshal([]byte(out), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(res.Trips) != 4 || res.Trips[3].WorkStartTime != "08:00" {
		t.Fatalf("trips = %+v", res.Trips)
	}
}

func TestGenerateExportCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.csv")

	if _, err := runCmd(t, append(sampleArgs, "--export", path)...); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read export: %v", err)
	}
	if got := strings.Count(string(data), "\n"); got != 5 {
		t.Fatalf("csv lines = %d, want 5", got)
	}
}

func TestGenerateRejectsInvalidInput(t *testing.T) {
	if _, err := runCmd(t, "--total", "0"); err == nil {
		t.Fatalf("expected error for zero total")
	}
	if _, err := runCmd(t, "--total", "10", "--vehicles", "0"); err == nil {
		t.Fatalf("expected error for zero vehicles")
	}
	if _, err := runCmd(t, "--total", "10", "--start", "dawn"); err == nil {
		t.Fatalf("expected error for bad start")
	}
}

func TestGenerateUnsupportedExportLeavesNoFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "schedule.pdf")

	if _, err := runCmd(t, append(sampleArgs, "--export", path)...); err == nil {
		t.Fatalf("expected error for pdf export")
	}
	if _, err := os.Stat(path); !os.IsNotExist(err) {
		t.Fatalf("export file should not exist, stat err = %v", err)
	}
}

func TestRootReadsDefaultsPathFromEnvAtRunTime(t *testing.T) {
	path := filepath.Join(t.TempDir(), "defaults.toml")
	content := "[schedule]\nstart_time = \"06:00\"\nquantity_per_trip = 10\nvehicle_count = 3\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write defaults: %v", err)
	}
	t.Setenv("DEFAULTS_PATH", path)
	t.Cleanup(func() { defaultsPath = "" })

	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"generate", "--total", "30", "--format", "json"})
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetArgs(nil)
	})

	if err := rootCmd.Execute(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	var res dto.ScheduleResponse
	if err := json.Unmarshal(out.Bytes(), &res); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if res.Config.VehicleCount != 3 || res.Config.StartTime != "06:00" {
		t.Fatalf("config = %+v, want values from DEFAULTS_PATH", res.Config)
	}
	if len(res.Trips) != 3 || res.Trips[2].VehicleID != 3 {
		t.Fatalf("trips = %+v", res.Trips)
	}
}
