package main

import (
	"encoding/json"
	"errors"
	"testing"

	"fitframes/internal/fit2df"
	"fitframes/internal/fitdecode"
	"fitframes/internal/testsupport"
)

func TestLapsRejectsNonFITInput(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"laps", "ride.gpx"}, env.configPath)
	var formatErr *fit2df.FormatError
	if !errors.As(err, &formatErr) {
		t.Fatalf("expected FormatError, got %v", err)
	}
}

func TestPointsReportsDecodeError(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteGarbageFIT(t, env.baseDir, "broken.fit")
	out, _, err := runCLI(t, []string{"points", path}, env.configPath)
	var decodeErr *fitdecode.DecodeError
	if !errors.As(err, &decodeErr) {
		t.Fatalf("expected DecodeError, got %v", err)
	}
	if out != "" {
		t.Fatalf("expected no table output on failure, got %q", out)
	}
}

func TestLapsRendersTable(t *testing.T) {
	env := setupCLITestEnv(t, testsupport.WithStatusMessages(true))
	path := testsupport.WriteActivityFIT(t, env.baseDir, "ride.fit")

	out, _, err := runCLI(t, []string{"laps", path}, env.configPath)
	if err != nil {
		t.Fatalf("laps: %v", err)
	}
	requireContains(t, out, "Total Distance")
	requireContains(t, out, "1234")
	requireContains(t, out, "1990-01-01T00:00:00Z")
	requireContains(t, out, "1 lap(s)")
}

func TestPointsJSONKeepsNulls(t *testing.T) {
	env := setupCLITestEnv(t)
	path := testsupport.WriteActivityFIT(t, env.baseDir, "ride.fit")

	out, _, err := runCLI(t, []string{"points", path, "--json", "--status"}, env.configPath)
	if err != nil {
		t.Fatalf("points: %v", err)
	}
	var records []map[string]any
	if err := json.Unmarshal([]byte(out), &records); err != nil {
		t.Fatalf("decode output: %v\n%s", err, out)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 point, got %d", len(records))
	}
	rec := records[0]
	if rec["latitude"] != 45.0 || rec["longitude"] != -90.0 {
		t.Fatalf("unexpected position %v,%v", rec["latitude"], rec["longitude"])
	}
	if v, ok := rec["power"]; !ok || v != nil {
		t.Fatalf("power should be present and null, got %v (present=%v)", v, ok)
	}
	if rec["lap"] != 1.0 {
		t.Fatalf("lap = %v, want 1", rec["lap"])
	}
}

func TestPointsRejectsNegativeLimit(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"points", "ride.fit", "--limit", "-1"}, env.configPath); err == nil {
		t.Fatal("expected negative limit to fail")
	}
}
