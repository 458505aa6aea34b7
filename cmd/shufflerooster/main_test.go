package main

import (
	"bytes"
	"context"
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	shufflerooster "github.com/sanodmendis/ShuffleRooster"
)

func writeRoster(t *testing.T, n int) string {
	t.Helper()

	var b strings.Builder
	b.WriteString("Name,Email\n")
	for i := range n {
		b.WriteString("student")
		b.WriteString(string(rune('a' + i)))
		b.WriteString(",s@example.com\n")
	}

	path := filepath.Join(t.TempDir(), "students.csv")
	require.NoError(t, os.WriteFile(path, []byte(b.String()), 0o600))

	return path
}

func readCSV(t *testing.T, path string) [][]string {
	t.Helper()

	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	require.NoError(t, err)

	return rows
}

func TestRun_NonInteractive(t *testing.T) {
	input := writeRoster(t, 10)
	output := filepath.Join(t.TempDir(), "groups.csv")
	var stdout, stderr bytes.Buffer

	err := run(context.Background(), []string{"-input", input, "-size", "4", "-seed", "7", "-output", output},
		strings.NewReader(""), &stdout, &stderr)
	require.NoError(t, err)

	out := stdout.String()
	require.Contains(t, out, "Loaded 10 students")
	require.Contains(t, out, "Created 2 groups (seed 7)")
	require.Contains(t, out, "Saved groups to "+output)
	require.Contains(t, out, "GROUP", "table is printed")

	rows := readCSV(t, output)
	require.Len(t, rows, 11)
	require.Equal(t, []string{"Name", "Email", "GROUP"}, rows[0])
}

func TestRun_Reproducible(t *testing.T) {
	input := writeRoster(t, 12)
	dir := t.TempDir()

	for _, name := range []string{"a.csv", "b.csv"} {
		err := run(context.Background(), []string{"-input", input, "-size", "3", "-seed", "spring", "-quiet",
			"-output", filepath.Join(dir, name)}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		require.NoError(t, err)
	}

	require.Equal(t, readCSV(t, filepath.Join(dir, "a.csv")), readCSV(t, filepath.Join(dir, "b.csv")))
}

func TestRun_Prompt(t *testing.T) {
	input := writeRoster(t, 6)
	output := filepath.Join(t.TempDir(), "groups.csv")
	var stdout bytes.Buffer

	err := run(context.Background(), []string{"-input", input, "-output", output, "-quiet"},
		strings.NewReader("three\n0\n7\n3\n"), &stdout, &bytes.Buffer{})
	require.NoError(t, err)

	out := stdout.String()
	require.Equal(t, 4, strings.Count(out, "Group size (1-6): "))
	require.Contains(t, out, `"three" is not a number`)
	require.Contains(t, out, "invalid group size 0: must be between 1 and 6")
	require.Contains(t, out, "invalid group size 7: must be between 1 and 6")
	require.Contains(t, out, "Created 2 groups")
}

func TestRun_PromptEOF(t *testing.T) {
	input := writeRoster(t, 6)

	err := run(context.Background(), []string{"-input", input, "-quiet"},
		strings.NewReader("0\n"), &bytes.Buffer{}, &bytes.Buffer{})

	require.Error(t, err)
	require.Contains(t, err.Error(), "read group size")
}

func TestRun_DefaultFilename(t *testing.T) {
	input := writeRoster(t, 4)
	dir := t.TempDir()
	t.Setenv("SHUFFLEROOSTER_OUTPUT_DIR", dir)
	t.Setenv("SHUFFLEROOSTER_OUTPUT_PREFIX", "lab")

	err := run(context.Background(), []string{"-input", input, "-size", "2", "-quiet"},
		strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
	require.NoError(t, err)

	matches, err := filepath.Glob(filepath.Join(dir, "lab_*.xlsx"))
	require.NoError(t, err)
	require.Len(t, matches, 1)

	f, err := excelize.OpenFile(matches[0])
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows("Groups")
	require.NoError(t, err)
	require.Len(t, rows, 5)
}

func TestRun_FormatsAndMetrics(t *testing.T) {
	input := writeRoster(t, 9)
	dir := t.TempDir()
	metricsFile := filepath.Join(dir, "shufflerooster.prom")
	output := filepath.Join(dir, "groups.out")
	var stderr bytes.Buffer

	err := run(context.Background(), []string{"-input", input, "-size", "3", "-quiet", "-format", "pdf",
		"-output", output, "-metrics-file", metricsFile, "-trace", "-log-level", "debug"},
		strings.NewReader(""), &bytes.Buffer{}, &stderr)
	require.NoError(t, err)

	data, err := os.ReadFile(output)
	require.NoError(t, err)
	require.True(t, bytes.HasPrefix(data, []byte("%PDF-")))

	prom, err := os.ReadFile(metricsFile)
	require.NoError(t, err)
	require.Contains(t, string(prom), `shufflerooster_grouping_partitions_total{redistributed="false"} 1`)
	require.Contains(t, string(prom), `shufflerooster_io_exports_total{format="pdf",result="success"} 1`)
	require.Contains(t, string(prom), `shufflerooster_io_loads_total{format="csv",result="success"} 1`)

	require.Contains(t, stderr.String(), "session.CreateGroups", "spans are exported")
	require.Contains(t, stderr.String(), "level=DEBUG")
}

func TestRun_Errors(t *testing.T) {
	input := writeRoster(t, 5)
	dir := t.TempDir()

	tests := []struct {
		name string
		args []string
		want error
	}{
		{"size too large", []string{"-input", input, "-size", "6", "-quiet", "-output", filepath.Join(dir, "x.csv")}, shufflerooster.ErrInvalidGroupSize},
		{"legacy excel input", []string{"-input", filepath.Join(dir, "old.xls"), "-size", "2"}, shufflerooster.ErrUnsupportedFormat},
		{"missing input", []string{"-input", filepath.Join(dir, "missing.csv"), "-size", "2"}, shufflerooster.ErrSourceUnreadable},
		{"legacy excel output", []string{"-input", input, "-size", "2", "-output", filepath.Join(dir, "x.xls")}, shufflerooster.ErrUnsupportedFormat},
		{"unknown format", []string{"-input", input, "-size", "2", "-format", "docx"}, shufflerooster.ErrInvalidConfig},
		{"unwritable output", []string{"-input", input, "-size", "2", "-quiet", "-output", filepath.Join(dir, "no", "x.csv")}, shufflerooster.ErrDestinationUnwritable},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := run(context.Background(), tt.args, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
			require.ErrorIs(t, err, tt.want)
		})
	}

	t.Run("input required", func(t *testing.T) {
		err := run(context.Background(), []string{"-size", "2"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		require.ErrorContains(t, err, "-input is required")
	})

	t.Run("unknown flag", func(t *testing.T) {
		err := run(context.Background(), []string{"-bogus"}, strings.NewReader(""), &bytes.Buffer{}, &bytes.Buffer{})
		require.Error(t, err)
	})
}
