package main

import (
	"bytes"
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/IvanShishkin/filehound/internal/config"
	"github.com/IvanShishkin/filehound/pkg/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateFlags(t *testing.T) {
	tests := []struct {
		format  string
		wantErr bool
	}{
		{"", false},
		{"json", false},
		{"JSON", false},
		{"md", false},
		{"markdown", false},
		{"yml", false},
		{"xml", true},
		{"pdf", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			err := validateFlags(tt.format)
			if (err != nil) != tt.wantErr {
				t.Errorf("validateFlags(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
		})
	}
}

func changedSet(names ...string) func(string) bool {
	set := make(map[string]bool, len(names))
	for _, n := range names {
		set[n] = true
	}
	return func(name string) bool { return set[name] }
}

func TestBuildQuery(t *testing.T) {
	opts := searchOptions{name: "report", extension: ".csv", minSize: "1K", maxSize: "2M"}

	q, err := buildQuery("/srv", opts, changedSet("name", "ext", "min-size", "max-size"))
	require.NoError(t, err)

	assert.Equal(t, "/srv", q.Root)
	assert.Equal(t, "report", q.Name)
	assert.Equal(t, ".csv", q.Extension)
	assert.Empty(t, q.Content)
	require.NotNil(t, q.MinSize)
	require.NotNil(t, q.MaxSize)
	assert.Equal(t, int64(1024), *q.MinSize)
	assert.Equal(t, int64(2*1024*1024), *q.MaxSize)
}

func TestBuildQuery_DefaultRoot(t *testing.T) {
	q, err := buildQuery("", searchOptions{}, changedSet())
	require.NoError(t, err)
	assert.Equal(t, ".", q.Root)
	assert.Nil(t, q.MinSize)
	assert.Nil(t, q.MaxSize)
}

func TestBuildQuery_ZeroIsABound(t *testing.T) {
	q, err := buildQuery(".", searchOptions{maxSize: "0"}, changedSet("max-size"))
	require.NoError(t, err)
	require.NotNil(t, q.MaxSize)
	assert.Equal(t, int64(0), *q.MaxSize)
}

func TestBuildQuery_Errors(t *testing.T) {
	tests := []struct {
		name    string
		opts    searchOptions
		changed []string
		target  error
	}{
		{"inverted range", searchOptions{minSize: "10K", maxSize: "1K"}, []string{"min-size", "max-size"}, models.ErrInvertedSizeRange},
		{"bad size", searchOptions{minSize: "ten"}, []string{"min-size"}, nil},
		{"missing query file", searchOptions{queryFile: "/nonexistent/query.yaml"}, nil, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := buildQuery(".", tt.opts, changedSet(tt.changed...))
			require.Error(t, err)
			if tt.target != nil {
				assert.ErrorIs(t, err, tt.target)
			}
		})
	}
}

func TestBuildQuery_QueryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "query.yaml")
	require.NoError(t, config.SaveQueryFile(path, models.Query{
		Root:    "/from/file",
		Name:    "old",
		Content: "hello",
		MinSize: models.Bytes(10),
	}))

	// Flags and the path argument override the file
	q, err := buildQuery("/from/arg", searchOptions{queryFile: path, name: "new", minSize: ""}, changedSet("name", "min-size"))
	require.NoError(t, err)

	assert.Equal(t, "/from/arg", q.Root)
	assert.Equal(t, "new", q.Name)
	assert.Equal(t, "hello", q.Content)
	assert.Nil(t, q.MinSize, "an empty size flag clears the bound")
}

func TestSearchCommand_JSONReport(t *testing.T) {
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("hello world"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(root, "b.log"), []byte("hello"), 0644))
	require.NoError(t, os.MkdirAll(filepath.Join(root, "sub"), 0755))
	require.NoError(t, os.WriteFile(filepath.Join(root, "sub", "c.txt"), []byte("bye"), 0644))

	out := filepath.Join(t.TempDir(), "report.json")
	cmd := newRootCmd()
	cmd.SetArgs([]string{"search", root, "--ext", ".txt", "--content", "hello", "-r", "json", "-o", out})
	require.NoError(t, cmd.Execute())

	data, err := os.ReadFile(out)
	require.NoError(t, err)

	var results models.SearchResults
	require.NoError(t, json.Unmarshal(data, &results))
	require.Len(t, results.Records, 1)
	assert.Equal(t, "a.txt", results.Records[0].Name)
	assert.Equal(t, filepath.Join(root, "a.txt"), results.Records[0].Path)
	assert.Equal(t, 3, results.Stats.FilesVisited)
}

func TestSearchCommand_RejectsInvertedRange(t *testing.T) {
	cmd := newRootCmd()
	cmd.SetArgs([]string{"search", t.TempDir(), "--min-size", "2K", "--max-size", "1K", "-r", "json",
		"-o", filepath.Join(t.TempDir(), "never.json")})

	err := cmd.Execute()
	require.Error(t, err)
	assert.ErrorIs(t, err, models.ErrInvertedSizeRange)

	// Already reported as an invalid parameter, main must not print it again
	var buf bytes.Buffer
	printError(&buf, err)
	assert.Empty(t, buf.String())
}

func TestPrintError(t *testing.T) {
	var buf bytes.Buffer
	printError(&buf, errors.New("boom"))
	assert.Equal(t, "Error: boom\n", buf.String())
}

func TestRemoveCommand(t *testing.T) {
	path := filepath.Join(t.TempDir(), "gone.txt")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0644))

	cmd := newRootCmd()
	cmd.SetArgs([]string{"rm", path})
	require.NoError(t, cmd.Execute())

	_, err := os.Stat(path)
	assert.True(t, os.IsNotExist(err))

	// Second removal hits a stale path
	cmd = newRootCmd()
	cmd.SetArgs([]string{"rm", path})
	assert.Error(t, cmd.Execute())
}
