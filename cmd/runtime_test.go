package cmd

import (
	"context"
	"encoding/json"
	"io"
	"os"
	"strings"
	"testing"
	"time"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/grovetools/glon/config"
	"github.com/grovetools/glon/pkg/refs"
	"github.com/grovetools/glon/pkg/resolve"
	"github.com/grovetools/glon/pkg/scan"
	"github.com/grovetools/glon/pkg/timewin"
	"github.com/grovetools/glon/testutil"
)

func newTestRuntime(t *testing.T, base string, jsonOutput bool) *runtime {
	t.Helper()

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	cfg := config.Default()
	cfg.BasePath = base

	return &runtime{
		cfg:     cfg,
		logger:  logger,
		json:    jsonOutput,
		scanner: scan.NewScanner(),
	}
}

func captureStdout(t *testing.T, fn func() error) string {
	t.Helper()

	old := os.Stdout
	r, w, err := os.Pipe()
	require.NoError(t, err)
	os.Stdout = w
	defer func() { os.Stdout = old }()

	require.NoError(t, fn())
	require.NoError(t, w.Close())

	data, err := io.ReadAll(r)
	require.NoError(t, err)
	return string(data)
}

// decodeAll returns every top-level JSON value in the output.
func decodeAll(t *testing.T, output string) []json.RawMessage {
	t.Helper()

	var docs []json.RawMessage
	dec := json.NewDecoder(strings.NewReader(output))
	for {
		var raw json.RawMessage
		err := dec.Decode(&raw)
		if err == io.EOF {
			break
		}
		require.NoError(t, err)
		docs = append(docs, raw)
	}
	return docs
}

func TestExecuteJSONListIsSingleDocument(t *testing.T) {
	base := t.TempDir()
	testutil.CreateProject(t, base, "alice", "tools", time.Now().Add(-time.Hour))

	rt := newTestRuntime(t, base, true)

	output := captureStdout(t, func() error {
		return rt.execute(context.Background(), resolve.Intent{
			Kind:   resolve.IntentListProjects,
			Window: timewin.All(),
		})
	})

	docs := decodeAll(t, output)
	require.Len(t, docs, 1)

	var projects []scan.Project
	require.NoError(t, json.Unmarshal(docs[0], &projects))
	require.Len(t, projects, 1)
	assert.Equal(t, "alice", projects[0].Owner)
	assert.Equal(t, "tools", projects[0].Repo)
}

func TestExecuteJSONDryRunCloneIsSingleDocument(t *testing.T) {
	base := t.TempDir()

	rt := newTestRuntime(t, base, true)
	rt.dryRun = true

	ref := &refs.RemoteRef{
		Host:   "github.com",
		Owner:  "alice",
		Repo:   "tools",
		Scheme: refs.SchemeSSH,
		URL:    "git@github.com:alice/tools.git",
	}

	output := captureStdout(t, func() error {
		return rt.execute(context.Background(), resolve.Intent{
			Kind:       resolve.IntentClone,
			Ref:        ref,
			TargetPath: base + "/alice/tools",
		})
	})

	docs := decodeAll(t, output)
	require.Len(t, docs, 1)

	var intent resolve.Intent
	require.NoError(t, json.Unmarshal(docs[0], &intent))
	assert.Equal(t, resolve.IntentClone, intent.Kind)
	assert.NotContains(t, output, "Would clone")
}

func TestRelativeTime(t *testing.T) {
	now := time.Now()

	tests := []struct {
		name     string
		modified time.Time
		expected string
	}{
		{"seconds ago", now.Add(-30 * time.Second), "just now"},
		{"minutes ago", now.Add(-5 * time.Minute), "5m ago"},
		{"hours ago", now.Add(-3 * time.Hour), "3h ago"},
		{"days ago", now.Add(-49 * time.Hour), "2d ago"},
		{"years ago", now.Add(-2 * 365 * 24 * time.Hour), "2y ago"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, relativeTime(tt.modified))
		})
	}
}
