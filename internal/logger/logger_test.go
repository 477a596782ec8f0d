package logger

import (
	"bytes"
	"os"
	"sync"
	"testing"
)

// capture redirects log output into a buffer for the duration of the
// test and restores the package defaults afterwards.
func capture(t *testing.T, verbose bool) *bytes.Buffer {
	t.Helper()

	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(verbose)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})

	return &buf
}

func TestVerboseToggle(t *testing.T) {
	capture(t, false)

	if IsVerbose() {
		t.Error("verbose should be off before SetVerbose(true)")
	}

	SetVerbose(true)

	if !IsVerbose() {
		t.Error("verbose should be on after SetVerbose(true)")
	}
}

func TestLevels(t *testing.T) {
	cases := []struct {
		name    string
		verbose bool
		log     func()
		want    string
	}{
		{
			name:    "debug prints in verbose mode",
			verbose: true,
			log:     func() { Debug("tokenised %s into %d terms", "guides/setup.md", 42) },
			want:    "[DEBUG] tokenised guides/setup.md into 42 terms\n",
		},
		{
			name:    "debug is silent by default",
			verbose: false,
			log:     func() { Debug("tokenised %s into %d terms", "guides/setup.md", 42) },
			want:    "",
		},
		{
			name:    "info prints in verbose mode",
			verbose: true,
			log:     func() { Info("indexed %d documents", 12) },
			want:    "[INFO] indexed 12 documents\n",
		},
		{
			name:    "info is silent by default",
			verbose: false,
			log:     func() { Info("indexed %d documents", 12) },
			want:    "",
		},
		{
			name:    "section banner prints in verbose mode",
			verbose: true,
			log:     func() { Section("Building index") },
			want:    "\n=== Building index ===\n",
		},
		{
			name:    "section is silent by default",
			verbose: false,
			log:     func() { Section("Building index") },
			want:    "",
		},
		{
			name:    "warn prints in verbose mode",
			verbose: true,
			log:     func() { Warn("malformed frontmatter in %s", "notes/draft.md") },
			want:    "[WARN] malformed frontmatter in notes/draft.md\n",
		},
		{
			name:    "warn prints even without verbose mode",
			verbose: false,
			log:     func() { Warn("skipped %s: permission denied", "guides/locked.md") },
			want:    "[WARN] skipped guides/locked.md: permission denied\n",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			buf := capture(t, tc.verbose)

			tc.log()

			if got := buf.String(); got != tc.want {
				t.Errorf("got %q, want %q", got, tc.want)
			}
		})
	}
}

func TestConcurrentUse(t *testing.T) {
	capture(t, false)

	var wg sync.WaitGroup
	for i := 0; i < 10; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			SetVerbose(true)
			Debug("indexing worker %d", n)
			IsVerbose()
			SetVerbose(false)
		}(i)
	}
	wg.Wait()
}
