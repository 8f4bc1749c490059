package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"testing"
	"time"

	"go.uber.org/zap"

	printdoc "github.com/alnah/go-printdoc"
)

// Notes:
// - renderBatch is exercised with a fake generator so tests focus on
//   ordering, cancellation and file output rather than HTML content.
// - End-to-end rendering with the real renderer lives in main_test.go.

type fakeGenerator struct {
	calls atomic.Int32
	err   error
	delay time.Duration
}

func (f *fakeGenerator) GenerateDocument(ctx context.Context, lines []*printdoc.Line, opts printdoc.DocumentOptions) (string, error) {
	f.calls.Add(1)
	if f.delay > 0 {
		time.Sleep(f.delay)
	}
	if f.err != nil {
		return "", f.err
	}
	return fmt.Sprintf("<html>%s:%d</html>", opts.Title, len(lines)), nil
}

func titleOptions(title string) func(*documentFile) printdoc.DocumentOptions {
	return func(*documentFile) printdoc.DocumentOptions {
		opts := printdoc.DefaultDocumentOptions()
		opts.Title = title
		return opts
	}
}

func testEnv() (*Environment, *bytes.Buffer, *bytes.Buffer) {
	var stdout, stderr bytes.Buffer
	return &Environment{Now: time.Now, Stdout: &stdout, Stderr: &stderr}, &stdout, &stderr
}

// ---------------------------------------------------------------------------
// TestRenderBatch - Concurrency and ordering
// ---------------------------------------------------------------------------

func TestRenderBatch(t *testing.T) {
	t.Parallel()

	t.Run("writes every file in order", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		var files []FileToRender
		for _, name := range []string{"a", "b", "c", "d"} {
			in := writeFile(t, dir, name+".yaml", "- value: one\n- value: two\n")
			files = append(files, FileToRender{
				InputPath:  in,
				OutputPath: filepath.Join(dir, "out", name+".html"),
			})
		}

		gen := &fakeGenerator{delay: time.Millisecond}
		results := renderBatch(context.Background(), gen, files, 3, titleOptions("T"), zap.NewNop())

		if len(results) != len(files) {
			t.Fatalf("results = %d, want %d", len(results), len(files))
		}
		for i, r := range results {
			if r.Err != nil {
				t.Errorf("results[%d].Err = %v", i, r.Err)
			}
			if r.InputPath != files[i].InputPath {
				t.Errorf("results[%d].InputPath = %q, want %q", i, r.InputPath, files[i].InputPath)
			}
			data, err := os.ReadFile(files[i].OutputPath)
			if err != nil {
				t.Fatalf("reading output: %v", err)
			}
			if string(data) != "<html>T:2</html>" {
				t.Errorf("output = %q", data)
			}
		}
		if got := gen.calls.Load(); got != 4 {
			t.Errorf("calls = %d, want 4", got)
		}
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		if results := renderBatch(context.Background(), &fakeGenerator{}, nil, 2, titleOptions(""), zap.NewNop()); results != nil {
			t.Errorf("results = %v, want nil", results)
		}
	})

	t.Run("canceled context", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		in := writeFile(t, dir, "a.yaml", "[]")
		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		gen := &fakeGenerator{}
		results := renderBatch(ctx, gen, []FileToRender{{InputPath: in, OutputPath: filepath.Join(dir, "a.html")}}, 0, titleOptions(""), zap.NewNop())

		if !errors.Is(results[0].Err, context.Canceled) {
			t.Errorf("Err = %v, want context.Canceled", results[0].Err)
		}
		if gen.calls.Load() != 0 {
			t.Error("generator should not run after cancellation")
		}
	})
}

// ---------------------------------------------------------------------------
// TestRenderFile - Per-document failures
// ---------------------------------------------------------------------------

func TestRenderFile(t *testing.T) {
	t.Parallel()

	genErr := errors.New("render failed")

	tests := []struct {
		name    string
		setup   func(t *testing.T, dir string) FileToRender
		gen     *fakeGenerator
		wantErr error
	}{
		{
			name: "missing document",
			setup: func(t *testing.T, dir string) FileToRender {
				return FileToRender{InputPath: filepath.Join(dir, "missing.yaml"), OutputPath: filepath.Join(dir, "x.html")}
			},
			gen:     &fakeGenerator{},
			wantErr: ErrReadDocument,
		},
		{
			name: "malformed document",
			setup: func(t *testing.T, dir string) FileToRender {
				return FileToRender{InputPath: writeFile(t, dir, "bad.yaml", "just text"), OutputPath: filepath.Join(dir, "x.html")}
			},
			gen:     &fakeGenerator{},
			wantErr: ErrDocumentFormat,
		},
		{
			name: "generator error",
			setup: func(t *testing.T, dir string) FileToRender {
				return FileToRender{InputPath: writeFile(t, dir, "a.yaml", "[]"), OutputPath: filepath.Join(dir, "x.html")}
			},
			gen:     &fakeGenerator{err: genErr},
			wantErr: genErr,
		},
		{
			name: "output dir is a file",
			setup: func(t *testing.T, dir string) FileToRender {
				blocker := writeFile(t, dir, "blocker", "x")
				return FileToRender{InputPath: writeFile(t, dir, "a.yaml", "[]"), OutputPath: filepath.Join(blocker, "a.html")}
			},
			gen:     &fakeGenerator{},
			wantErr: ErrCreateOutputDir,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := tt.setup(t, t.TempDir())
			result := renderFile(context.Background(), tt.gen, f, titleOptions(""), zap.NewNop())
			if !errors.Is(result.Err, tt.wantErr) {
				t.Errorf("Err = %v, want %v", result.Err, tt.wantErr)
			}
			if result.InputPath != f.InputPath {
				t.Errorf("InputPath = %q, want %q", result.InputPath, f.InputPath)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestResults - Counting and printing
// ---------------------------------------------------------------------------

func TestCountResults(t *testing.T) {
	t.Parallel()

	results := []RenderResult{
		{InputPath: "a"},
		{InputPath: "b", Err: errors.New("x")},
		{InputPath: "c"},
	}

	got := countResults(results)
	if got.Succeeded != 2 || got.Failed != 1 {
		t.Errorf("countResults() = %+v, want {2 1}", got)
	}
	if err := firstError(results); err == nil || err.Error() != "x" {
		t.Errorf("firstError() = %v, want x", err)
	}
	if err := firstError(results[:1]); err != nil {
		t.Errorf("firstError() = %v, want nil", err)
	}
}

func TestPrintResults(t *testing.T) {
	t.Parallel()

	results := []RenderResult{
		{InputPath: "a.yaml", OutputPath: "a.html", Duration: 3 * time.Millisecond},
		{InputPath: "b.yaml", Err: printdoc.ErrTableRows},
	}

	t.Run("normal", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		if failed := printResults(results, false, false, env); failed != 1 {
			t.Errorf("failed = %d, want 1", failed)
		}
		if !strings.Contains(stdout.String(), "Created a.html") {
			t.Errorf("stdout = %q", stdout.String())
		}
		if !strings.Contains(stdout.String(), "1 succeeded, 1 failed") {
			t.Errorf("stdout missing summary: %q", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.yaml") {
			t.Errorf("stderr = %q", stderr.String())
		}
	})

	t.Run("quiet", func(t *testing.T) {
		t.Parallel()

		env, stdout, stderr := testEnv()
		printResults(results, true, false, env)
		if stdout.Len() != 0 {
			t.Errorf("stdout = %q, want empty", stdout.String())
		}
		if !strings.Contains(stderr.String(), "FAILED b.yaml") {
			t.Errorf("failures must still be reported: %q", stderr.String())
		}
	})

	t.Run("verbose", func(t *testing.T) {
		t.Parallel()

		env, stdout, _ := testEnv()
		printResults(results[:1], false, true, env)
		if got := stdout.String(); got != "a.yaml -> a.html (3ms)\n" {
			t.Errorf("stdout = %q", got)
		}
	})
}

func TestBatchError(t *testing.T) {
	t.Parallel()

	err := &batchError{failed: 2, total: 5, first: ErrWriteHTML}
	if err.Error() != "2 of 5 document(s) failed" {
		t.Errorf("Error() = %q", err.Error())
	}
	if !errors.Is(err, ErrWriteHTML) {
		t.Error("batchError should unwrap to the first failure")
	}
	if exitCodeFor(err) != ExitIO {
		t.Errorf("exitCodeFor() = %d, want %d", exitCodeFor(err), ExitIO)
	}
}
