package yamlutil_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/alnah/go-printdoc/internal/yamlutil"
)

type testConfig struct {
	Name    string `yaml:"name"`
	Count   int    `yaml:"count"`
	Enabled bool   `yaml:"enabled"`
}

// ---------------------------------------------------------------------------
// TestUnmarshal - Lenient decoding
// ---------------------------------------------------------------------------

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		data    []byte
		dest    any
		wantErr error
		check   func(t *testing.T, v any)
	}{
		{
			name: "valid YAML",
			data: []byte("name: test\ncount: 42\nenabled: true"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "test" || cfg.Count != 42 || !cfg.Enabled {
					t.Errorf("got %+v", *cfg)
				}
			},
		},
		{
			name: "JSON input",
			data: []byte(`{"name": "json", "count": 7}`),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				cfg := v.(*testConfig)
				if cfg.Name != "json" || cfg.Count != 7 {
					t.Errorf("got %+v", *cfg)
				}
			},
		},
		{
			name: "unknown fields ignored",
			data: []byte("name: test\nextra: 1"),
			dest: &testConfig{},
			check: func(t *testing.T, v any) {
				if v.(*testConfig).Name != "test" {
					t.Error("known field not decoded")
				}
			},
		},
		{
			name: "generic map",
			data: []byte("a: 1\nb: [x, y]"),
			dest: &map[string]any{},
			check: func(t *testing.T, v any) {
				m := *v.(*map[string]any)
				if len(m) != 2 {
					t.Errorf("got %v", m)
				}
			},
		},
		{name: "nil data", data: nil, dest: &testConfig{}, wantErr: yamlutil.ErrEmptyInput},
		{name: "empty data", data: []byte{}, dest: &testConfig{}, wantErr: yamlutil.ErrEmptyInput},
		{name: "nil destination", data: []byte("name: test"), dest: nil, wantErr: yamlutil.ErrNilDestination},
		{name: "invalid YAML syntax", data: []byte("name: [unclosed"), dest: &testConfig{}, wantErr: yamlutil.ErrDecode},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			err := yamlutil.Unmarshal(tt.data, tt.dest)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Errorf("error = %v, want %v", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if tt.check != nil {
				tt.check(t, tt.dest)
			}
		})
	}
}

// ---------------------------------------------------------------------------
// TestUnmarshalStrict - Unknown fields rejected
// ---------------------------------------------------------------------------

func TestUnmarshalStrict(t *testing.T) {
	t.Parallel()

	t.Run("known fields", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		if err := yamlutil.UnmarshalStrict([]byte("name: ok"), &cfg); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if cfg.Name != "ok" {
			t.Errorf("Name = %q, want ok", cfg.Name)
		}
	})

	t.Run("unknown field", func(t *testing.T) {
		t.Parallel()

		var cfg testConfig
		err := yamlutil.UnmarshalStrict([]byte("name: ok\nbogus: 1"), &cfg)
		if !errors.Is(err, yamlutil.ErrDecode) {
			t.Fatalf("error = %v, want ErrDecode", err)
		}
		if !strings.Contains(err.Error(), "bogus") {
			t.Errorf("error = %q, want it to name the field", err.Error())
		}
	})
}

// ---------------------------------------------------------------------------
// TestDecoder_MaxSize - Input size limits
// ---------------------------------------------------------------------------

func TestDecoder_MaxSize(t *testing.T) {
	t.Parallel()

	data := []byte("name: " + strings.Repeat("x", 200))

	tests := []struct {
		name    string
		dec     yamlutil.Decoder
		wantErr error
	}{
		{"under custom limit", yamlutil.Decoder{MaxSize: 1024}, nil},
		{"over custom limit", yamlutil.Decoder{MaxSize: 100}, yamlutil.ErrInputTooLarge},
		{"zero means default", yamlutil.Decoder{}, nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var cfg testConfig
			err := tt.dec.Decode(data, &cfg)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("error = %v, want %v", err, tt.wantErr)
			}
		})
	}

	t.Run("default limit", func(t *testing.T) {
		t.Parallel()

		big := make([]byte, yamlutil.DefaultMaxSize+1)
		var cfg testConfig
		if err := yamlutil.Unmarshal(big, &cfg); !errors.Is(err, yamlutil.ErrInputTooLarge) {
			t.Errorf("error = %v, want ErrInputTooLarge", err)
		}
	})
}
