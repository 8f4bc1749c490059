package pipeline

import (
	"context"
	"fmt"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/alnah/go-printdoc/internal/style"
)

// Config holds the dependencies of a Pipeline.
type Config struct {
	Logger *zap.Logger

	// BaseDir resolves relative image paths. Empty means the working directory.
	BaseDir string

	// BaseStyleSheet is embedded in every document before the caller stylesheet.
	BaseStyleSheet string

	// PreviewScript is embedded in preview documents after the data payload.
	PreviewScript string
}

// Pipeline renders lines and documents. It holds no per-call state and is
// safe for concurrent use.
type Pipeline struct {
	logger         *zap.Logger
	baseDir        string
	baseStyleSheet string
	previewScript  string
	markdown       goldmark.Markdown
}

// New creates a Pipeline. A nil logger discards output.
func New(cfg Config) *Pipeline {
	logger := cfg.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Pipeline{
		logger:         logger,
		baseDir:        cfg.BaseDir,
		baseStyleSheet: cfg.BaseStyleSheet,
		previewScript:  cfg.PreviewScript,
		markdown: goldmark.New(
			goldmark.WithExtensions(extension.GFM),
			goldmark.WithRendererOptions(
				html.WithHardWraps(),
				html.WithXHTML(),
			),
		),
	}
}

// RenderLine resolves the kind of line and renders it.
// A nil line renders as nothing.
func (p *Pipeline) RenderLine(ctx context.Context, line *Line) (string, error) {
	if line == nil {
		return "", nil
	}

	kind, err := ParseKind(line.Type)
	if err != nil {
		return "", err
	}
	return p.Render(ctx, kind, line)
}

// Render renders line as kind, ignoring line.Type.
// Style and SectionStyle are compiled on a shallow copy; line is not modified.
func (p *Pipeline) Render(ctx context.Context, kind Kind, line *Line) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if line == nil {
		return "", nil
	}

	c := *line
	c.Style = style.Compile(line.Style)
	c.SectionStyle = style.Compile(line.SectionStyle)

	switch kind {
	case KindText:
		return p.renderText(&c)
	case KindQRCode:
		return p.renderQRCode(ctx, &c)
	case KindBarCode:
		return p.renderBarCode(ctx, &c)
	case KindImage:
		return p.renderImage(ctx, &c)
	case KindTable:
		return p.renderTable(&c)
	default:
		return "", fmt.Errorf("%w: %s", ErrUnsupportedType, kind)
	}
}

// RenderLines renders lines concurrently and joins the results in input order.
//
// Nil lines are skipped. Every line kind is resolved before any rendering
// starts, so an unsupported type fails without encoding anything. The first
// rendering error cancels the remaining lines and is returned as-is. A panic
// while rendering a line is returned as ErrInternal.
func (p *Pipeline) RenderLines(ctx context.Context, lines []*Line) (string, error) {
	kinds := make([]Kind, len(lines))
	for i, line := range lines {
		if line == nil {
			continue
		}
		kind, err := ParseKind(line.Type)
		if err != nil {
			return "", err
		}
		kinds[i] = kind
	}

	results := make([]string, len(lines))
	g, gctx := errgroup.WithContext(ctx)

	for i, line := range lines {
		if line == nil {
			continue
		}
		g.Go(func() (err error) {
			// errgroup does not recover panics.
			defer func() {
				if r := recover(); r != nil {
					err = fmt.Errorf("%w: line %d: %v", ErrInternal, i, r)
				}
			}()

			out, err := p.Render(gctx, kinds[i], line)
			if err != nil {
				return err
			}
			results[i] = out
			p.logger.Debug("rendered line",
				zap.Int("index", i),
				zap.Stringer("kind", kinds[i]),
				zap.Int("bytes", len(out)))
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return "", err
	}
	return strings.Join(results, ""), nil
}
