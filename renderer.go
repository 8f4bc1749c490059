package printdoc

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/alnah/go-printdoc/internal/assets"
	"github.com/alnah/go-printdoc/internal/pipeline"
)

// documentRenderer is the rendering engine behind a Renderer.
type documentRenderer interface {
	Render(ctx context.Context, kind pipeline.Kind, line *pipeline.Line) (string, error)
	RenderLine(ctx context.Context, line *pipeline.Line) (string, error)
	RenderLines(ctx context.Context, lines []*pipeline.Line) (string, error)
	GenerateDocument(ctx context.Context, lines []*pipeline.Line, opts pipeline.DocumentOptions) (string, error)
}

// Compile-time interface implementation check.
var _ documentRenderer = (*pipeline.Pipeline)(nil)

// Renderer turns content lines into HTML fragments and documents.
// Create with NewRenderer. A Renderer is safe for concurrent use.
type Renderer struct {
	cfg               rendererConfig
	logger            *zap.Logger
	assetLoader       assets.AssetLoader // internal loader
	publicAssetLoader AssetLoader        // public loader (from WithAssetLoader)
	renderer          documentRenderer
}

// rendererConfig holds option values resolved in NewRenderer.
type rendererConfig struct {
	assetPath string
	baseDir   string
	styleName string
}

// Option configures a Renderer.
type Option func(*Renderer)

// WithLogger sets the logger. Debug entries are written per rendered line,
// warnings for stylesheet syntax problems and image MIME mismatches.
// A nil logger discards output.
func WithLogger(logger *zap.Logger) Option {
	return func(r *Renderer) {
		if logger == nil {
			logger = zap.NewNop()
		}
		r.logger = logger
	}
}

// WithAssetPath loads assets from a directory, falling back to the embedded
// ones for names it does not contain.
func WithAssetPath(path string) Option {
	return func(r *Renderer) {
		r.cfg.assetPath = path
	}
}

// WithAssetLoader sets a custom asset loader. It takes precedence over
// WithAssetPath.
func WithAssetLoader(loader AssetLoader) Option {
	return func(r *Renderer) {
		r.publicAssetLoader = loader
	}
}

// WithBaseDir sets the directory relative image paths resolve against.
func WithBaseDir(dir string) Option {
	return func(r *Renderer) {
		r.cfg.baseDir = dir
	}
}

// WithStyle selects the baseline stylesheet by asset name.
func WithStyle(name string) Option {
	return func(r *Renderer) {
		r.cfg.styleName = name
	}
}

// NewRenderer creates a Renderer. Returns an error if the baseline
// stylesheet or the preview script cannot be loaded.
func NewRenderer(opts ...Option) (*Renderer, error) {
	r := &Renderer{
		cfg:         rendererConfig{styleName: DefaultStyle},
		logger:      zap.NewNop(),
		assetLoader: assets.NewEmbeddedLoader(),
	}

	for _, opt := range opts {
		opt(r)
	}

	// Handle WithAssetPath: resolve to internal loader
	if r.cfg.assetPath != "" {
		resolver, err := assets.NewAssetResolver(r.cfg.assetPath)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidAssetPath, err)
		}
		r.assetLoader = resolver
	}

	// Handle WithAssetLoader (public interface): wrap to internal interface
	if r.publicAssetLoader != nil {
		r.assetLoader = &publicToInternalAdapter{pub: r.publicAssetLoader}
	}

	r.logger = r.logger.Named("printdoc")

	if r.renderer == nil {
		styleSheet, err := r.assetLoader.LoadStyle(r.cfg.styleName)
		if err != nil {
			return nil, fmt.Errorf("loading style %q: %w", r.cfg.styleName, convertAssetError(err))
		}

		previewScript, err := r.assetLoader.LoadScript(PreviewScript)
		if err != nil {
			return nil, fmt.Errorf("loading script %q: %w", PreviewScript, convertAssetError(err))
		}

		r.renderer = pipeline.New(pipeline.Config{
			Logger:         r.logger,
			BaseDir:        r.cfg.baseDir,
			BaseStyleSheet: styleSheet,
			PreviewScript:  previewScript,
		})
	}

	return r, nil
}

// RenderText renders a text line whatever its Type.
func (r *Renderer) RenderText(ctx context.Context, line *Line) (string, error) {
	return r.render(ctx, KindText, line)
}

// RenderQRCode renders a QR code line whatever its Type.
func (r *Renderer) RenderQRCode(ctx context.Context, line *Line) (string, error) {
	return r.render(ctx, KindQRCode, line)
}

// RenderBarCode renders a bar code line whatever its Type.
func (r *Renderer) RenderBarCode(ctx context.Context, line *Line) (string, error) {
	return r.render(ctx, KindBarCode, line)
}

// RenderImage renders an image line whatever its Type.
func (r *Renderer) RenderImage(ctx context.Context, line *Line) (string, error) {
	return r.render(ctx, KindImage, line)
}

// RenderTable renders a table line whatever its Type.
func (r *Renderer) RenderTable(ctx context.Context, line *Line) (string, error) {
	return r.render(ctx, KindTable, line)
}

func (r *Renderer) render(ctx context.Context, kind Kind, line *Line) (out string, err error) {
	defer recoverInternal(&err)
	return r.renderer.Render(ctx, kind, line)
}

// RenderLine renders one line by its Type. A nil line renders as nothing.
func (r *Renderer) RenderLine(ctx context.Context, line *Line) (out string, err error) {
	defer recoverInternal(&err)
	return r.renderer.RenderLine(ctx, line)
}

// RenderLines renders lines concurrently and joins them in input order.
// Nil lines are skipped. Unsupported types fail before anything renders.
func (r *Renderer) RenderLines(ctx context.Context, lines []*Line) (out string, err error) {
	defer recoverInternal(&err)
	return r.renderer.RenderLines(ctx, lines)
}

// GenerateDocument renders lines into a complete HTML document.
// An empty opts.DocumentID is replaced by a new one (see NewDocumentID).
// Neither lines nor opts are modified.
func (r *Renderer) GenerateDocument(ctx context.Context, lines []*Line, opts DocumentOptions) (doc string, err error) {
	defer recoverInternal(&err)

	if opts.DocumentID == "" {
		opts.DocumentID = NewDocumentID()
	}

	doc, err = r.renderer.GenerateDocument(ctx, lines, opts)
	if err != nil {
		return "", err
	}

	r.logger.Debug("generated document",
		zap.String("documentID", opts.DocumentID),
		zap.Int("lines", len(lines)),
		zap.Bool("preview", opts.Preview),
		zap.Int("bytes", len(doc)))
	return doc, nil
}

// recoverInternal converts a panic into ErrInternal so it does not crash
// the caller.
func recoverInternal(err *error) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("%w: %v", ErrInternal, r)
	}
}
