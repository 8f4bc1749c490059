package pipeline

import (
	"context"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-printdoc/internal/encode"
	"github.com/alnah/go-printdoc/internal/fileutil"
	"github.com/alnah/go-printdoc/internal/style"
)

// renderImage embeds the file at Path, or falls back to an explicit source:
// Attributes["src"] first, then Src.
func (p *Pipeline) renderImage(ctx context.Context, line *Line) (string, error) {
	var src string

	if line.Path != "" {
		if style.IsEmptyString(line.MimeType) {
			return "", fmt.Errorf("%w: %s", ErrMissingMIMEType, line.Path)
		}
		uri, err := p.readImage(ctx, line.Path, line.MimeType)
		if err != nil {
			return "", err
		}
		src = uri
	}

	if src == "" {
		if s, ok := style.Scalar(line.Attributes["src"]); ok {
			src = s
		}
	}
	if src == "" {
		src = line.Src
	}
	if style.IsEmptyString(src) {
		return "", ErrNoImageSource
	}

	return imageSection(line, src), nil
}

func (p *Pipeline) readImage(ctx context.Context, path, mimeType string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	resolved := fileutil.ResolvePath(p.baseDir, path)
	data, err := os.ReadFile(resolved)
	if err != nil {
		return "", fmt.Errorf("reading image: %w", err)
	}

	if sniffed := encode.SniffMIME(data); sniffed != "" && !strings.EqualFold(sniffed, strings.TrimSpace(mimeType)) {
		p.logger.Warn("image content does not match declared MIME type",
			zap.String("path", resolved),
			zap.String("declared", mimeType),
			zap.String("detected", sniffed))
	}

	return encode.DataURI(strings.TrimSpace(mimeType), data), nil
}
