package export

import (
	"bytes"
	"fmt"
	"image/png"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/types"
)

// AssemblePDF embeds a captured PNG bitmap into a single-page document of
// the given page size. The bitmap is aspect-fit scaled and centered per
// FitPage; pdfcpu does the actual placement from the same scale factor.
func AssemblePDF(pngData []byte, page PageSize) ([]byte, error) {
	cfg, err := png.DecodeConfig(bytes.NewReader(pngData))
	if err != nil {
		return nil, fmt.Errorf("decode capture: %w", err)
	}
	if cfg.Width == 0 || cfg.Height == 0 {
		return nil, fmt.Errorf("capture has zero dimension %dx%d", cfg.Width, cfg.Height)
	}

	pl := FitPage(cfg.Width, cfg.Height, page)

	desc := fmt.Sprintf("formsize:%s, position:c, scalefactor:%.6f abs", page.Name, pl.Scale)
	imp, err := api.Import(desc, types.POINTS)
	if err != nil {
		return nil, fmt.Errorf("import description: %w", err)
	}

	var buf bytes.Buffer
	if err := api.ImportImages(nil, &buf, []io.Reader{bytes.NewReader(pngData)}, imp, nil); err != nil {
		return nil, fmt.Errorf("assemble pdf: %w", err)
	}
	return buf.Bytes(), nil
}
