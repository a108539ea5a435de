package infrastructure

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"

	"cv-studio/internal/export"
)

// Headless-Chrome backends for the export pipeline. The capturer snapshots
// the rendered layout node into a bitmap; the printer pushes the same
// markup through Chrome's print engine. Both load the document from a
// temporary file so external font links resolve.

// settleDelay gives the surface time to finish loading webfonts before the
// snapshot; WaitReady alone fires before fonts are in.
const settleDelay = 500 * time.Millisecond

func execOpts() []chromedp.ExecAllocatorOption {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if p := os.Getenv("CHROME_PATH"); p != "" {
		opts = append(opts, chromedp.ExecPath(p))
	}
	return opts
}

// mapExecErr folds the allocator's "no browser binary" failure into the
// typed error both export paths report as unavailable.
func mapExecErr(err error) error {
	if err != nil && strings.Contains(err.Error(), "executable file not found") {
		return export.ErrPrintUnavailable
	}
	return err
}

func writeTempHTML(html string) (string, func(), error) {
	tmpDir, err := os.MkdirTemp("", "cv-studio-")
	if err != nil {
		return "", nil, err
	}
	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, []byte(html), 0o644); err != nil {
		os.RemoveAll(tmpDir)
		return "", nil, err
	}
	return "file://" + htmlPath, func() { os.RemoveAll(tmpDir) }, nil
}

type ChromedpCapturer struct{}

func NewChromedpCapturer() *ChromedpCapturer { return &ChromedpCapturer{} }

// Capture rasterizes the #resume node of the document at the given device
// scale factor and returns it as PNG.
func (c *ChromedpCapturer) Capture(ctx context.Context, html string, scale float64) ([]byte, error) {
	url, cleanup, err := writeTempHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, execOpts()...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	var buf []byte
	err = chromedp.Run(ctx2,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.ScreenshotScale("#resume", scale, &buf, chromedp.ByID),
	)
	if err != nil {
		return nil, mapExecErr(err)
	}
	return buf, nil
}

type ChromedpPrinter struct{}

func NewChromedpPrinter() *ChromedpPrinter { return &ChromedpPrinter{} }

// PrintToPDF reproduces the layout through Chrome's native print pipeline.
func (r *ChromedpPrinter) PrintToPDF(ctx context.Context, html string) ([]byte, error) {
	url, cleanup, err := writeTempHTML(html)
	if err != nil {
		return nil, err
	}
	defer cleanup()

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, execOpts()...)
	defer cancel()

	cctx, cancelCtx := chromedp.NewContext(allocCtx)
	defer cancelCtx()

	ctx2, cancel2 := context.WithTimeout(cctx, 60*time.Second)
	defer cancel2()

	var pdfBuf []byte
	err = chromedp.Run(ctx2,
		chromedp.Navigate(url),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.Sleep(settleDelay),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4: 210mm x 297mm -> inches: 8.27 x 11.69
			pdfBuf, _, err = page.PrintToPDF().WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, mapExecErr(err)
	}
	return pdfBuf, nil
}
