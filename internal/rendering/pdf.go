package rendering

import (
	"context"
	"log"
	"os"
	"path/filepath"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// PDFRenderer prints an HTML page to PDF.
type PDFRenderer interface {
	RenderPDF(ctx context.Context, html []byte) ([]byte, error)
}

// ChromePDF prints through a headless Chrome driven by chromedp.
type ChromePDF struct {
	// ExecPath overrides the Chrome binary. Empty uses chromedp's lookup.
	ExecPath string
	Timeout  time.Duration
	Verbose  bool
}

// NewChromePDF creates a renderer. An empty execPath falls back to CHROME_PATH.
func NewChromePDF(execPath string, timeout time.Duration) *ChromePDF {
	if execPath == "" {
		execPath = os.Getenv("CHROME_PATH")
	}
	if timeout <= 0 {
		timeout = 60 * time.Second
	}
	return &ChromePDF{ExecPath: execPath, Timeout: timeout}
}

// RenderPDF loads html from a temporary file and prints it on A4 paper.
func (c *ChromePDF) RenderPDF(ctx context.Context, html []byte) ([]byte, error) {
	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Flag("headless", true),
		chromedp.Flag("no-sandbox", true),
		chromedp.Flag("disable-gpu", true),
		chromedp.Flag("disable-dev-shm-usage", true),
	)
	if c.ExecPath != "" {
		opts = append(opts, chromedp.ExecPath(c.ExecPath))
	}

	allocCtx, cancel := chromedp.NewExecAllocator(ctx, opts...)
	defer cancel()

	browserCtx, cancel := chromedp.NewContext(allocCtx)
	defer cancel()

	browserCtx, cancel = context.WithTimeout(browserCtx, c.Timeout)
	defer cancel()

	tmpDir, err := os.MkdirTemp("", "resume-")
	if err != nil {
		return nil, &RenderError{Message: "failed to create temp dir", Cause: err}
	}
	defer func() { _ = os.RemoveAll(tmpDir) }()

	htmlPath := filepath.Join(tmpDir, "index.html")
	if err := os.WriteFile(htmlPath, html, 0o600); err != nil {
		return nil, &RenderError{Message: "failed to write page", Cause: err}
	}

	if c.Verbose {
		log.Printf("[pdf] printing %d bytes of HTML", len(html))
	}

	var pdf []byte
	err = chromedp.Run(browserCtx,
		chromedp.Navigate("file://"+htmlPath),
		chromedp.WaitReady("body", chromedp.ByQuery),
		chromedp.ActionFunc(func(ctx context.Context) error {
			var err error
			// A4 in inches
			pdf, _, err = page.PrintToPDF().
				WithPrintBackground(true).
				WithPaperWidth(8.27).
				WithPaperHeight(11.69).
				WithPreferCSSPageSize(true).
				Do(ctx)
			return err
		}),
	)
	if err != nil {
		return nil, &RenderError{Message: "browser printing failed", Cause: err}
	}

	if c.Verbose {
		log.Printf("[pdf] rendered %d bytes", len(pdf))
	}
	return pdf, nil
}
