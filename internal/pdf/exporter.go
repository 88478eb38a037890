// Package pdf turns rendered invoice HTML into a paginated A4 document
// using a headless Chrome instance.
package pdf

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/chromedp/cdproto/page"
	"github.com/chromedp/chromedp"
)

// ErrTimeout reports that an export did not finish within the configured
// bound. Callers can tell it apart from other export failures.
var ErrTimeout = errors.New("pdf export timed out")

// Exporter serializes rendered invoice HTML into a binary document.
type Exporter interface {
	Export(ctx context.Context, html string) ([]byte, error)
}

// A4 paper in inches, 10mm margins on all sides.
const (
	paperWidthIn  = 8.27
	paperHeightIn = 11.69
	marginIn      = 10.0 / 25.4
)

// DefaultTimeout bounds one acquire-render-serialize cycle.
const DefaultTimeout = 30 * time.Second

// ChromeExporter acquires a browser per export and releases it on every
// path, success or failure, so repeated failures cannot leak instances.
type ChromeExporter struct {
	timeout time.Duration
}

func NewChromeExporter(timeout time.Duration) *ChromeExporter {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &ChromeExporter{timeout: timeout}
}

// Export renders html into a PDF. The whole cycle runs under one deadline;
// expiry surfaces as ErrTimeout. No retries are attempted.
func (e *ChromeExporter) Export(ctx context.Context, html string) ([]byte, error) {
	ctx, cancel := context.WithTimeout(ctx, e.timeout)
	defer cancel()

	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx,
		append(chromedp.DefaultExecAllocatorOptions[:], chromedp.NoSandbox)...,
	)
	defer cancelAlloc()

	tabCtx, cancelTab := chromedp.NewContext(allocCtx)
	defer cancelTab()

	var buf []byte
	err := chromedp.Run(tabCtx,
		chromedp.Navigate("about:blank"),
		chromedp.ActionFunc(func(ctx context.Context) error {
			frameTree, err := page.GetFrameTree().Do(ctx)
			if err != nil {
				return err
			}
			return page.SetDocumentContent(frameTree.Frame.ID, html).Do(ctx)
		}),
		chromedp.ActionFunc(func(ctx context.Context) error {
			data, _, err := page.PrintToPDF().
				WithPaperWidth(paperWidthIn).
				WithPaperHeight(paperHeightIn).
				WithMarginTop(marginIn).
				WithMarginBottom(marginIn).
				WithMarginLeft(marginIn).
				WithMarginRight(marginIn).
				WithPrintBackground(true).
				Do(ctx)
			if err != nil {
				return err
			}
			buf = data
			return nil
		}),
	)
	if err != nil {
		if errors.Is(err, context.DeadlineExceeded) {
			return nil, fmt.Errorf("%w after %s", ErrTimeout, e.timeout)
		}
		return nil, fmt.Errorf("failed to print invoice pdf: %w", err)
	}
	return buf, nil
}
