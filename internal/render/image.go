package render

import (
	"bytes"
	"context"
	"encoding/base64"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"log"
	"strings"

	"github.com/chromedp/chromedp"
)

// ImageFormats lists the raster formats Image can produce.
var ImageFormats = map[string]bool{"png": true, "jpg": true, "jpeg": true}

// Image loads page into headless Chrome and writes a screenshot of the
// timeline section in the given format.
func Image(ctx context.Context, page []byte, format string, width int, w io.Writer) error {
	format = strings.ToLower(format)
	if !ImageFormats[format] {
		return fmt.Errorf("unsupported image format %q", format)
	}
	if width <= 0 {
		width = 1280
	}

	dataURI := "data:text/html;base64," + base64.StdEncoding.EncodeToString(page)

	opts := append(chromedp.DefaultExecAllocatorOptions[:],
		chromedp.Headless,
		chromedp.WindowSize(width, 900),
	)
	allocCtx, cancelAlloc := chromedp.NewExecAllocator(ctx, opts...)
	defer cancelAlloc()

	browserCtx, cancelBrowser := chromedp.NewContext(allocCtx)
	defer cancelBrowser()

	var shot []byte
	tasks := chromedp.Tasks{
		chromedp.Navigate(dataURI),
		chromedp.WaitVisible(`#timeline`, chromedp.ByQuery),
		chromedp.Screenshot(`body`, &shot, chromedp.ByQuery),
	}
	log.Println("Rendering page in headless Chrome...")
	if err := chromedp.Run(browserCtx, tasks); err != nil {
		return fmt.Errorf("chromedp execution failed: %w", err)
	}
	if len(shot) == 0 {
		return fmt.Errorf("screenshot buffer is empty, screenshot failed")
	}

	return encodeScreenshot(shot, format, w)
}

// encodeScreenshot copies a PNG screenshot or re-encodes it as JPEG.
func encodeScreenshot(shot []byte, format string, w io.Writer) error {
	switch format {
	case "png":
		if _, err := io.Copy(w, bytes.NewReader(shot)); err != nil {
			return fmt.Errorf("failed to write PNG screenshot data: %w", err)
		}
	case "jpg", "jpeg":
		img, err := png.Decode(bytes.NewReader(shot))
		if err != nil {
			return fmt.Errorf("failed to decode PNG screenshot: %w", err)
		}
		if err := jpeg.Encode(w, img, &jpeg.Options{Quality: 90}); err != nil {
			return fmt.Errorf("failed to encode JPEG: %w", err)
		}
	default:
		return fmt.Errorf("unsupported image format %q", format)
	}
	return nil
}
