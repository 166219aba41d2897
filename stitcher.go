package screenshot

import (
	"context"
	"fmt"
	"image"
	"image/draw"
	"math"
)

// captureTile is one scrolled viewport capture plus its vertical position
// within the composited image, in logical pixels. Tiles exist only for
// the duration of one stitching operation.
type captureTile struct {
	img image.Image
	y   int
}

// planTiles returns the scroll offsets for a full-page capture, one per
// tile, in strictly increasing order.
//
// The offset of tile i is min(i*viewportHeight, pageHeight-viewportHeight):
// the last tile is clamped so it never scrolls past the bottom, which
// would otherwise leave a blank gap. The clamped offset is also the
// tile's true position in the final image, so the last tile overlaps the
// second-to-last when the page height is not an exact multiple of the
// viewport height.
func planTiles(pageHeight, viewportHeight int) []int {
	// A page reporting zero height degenerates to a single viewport shot.
	if pageHeight <= viewportHeight {
		return []int{0}
	}

	count := (pageHeight + viewportHeight - 1) / viewportHeight
	offsets := make([]int, count)
	for i := range offsets {
		offset := i * viewportHeight
		if max := pageHeight - viewportHeight; offset > max {
			offset = max
		}
		offsets[i] = offset
	}
	return offsets
}

// captureStitcher produces one seamless bitmap spanning the full page
// height by taking scrolled viewport captures and compositing them.
type captureStitcher struct {
	driver browserDriver
}

// Capture runs the stitching operation. Tiles are captured top to bottom;
// drawing them in that order means the last tile's pixels win wherever
// the clamp makes it overlap the second-to-last, so the seam carries no
// gap and no duplicated content beyond the intentional overlap.
//
// All pixel math happens in physical pixels: with a DPI scale s, each
// tile bitmap is viewport*s and the final image is pageHeight*s tall.
func (c *captureStitcher) Capture(ctx context.Context, metrics PageMetrics, vp viewport) (image.Image, error) {
	offsets := planTiles(metrics.Height, vp.Height)

	pageHeight := metrics.Height
	if pageHeight < vp.Height {
		pageHeight = vp.Height
	}

	tiles := make([]captureTile, 0, len(offsets))
	for _, offset := range offsets {
		if err := c.driver.ScrollTo(ctx, offset); err != nil {
			return nil, err
		}
		img, err := c.driver.CaptureViewport(ctx)
		if err != nil {
			return nil, err
		}
		tiles = append(tiles, captureTile{img: img, y: offset})
	}

	return compositeTiles(tiles, pageHeight, vp.Scale)
}

// compositeTiles draws the tiles top to bottom into one bitmap. Width
// comes from the first tile (all tiles share the capture surface);
// height is the page height converted to physical pixels.
func compositeTiles(tiles []captureTile, pageHeight int, scale float64) (image.Image, error) {
	if len(tiles) == 0 {
		return nil, fmt.Errorf("%w: no tiles captured", ErrCapture)
	}
	if scale <= 0 {
		scale = 1.0
	}

	width := tiles[0].img.Bounds().Dx()
	height := scalePx(pageHeight, scale)

	out := image.NewNRGBA(image.Rect(0, 0, width, height))
	for _, tile := range tiles {
		b := tile.img.Bounds()
		y := scalePx(tile.y, scale)
		// Rounding the position and the total height independently can
		// disagree by a pixel; keep the bottom edge flush.
		if y+b.Dy() > height {
			y = height - b.Dy()
		}
		if y < 0 {
			y = 0
		}
		dest := image.Rect(0, y, b.Dx(), y+b.Dy())
		draw.Draw(out, dest, tile.img, b.Min, draw.Src)
	}
	return out, nil
}

// scalePx converts a logical pixel value to physical pixels.
func scalePx(v int, scale float64) int {
	return int(math.Round(float64(v) * scale))
}
