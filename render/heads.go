package render

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"
	"golang.org/x/image/draw"

	"github.com/lixenwraith/snakeboard/core"
	"github.com/lixenwraith/snakeboard/logging"
)

// HeadCache lazily loads snake head sprites scaled to a square of size pixels
// Entries are keyed by file name and never invalidated; a sprite that fails to
// load is replaced by a solid square of the snake's body color
type HeadCache struct {
	dir   string
	size  int
	heads map[string]*image.RGBA
}

// NewHeadCache creates a cache reading sprites from dir
func NewHeadCache(dir string, size int) *HeadCache {
	return &HeadCache{
		dir:   dir,
		size:  max(size, 1),
		heads: make(map[string]*image.RGBA),
	}
}

// Head returns the sprite for file, loading it on first use
func (h *HeadCache) Head(file string, fallback core.RGB) *image.RGBA {
	if img, ok := h.heads[file]; ok {
		return img
	}

	img, err := h.load(file)
	if err != nil {
		logging.Log.WithFields(logrus.Fields{
			"file":  file,
			"error": err,
		}).Warn("snake head unavailable, using placeholder")
		img = image.NewRGBA(image.Rect(0, 0, h.size, h.size))
		draw.Draw(img, img.Bounds(), image.NewUniform(rgba(fallback)), image.Point{}, draw.Src)
	}
	h.heads[file] = img
	return img
}

// Len returns the number of cached sprites
func (h *HeadCache) Len() int {
	return len(h.heads)
}

func (h *HeadCache) load(file string) (*image.RGBA, error) {
	path := filepath.Join(h.dir, file)
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	src, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	dst := image.NewRGBA(image.Rect(0, 0, h.size, h.size))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)
	return dst, nil
}
