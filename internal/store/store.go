package store

import (
	errs "errors"
	"image"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/pkg/errors"

	"github.com/DaanHessen/crowdboard/internal/content"
	"github.com/DaanHessen/crowdboard/internal/util"
)

// ErrAssetMissing means a referenced static asset is not on disk.
var ErrAssetMissing = errs.New("asset missing")

// Assets is a read-only view over the static asset directory. Decoded images
// are cached for the life of the process.
type Assets struct {
	dir      string
	venueMap image.Image
	mapErr   error
	loaded   bool
}

// Open points the asset store at cfg.AssetDir. Nothing is read until an asset
// is requested.
func Open(cfg util.Config) *Assets {
	dir := cfg.AssetDir
	if dir == "" {
		dir = "."
	}
	return &Assets{dir: dir}
}

// Path resolves name inside the asset directory.
func (a *Assets) Path(name string) string { return filepath.Join(a.dir, name) }

// VenueMap decodes the venue map image once and returns the cached result,
// including a cached failure.
func (a *Assets) VenueMap() (image.Image, error) {
	if !a.loaded {
		a.venueMap, a.mapErr = a.decodePNG(content.VenueMapAsset)
		a.loaded = true
	}
	return a.venueMap, a.mapErr
}

func (a *Assets) decodePNG(name string) (image.Image, error) {
	path := a.Path(name)
	f, err := os.Open(path)
	if err != nil {
		if errs.Is(err, fs.ErrNotExist) {
			return nil, wrap(ErrAssetMissing, path)
		}
		return nil, wrap(err, "open asset")
	}
	defer f.Close()
	img, err := png.Decode(f)
	if err != nil {
		return nil, errors.Wrapf(err, "decode %s", path)
	}
	return img, nil
}

func wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return errors.Wrap(err, msg)
}
