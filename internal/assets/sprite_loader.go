package assets

import (
	"errors"
	"fmt"
	"image"
	"log"
	"maps"
	"os"

	"go-run-branches/internal/component"

	"golang.org/x/image/bmp"
)

// ErrAssetLoad — картинку не удалось загрузить. Без неё игра не запускается.
var ErrAssetLoad = errors.New("asset load failed")

// SpriteSet хранит загруженные картинки спрайтов.
type SpriteSet struct {
	images map[component.SpriteID]image.Image
}

// LoadSprites загружает все картинки из paths. Первая же ошибка прерывает загрузку.
func LoadSprites(paths map[component.SpriteID]string) (*SpriteSet, error) {
	set := &SpriteSet{images: make(map[component.SpriteID]image.Image, len(paths))}
	for id, path := range paths {
		img, err := loadBitmap(path)
		if err != nil {
			return nil, fmt.Errorf("%w: sprite %q: %w", ErrAssetLoad, id, err)
		}
		set.images[id] = img
		log.Printf("Loaded sprite %s from %s (%dx%d)", id, path, img.Bounds().Dx(), img.Bounds().Dy())
	}
	return set, nil
}

func loadBitmap(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode %s: %w", path, err)
	}
	return img, nil
}

// Images возвращает копию набора картинок.
func (s *SpriteSet) Images() map[component.SpriteID]image.Image {
	return maps.Clone(s.images)
}

// Size — размер спрайта в пикселях
func (s *SpriteSet) Size(id component.SpriteID) image.Point {
	img, ok := s.images[id]
	if !ok {
		return image.Point{}
	}
	return img.Bounds().Size()
}
