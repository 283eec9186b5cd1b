package media

import (
	"bytes"
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"

	"github.com/chai2010/webp"
	"golang.org/x/image/draw"
)

// MaxPhotoSide es el lado máximo de una foto de perfil procesada.
const MaxPhotoSide = 512

// webpQuality balancea peso y nitidez para avatares.
const webpQuality = 85

// ProcessPhoto normaliza una foto de perfil: decodifica jpeg o png,
// la reescala si supera MaxPhotoSide manteniendo proporción y la
// recomprime a webp.
func ProcessPhoto(raw []byte) ([]byte, error) {
	src, _, err := image.Decode(bytes.NewReader(raw))
	if err != nil {
		return nil, fmt.Errorf("imagen inválida: %w", err)
	}

	bounds := src.Bounds()
	w, h := bounds.Dx(), bounds.Dy()

	if w > MaxPhotoSide || h > MaxPhotoSide {
		if w >= h {
			h = h * MaxPhotoSide / w
			w = MaxPhotoSide
		} else {
			w = w * MaxPhotoSide / h
			h = MaxPhotoSide
		}
		dst := image.NewRGBA(image.Rect(0, 0, w, h))
		draw.CatmullRom.Scale(dst, dst.Bounds(), src, bounds, draw.Over, nil)
		src = dst
	}

	var out bytes.Buffer
	if err := webp.Encode(&out, src, &webp.Options{Quality: webpQuality}); err != nil {
		return nil, fmt.Errorf("codificación webp: %w", err)
	}
	return out.Bytes(), nil
}
