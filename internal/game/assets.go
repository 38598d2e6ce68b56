package game

import (
	"embed"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/bmp"
)

//go:embed assets/DragonFire.bmp assets/Drone.bmp
var assetFS embed.FS

const (
	turretSpriteFile = "assets/DragonFire.bmp"
	droneSpriteFile  = "assets/Drone.bmp"
)

// colorKey marks transparent pixels in the BMP sprites, which carry no alpha.
var colorKey = color.RGBA{R: 255, G: 0, B: 255, A: 255}

// flashTint replaces the dark outline pixels of a sprite while it fires or
// is being hit.
var flashTint = color.RGBA{R: 255, G: 0, B: 0, A: 255}

// Sprites holds the decoded images, each with its red-outline variant.
type Sprites struct {
	Turret       *ebiten.Image
	TurretFiring *ebiten.Image
	Drone        *ebiten.Image
	DroneFlash   *ebiten.Image
}

// LoadSprites decodes the embedded sprites. Any error is fatal to startup.
func LoadSprites() (*Sprites, error) {
	turret, err := decodeSprite(turretSpriteFile)
	if err != nil {
		return nil, err
	}
	drone, err := decodeSprite(droneSpriteFile)
	if err != nil {
		return nil, err
	}
	return &Sprites{
		Turret:       ebiten.NewImageFromImage(turret),
		TurretFiring: ebiten.NewImageFromImage(thresholdTint(turret, 0, flashTint)),
		Drone:        ebiten.NewImageFromImage(drone),
		DroneFlash:   ebiten.NewImageFromImage(thresholdTint(drone, 0, flashTint)),
	}, nil
}

// DroneSize returns the drone sprite's pixel size, which is also the
// drone's bounding box size.
func (sp *Sprites) DroneSize() (w, h float64) {
	b := sp.Drone.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

// decodeSprite reads a BMP from the embedded assets and keys out colorKey.
func decodeSprite(name string) (*image.RGBA, error) {
	f, err := assetFS.Open(name)
	if err != nil {
		return nil, fmt.Errorf("open sprite %s: %w", name, err)
	}
	defer f.Close()

	img, err := bmp.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode sprite %s: %w", name, err)
	}
	return keyOut(img, colorKey), nil
}

// keyOut copies img into RGBA, making every pixel equal to key transparent.
func keyOut(img image.Image, key color.RGBA) *image.RGBA {
	b := img.Bounds()
	out := image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA)
			if c == key {
				continue
			}
			out.SetRGBA(x-b.Min.X, y-b.Min.Y, c)
		}
	}
	return out
}

// thresholdTint returns a copy of src where every opaque pixel whose R, G
// and B are all at most limit is replaced by tint.
func thresholdTint(src *image.RGBA, limit uint8, tint color.RGBA) *image.RGBA {
	out := image.NewRGBA(src.Bounds())
	copy(out.Pix, src.Pix)
	b := out.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := out.RGBAAt(x, y)
			if c.A == 0 {
				continue
			}
			if c.R <= limit && c.G <= limit && c.B <= limit {
				out.SetRGBA(x, y, tint)
			}
		}
	}
	return out
}
