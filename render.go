package main

import (
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
)

var hudCol = sdl.Color{R: 255, G: 0, B: 255, A: 255}

//blit copies img into the window surface
func blit(img *image.RGBA, surface *sdl.Surface) error {
	if err := surface.Lock(); err != nil {
		return fmt.Errorf("lock surface: %w", err)
	}
	defer surface.Unlock()

	b := img.Bounds().Intersect(image.Rect(0, 0, int(surface.W), int(surface.H)))
	if !bgra(surface) {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			for x := b.Min.X; x < b.Max.X; x++ {
				surface.Set(x, y, img.RGBAAt(x, y))
			}
		}
		return nil
	}

	pixels := surface.Pixels()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			c := img.RGBAAt(x, y)
			setPixel(int32(x), int32(y), sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}, pixels, surface)
		}
	}
	return nil
}

//bgra reports whether the surface stores pixels as B, G, R, A bytes
func bgra(surface *sdl.Surface) bool {
	if surface.BytesPerPixel() != 4 {
		return false
	}
	f := surface.Format.Format
	return f == uint32(sdl.PIXELFORMAT_ARGB8888) || f == uint32(sdl.PIXELFORMAT_RGB888)
}

//Sets a pixel of an surface (referred to by the slice )
func setPixel(x, y int32, col sdl.Color, pixels []byte, surface *sdl.Surface) {
	if x >= surface.W || y >= surface.H {
		return
	}
	if x < 0 || y < 0 {
		return
	}

	pos := y*surface.Pitch + x*int32(surface.BytesPerPixel())
	pixels[pos] = col.B
	pixels[pos+1] = col.G
	pixels[pos+2] = col.R
	pixels[pos+3] = col.A
}

//Draws specified data to a text surface then onto surface
//Draws at (x,y) with a text box that is w wide
func DrawTextBoxToSurface(data string, x, y int32, w int, col sdl.Color, font *ttf.Font, surface *sdl.Surface) {
	text, err := font.RenderUTF8BlendedWrapped(data, col, w)
	if err != nil {
		log.WithError(err).Warn("could not render HUD text")
		return
	}
	defer text.Free()

	surface.FillRect(&sdl.Rect{X: x, Y: y, W: text.W, H: text.H}, 0x00404040)
	if err = text.Blit(nil, surface, &sdl.Rect{X: x, Y: y, W: 0, H: 0}); err != nil {
		log.WithError(err).Warn("could not blit HUD text")
	}
}
