package main

import (
	"fmt"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"golang.org/x/image/font/gofont/goregular"
)

//LoadFont opens the embedded Go Regular font so no font file is needed next to the binary
func LoadFont(size int) (*ttf.Font, error) {
	rw, err := sdl.RWFromMem(goregular.TTF)
	if err != nil {
		return nil, fmt.Errorf("font rwops: %w", err)
	}
	font, err := ttf.OpenFontRW(rw, 1, size)
	if err != nil {
		return nil, fmt.Errorf("open font: %w", err)
	}
	return font, nil
}

//Math Things
//=============

func clamp(v, lo, hi float64) float64 {
	return math.Max(lo, math.Min(hi, v))
}

//wrapDegrees maps an angle into (-180, 180]
func wrapDegrees(a float64) float64 {
	a = math.Mod(a, 360)
	if a > 180 {
		a -= 360
	} else if a <= -180 {
		a += 360
	}
	return a
}
