package main

import (
	"fmt"
	"image"

	log "github.com/sirupsen/logrus"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"
	"gonum.org/v1/gonum/mat"

	"github.com/cowsed/Random/RandBed/internal/plot"
)

//degrees per frame while a rotation key is held
const rotateSpeed = 1.5

//Viewer shows a rendered figure in an SDL window until it is closed
type Viewer struct {
	Title   string
	Options plot.Options

	xx, yy, z *mat.Dense

	frame   *image.RGBA
	redraw  bool
	quit    bool
	showHUD bool
	keyMap  map[sdl.Keycode]bool

	uiItems    []UIItem
	uiSelected int
}

func NewViewer(title string, xx, yy, z *mat.Dense, opts plot.Options) *Viewer {
	v := &Viewer{
		Title:   title,
		Options: opts,
		xx:      xx,
		yy:      yy,
		z:       z,
		redraw:  true,
		keyMap:  map[sdl.Keycode]bool{},
	}
	v.uiItems = []UIItem{&BoolEdit{"Show HUD", &v.showHUD}}
	if opts.Mode == plot.Surface {
		v.uiItems = append(v.uiItems,
			&FloatEdit{Name: "Azimuth", Value: &v.Options.View.Azimuth, Step: 5, Wrap: true, Min: -180, Max: 180},
			&FloatEdit{Name: "Elevation", Value: &v.Options.View.Elevation, Step: 5, Min: -90, Max: 90},
		)
	}
	return v
}

//Run opens the window and blocks until it is closed. Any SDL failure is returned.
func (v *Viewer) Run() error {
	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return fmt.Errorf("init SDL: %w", err)
	}
	defer sdl.Quit()

	window, err := sdl.CreateWindow(v.Title, sdl.WINDOWPOS_UNDEFINED, sdl.WINDOWPOS_UNDEFINED,
		int32(WindowWidth), int32(WindowHeight), sdl.WINDOW_SHOWN|sdl.WINDOW_RESIZABLE)
	if err != nil {
		return fmt.Errorf("create window: %w", err)
	}
	defer window.Destroy()

	if err := ttf.Init(); err != nil {
		return fmt.Errorf("init SDL_ttf: %w", err)
	}
	defer ttf.Quit()

	font, err := LoadFont(fontSize)
	if err != nil {
		return err
	}
	defer font.Close()

	log.WithFields(log.Fields{
		"mode":   v.Options.Mode,
		"width":  WindowWidth,
		"height": WindowHeight,
	}).Info("window open, close it to exit")

	for !v.quit {
		//Get Key Events
		for event := sdl.PollEvent(); event != nil; event = sdl.PollEvent() {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				v.quit = true
			case *sdl.WindowEvent:
				switch e.Event {
				case sdl.WINDOWEVENT_SIZE_CHANGED:
					log.WithFields(log.Fields{"width": e.Data1, "height": e.Data2}).Debug("window resized")
					v.redraw = true
				case sdl.WINDOWEVENT_EXPOSED:
					v.redraw = true
				}
			case *sdl.KeyboardEvent:
				keyCode := e.Keysym.Sym
				if e.State == sdl.PRESSED {
					v.keyMap[keyCode] = true
					v.handlePress(keyCode, e.Repeat != 0)
				} else if e.State == sdl.RELEASED {
					delete(v.keyMap, keyCode)
				}
			}
		}

		v.handleHeld()

		if v.redraw {
			if err := v.draw(window, font); err != nil {
				return err
			}
			v.redraw = false
		}
		sdl.Delay(16)
	}

	log.Info("window closed")
	return nil
}

//handlePress deals with one-shot keys
func (v *Viewer) handlePress(k sdl.Keycode, repeat bool) {
	switch k {
	case sdl.K_ESCAPE:
		v.quit = true
	case sdl.K_TAB:
		if !repeat {
			v.showHUD = !v.showHUD
			v.redraw = true
		}
	case sdl.K_UP:
		v.uiSelected = (v.uiSelected + len(v.uiItems) - 1) % len(v.uiItems)
		v.redraw = true
	case sdl.K_DOWN:
		v.uiSelected = (v.uiSelected + 1) % len(v.uiItems)
		v.redraw = true
	case sdl.K_RIGHT:
		v.uiItems[v.uiSelected].NextItem()
		v.redraw = true
	case sdl.K_LEFT:
		v.uiItems[v.uiSelected].PreviousItem()
		v.redraw = true
	}
}

//handleHeld rotates the surface while a/d (azimuth) or r/f (elevation) are down
func (v *Viewer) handleHeld() {
	if v.Options.Mode != plot.Surface {
		return
	}
	var modi float64 = 1
	if v.keyMap[sdl.K_LSHIFT] {
		modi = 4
	}
	view := &v.Options.View
	for k, down := range v.keyMap {
		if !down {
			continue
		}
		switch k {
		case sdl.K_a:
			view.Azimuth = wrapDegrees(view.Azimuth - rotateSpeed*modi)
		case sdl.K_d:
			view.Azimuth = wrapDegrees(view.Azimuth + rotateSpeed*modi)
		case sdl.K_r:
			view.Elevation = clamp(view.Elevation+rotateSpeed*modi, -90, 90)
		case sdl.K_f:
			view.Elevation = clamp(view.Elevation-rotateSpeed*modi, -90, 90)
		default:
			continue
		}
		v.redraw = true
	}
}

//draw renders the figure at the current window size and shows it
func (v *Viewer) draw(window *sdl.Window, font *ttf.Font) error {
	surface, err := window.GetSurface()
	if err != nil {
		return fmt.Errorf("window surface: %w", err)
	}
	w, h := int(surface.W), int(surface.H)
	if v.frame == nil || v.frame.Bounds().Dx() != w || v.frame.Bounds().Dy() != h {
		v.frame = image.NewRGBA(image.Rect(0, 0, w, h))
	}

	if err := plot.Render(v.frame, v.xx, v.yy, v.z, v.Options); err != nil {
		return fmt.Errorf("render figure: %w", err)
	}
	if err := blit(v.frame, surface); err != nil {
		return err
	}
	if v.showHUD {
		DrawTextBoxToSurface(v.hudText(), 0, 0, 300, hudCol, font, surface)
	}
	return window.UpdateSurface()
}
