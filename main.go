package main

import (
	"fmt"
	"runtime"

	log "github.com/sirupsen/logrus"

	"github.com/cowsed/Random/RandBed/internal/plot"
)

const (
	logMem = false
	logCpu = false
)

//Domain and grid
const (
	domainLength = 1800.0e3 // m
	gridNx       = 80
	gridNy       = 80
)

//surface draws the 3D view; false draws a flat pseudocolor map
const surface = true

//equilibrium line altitude used for the summary, m
const ela = 2000.0

//Roughness layer on top of the sine field. Off while the amplitude is 0.
const (
	roughAmplitude   = 0.0 // m
	roughWavelength  = 60.0e3
	roughOctaves     = 4
	roughPersistence = 0.5
	roughSeed        = 1
)

var (
	WindowWidth  int = 960
	WindowHeight int = 720
)

const (
	windowTitle = "randbed"
	fontSize    = 14
)

func init() {
	//SDL wants its events on the main thread
	runtime.LockOSThread()
}

func main() {
	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})

	if err := run(); err != nil {
		log.WithError(err).Fatal("randbed failed")
	}
}

//run generates the bed and shows it. Profiles are flushed before it returns.
func run() error {
	if logCpu {
		stop, err := StartCPUProfile("cpu.pprof")
		if err != nil {
			return err
		}
		defer stop()
	}

	grid, err := genBed()
	if err != nil {
		return fmt.Errorf("generate bed: %w", err)
	}

	opts := plot.DefaultOptions()
	if !surface {
		opts.Mode = plot.Flat
	}

	xx, yy := grid.Mesh(1e-3) // km
	viewer := NewViewer(windowTitle, xx, yy, grid.Z, opts)
	if err := viewer.Run(); err != nil {
		return fmt.Errorf("viewer: %w", err)
	}

	if logMem {
		return WriteHeapProfile("mem.pprof")
	}
	return nil
}
