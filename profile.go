package main

import (
	"fmt"
	"os"
	"runtime"
	"runtime/pprof"

	log "github.com/sirupsen/logrus"
)

//StartCPUProfile writes a CPU profile to path until the returned func is called
func StartCPUProfile(path string) (func(), error) {
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("start CPU profile: %w", err)
	}
	log.WithField("path", path).Info("CPU profiling on")
	return func() {
		pprof.StopCPUProfile()
		if err := f.Close(); err != nil {
			log.WithError(err).Warn("could not close CPU profile")
		}
	}, nil
}

//WriteHeapProfile writes a heap profile to path
func WriteHeapProfile(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create memory profile: %w", err)
	}
	defer f.Close()
	runtime.GC() // get up-to-date statistics
	if err := pprof.WriteHeapProfile(f); err != nil {
		return fmt.Errorf("write memory profile: %w", err)
	}
	return nil
}
