package main

import (
	"fmt"

	log "github.com/sirupsen/logrus"

	"github.com/cowsed/Random/RandBed/internal/bed"
)

//genBed builds the bed from the constants in main.go and logs a summary
func genBed() (*bed.Grid, error) {
	domain := bed.Domain{L: domainLength, Nx: gridNx, Ny: gridNy}
	basis := bed.Reference()

	grid, err := bed.Synthesize(domain, basis)
	if err != nil {
		return nil, err
	}

	rough := bed.Roughness{
		Amplitude:   roughAmplitude,
		Wavelength:  roughWavelength,
		Octaves:     roughOctaves,
		Persistence: roughPersistence,
		Seed:        roughSeed,
	}
	if err := rough.Apply(grid); err != nil {
		return nil, fmt.Errorf("roughness: %w", err)
	}

	dx, dy := domain.Spacing()
	log.WithFields(log.Fields{
		"L_km":      domain.L / 1000,
		"grid":      fmt.Sprintf("%dx%d", domain.Nx, domain.Ny),
		"dx_km":     dx / 1000,
		"dy_km":     dy / 1000,
		"modes":     fmt.Sprintf("%dx%d", len(basis.J), len(basis.K)),
		"roughness": rough.Amplitude,
	}).Info("synthesized bed")

	if !grid.Finite() {
		return nil, fmt.Errorf("bed contains NaN or Inf values")
	}

	st := grid.Stats(ela)
	log.WithFields(log.Fields{
		"min_m":     fmt.Sprintf("%.1f", st.Min),
		"max_m":     fmt.Sprintf("%.1f", st.Max),
		"mean_m":    fmt.Sprintf("%.1f", st.Mean),
		"ela_m":     ela,
		"above_ela": fmt.Sprintf("%.1f%%", 100*st.AboveELA),
	}).Info("bed statistics")

	return grid, nil
}
