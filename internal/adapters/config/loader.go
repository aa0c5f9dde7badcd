// Package config provides the render configuration loader for brot.
package config

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/core/ports"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// Loader implements ports.ConfigLoader using a YAML file.
type Loader struct {
	Logger ports.Logger
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	return &Loader{Logger: logger}
}

// Load reads the configuration file at path and returns the validated configuration.
func (l *Loader) Load(path string) (*domain.Configuration, error) {
	var rf Renderfile
	if err := readAndDecodeYAML(path, &rf); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	cfg := rf.toDomain()
	if err := cfg.Validate(); err != nil {
		return nil, zerr.With(err, "path", path)
	}

	l.warnDuplicateThresholds(cfg)
	return cfg, nil
}

// warnDuplicateThresholds reports layers that will accumulate identical counts.
func (l *Loader) warnDuplicateThresholds(cfg *domain.Configuration) {
	seen := make(map[int]int, len(cfg.Layers))
	for i, layer := range cfg.Layers {
		if first, ok := seen[layer.Iterations]; ok {
			l.Logger.Warn(fmt.Sprintf("layers %d and %d share the threshold %d and will have identical counts",
				first, i, layer.Iterations))
			continue
		}
		seen[layer.Iterations] = i
	}
}

func (rf *Renderfile) toDomain() *domain.Configuration {
	layers := make([]domain.LayerSpec, len(rf.Layers))
	for i, dto := range rf.Layers {
		layers[i] = domain.LayerSpec{
			Iterations: dto.Iterations,
			Color:      domain.Color(dto.Color),
		}
	}

	colorization := domain.DefaultColorization()
	if rf.Colorization != nil {
		if rf.Colorization.Exponent != nil {
			colorization.Exponent = *rf.Colorization.Exponent
		}
		if rf.Colorization.Threshold != nil {
			colorization.Threshold = *rf.Colorization.Threshold
		}
	}

	return &domain.Configuration{
		Area: domain.Area{
			X: domain.Interval{Min: rf.Area.X[0], Max: rf.Area.X[1]},
			Y: domain.Interval{Min: rf.Area.Y[0], Max: rf.Area.Y[1]},
		},
		Dimensions:   domain.Dimensions{X: rf.Dimensions.X, Y: rf.Dimensions.Y},
		Layers:       layers,
		Colorization: colorization,
		Population:   domain.Population{SkipInterior: rf.Population.SkipInterior},
	}
}

func readAndDecodeYAML[T any](path string, target *T) error {
	// #nosec G304 -- path is supplied by the user on the command line
	f, err := os.Open(path)
	if err != nil {
		return zerr.Wrap(err, domain.ErrConfigReadFailed.Error())
	}
	defer func() { _ = f.Close() }()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err := dec.Decode(target); err != nil {
		if errors.Is(err, io.EOF) {
			err = errors.New("document is empty")
		}
		return zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return nil
}
