package main

import (
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"

	"github.com/0x0FACED/particle-voronoi/pkg/particles"
	"gopkg.in/yaml.v3"
)

// Пределы для значений из формы и файла, как в полях страницы
const (
	maxSize      = 5000
	maxParticles = 500
	maxSteps     = 100
)

type Config struct {
	Addr         string  `yaml:"addr"`
	Width        float64 `yaml:"width"`
	Height       float64 `yaml:"height"`
	Particles    int     `yaml:"particles"`
	Seed         int64   `yaml:"seed"`
	Layout       string  `yaml:"layout"`
	Steps        int     `yaml:"steps"`
	DT           float64 `yaml:"dt"`
	ShowVoronoi  bool    `yaml:"show_voronoi"`
	ShowDelaunay bool    `yaml:"show_delaunay"`
	// логировать каждое событие сканирования
	Debug bool `yaml:"debug"`
}

func defaultConfig() Config {
	return Config{
		Addr:         ":8080",
		Width:        1000,
		Height:       1000,
		Particles:    40,
		Seed:         1,
		Layout:       string(particles.Random),
		Steps:        1,
		DT:           1,
		ShowVoronoi:  true,
		ShowDelaunay: true,
	}
}

// Читаем YAML поверх значений по умолчанию. Отсутствующий файл не ошибка,
// если required == false.
func loadConfig(path string, required bool) (Config, error) {
	cfg := defaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("invalid YAML in %s: %w", path, err)
		}
	case errors.Is(err, fs.ErrNotExist) && !required:
	default:
		return cfg, fmt.Errorf("read config %s: %w", path, err)
	}

	if addr := os.Getenv("VORONOI_ADDR"); addr != "" {
		cfg.Addr = addr
	}

	if err := cfg.validate(); err != nil {
		return cfg, fmt.Errorf("config %s: %w", path, err)
	}
	return cfg, nil
}

func (c Config) validate() error {
	switch {
	case !inRange(c.Width, maxSize) || !inRange(c.Height, maxSize):
		return fmt.Errorf("width and height must be positive and at most %d, got %vx%v", maxSize, c.Width, c.Height)
	case c.Particles < 0 || c.Particles > maxParticles:
		return fmt.Errorf("particles must be in [0, %d], got %d", maxParticles, c.Particles)
	case c.Steps < 0 || c.Steps > maxSteps:
		return fmt.Errorf("steps must be in [0, %d], got %d", maxSteps, c.Steps)
	case math.IsNaN(c.DT) || math.IsInf(c.DT, 0) || c.DT < 0:
		return fmt.Errorf("dt must be a finite non-negative number, got %v", c.DT)
	case c.Layout != string(particles.Random) && c.Layout != string(particles.Grid):
		return fmt.Errorf("unknown layout %q", c.Layout)
	}
	return nil
}

// NaN не проходит ни одно сравнение, поэтому проверяем через >
func inRange(v, limit float64) bool {
	return v > 0 && v <= limit && !math.IsInf(v, 0)
}
