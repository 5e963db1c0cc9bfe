package main

import (
	"fmt"
	"net/http"

	"github.com/0x0FACED/particle-voronoi/pkg/logger"
	"github.com/tdewolff/argp"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

const defaultConfigPath = "config.yaml"

type App struct {
	Config string `short:"c" desc:"Path to YAML config, config.yaml is read if present"`
	Addr   string `short:"a" desc:"Listen address, overrides config and VORONOI_ADDR"`
}

func main() {
	root := argp.NewCmd(&App{}, "Live Voronoi and Delaunay overlay over moving particles")
	root.Parse()
}

// Явно заданный файл обязан существовать, файл по умолчанию - нет
func (app *App) config() (Config, error) {
	path, required := defaultConfigPath, false
	if app.Config != "" {
		path, required = app.Config, true
	}

	cfg, err := loadConfig(path, required)
	if err != nil {
		return cfg, err
	}
	if app.Addr != "" {
		cfg.Addr = app.Addr
	}
	return cfg, nil
}

func (app *App) Run() error {
	log := logger.NewWithOptions(logger.Options{Level: zapcore.InfoLevel, Stdout: true})
	defer log.Sync()

	cfg, err := app.config()
	if err != nil {
		log.Error("[app] Ошибка конфигурации", zap.Error(err))
		return err
	}

	mux := http.NewServeMux()
	mux.Handle("/", newServer(cfg, log))

	log.Info("[app] Сервер запущен", zap.String("addr", cfg.Addr))
	if err := http.ListenAndServe(cfg.Addr, mux); err != nil {
		log.Error("[app] Err ListenAndServe", zap.Error(err))
		return fmt.Errorf("listen %s: %w", cfg.Addr, err)
	}
	return nil
}
