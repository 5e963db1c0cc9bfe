package main

import (
	"fmt"
	"net/http"
	"strconv"
	"sync"

	"github.com/0x0FACED/particle-voronoi/pkg/logger"
	"github.com/0x0FACED/particle-voronoi/pkg/particles"
	"github.com/0x0FACED/particle-voronoi/pkg/render"
	"github.com/0x0FACED/particle-voronoi/pkg/voronoi"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// Сервер держит систему частиц и пересчитывает диаграмму на каждый кадр.
// Мьютекс гарантирует, что одновременно идет не больше одного прохода.
type server struct {
	mu     sync.Mutex
	cfg    Config
	system *particles.System
	sweep  *voronoi.Sweep

	// логи одного кадра, уходят на страницу
	frameLog *logger.ZapLogger
	log      *logger.ZapLogger
}

func newServer(cfg Config, log *logger.ZapLogger) *server {
	level := zapcore.InfoLevel
	if cfg.Debug {
		level = zapcore.DebugLevel
	}
	frameLog := logger.NewWithOptions(logger.Options{Level: level})

	s := &server{
		cfg:      cfg,
		sweep:    voronoi.NewSweep(frameLog),
		frameLog: frameLog,
		log:      log,
	}
	s.rebuild()
	return s
}

func (s *server) rebuild() {
	s.system = particles.New(s.cfg.Particles, s.cfg.Width, s.cfg.Height, particles.Layout(s.cfg.Layout), s.cfg.Seed)
	s.log.Info("[app] Система частиц пересоздана",
		zap.Int("particles", s.cfg.Particles),
		zap.String("layout", s.cfg.Layout),
		zap.Int64("seed", s.cfg.Seed),
	)
}

// Применяем значения формы. true - систему частиц нужно пересоздать.
func (s *server) apply(r *http.Request) (bool, error) {
	if err := r.ParseForm(); err != nil {
		return false, fmt.Errorf("parse form: %w", err)
	}

	cfg := s.cfg
	if err := formFloat(r, "width", &cfg.Width); err != nil {
		return false, err
	}
	if err := formFloat(r, "height", &cfg.Height); err != nil {
		return false, err
	}
	if err := formInt(r, "particles", &cfg.Particles); err != nil {
		return false, err
	}
	if err := formInt(r, "steps", &cfg.Steps); err != nil {
		return false, err
	}
	seed := int(cfg.Seed)
	if err := formInt(r, "seed", &seed); err != nil {
		return false, err
	}
	cfg.Seed = int64(seed)
	if v := r.FormValue("layout"); v != "" {
		cfg.Layout = v
	}
	cfg.ShowVoronoi = r.FormValue("show_voronoi") == "true"
	cfg.ShowDelaunay = r.FormValue("show_delaunay") == "true"

	if err := cfg.validate(); err != nil {
		return false, err
	}

	changed := cfg.Width != s.cfg.Width || cfg.Height != s.cfg.Height ||
		cfg.Particles != s.cfg.Particles || cfg.Seed != s.cfg.Seed || cfg.Layout != s.cfg.Layout
	s.cfg = cfg
	return changed || r.FormValue("action") == "rebuild", nil
}

func formFloat(r *http.Request, name string, dst *float64) error {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	*dst = f
	return nil
}

func formInt(r *http.Request, name string, dst *int) error {
	v := r.FormValue(name)
	if v == "" {
		return nil
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return fmt.Errorf("field %s: %w", name, err)
	}
	*dst = n
	return nil
}

// Один кадр: сдвигаем частицы и строим диаграмму заново
func (s *server) frame() ([]voronoi.Point, *voronoi.Diagram) {
	for i := 0; i < s.cfg.Steps; i++ {
		s.system.Step(s.cfg.DT)
	}
	sites := s.system.Sites()

	s.frameLog.ClearLogs()
	s.sweep.ShowVoronoi = s.cfg.ShowVoronoi
	s.sweep.ShowDelaunay = s.cfg.ShowDelaunay
	s.sweep.Init(sites, s.cfg.Width, s.cfg.Height)
	s.sweep.Compute()

	return sites, s.sweep.Diagram()
}

func (s *server) formState() map[string]string {
	return map[string]string{
		"width":         strconv.FormatFloat(s.cfg.Width, 'f', -1, 64),
		"height":        strconv.FormatFloat(s.cfg.Height, 'f', -1, 64),
		"particles":     strconv.Itoa(s.cfg.Particles),
		"seed":          strconv.FormatInt(s.cfg.Seed, 10),
		"layout":        s.cfg.Layout,
		"steps":         strconv.Itoa(s.cfg.Steps),
		"show_voronoi":  strconv.FormatBool(s.cfg.ShowVoronoi),
		"show_delaunay": strconv.FormatBool(s.cfg.ShowDelaunay),
	}
}

// http обработчик страницы с диаграммой и формой
func (s *server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet && r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if r.Method == http.MethodPost {
		rebuild, err := s.apply(r)
		if err != nil {
			s.log.Warn("[app] Некорректная форма", zap.Error(err))
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		if rebuild {
			s.rebuild()
		}
	}

	sites, diagram := s.frame()
	stats := s.sweep.Stats()
	s.log.Debug("[app] Кадр построен",
		zap.Int("sites", stats.Sites),
		zap.Int("voronoi", len(diagram.VoronoiEdges)),
		zap.Int("delaunay", len(diagram.DelaunayEdges)),
	)

	vp := voronoi.NewViewport(0, s.cfg.Width, 0, s.cfg.Height)
	chart := render.Chart(render.NewLayers(sites, diagram, vp), "Диаграмма Вороного (Форчун)")

	if err := render.Page(w, chart, s.formState(), s.frameLog.HTML()); err != nil {
		s.log.Error("[app] Ошибка рендеринга страницы", zap.Error(err))
	}
}
