package logger

import (
	"bytes"
	"html"
	"os"
	"regexp"
	"strings"
	"sync"
	"time"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// ZapLogger пишет логи в буфер (для вывода на страницу) и, при желании, в stdout
type ZapLogger struct {
	log *zap.Logger

	mu     sync.Mutex
	logBuf *bytes.Buffer
}

type Options struct {
	// минимальный уровень
	Level zapcore.Level
	// дублировать в stdout
	Stdout bool
}

func New() *ZapLogger {
	return NewWithOptions(Options{Level: zapcore.DebugLevel})
}

func NewWithOptions(o Options) *ZapLogger {
	z := &ZapLogger{logBuf: &bytes.Buffer{}}

	config := zapcore.EncoderConfig{
		TimeKey:        "time",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		MessageKey:     "msg",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    colorLevelEncoder,
		EncodeTime:     customTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
	}

	encoder := zapcore.NewConsoleEncoder(config)

	cores := []zapcore.Core{
		zapcore.NewCore(encoder, zapcore.AddSync(bufferSink{z}), o.Level),
	}
	if o.Stdout {
		cores = append(cores, zapcore.NewCore(encoder, zapcore.Lock(os.Stdout), o.Level))
	}

	z.log = zap.New(zapcore.NewTee(cores...), zap.AddCaller(), zap.AddCallerSkip(1), zap.AddStacktrace(zapcore.ErrorLevel))
	return z
}

// Логгер, который ничего не пишет
func NewNop() *ZapLogger {
	return &ZapLogger{log: zap.NewNop(), logBuf: &bytes.Buffer{}}
}

// bufferSink защищает буфер мьютексом логгера
type bufferSink struct {
	z *ZapLogger
}

func (b bufferSink) Write(p []byte) (int, error) {
	b.z.mu.Lock()
	defer b.z.mu.Unlock()
	return b.z.logBuf.Write(p)
}

func customTimeEncoder(t time.Time, enc zapcore.PrimitiveArrayEncoder) {
	enc.AppendString(t.Format("[2006-01-02 | 15:04:05]"))
}

func colorLevelEncoder(level zapcore.Level, enc zapcore.PrimitiveArrayEncoder) {
	var colorCode string
	switch level {
	case zapcore.DebugLevel:
		colorCode = "\033[36m" // Cyan
	case zapcore.InfoLevel:
		colorCode = "\033[32m" // Green
	case zapcore.WarnLevel:
		colorCode = "\033[33m" // Yellow
	case zapcore.ErrorLevel:
		colorCode = "\033[31m" // Red
	default:
		colorCode = "\033[0m" // Default
	}
	enc.AppendString(colorCode + level.String() + "\033[0m")
}

var ansiRe = regexp.MustCompile(`\033\[(\d+)m`)

// Color mapping for ANSI codes
var colorMap = map[string]string{
	"31": "red",
	"32": "green",
	"33": "yellow",
	"34": "blue",
	"36": "cyan",
}

// Converts ANSI color codes to HTML spans, the rest of the text is escaped
func ansiToHTML(input string) string {
	var result strings.Builder
	open := false
	last := 0

	result.WriteString("<pre>")
	for _, m := range ansiRe.FindAllStringSubmatchIndex(input, -1) {
		result.WriteString(html.EscapeString(input[last:m[0]]))
		last = m[1]

		if open {
			result.WriteString("</span>")
			open = false
		}
		if color, ok := colorMap[input[m[2]:m[3]]]; ok {
			result.WriteString(`<span style="color: ` + color + `;">`)
			open = true
		}
	}
	result.WriteString(html.EscapeString(input[last:]))
	if open {
		result.WriteString("</span>")
	}
	result.WriteString("</pre>")

	return result.String()
}

// Накопленные логи в виде HTML для страницы
func (z *ZapLogger) HTML() string {
	z.mu.Lock()
	defer z.mu.Unlock()
	return ansiToHTML(z.logBuf.String())
}

// Накопленные строки без цветовых кодов
func (z *ZapLogger) Lines() []string {
	z.mu.Lock()
	raw := z.logBuf.String()
	z.mu.Unlock()

	raw = ansiRe.ReplaceAllString(raw, "")
	raw = strings.TrimRight(raw, "\n")
	if raw == "" {
		return nil
	}
	return strings.Split(raw, "\n")
}

func (z *ZapLogger) ClearLogs() {
	z.mu.Lock()
	defer z.mu.Unlock()
	z.logBuf.Reset()
}

func (z *ZapLogger) Sync() error {
	return z.log.Sync()
}

func (z *ZapLogger) Info(wrappedMsg string, fields ...zap.Field) {
	z.log.Info(wrappedMsg, fields...)
}

func (z *ZapLogger) Debug(wrappedMsg string, fields ...zap.Field) {
	z.log.Debug(wrappedMsg, fields...)
}

func (z *ZapLogger) Warn(wrappedMsg string, fields ...zap.Field) {
	z.log.Warn(wrappedMsg, fields...)
}

func (z *ZapLogger) Error(wrappedMsg string, fields ...zap.Field) {
	z.log.Error(wrappedMsg, fields...)
}

func (z *ZapLogger) Fatal(wrappedMsg string, fields ...zap.Field) {
	z.log.Fatal(wrappedMsg, fields...)
}
