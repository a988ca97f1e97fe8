package logger

import (
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Level уровень логирования
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

var levelNames = map[Level]string{
	LevelDebug: "DEBUG",
	LevelInfo:  "INFO",
	LevelWarn:  "WARN",
	LevelError: "ERROR",
}

// ParseLevel конвертирует строку из конфига в Level
// Неизвестное значение трактуется как info
func ParseLevel(s string) Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

// Logger простой логгер с уровнями и printf-интерфейсом
type Logger struct {
	mu     sync.Mutex
	level  Level
	out    *log.Logger
	file   *os.File
	exitFn func(int)
}

// New создает логгер, пишущий в stdout и (если указан) в файл
func New(file string, level string) (*Logger, error) {
	writers := []io.Writer{os.Stdout}

	var f *os.File
	if file != "" {
		if dir := filepath.Dir(file); dir != "" && dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("create log directory: %w", err)
			}
		}

		var err error
		f, err = os.OpenFile(file, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, fmt.Errorf("open log file: %w", err)
		}
		writers = append(writers, f)
	}

	return &Logger{
		level:  ParseLevel(level),
		out:    log.New(io.MultiWriter(writers...), "", log.LstdFlags|log.Lmicroseconds),
		file:   f,
		exitFn: os.Exit,
	}, nil
}

// NewWithWriter создает логгер поверх произвольного writer (используется в тестах)
func NewWithWriter(w io.Writer, level string) *Logger {
	return &Logger{
		level:  ParseLevel(level),
		out:    log.New(w, "", 0),
		exitFn: os.Exit,
	}
}

func (l *Logger) Debug(format string, v ...interface{}) { l.write(LevelDebug, format, v...) }

func (l *Logger) Info(format string, v ...interface{}) { l.write(LevelInfo, format, v...) }

func (l *Logger) Warn(format string, v ...interface{}) { l.write(LevelWarn, format, v...) }

func (l *Logger) Error(format string, v ...interface{}) { l.write(LevelError, format, v...) }

// Fatal пишет сообщение и завершает процесс
func (l *Logger) Fatal(format string, v ...interface{}) {
	l.mu.Lock()
	l.out.Printf("[FATAL] "+format, v...)
	l.mu.Unlock()
	l.Close()
	l.exitFn(1)
}

// Close закрывает файл лога
func (l *Logger) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.file != nil {
		_ = l.file.Close()
		l.file = nil
	}
}

func (l *Logger) write(level Level, format string, v ...interface{}) {
	if level < l.level {
		return
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.out.Printf("["+levelNames[level]+"] "+format, v...)
}
