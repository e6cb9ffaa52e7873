package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
	"github.com/muesli/termenv"

	"hummify/internal/config"
)

// Logger provides leveled, optionally coloured logging with an optional file sink.
// ERROR lines go to the error writer, everything else to the output writer.
type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
	color   bool
	styles  map[string]lipgloss.Style
}

// New writes to out and errOut, colouring according to cfg, and opens
// cfg.LogFile when set. Call Close() when done if LogFile was set.
func New(out, errOut io.Writer, cfg *config.Config) (*Logger, error) {
	l := &Logger{
		out:     out,
		errOut:  errOut,
		verbose: cfg.Verbose,
		color:   colorEnabled(cfg.ColorMode, out),
	}

	profile := termenv.Ascii
	if l.color {
		profile = termenv.ANSI256
	}
	r := lipgloss.NewRenderer(out)
	r.SetColorProfile(profile)
	l.styles = map[string]lipgloss.Style{
		"WARN":  r.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),
		"ERROR": r.NewStyle().Bold(true).Foreground(lipgloss.Color("9")),
		"DEBUG": r.NewStyle().Bold(true).Foreground(lipgloss.Color("14")),
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

func colorEnabled(mode config.ColorMode, out io.Writer) bool {
	switch mode {
	case config.ColorAlways:
		return true
	case config.ColorNever:
		return false
	}
	if os.Getenv("NO_COLOR") != "" || strings.ToLower(os.Getenv("TERM")) == "dumb" {
		return false
	}
	return IsTerminal(out)
}

// IsTerminal reports whether w is a terminal.
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// Close closes the log file if one was opened.
func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	tag := "[" + level + "]"
	_, _ = io.WriteString(out, ts+" "+l.styles[level].Render(tag)+" "+text+"\n")
	if l.file != nil {
		_, _ = io.WriteString(l.file, ts+" "+tag+" "+text+"\n")
	}
}

// Warn logs at WARN level.
func (l *Logger) Warn(format string, args ...interface{}) {
	l.line("WARN", fmt.Sprintf(format, args...))
}

// Error logs at ERROR level to the error writer.
func (l *Logger) Error(format string, args ...interface{}) {
	l.line("ERROR", fmt.Sprintf(format, args...))
}

// Debug logs at DEBUG level only when verbose.
func (l *Logger) Debug(format string, args ...interface{}) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", fmt.Sprintf(format, args...))
}
