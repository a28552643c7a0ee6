package app

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strconv"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/atomicstack/popup-overlay/internal/backend"
	"github.com/atomicstack/popup-overlay/internal/content"
	"github.com/atomicstack/popup-overlay/internal/format/table"
	"github.com/atomicstack/popup-overlay/internal/logging"
	"github.com/atomicstack/popup-overlay/internal/logging/events"
	"github.com/atomicstack/popup-overlay/internal/popup"
	"github.com/atomicstack/popup-overlay/internal/theme"
	"github.com/atomicstack/popup-overlay/internal/ui"
)

// ErrDiagnostics is returned by Check when any line failed to place.
var ErrDiagnostics = errors.New("content has placement diagnostics")

// Config describes user-provided application options.
type Config struct {
	ContentPath string
	Title       string
	Width       int
	Height      int
	ShowFooter  bool
	Watch       bool
	Check       bool
}

func (c Config) source() string {
	if c.ContentPath == "" {
		return "<demo>"
	}
	return c.ContentPath
}

// LoadDocument reads the configured content file, or the built-in demo when
// no file is configured.
func LoadDocument(cfg Config) (content.Document, error) {
	if cfg.ContentPath == "" {
		return content.Demo()
	}
	return content.Load(cfg.ContentPath)
}

// Build loads the content and places it into a new pop-up. Placement
// failures are reported through the pop-up's diagnostics, not as an error.
func Build(cfg Config, resolve content.ActionResolver) (*popup.Popup, error) {
	p, _, err := build(cfg, resolve)
	return p, err
}

func build(cfg Config, resolve content.ActionResolver) (*popup.Popup, content.Document, error) {
	doc, err := LoadDocument(cfg)
	if err != nil {
		return nil, content.Document{}, err
	}
	title := doc.Title
	if cfg.Title != "" {
		title = cfg.Title
	}
	p := popup.New(
		popup.WithTitle(title),
		popup.WithSize(doc.Width, doc.Height),
	)
	p.Place(doc.Descriptors(resolve))
	return p, doc, nil
}

// Check places the content without a terminal and writes a diagnostics
// report to w.
func Check(cfg Config, w io.Writer) error {
	p, doc, err := build(cfg, ui.ResolveAction)
	if err != nil {
		return err
	}
	diags := p.Diagnostics()
	events.App.Check(cfg.source(), len(diags))
	if len(diags) == 0 {
		fmt.Fprintf(w, "%s: ok, %d named nodes\n", cfg.source(), p.Registry().Len())
		return nil
	}

	styles := theme.Default()
	rows := make([][]string, 0, len(diags)+1)
	rows = append(rows, []string{
		styles.Header.Render("LINE"),
		styles.Header.Render("CODE"),
		styles.Header.Render("MESSAGE"),
		styles.Header.Render("DETAIL"),
	})
	for _, d := range diags {
		detail := fmt.Sprintf("%v", d.Raw)
		if d.Err != nil {
			detail = d.Err.Error()
		}
		if d.Hint != "" {
			detail = d.Hint
		}
		rows = append(rows, []string{
			strconv.Itoa(d.Line),
			strconv.Itoa(int(d.Code)),
			styles.Error.Render(d.Message),
			detail,
		})
	}
	fmt.Fprintf(w, "%s: %d of %d lines failed\n", cfg.source(), len(diags), len(doc.Lines))
	for _, line := range table.Format(rows, []table.Alignment{table.AlignRight, table.AlignRight}) {
		fmt.Fprintln(w, line)
	}
	return fmt.Errorf("%w: %d", ErrDiagnostics, len(diags))
}

// Run bootstraps and executes the Bubble Tea program.
func Run(cfg Config) error {
	if cfg.Check {
		return Check(cfg, os.Stdout)
	}

	var watcher *backend.Watcher
	if cfg.Watch {
		w, err := backend.NewWatcher(cfg.ContentPath, backend.DefaultDebounce)
		if err != nil {
			return fmt.Errorf("watch content: %w", err)
		}
		defer w.Stop()
		watcher = w
	}

	build := func(resolve content.ActionResolver) (*popup.Popup, error) {
		p, err := Build(cfg, resolve)
		if err != nil {
			return nil, err
		}
		for _, d := range p.Diagnostics() {
			logging.Error(errors.New(d.String()))
		}
		return p, nil
	}

	model, err := ui.NewModel(ui.Options{
		Build:      build,
		Width:      cfg.Width,
		Height:     cfg.Height,
		ShowFooter: cfg.ShowFooter,
		Watcher:    watcher,
	})
	if err != nil {
		return fmt.Errorf("build pop-up: %w", err)
	}
	program := tea.NewProgram(model, tea.WithAltScreen())
	_, err = program.Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	return err
}
