package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	rt "rescuetime-bar/internal/adapter/rescuetime"
	"rescuetime-bar/internal/config"
	"rescuetime-bar/internal/credential"
	"rescuetime-bar/internal/render"
	"rescuetime-bar/internal/usecase"
)

// App wires configuration, the RescueTime client and the report use case.
type App struct {
	log *slog.Logger
	cfg config.Config

	// Now overrides the clock; nil means time.Now.
	Now func() time.Time
}

func New(log *slog.Logger, cfg config.Config) *App {
	return &App{log: log, cfg: cfg}
}

// RunOnce produces one plugin payload on w. A missing key file writes the
// fallback menu and returns nil without touching the network. With preview
// the lines are rendered for a terminal instead of the status-bar host.
func (a *App) RunOnce(ctx context.Context, w io.Writer, preview bool) error {
	lines, err := a.lines(ctx)
	if err != nil {
		return err
	}
	if preview {
		return render.Preview(w, lines)
	}
	return render.WriteLines(w, lines)
}

func (a *App) lines(ctx context.Context) ([]render.Line, error) {
	key, err := credential.Load(a.cfg.RescueTime.KeyFile)
	if errors.Is(err, credential.ErrMissing) {
		a.log.Info("api key file missing", slog.String("path", a.cfg.RescueTime.KeyFile))
		return render.MissingKey(displayPath(a.cfg.RescueTime.KeyFile)), nil
	}
	if err != nil {
		return nil, err
	}

	client, err := rt.NewClient(a.cfg.RescueTime.BaseURL, key, a.cfg.RescueTime.Timeout, a.log)
	if err != nil {
		return nil, fmt.Errorf("init rescuetime client: %w", err)
	}
	uc := &usecase.ReportUseCase{
		Log:        a.log,
		Client:     client,
		Top:        a.cfg.Report.TopActivities,
		SortByTime: a.cfg.Report.SortByTime,
		Now:        a.Now,
	}
	report, err := uc.Run(ctx)
	if err != nil {
		return nil, err
	}
	return render.Plugin(report, render.Style{
		Font:     a.cfg.Report.Font,
		FontSize: a.cfg.Report.FontSize,
	})
}

// displayPath shortens paths under the home directory to ~/...
func displayPath(path string) string {
	home, err := os.UserHomeDir()
	if err != nil || home == "" {
		return path
	}
	rel, err := filepath.Rel(home, path)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return path
	}
	return filepath.Join("~", rel)
}
