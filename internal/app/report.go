package app

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/lucasb-eyer/go-colorful"
	"go.trai.ch/brot/internal/core/domain"
	"go.trai.ch/brot/internal/ui/output"
	"go.trai.ch/brot/internal/ui/style"
)

const keyWidth = 13

// Report describes the cache of one configuration.
type Report struct {
	ConfigPath  string
	CachePath   string
	Fingerprint string
	Area        domain.Area
	Dimensions  domain.Dimensions
	Populated   bool
	Layers      []LayerReport
}

// LayerReport describes one layer of a Report.
type LayerReport struct {
	Iterations int
	Color      string
	Hits       uint64
	Max        uint32
}

// NewReport builds the report of cache as loaded for cfg.
func NewReport(configPath, cachePath string, cfg *domain.Configuration, cache *domain.Cache) Report {
	layers := make([]LayerReport, len(cfg.Layers))
	for i, spec := range cfg.Layers {
		c := colorful.Color{
			R: float64(spec.Color[0]) / 255,
			G: float64(spec.Color[1]) / 255,
			B: float64(spec.Color[2]) / 255,
		}
		layers[i] = LayerReport{
			Iterations: spec.Iterations,
			Color:      c.Hex(),
			Hits:       cache.Layers[i].Total(),
			Max:        cache.Layers[i].Max(),
		}
	}
	return Report{
		ConfigPath:  configPath,
		CachePath:   cachePath,
		Fingerprint: cfg.Fingerprint().String(),
		Area:        cfg.Area,
		Dimensions:  cfg.Dimensions,
		Populated:   cache.Valid,
		Layers:      layers,
	}
}

// Render writes the report to w.
func (r Report) Render(w io.Writer) error {
	re := output.Renderer(w)
	title := re.NewStyle().Bold(true).Foreground(style.Iris)
	key := re.NewStyle().Width(keyWidth).Foreground(style.Slate)

	status := re.NewStyle().Foreground(style.Yellow).Render(style.Tilde + " not populated")
	if r.Populated {
		status = re.NewStyle().Foreground(style.Green).Render(style.Check + " populated")
	}

	var b strings.Builder
	b.WriteString(title.Render("brot cache report") + "\n")
	for _, row := range [][2]string{
		{"config", r.ConfigPath},
		{"cache", r.CachePath},
		{"fingerprint", r.Fingerprint},
		{"area", fmt.Sprintf("x [%g, %g] y [%g, %g]", r.Area.X.Min, r.Area.X.Max, r.Area.Y.Min, r.Area.Y.Max)},
		{"dimensions", fmt.Sprintf("%d x %d", r.Dimensions.X, r.Dimensions.Y)},
		{"status", status},
	} {
		b.WriteString(key.Render(row[0]) + row[1] + "\n")
	}
	b.WriteString("\n")

	table := [][]string{{"layer", "iterations", "color", "hits", "max"}}
	for i, l := range r.Layers {
		table = append(table, []string{
			strconv.Itoa(i),
			strconv.Itoa(l.Iterations),
			l.Color,
			strconv.FormatUint(l.Hits, 10),
			strconv.FormatUint(uint64(l.Max), 10),
		})
	}
	writeTable(&b, re, table)

	_, err := io.WriteString(w, b.String())
	return err
}

// writeTable writes rows as left-aligned columns separated by two spaces.
// The first row is the header.
func writeTable(b *strings.Builder, re *lipgloss.Renderer, rows [][]string) {
	widths := make([]int, len(rows[0]))
	for _, row := range rows {
		for i, cell := range row {
			widths[i] = max(widths[i], lipgloss.Width(cell)+2)
		}
	}

	header := re.NewStyle().Bold(true)
	for r, row := range rows {
		for i, cell := range row {
			cellStyle := re.NewStyle()
			if r == 0 {
				cellStyle = header
			}
			if i < len(row)-1 {
				cellStyle = cellStyle.Width(widths[i])
			}
			b.WriteString(cellStyle.Render(cell))
		}
		b.WriteString("\n")
	}
}
