package config

import (
	"errors"
	"fmt"

	"plotter/graph"
	"plotter/graph/calc"
	"plotter/tasks/plotter"
)

// Flag names that can override file values.
const (
	FlagWidth   = "width"
	FlagHeight  = "height"
	FlagTPS     = "tps"
	FlagExpr    = "expr"
	FlagBuiltin = "builtin"
	FlagLabels  = "labels"
)

// Settings is the resolved program configuration.
type Settings struct {
	Width  int
	Height int
	TPS    int

	View      graph.View
	OriginSet bool
	Steps     graph.Steps

	Labels     int
	Expression string
	Builtin    string
}

// Defaults returns the built-in settings. The origin follows the height
// unless set explicitly.
func Defaults() Settings {
	return Settings{
		Width:  600,
		Height: 600,
		TPS:    60,
		View:   graph.View{Amplitude: 2},
		Steps:  graph.DefaultSteps,
		Labels: graph.DefaultTicks,
	}
}

// Merge copies file values into s. Values whose flag was set on the command
// line (changed reports true) are left alone.
func Merge(s *Settings, fc FileConfig, changed func(flag string) bool) {
	if changed == nil {
		changed = func(string) bool { return false }
	}
	applyInt(&s.Width, fc.Window.Width, changed(FlagWidth))
	applyInt(&s.Height, fc.Window.Height, changed(FlagHeight))
	applyInt(&s.TPS, fc.Window.TPS, changed(FlagTPS))

	applyInt(&s.View.Phase, fc.View.Phase, false)
	applyFloat(&s.View.Amplitude, fc.View.Amplitude)
	if fc.View.Origin != nil {
		s.View.Origin = *fc.View.Origin
		s.OriginSet = true
	}

	applyInt(&s.Steps.Phase, fc.Steps.Phase, false)
	applyFloat(&s.Steps.Amplitude, fc.Steps.Amplitude)
	applyInt(&s.Steps.Origin, fc.Steps.Origin, false)
	applyFloat(&s.Steps.MinAmplitude, fc.Steps.MinAmplitude)

	applyInt(&s.Labels, fc.Graph.Ticks, changed(FlagLabels))
	// Either flag picks the function, so a file value for the other must not
	// sneak back in.
	fnFlag := changed(FlagExpr) || changed(FlagBuiltin)
	applyString(&s.Expression, fc.Graph.Expression, fnFlag)
	applyString(&s.Builtin, fc.Graph.Builtin, fnFlag)
}

// Validate checks ranges and that the built-in name resolves.
func (s Settings) Validate() error {
	var errs []error
	if s.Width < 16 || s.Width > 4096 {
		errs = append(errs, fmt.Errorf("width must be 16..4096, got %d", s.Width))
	}
	if s.Height < 16 || s.Height > 4096 {
		errs = append(errs, fmt.Errorf("height must be 16..4096, got %d", s.Height))
	}
	if s.TPS < 1 || s.TPS > 240 {
		errs = append(errs, fmt.Errorf("tps must be 1..240, got %d", s.TPS))
	}
	if s.Steps.MinAmplitude <= 0 {
		errs = append(errs, fmt.Errorf("steps.min-amplitude must be > 0, got %g", s.Steps.MinAmplitude))
	}
	if s.View.Amplitude < s.Steps.MinAmplitude {
		errs = append(errs, fmt.Errorf("view.amplitude must be >= %g, got %g", s.Steps.MinAmplitude, s.View.Amplitude))
	}
	if s.Steps.Amplitude < 0 || s.Steps.Phase < 0 || s.Steps.Origin < 0 {
		errs = append(errs, errors.New("steps must not be negative"))
	}
	if s.Labels < 1 || s.Labels > 100 {
		errs = append(errs, fmt.Errorf("labels must be 1..100, got %d", s.Labels))
	}
	if s.Builtin != "" {
		if _, err := calc.ParseBuiltin(s.Builtin); err != nil {
			errs = append(errs, err)
		}
	}
	return errors.Join(errs...)
}

// Frame returns the plotting area.
func (s Settings) Frame() graph.Frame {
	return graph.Frame{Width: s.Width, Height: s.Height}
}

// PlotConfig converts validated settings into the task configuration.
// An expression wins over a built-in when both are set.
func (s Settings) PlotConfig() plotter.Config {
	v := s.View
	if !s.OriginSet {
		v.Origin = s.Height / 2
	}
	cfg := plotter.Config{
		View:       v,
		Steps:      s.Steps,
		Ticks:      s.Labels,
		Expression: s.Expression,
	}
	if s.Expression == "" && s.Builtin != "" {
		if b, err := calc.ParseBuiltin(s.Builtin); err == nil {
			cfg.Builtin = b
			cfg.UseBuiltin = true
		}
	}
	return cfg
}

func applyInt(target *int, value *int, flagChanged bool) {
	if flagChanged || value == nil {
		return
	}
	*target = *value
}

func applyFloat(target *float64, value *float64) {
	if value == nil {
		return
	}
	*target = *value
}

func applyString(target *string, value *string, flagChanged bool) {
	if flagChanged || value == nil {
		return
	}
	*target = *value
}
