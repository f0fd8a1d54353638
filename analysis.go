package lsystem

import (
	"io"
	"log/slog"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// GrowthProfile records how the sequence length evolves over a fractal's
// history. Ratios[0] is always zero; Ratios[k] is Lengths[k]/Lengths[k-1],
// or zero when the previous iteration was empty.
type GrowthProfile struct {
	Name    string
	Lengths []int
	Ratios  []float64
}

// AnalyseGrowth profiles every iteration of f.
func AnalyseGrowth[S Symbol](name string, f Fractal[S]) GrowthProfile {
	profile := GrowthProfile{
		Name:    name,
		Lengths: make([]int, len(f.iterations)),
		Ratios:  make([]float64, len(f.iterations)),
	}
	for i, it := range f.iterations {
		profile.Lengths[i] = it.Len()
		if i == 0 || profile.Lengths[i-1] == 0 {
			continue
		}
		profile.Ratios[i] = float64(profile.Lengths[i]) / float64(profile.Lengths[i-1])
	}
	return profile
}

// AverageGrowth is the mean of the defined ratios.
func (gp GrowthProfile) AverageGrowth() float64 {
	total, n := 0.0, 0
	for i, r := range gp.Ratios {
		if i == 0 || gp.Lengths[i-1] == 0 {
			continue
		}
		total += r
		n++
	}
	if n == 0 {
		return 0
	}
	return total / float64(n)
}

// AnalyseProductionRates profiles each variable on its own: a system with
// only that symbol as axiom is advanced depth times. A negative depth
// yields an error.
func AnalyseProductionRates[S Symbol](g *Grammar[S], depth int, logger *slog.Logger) (map[S]GrowthProfile, error) {
	profiles := make(map[S]GrowthProfile)
	for _, sym := range g.Variables().AsSlice() {
		single := &Grammar[S]{rules: g.rules, axiom: []S{sym}}
		f, err := NewSystem(sym.String(), single).Fractal(depth)
		if err != nil {
			return nil, err
		}
		profile := AnalyseGrowth(sym.String(), f)
		if logger != nil {
			logger.Debug("analysed production rate",
				"symbol", sym.String(),
				"depth", depth,
				"final_length", profile.Lengths[len(profile.Lengths)-1],
				"avg_growth", strconv.FormatFloat(profile.AverageGrowth(), 'f', 4, 64),
			)
		}
		profiles[sym] = profile
	}
	return profiles, nil
}

// RenderChart writes an HTML bar chart of the sequence length per recursion.
func (gp GrowthProfile) RenderChart(w io.Writer) error {
	bar := charts.NewBar()
	bar.SetGlobalOptions(charts.WithTitleOpts(opts.Title{
		Title:    "Growth Analysis",
		Subtitle: "Sequence length of " + gp.Name + " over " + strconv.Itoa(len(gp.Lengths)) + " iterations",
	}))

	labels := make([]string, len(gp.Lengths))
	barItems := make([]opts.BarData, len(gp.Lengths))
	for i, length := range gp.Lengths {
		labels[i] = strconv.Itoa(i)
		barItems[i] = opts.BarData{Value: length}
	}

	title := "Lengths (Avg growth " + strconv.FormatFloat(gp.AverageGrowth(), 'f', 4, 64) + ")"
	bar.SetXAxis(labels).
		AddSeries(title, barItems)
	return bar.Render(w)
}
