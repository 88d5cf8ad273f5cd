package analysis

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/components"
	"github.com/go-echarts/go-echarts/v2/opts"
)

func toBarItems(vals []int) []opts.BarData {
	out := make([]opts.BarData, len(vals))
	for i, v := range vals {
		out[i] = opts.BarData{Value: v}
	}
	return out
}

// newAvalancheChart plots how often each number of flipped ciphertext bits occurred.
func newAvalancheChart(r Report) *charts.Bar {
	first, counts := countHistogram(r.Flips)
	xLabels := make([]string, len(counts))
	for i := range counts {
		xLabels[i] = strconv.Itoa(first + i)
	}

	title := fmt.Sprintf("%s (%s bit flipped)", r.Variant, r.Flip)
	subtitle := fmt.Sprintf("n=%d, mean=%.2f of %d bits, ratio=%.4f, std=%.2f, min=%.0f, max=%.0f",
		r.Summary.Count, r.Summary.Mean, r.BlockBits, r.Ratio, r.Summary.Std, r.Summary.Min, r.Summary.Max)

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: title, Subtitle: subtitle}),
		charts.WithInitializationOpts(opts.Initialization{PageTitle: title, Width: "1200px", Height: "500px"}),
		charts.WithTooltipOpts(opts.Tooltip{Show: opts.Bool(true)}),
	)
	bar.SetXAxis(xLabels).
		AddSeries("trials", toBarItems(counts)).
		SetSeriesOptions(charts.WithLabelOpts(opts.Label{Show: opts.Bool(false)}))
	return bar
}

// RenderAvalanche writes an HTML page with one histogram per report.
func RenderAvalanche(w io.Writer, reports []Report) error {
	if len(reports) == 0 {
		return errors.New("render: no reports")
	}
	page := components.NewPage().SetPageTitle("NarrowWay avalanche")
	for _, r := range reports {
		if len(r.Flips) == 0 {
			return fmt.Errorf("render: report %s has no trials", r.Variant)
		}
		page.AddCharts(newAvalancheChart(r))
	}
	if err := page.Render(w); err != nil {
		return fmt.Errorf("render html: %w", err)
	}
	return nil
}
