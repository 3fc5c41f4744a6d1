package trackers

import (
	"fmt"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"
)

// Plot writes an HTML line chart of episodic returns to filename. If
// window is greater than 1, a moving average over that many episodes is
// plotted alongside the raw returns.
func Plot(filename, title string, returns []float64, window int) error {
	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{
			Title: title,
		}),
		charts.WithInitializationOpts(opts.Initialization{
			Theme: "shine",
		}),
	)

	episodes := make([]string, len(returns))
	for i := range episodes {
		episodes[i] = fmt.Sprintf("%d", i+1)
	}
	line.SetXAxis(episodes)

	items := make([]opts.LineData, 0, len(returns))
	for _, r := range returns {
		items = append(items, opts.LineData{Value: r})
	}
	line.AddSeries("return", items)

	if window > 1 {
		averages := make([]opts.LineData, 0, len(returns))
		for _, avg := range movingAverage(returns, window) {
			averages = append(averages, opts.LineData{Value: avg})
		}
		line.AddSeries(fmt.Sprintf("average over %d", window), averages)
	}

	f, err := os.Create(filename)
	if err != nil {
		return fmt.Errorf("plot: could not create file: %v", err)
	}
	defer f.Close()

	if err := line.Render(f); err != nil {
		return fmt.Errorf("plot: could not render chart: %v", err)
	}
	return nil
}

// movingAverage returns the average of each value and up to window-1
// values preceding it
func movingAverage(values []float64, window int) []float64 {
	averages := make([]float64, len(values))
	var sum float64
	for i, v := range values {
		sum += v
		if i >= window {
			sum -= values[i-window]
		}
		n := window
		if i+1 < window {
			n = i + 1
		}
		averages[i] = sum / float64(n)
	}
	return averages
}
