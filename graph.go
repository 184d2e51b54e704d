// Copyright 2024 Nick White.
// Use of this source code is governed by the GPLv3
// license that can be found in the LICENSE file.

package charpipeline

import (
	"errors"
	"fmt"
	"io"

	"github.com/wcharczuk/go-chart/v2"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"rescribe.xyz/charpipeline/dataset"
)

const maxticks = 40
const yticknum = 20

// createLine creates a horizontal line with a particular y value for
// a graph
func createLine(xvalues []float64, y float64, c drawing.Color) chart.ContinuousSeries {
	var yvalues []float64
	for range xvalues {
		yvalues = append(yvalues, y)
	}
	return chart.ContinuousSeries{
		XValues: xvalues,
		YValues: yvalues,
		Style: chart.Style{
			StrokeColor:     c,
			StrokeDashArray: []float64{5.0, 5.0},
		},
	}
}

// SplitGraph creates a graph of the proportion of the samples of
// each label which are used for training, with a line marking the
// expected proportion.
func SplitGraph(counts []dataset.Count, title string, split float64, w io.Writer) error {
	if len(counts) < 2 {
		return errors.New("Not enough labels to graph")
	}

	var xvalues, yvalues []float64
	var ticks []chart.Tick
	var yticks []chart.Tick
	var annotations []chart.Value2
	tickevery := len(counts) / maxticks
	if tickevery < 1 {
		tickevery = 1
	}
	for i, c := range counts {
		x := float64(c.Label)
		var ratio float64
		if total := c.Train + c.Test; total > 0 {
			ratio = float64(c.Train) / float64(total) * 100
		}
		xvalues = append(xvalues, x)
		yvalues = append(yvalues, ratio)
		if i%tickevery == 0 {
			ticks = append(ticks, chart.Tick{Value: x, Label: fmt.Sprintf("%d", c.Label)})
		}
		if c.Train+c.Test == 0 {
			annotations = append(annotations, chart.Value2{Label: "none", XValue: x, YValue: 0})
		}
	}
	// Make last tick the final label
	final := counts[len(counts)-1]
	ticks[len(ticks)-1] = chart.Tick{Value: float64(final.Label), Label: fmt.Sprintf("%d", final.Label)}
	for i := 0; i <= yticknum; i++ {
		n := float64(i*100) / yticknum
		yticks = append(yticks, chart.Tick{Value: n, Label: fmt.Sprintf("%.0f", n)})
	}

	mainSeries := chart.ContinuousSeries{
		Style: chart.Style{
			StrokeColor: chart.ColorBlue,
			FillColor:   chart.ColorAlternateBlue,
		},
		XValues: xvalues,
		YValues: yvalues,
	}
	splitSeries := createLine(xvalues, split*100, chart.ColorRed)
	annotations = append(annotations, chart.Value2{Label: fmt.Sprintf("%.0f%%", split*100), XValue: xvalues[len(xvalues)-1], YValue: split * 100})

	graph := chart.Chart{
		Title:  title,
		Width:  1920,
		Height: 1080,
		XAxis: chart.XAxis{
			Name: "Label",
			Range: &chart.ContinuousRange{
				Min: 0.0,
			},
			Ticks: ticks,
		},
		YAxis: chart.YAxis{
			Name: "Training samples (%)",
			Range: &chart.ContinuousRange{
				Min: 0.0,
				Max: 100.0,
			},
			Ticks: yticks,
		},
		Series: []chart.Series{
			mainSeries,
			splitSeries,
			chart.AnnotationSeries{
				Annotations: annotations,
			},
		},
	}
	return graph.Render(chart.PNG, w)
}
