package main

import (
	"bufio"
	"fmt"
	"os"
	"time"

	"github.com/pkg/errors"

	"go-life/model"
	"go-life/sim"
	"go-life/utils"
)

// readWorldLines reads up to maxLines text lines from the world file. The
// loader treats a short file as an all-dead remainder, so fewer lines than
// rows is fine.
func readWorldLines(path string, maxLines int) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "[readWorldLines] failed to open file: %+v", path)
	}
	defer file.Close()

	var lines []string
	scanner := bufio.NewScanner(file)
	for len(lines) < maxLines && scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	if err = scanner.Err(); err != nil {
		return nil, errors.Wrapf(err, "[readWorldLines] failed to read file: %+v", path)
	}

	return lines, nil
}

// newEmitSink builds the rendering sink the simulation invokes once per
// frame: clear (when animating), draw, record stats, pace the animation.
func newEmitSink(renderer *model.TerminalRenderer, stats *utils.Stats, config utils.Config) sim.Emit {
	lastFrameTime := time.Now()

	return func(g *model.Grid, generation int) {
		if config.FrameRate > 0 {
			renderer.Clear()
		}
		renderer.Display(g, generation)

		now := time.Now()
		stats.Update(generation, g.Population(), now.Sub(lastFrameTime))
		lastFrameTime = now

		time.Sleep(config.FrameRate)
	}
}

// printSummary shows the final run statistics
func printSummary(stats *utils.Stats) {
	fmt.Printf("Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, time.Since(stats.StartTime).Seconds())
	fmt.Printf("Average: %.1f frames/sec, %.1f avg population\n",
		stats.FramesPerSecond, stats.AveragePopulation)
}
