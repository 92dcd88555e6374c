package main

import (
	"fmt"
	"os"

	"go-life/model"
	"go-life/sim"
	"go-life/utils"
)

const configFile = "config.json"

func main() {
	if err := run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	// Load configuration - fall back to defaults if the file doesn't exist
	config, err := utils.LoadConfig(configFile)
	if err != nil {
		config = utils.DefaultConfig()
	}

	if config, err = applyArgs(config, args); err != nil {
		return err
	}
	if err = config.Validate(); err != nil {
		return err
	}

	lines, err := readWorldLines(config.Filename, config.Rows)
	if err != nil {
		return fmt.Errorf("Error: Failed to open world file, '%s'", config.Filename)
	}

	grid, err := model.LoadWorld(config.Rows, config.Cols, lines)
	if err != nil {
		return err
	}

	renderer := &model.TerminalRenderer{}
	stats := utils.NewStats()

	if err = sim.Run(grid, config, newEmitSink(renderer, stats, config)); err != nil {
		return err
	}

	printSummary(stats)
	return nil
}

// applyArgs layers the positional command-line arguments over the config:
// life [rows] [columns] [filename] [generations]
func applyArgs(config utils.Config, args []string) (utils.Config, error) {
	if len(args) > 5 {
		return config, fmt.Errorf("Usage: life [rows] [columns] [filename] [generations]")
	}

	var err error
	if len(args) >= 2 {
		if config.Rows, err = utils.ParseCount(args[1]); err != nil {
			return config, fmt.Errorf("Error: Invalid input for rows, '%s'", args[1])
		}
	}
	if len(args) >= 3 {
		if config.Cols, err = utils.ParseCount(args[2]); err != nil {
			return config, fmt.Errorf("Error: Invalid input for columns, '%s'", args[2])
		}
	}
	if len(args) >= 4 {
		config.Filename = args[3]
	}
	if len(args) == 5 {
		if config.Generations, err = utils.ParseNonNegative(args[4]); err != nil {
			return config, fmt.Errorf("Error: Invalid input for generations, '%s'", args[4])
		}
	}

	return config, nil
}
