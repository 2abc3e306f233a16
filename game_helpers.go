package main

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/pkg/errors"
	"golang.org/x/exp/rand"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

const (
	randomChoice = "random"
	headerRule   = "-------------------------------------------"
)

// run prompts for the starting configuration and simulates until ctx is done
// or the generation limit is reached
func run(ctx context.Context, config utils.Config, in io.Reader, out io.Writer) error {
	if err := config.Validate(); err != nil {
		return errors.Wrap(err, "[run]")
	}

	grid, err := initializeGame(config, bufio.NewScanner(in), out)
	if err != nil {
		return err
	}

	fmt.Fprintln(out, "Starting simulation... (Press Ctrl+C to stop)")
	if !wait(ctx, config.StartDelay) {
		fmt.Fprintln(out, "Simulation stopped.")
		return nil
	}

	return runSimulationLoop(ctx, config, grid, model.NewTerminalRenderer(out), out)
}

// displayHeader shows the banner and the initialization menu
func displayHeader(config utils.Config, out io.Writer) {
	fmt.Fprintln(out, headerRule)
	fmt.Fprintf(out, "   CONWAY'S GAME OF LIFE (%dx%d)\n", config.Size, config.Size)
	fmt.Fprintln(out, headerRule)
	fmt.Fprintln(out, "1. Type 'Random' to generate a random start.")
	fmt.Fprintln(out, "2. Type any other key to enter the grid manually.")
	fmt.Fprint(out, "> Choice: ")
}

// initializeGame builds the first generation from the user's choice
func initializeGame(config utils.Config, scanner *bufio.Scanner, out io.Writer) (*model.Grid, error) {
	grid, err := model.NewGrid(config.Size, config.Size)
	if err != nil {
		return nil, errors.Wrap(err, "[initializeGame]")
	}

	displayHeader(config, out)
	choice, ok := readLine(scanner)
	if !ok {
		if err := scanner.Err(); err != nil {
			return nil, errors.Wrap(err, "[initializeGame] failed to read choice")
		}
		return nil, errors.Wrap(io.ErrUnexpectedEOF, "[initializeGame] no choice given")
	}

	if isRandomChoice(choice) {
		grid.InitializeRandom(newRandomSource(config.Seed), config.RandomProbability)
		fmt.Fprintln(out, "Grid initialized randomly.")
		return grid, nil
	}

	lines, err := readManualInput(scanner, out, grid.Rows())
	if err != nil {
		return nil, err
	}
	grid.InitializeFromInput(lines)
	return grid, nil
}

func isRandomChoice(choice string) bool {
	return strings.EqualFold(strings.TrimSpace(choice), randomChoice)
}

// readManualInput prompts for one line per row. Input ending early leaves the
// remaining rows dead.
func readManualInput(scanner *bufio.Scanner, out io.Writer, rows int) ([]string, error) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, "[MANUAL INPUT MODE]")
	fmt.Fprintf(out, "Enter %d lines of text.\n", rows)
	fmt.Fprintln(out, "Use '1' for LIVE cells and '0' for DEAD cells.")
	fmt.Fprintln(out, "Example: 001000101...")

	lines := make([]string, 0, rows)
	for i := range rows {
		fmt.Fprintf(out, "Row %02d: ", i+1)
		line, ok := readLine(scanner)
		if !ok {
			fmt.Fprintln(out)
			break
		}
		lines = append(lines, line)
	}

	if err := scanner.Err(); err != nil {
		return nil, errors.Wrap(err, "[readManualInput] failed to read rows")
	}
	return lines, nil
}

func readLine(scanner *bufio.Scanner) (string, bool) {
	if !scanner.Scan() {
		return "", false
	}
	return scanner.Text(), true
}

// newRandomSource returns a generator seeded with seed, or with the clock when seed is zero
func newRandomSource(seed uint64) *rand.Rand {
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return rand.New(rand.NewSource(seed))
}

// runSimulationLoop renders, updates and waits until ctx is done or the limit is hit
func runSimulationLoop(
	ctx context.Context,
	config utils.Config,
	grid *model.Grid,
	renderer *model.TerminalRenderer,
	out io.Writer,
) error {
	var (
		history       = model.NewHistory(model.DefaultHistorySize)
		stats         = utils.NewStats()
		lastFrameTime time.Time
	)

	for {
		if ctx.Err() != nil {
			displayFinalStats(out, stats)
			return nil
		}

		frameStart := time.Now()
		if err := renderer.Frame(grid); err != nil {
			return err
		}

		livingCells := grid.CountLivingCells()
		stats.Update(grid.Generation(), livingCells, frameDuration(lastFrameTime, frameStart))
		lastFrameTime = frameStart
		status := history.Observe(grid)

		if config.ShowStats {
			displayGameStatus(out, grid, livingCells, status, stats)
		}

		if config.MaxGenerations > 0 && grid.Generation() >= config.MaxGenerations {
			fmt.Fprintf(out, "Reached maximum generations limit (%d)\n", config.MaxGenerations)
			return nil
		}

		if err := grid.UpdateParallel(ctx, config.Workers); err != nil {
			if ctx.Err() != nil {
				continue
			}
			return err
		}

		wait(ctx, config.Delay)
	}
}

// displayGameStatus shows the current game status
func displayGameStatus(out io.Writer, grid *model.Grid, livingCells int, status model.Status, stats *utils.Stats) {
	density := float64(livingCells) / float64(grid.Rows()*grid.Cols()) * 100
	fmt.Fprintf(out, "Gen: %d | Living: %d | Density: %.1f%% | Status: %s\n",
		grid.Generation(), livingCells, density, status)
	fmt.Fprintf(out, "Performance: %.1f gen/sec | Avg Pop: %.1f | Runtime: %.1fs\n",
		stats.GenerationsPerSecond, stats.AveragePopulation, stats.Runtime().Seconds())
}

func displayFinalStats(out io.Writer, stats *utils.Stats) {
	fmt.Fprintln(out, "Simulation stopped.")
	fmt.Fprintf(out, "Final stats: %d generations in %.1f seconds\n",
		stats.TotalGenerations, stats.Runtime().Seconds())
}

// frameDuration returns the time between two frames, or zero before the first frame
func frameDuration(last, now time.Time) time.Duration {
	if last.IsZero() {
		return 0
	}
	return now.Sub(last)
}

// wait blocks for d and reports false if ctx finished first
func wait(ctx context.Context, d time.Duration) bool {
	if d <= 0 {
		return ctx.Err() == nil
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return false
	case <-timer.C:
		return true
	}
}
