package main

import (
	"context"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"regg/internal/driver"
	"regg/internal/ui"
)

type scanOutcome struct {
	result *driver.DirResult
	err    error
}

// runScanWithUI drives TokenizeDir behind a live progress view. The scan runs
// on its own goroutine and feeds the view through an event channel; closing
// the channel tells the view to quit.
func runScanWithUI(ctx context.Context, dir string, files []string, opts driver.DirOptions) (*driver.DirResult, error) {
	events := make(chan driver.Event, 256)
	outcomeCh := make(chan scanOutcome, 1)

	go func() {
		opts.Sink = driver.ChannelSink{Ch: events}
		res, err := driver.TokenizeDir(ctx, dir, opts)
		outcomeCh <- scanOutcome{result: res, err: err}
		close(events)
	}()

	model := ui.NewProgressModel(dir, files, events)
	program := tea.NewProgram(model, tea.WithOutput(os.Stdout))
	_, uiErr := program.Run()
	outcome := <-outcomeCh
	if uiErr != nil {
		return outcome.result, uiErr
	}
	return outcome.result, outcome.err
}
