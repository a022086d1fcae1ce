package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sync"
	"time"

	"github.com/spf13/cobra"

	"github.com/pockettasks/remind/internal/config"
	"github.com/pockettasks/remind/internal/scheduler"
	"github.com/pockettasks/remind/internal/types"
	"github.com/pockettasks/remind/internal/ui"
)

var notifyCmd = &cobra.Command{
	Use:   "notify [file]",
	Short: "Schedule terminal notifications for confirmed candidates",
	Long: `Schedule terminal notifications for a candidate list.

Reads candidates as JSON (the output of 'remind extract --json') from a
file or stdin, schedules one timer per reminder, and prints a bell line
when each comes due. Timers further away than max-notify-delay are
clamped to it. Ctrl+C cancels all pending timers and exits.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runNotify,
}

func init() {
	rootCmd.AddCommand(notifyCmd)
}

func runNotify(cmd *cobra.Command, args []string) error {
	var data []byte
	var err error
	if len(args) == 1 {
		data, err = os.ReadFile(args[0])
	} else {
		data, err = io.ReadAll(os.Stdin)
	}
	if err != nil {
		return fmt.Errorf("failed to read candidates: %w", err)
	}

	var candidates []types.ReminderCandidate
	if err := json.Unmarshal(data, &candidates); err != nil {
		return fmt.Errorf("failed to parse candidate JSON: %w", err)
	}
	if len(candidates) == 0 {
		fmt.Println("Nothing to schedule.")
		return nil
	}

	sched := scheduler.New(config.GetDuration("max-notify-delay"))
	now := time.Now()

	var wg sync.WaitGroup
	wg.Add(len(candidates))
	done := make(chan struct{})

	for i, c := range candidates {
		id := fmt.Sprintf("rem-%03d", i+1)
		r := types.FromCandidate(c, id, now)
		sched.Schedule(r, func(r types.Reminder) {
			defer wg.Done()
			line := fmt.Sprintf("\a[%s] %s — %s", r.ID, r.Title, r.Date)
			if r.Time != nil {
				line += " " + *r.Time
			}
			if ui.ShouldUseColor() {
				line = ui.HighConfidenceStyle.Render(line)
			}
			fmt.Println(line)
		})
	}
	fmt.Printf("Scheduled %d notification(s). Ctrl+C to cancel.\n", sched.Pending())

	go func() {
		wg.Wait()
		close(done)
	}()

	interrupt := make(chan os.Signal, 1)
	signal.Notify(interrupt, os.Interrupt)
	defer signal.Stop(interrupt)

	select {
	case <-done:
		fmt.Println("All notifications fired.")
	case <-interrupt:
		sched.CancelAll()
		fmt.Println("\nCanceled pending notifications.")
	}
	return nil
}
