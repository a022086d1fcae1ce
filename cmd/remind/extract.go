package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/pockettasks/remind/internal/config"
	"github.com/pockettasks/remind/internal/extract"
	"github.com/pockettasks/remind/internal/llm"
	"github.com/pockettasks/remind/internal/normalize"
	"github.com/pockettasks/remind/internal/types"
	"github.com/pockettasks/remind/internal/ui"
)

var extractCmd = &cobra.Command{
	Use:   "extract [file]",
	Short: "Extract reminder candidates from a document or text",
	Long: `Extract reminder candidates from a file, stdin, or --text.

By default the input is sent to the configured language model and the
response is parsed into candidates. With --raw, the input is treated as
an already-obtained model response (or plain text) and parsed locally
without any network call.

Examples:
  remind extract invoice.txt                # extract from a file
  cat email.txt | remind extract            # extract from stdin
  remind extract --text "pay rent by 12/1/2026"
  remind extract --raw response.json        # parse a saved model response
  remind extract invoice.txt --interactive  # pick which candidates to keep
  remind extract invoice.txt --json         # machine-readable output`,
	Args: cobra.MaximumNArgs(1),
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().String("text", "", "extract from this text instead of a file or stdin")
	extractCmd.Flags().Bool("raw", false, "treat input as a raw model response; skip the model call")
	extractCmd.Flags().Bool("json", false, "print candidates as JSON")
	extractCmd.Flags().Bool("preview", false, "render a markdown preview of the candidates")
	extractCmd.Flags().Bool("interactive", false, "confirm candidates interactively")
	extractCmd.Flags().String("model", "", "model to use (overrides config)")
	extractCmd.Flags().String("today", "", "override the current date (YYYY-MM-DD), mainly for testing")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, args []string) error {
	text, _ := cmd.Flags().GetString("text")
	raw, _ := cmd.Flags().GetBool("raw")
	asJSON, _ := cmd.Flags().GetBool("json")
	preview, _ := cmd.Flags().GetBool("preview")
	interactive, _ := cmd.Flags().GetBool("interactive")
	model, _ := cmd.Flags().GetString("model")
	todayFlag, _ := cmd.Flags().GetString("today")

	input, err := readInput(args, text)
	if err != nil {
		return err
	}
	if strings.TrimSpace(input) == "" {
		return fmt.Errorf("no input: pass a file, pipe text on stdin, or use --text")
	}

	today, err := resolveToday(todayFlag)
	if err != nil {
		return err
	}

	response := input
	if !raw {
		response, err = callModel(cmd, input, model)
		if err != nil {
			// Transport and auth failures get an actionable message;
			// they are the only errors extraction surfaces.
			return fmt.Errorf("%s", llm.UserMessage(err))
		}
	}

	result := extract.NewPipeline().Run(response, today)
	candidates := result.Candidates

	if interactive && len(candidates) > 0 {
		candidates, err = confirmCandidates(candidates)
		if err != nil {
			return err
		}
	}

	switch {
	case asJSON:
		out, err := json.MarshalIndent(candidates, "", "  ")
		if err != nil {
			return err
		}
		fmt.Println(string(out))
	case preview:
		fmt.Print(ui.RenderPreview(candidates, ui.GetWidth()))
	default:
		if len(candidates) == 0 {
			fmt.Println("No reminder candidates found.")
			return nil
		}
		fmt.Println(ui.CandidateTable(candidates, ui.GetWidth()))
		fmt.Printf("%d candidate(s) via %s path in %s\n", len(candidates), result.Source, result.Duration.Round(time.Millisecond))
	}
	return nil
}

func readInput(args []string, text string) (string, error) {
	if text != "" {
		return text, nil
	}
	if len(args) == 1 {
		data, err := os.ReadFile(args[0])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", args[0], err)
		}
		return string(data), nil
	}
	data, err := io.ReadAll(os.Stdin)
	if err != nil {
		return "", fmt.Errorf("failed to read stdin: %w", err)
	}
	return string(data), nil
}

func resolveToday(flag string) (time.Time, error) {
	if flag == "" {
		return time.Now(), nil
	}
	t, err := time.Parse(normalize.DateLayout, flag)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid --today value %q: expected YYYY-MM-DD", flag)
	}
	return t, nil
}

func callModel(cmd *cobra.Command, document, model string) (string, error) {
	if model == "" {
		model = config.GetString("model")
	}
	client, err := llm.NewClient(config.GetString("api-key"), model)
	if err != nil {
		return "", err
	}
	prompt, err := llm.BuildExtractionPrompt(document)
	if err != nil {
		return "", err
	}
	return client.Complete(cmd.Context(), prompt)
}

func confirmCandidates(candidates []types.ReminderCandidate) ([]types.ReminderCandidate, error) {
	options := make([]huh.Option[int], 0, len(candidates))
	for i, c := range candidates {
		label := fmt.Sprintf("%s — %s", c.Title, c.Date)
		if c.Time != nil {
			label += " " + *c.Time
		}
		options = append(options, huh.NewOption(label, i).Selected(true))
	}

	var picked []int
	form := huh.NewForm(huh.NewGroup(
		huh.NewMultiSelect[int]().
			Title("Confirm reminders to keep").
			Options(options...).
			Value(&picked),
	))
	if err := form.Run(); err != nil {
		return nil, err
	}

	kept := make([]types.ReminderCandidate, 0, len(picked))
	for _, idx := range picked {
		kept = append(kept, candidates[idx])
	}
	return kept, nil
}
