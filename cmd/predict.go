package cmd

import (
	"github.com/huangsam/sdrfbench/core"
	"github.com/huangsam/sdrfbench/internal/contract"
	"github.com/spf13/cobra"
)

// predictCmd builds a submission from the template and publication text.
var predictCmd = &cobra.Command{
	Use:   "predict [data-path]",
	Short: "Generate a submission from publication text.",
	Long: `Build an SDRF submission by extracting annotations from manuscripts.

For every dataset accession in the template, the manuscript text is sent to
the configured LLM provider together with the accession's raw file list. The
model's JSON reply maps raw files to column values; the first value fills the
submission cell and anything missing becomes "Not Applicable".

Responses are cached by provider, model, prompt and accession, so repeated
runs only pay for new work. The "none" provider skips the LLM entirely and
emits a sentinel-only submission, which is handy for pipeline dry runs.

Examples:
  # Placeholder submission without any LLM calls
  sdrfbench predict ./data

  # Extract with OpenAI (reads OPENAI_API_KEY from env or .env)
  sdrfbench predict ./data --provider openai

  # Use a local OpenAI-compatible server
  sdrfbench predict ./data --provider openai --base-url http://localhost:11434/v1 --model llama3

  # Claude with a custom worker count and output path
  sdrfbench predict ./data --provider claude --workers 8 --output-file my_submission.csv`,
	Args:    cobra.MaximumNArgs(1),
	PreRunE: sharedSetupWrapper,
	Run: func(_ *cobra.Command, _ []string) {
		if err := core.ExecutePredict(rootCtx, cfg, cacheManager); err != nil {
			contract.LogFatal("Cannot build submission", err)
		}
	},
}
