// ABOUTME: Root command for the moodreads CLI
// ABOUTME: Registers subcommands and global flags for output control
package commands

import (
	"github.com/spf13/cobra"
)

var (
	verbose      bool
	quiet        bool
	outputFormat string
)

const banner = `
███╗   ███╗ ██████╗  ██████╗ ██████╗ ██████╗ ███████╗ █████╗ ██████╗ ███████╗
████╗ ████║██╔═══██╗██╔═══██╗██╔══██╗██╔══██╗██╔════╝██╔══██╗██╔══██╗██╔════╝
██╔████╔██║██║   ██║██║   ██║██║  ██║██████╔╝█████╗  ███████║██║  ██║███████╗
██║╚██╔╝██║██║   ██║██║   ██║██║  ██║██╔══██╗██╔══╝  ██╔══██║██║  ██║╚════██║
██║ ╚═╝ ██║╚██████╔╝╚██████╔╝██████╔╝██║  ██║███████╗██║  ██║██████╔╝███████║
╚═╝     ╚═╝ ╚═════╝  ╚═════╝ ╚═════╝ ╚═╝  ╚═╝╚══════╝╚═╝  ╚═╝╚═════╝ ╚══════╝
`

// NewRootCmd creates the root command with all subcommands registered
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "moodreads",
		Short: "Emotionally-aware book recommendations",
		Long: banner + `
MoodReads recommends books by how they will make you feel.

Book descriptions, reviews, and genre conventions are analyzed into
emotional profiles. Tell it how you feel and how you want to feel,
and it ranks your catalog by emotional fit.

Get started:
  moodreads add "The Night Circus" --author "Erin Morgenstern" --genre fantasy
  moodreads analyze book_a1b2c3d4 --description "..."
  moodreads recommend "I'm stressed and want something comforting"`,
		SilenceUsage: true,
	}

	cmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Verbose output")
	cmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "Suppress non-essential output")
	cmd.PersistentFlags().StringVar(&outputFormat, "format", "auto", "Output format: auto, table, json")
	cmd.MarkFlagsMutuallyExclusive("verbose", "quiet")

	cmd.AddCommand(NewVersionCmd())
	cmd.AddCommand(NewAddCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewRecommendCmd())
	cmd.AddCommand(NewDeleteCmd())
	cmd.AddCommand(NewListCmd())
	cmd.AddCommand(NewProfileCmd())
	cmd.AddCommand(NewLexiconCmd())
	cmd.AddCommand(NewSyncCmd())
	cmd.AddCommand(NewMCPCmd())

	return cmd
}

// Execute runs the root command
func Execute() error {
	return NewRootCmd().Execute()
}
