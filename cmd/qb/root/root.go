package root

import (
	"fmt"
	"io"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"questboard/internal/config"
	"questboard/internal/ui"
)

const Version = "0.1.0"

var (
	cfg       config.Config
	dbFlag    string
	storeFlag string
	logFile   io.Closer
)

var rootCmd = &cobra.Command{
	Use:           "qb",
	Short:         "Quest Board: a gamified task tracker",
	Long:          "Quest Board turns tasks into quests: finish them for XP and gold, then spend the gold on rewards you pick yourself.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		c, err := config.Load(".env", func(c *config.Config) {
			if dbFlag != "" {
				c.DBPath = dbFlag
			}
			if storeFlag != "" {
				c.Backend = storeFlag
			}
		})
		if err != nil {
			return err
		}
		cfg = c
		return setupLogging(cfg.LogFile)
	},
}

// setupLogging sends the standard logger to path, or discards it so log
// lines never mix with command or board output.
func setupLogging(path string) error {
	if path == "" {
		log.SetOutput(io.Discard)
		return nil
	}
	f, err := tea.LogToFile(path, "qb")
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	logFile = f
	return nil
}

func init() {
	rootCmd.Version = Version
	rootCmd.SetVersionTemplate("{{.Name}} v{{.Version}}\n")
	rootCmd.PersistentFlags().StringVar(&dbFlag, "db", "", "Path to the board store (overrides QB_DB_PATH)")
	rootCmd.PersistentFlags().StringVar(&storeFlag, "store", "", "Store backend: sqlite or bolt (overrides QB_STORE)")

	rootCmd.AddCommand(
		newAddCmd(),
		newDoCmd(),
		newDailyCmd(),
		newAbandonCmd(),
		newDropDailyCmd(),
		newListCmd(),
		newStatusCmd(),
		newShopCmd(),
		newBuyCmd(),
		newHistoryCmd(),
		newBoardCmd(),
	)
}

func Execute() {
	err := rootCmd.Execute()
	if logFile != nil {
		_ = logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, ui.Bad.Render(ui.IconError+" "+ui.ErrorMessage(err)))
		os.Exit(1)
	}
}
