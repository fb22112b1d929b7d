package cmd

import (
	"fmt"
	"os"

	"sudan-mm-collector/infrastructure/config"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	cfg     *config.Config
)

var rootCmd = &cobra.Command{
	Use:   "sudan-mm-collector",
	Short: "Collect multimodal submissions for the Sudan-MM-2025 dataset",
	Long: `sudan-mm-collector runs the contributor workflow for the Sudan-MM-2025
multimodal dataset:

  - Validate media format and duration (image/video + MP3 audio caption)
  - Allocate the next sequential submission ID from the metadata ledger
  - Upload files into the Google Drive folder hierarchy
  - Append a metadata row to the Google Sheets ledger

Example:
  sudan-mm-collector submit --mode image --media photo.jpg --audio caption.mp3`,
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func init() {
	cobra.OnInitialize(initConfig)
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./config/config.yaml)")
}

func initConfig() {
	if cfgFile == "" {
		cfgFile = "config/config.yaml"
	}

	var err error
	cfg, err = config.Load(cfgFile)
	if err != nil {
		// Config file is optional for some commands (like help)
		// Commands that need config will check and error appropriately
		cfg = nil
	}
}

// GetConfig returns the loaded configuration
func GetConfig() *config.Config {
	return cfg
}
