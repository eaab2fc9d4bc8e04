package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/abhisek/notequiz/internal/question"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Start a quiz straight away",
	RunE: func(cmd *cobra.Command, args []string) error {
		clefName, _ := cmd.Flags().GetString("clef")
		if clefName == "" {
			cfg, err := loadConfig(cmd)
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			clefName = cfg.Clef
		}
		policy, err := question.ParsePolicy(clefName)
		if err != nil {
			return err
		}
		return runApp(cmd, &policy)
	},
}

func init() {
	playCmd.Flags().String("clef", "", "Clef to practise: treble, bass or random (default from NOTEQUIZ_CLEF)")
}
