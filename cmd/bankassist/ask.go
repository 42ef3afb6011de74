package main

import (
	"fmt"
	"strings"

	"github.com/sandevgo/bankassist/internal/config"
	"github.com/spf13/cobra"
)

var askUser string

var askCmd = &cobra.Command{
	Use:           "ask [question]",
	Short:         "Ask a single banking question from the terminal",
	Args:          cobra.MinimumNArgs(1),
	SilenceUsage:  true,
	SilenceErrors: false,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		// Setup logger
		var flushLog func()
		ctx, flushLog = setupLogger(ctx)
		defer flushLog()

		if err := initEnv(ctx, config.GetRuntimePath()); err != nil {
			return err
		}
		appCfg := config.NewAppConfig(ctx)

		eng, hist, err := buildEngine(ctx, appCfg)
		if err != nil {
			return err
		}
		defer hist.Close()

		question := strings.Join(args, " ")
		result, err := eng.Answer(ctx, askUser, question)
		if err != nil {
			return err
		}

		fmt.Println(result.Answer)
		for _, src := range result.Sources {
			fmt.Printf("\n[%s] %s\n", src.Source, src.Question)
		}
		return nil
	},
}

func init() {
	askCmd.Flags().StringVarP(&askUser, "user", "u", "cli", "user id to record the turn under")
	rootCmd.AddCommand(askCmd)
}
