package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/thywilljoshua/pdflayout/internal/ai"
	"github.com/thywilljoshua/pdflayout/internal/config"
)

func askCmd(rf *rootFlags) *cobra.Command {
	var model string

	cmd := &cobra.Command{
		Use:   "ask <pdf> <question>",
		Short: "Extract a PDF and ask Gemini a question about it",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, rf, func(c *config.Config) {
				if cmd.Flags().Changed("model") {
					c.Gemini.Model = model
				}
			})
			if err != nil {
				return err
			}
			ex, err := newExtractor(cfg, log)
			if err != nil {
				return err
			}
			res, err := ex.ExtractFile(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			g, err := ai.NewGemini(cmd.Context(), cfg.Gemini.APIKey, cfg.Gemini.Model, log)
			if err != nil {
				return err
			}
			answer, err := g.Ask(cmd.Context(), res.Text, args[1])
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), answer)
			return nil
		},
	}
	cmd.Flags().StringVar(&model, "model", ai.DefaultModel, "Gemini model")
	return cmd
}
