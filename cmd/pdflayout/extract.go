package main

import (
	"bytes"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/thywilljoshua/pdflayout/internal/config"
	"github.com/thywilljoshua/pdflayout/internal/extract"
	"github.com/thywilljoshua/pdflayout/internal/render"
)

func newExtractor(cfg config.Config, log *zap.Logger) (*extract.Extractor, error) {
	eng, err := extract.NewEngine(cfg.Engine)
	if err != nil {
		return nil, err
	}
	return extract.New(eng,
		extract.WithLogger(log),
		extract.WithWorkers(cfg.Workers),
		extract.WithPageBreak(cfg.PageBreak),
	), nil
}

func extractCmd(rf *rootFlags) *cobra.Command {
	var format string
	var workers int
	var pageBreak string
	var out string

	cmd := &cobra.Command{
		Use:   "extract <pdf>",
		Short: "Print the reconstructed text of a PDF",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, log, err := setup(cmd, rf, func(c *config.Config) {
				if cmd.Flags().Changed("format") {
					c.Format = format
				}
				if cmd.Flags().Changed("workers") {
					c.Workers = workers
				}
				if cmd.Flags().Changed("page-break") {
					c.PageBreak = pageBreak
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
			if out == "" {
				return render.Write(cmd.OutOrStdout(), res, cfg.Format)
			}
			var b bytes.Buffer
			if err := render.Write(&b, res, cfg.Format); err != nil {
				return err
			}
			log.Info("writing output", zap.String("path", out), zap.Int("bytes", b.Len()))
			return os.WriteFile(out, b.Bytes(), 0o644)
		},
	}
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatText, "output format: text|json|markdown")
	cmd.Flags().IntVar(&workers, "workers", 1, "pages extracted concurrently (1 = sequential)")
	cmd.Flags().StringVar(&pageBreak, "page-break", "", "marker placed between pages")
	cmd.Flags().StringVarP(&out, "out", "o", "", "output file (default: stdout)")
	return cmd
}
