package commands

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-dialog-calendar/internal/config"
	"github.com/tartampluch/go-dialog-calendar/internal/engine"
)

func addRender(topLevel *cobra.Command) {
	var (
		year, month int
		view        string
		payloads    bool
	)

	cmd := &cobra.Command{
		Use:   config.CmdRender,
		Short: config.ShortRender,
		Example: `
go-dialog-calendar render
go-dialog-calendar render --view days --year 2024 --month 2
go-dialog-calendar render --view months --payloads
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := engine.ParseView(view)
			if err != nil {
				return err
			}
			if month < 0 || month > 12 {
				return fmt.Errorf("%s: %d", config.ErrMonthRange, month)
			}

			cal := engine.New(engine.WithDefaults(year, month))
			PrintGrid(cmd.OutOrStdout(), cal.Open(v), payloads)
			return nil
		},
	}

	cmd.Flags().IntVar(&year, config.FlagYear, 0, config.FlagDescYear)
	cmd.Flags().IntVar(&month, config.FlagMonth, 0, config.FlagDescMonth)
	cmd.Flags().StringVar(&view, config.FlagView, config.ViewYears, config.FlagDescView)
	cmd.Flags().BoolVar(&payloads, config.FlagPayloads, false, config.FlagDescPayloads)

	topLevel.AddCommand(cmd)
}

// PrintGrid writes m as a table, one grid row per line. Header rows (the first
// row of every view) are bold; with payloads set, cells show their callback
// data instead of labels.
func PrintGrid(w io.Writer, m engine.Markup, payloads bool) {
	bold := color.New(color.Bold)

	tbl := uitable.New()
	tbl.Separator = "  "
	for i, row := range m.InlineKeyboard {
		cells := make([]interface{}, 0, len(row))
		for _, b := range row {
			text := b.Text
			if payloads {
				text = b.CallbackData
			}
			if i == 0 {
				text = bold.Sprint(text)
			}
			cells = append(cells, text)
		}
		tbl.AddRow(cells...)
	}

	_, _ = fmt.Fprintln(w, tbl)
}
