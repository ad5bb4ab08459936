package commands

import (
	"github.com/spf13/cobra"
	"github.com/tartampluch/go-dialog-calendar/internal/config"
	"github.com/tartampluch/go-dialog-calendar/internal/engine"
	"github.com/tartampluch/go-dialog-calendar/internal/server"
)

func addServe(topLevel *cobra.Command) {
	var port, bind string

	cmd := &cobra.Command{
		Use:   config.CmdServe,
		Short: config.ShortServe,
		Example: `
go-dialog-calendar serve --port 18080
DIALOG_CALENDAR_DEFAULT_YEAR=2024 go-dialog-calendar serve
`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			settings, err := config.LoadSettings()
			if err != nil {
				return err
			}

			// Flags win over the environment.
			if cmd.Flags().Changed(config.FlagPort) {
				settings.Port = port
			}
			if cmd.Flags().Changed(config.FlagBind) {
				settings.BindAddr = bind
			}
			if err := settings.Validate(); err != nil {
				return err
			}

			cal := engine.New(engine.WithDefaults(settings.DefaultYear, settings.DefaultMonth))
			srv := server.NewChatServer(settings.BindAddr, settings.Port, cal)
			return srv.Start(cmd.Context())
		},
	}

	cmd.Flags().StringVar(&port, config.FlagPort, config.DefaultPort, config.FlagDescPort)
	cmd.Flags().StringVar(&bind, config.FlagBind, config.LocalhostBindAddr, config.FlagDescBind)

	topLevel.AddCommand(cmd)
}
