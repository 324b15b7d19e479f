package main

import "github.com/urfave/cli/v2"

// loadApp creates the cli app with its command table.
func (s *srv) loadApp() {
	app := cli.NewApp()
	app.Name = "teamup-relay"
	app.Usage = "Relay between TeamUp and HighLevel"
	app.Action = server.startApi
	app.Commands = []*cli.Command{
		{
			Action:      server.startApi,
			Name:        "api",
			Usage:       "Start the relay api",
			Category:    "Api",
			Description: `Runs the OAuth flow, the customer/membership relay and the webhook receiver.`,
		},
	}

	s.app = app
}
