package main

import (
	"fmt"
	"os"

	"github.com/d0ngw/clicker/clicker"
	c "github.com/d0ngw/clicker/common"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "clicker",
		Usage: "Serve the button page and count the clicks",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "YAML config file, defaults are used when empty",
				EnvVars: []string{"CLICKER_CONFIG"},
			},
			&cli.StringFlag{
				Name:    "set",
				Aliases: []string{"s"},
				Usage:   "YAML snippet applied after the config file, e.g. 'http: {max_conns: 64}'",
			},
			&cli.StringFlag{
				Name:    "addr",
				Aliases: []string{"a"},
				Usage:   "The address to listen on, overrides http.addr",
				EnvVars: []string{"CLICKER_ADDR"},
			},
			&cli.StringFlag{
				Name:  "count-file",
				Usage: "The file keeping the click count, overrides counter.file",
			},
			&cli.StringFlag{
				Name:  "index",
				Usage: "The html page served at /, overrides static.index",
			},
			&cli.BoolFlag{
				Name:    "debug",
				Aliases: []string{"d"},
				Usage:   "Enable debug logging",
			},
		},
		Action: run,
		Commands: []*cli.Command{
			configCommand(),
		},
	}
}

func run(ctx *cli.Context) error {
	conf, err := clicker.LoadConfig(ctx.String("config"), ctx.String("set"))
	if err != nil {
		return cli.Exit(fmt.Errorf("error loading config: %w", err), 1)
	}
	if addr := ctx.String("addr"); addr != "" {
		conf.HTTP.Addr = addr
	}
	if file := ctx.String("count-file"); file != "" {
		conf.Counter.File = file
	}
	if index := ctx.String("index"); index != "" {
		conf.Static.Index = index
	}
	if ctx.Bool("debug") {
		c.SetLogLevel(c.Debug)
	}

	app, err := clicker.NewApp(conf)
	if err != nil {
		return cli.Exit(fmt.Errorf("error creating clicker: %w", err), 1)
	}

	hook := c.NewShutdownhook()
	if err := app.Start(); err != nil {
		return cli.Exit(err, 1)
	}
	hook.AddHook(app.Stop)
	hook.WaitShutdown()
	return nil
}

func configCommand() *cli.Command {
	return &cli.Command{
		Name:  "config",
		Usage: "Output the default configuration",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write the config to the file instead of stdout",
			},
		},
		Action: func(ctx *cli.Context) error {
			if file := ctx.String("write"); file != "" {
				if err := os.WriteFile(file, []byte(clicker.DefaultConfigYAML), 0644); err != nil {
					return cli.Exit(fmt.Errorf("error writing config to %q: %w", file, err), 1)
				}
				fmt.Fprintf(ctx.App.Writer, "Configuration written to %s\n", file)
				return nil
			}
			_, err := fmt.Fprint(ctx.App.Writer, clicker.DefaultConfigYAML)
			return err
		},
	}
}
