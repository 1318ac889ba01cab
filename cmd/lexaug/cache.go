package main

import (
	"fmt"
	"time"

	"github.com/urfave/cli/v2"

	"github.com/cognicore/lexaug/pkg/lexaug/vecstore"
	"github.com/cognicore/lexaug/pkg/lexaug/vecstore/sqlite"
)

func cacheCommand(ui UI) *cli.Command {
	cacheFlag := &cli.StringFlag{Name: "cache", Required: true, Usage: "SQLite cache of trained vectors"}

	withCache := func(fn func(c *cli.Context, store vecstore.Store) error) cli.ActionFunc {
		return func(c *cli.Context) error {
			store, err := sqlite.OpenSQLite(c.Context, c.String("cache"))
			if err != nil {
				return fmt.Errorf("open cache: %w", err)
			}
			defer store.Close()
			return fn(c, store)
		}
	}

	return &cli.Command{
		Name:  "cache",
		Usage: "inspect the trained vector cache",
		Subcommands: []*cli.Command{
			{
				Name:  "list",
				Usage: "list cached vector tables",
				Flags: []cli.Flag{cacheFlag},
				Action: withCache(func(c *cli.Context, store vecstore.Store) error {
					entries, err := store.List(c.Context)
					if err != nil {
						return err
					}
					for _, e := range entries {
						fmt.Fprintf(ui.Out, "%s\t%d words\t%d dim\t%d bytes\t%s\n",
							e.Fingerprint, e.Words, e.Dim, e.Bytes, e.CreatedAt.Format(time.RFC3339))
					}
					return nil
				}),
			},
			{
				Name:      "delete",
				Usage:     "remove cached tables",
				ArgsUsage: "FINGERPRINT...",
				Flags:     []cli.Flag{cacheFlag},
				Action: withCache(func(c *cli.Context, store vecstore.Store) error {
					for _, fp := range c.Args().Slice() {
						if err := store.Delete(c.Context, fp); err != nil {
							return fmt.Errorf("delete %s: %w", fp, err)
						}
					}
					return nil
				}),
			},
		},
	}
}
