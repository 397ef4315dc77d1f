// Package cli exposes the explanation pipeline as a command-line
// application.
package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"github.com/otterhq/suilens/internal/explain"
	"github.com/otterhq/suilens/internal/narrator"
)

// Run initializes and executes the suilens CLI application.
//
// It registers all available commands, including:
//
//   - `explain`: Produces a natural-language explanation for a transaction.
//   - `decode`: Prints the decoded transaction details without narration.
//   - `cached`: Prints the cached explanation entry, if any.
//   - `invalidate`: Removes a cached explanation.
//
// Parameters:
//   - ctx: Context used to control the lifecycle of the CLI application.
//   - svc: The explain service implementation used by all commands.
func Run(ctx context.Context, svc explain.Service) error {
	app := &cli.Command{
		EnableShellCompletion: true,
		Name:                  "suilens",
		Description:           "Command-line interface for decoding and explaining Sui transactions.",
		Usage:                 "suilens [command] [flags]",
		Commands: []*cli.Command{
			explainCommand(svc),
			decodeCommand(svc),
			cachedCommand(svc),
			invalidateCommand(svc),
		},
	}

	return app.Run(ctx, os.Args)
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return err
	}

	_, err = fmt.Println(string(data))
	return err
}

// explainCommand returns a CLI command that produces a natural-language
// explanation for a transaction digest.
//
// Usage example:
//
//	suilens explain --digest 8dq8... --sender-name alice --group "sui-traders"
func explainCommand(svc explain.Service) *cli.Command {
	return &cli.Command{
		Name:        "explain",
		Description: "Fetch, decode and explain a transaction, serving from the cache when possible.",
		Usage:       "Explains a transaction digest in plain language.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "digest",
				Usage:    "Transaction digest to explain",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "sender-name",
				Usage: "Display name of the account that shared the transaction",
			},
			&cli.BoolFlag{
				Name:  "mine",
				Usage: "Mark the transaction as the viewer's own",
			},
			&cli.StringFlag{
				Name:  "viewer-address",
				Usage: "Viewer's wallet address, used to detect their involvement",
			},
			&cli.StringFlag{
				Name:  "group",
				Usage: "Name of the chat or channel the transaction was shared in",
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			mctx := narrator.Context{
				SubjectName:     c.String("sender-name"),
				ViewerIsSubject: c.Bool("mine"),
				ViewerAddress:   c.String("viewer-address"),
				GroupLabel:      c.String("group"),
			}

			result, err := svc.ExplainTransaction(ctx, c.String("digest"), mctx)
			if err != nil {
				return err
			}

			return printJSON(result)
		},
	}
}

// decodeCommand returns a CLI command that prints the decoded details of a
// transaction without producing a narrative.
//
// Usage example:
//
//	suilens decode --digest 8dq8...
func decodeCommand(svc explain.Service) *cli.Command {
	return &cli.Command{
		Name:        "decode",
		Description: "Fetch and decode a transaction, printing its operations, participants and gas.",
		Usage:       "Decodes a transaction digest into structured details.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "digest",
				Usage:    "Transaction digest to decode",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			details, err := svc.DecodeTransaction(ctx, c.String("digest"))
			if err != nil {
				return err
			}

			return printJSON(details)
		},
	}
}

// cachedCommand returns a CLI command that prints the cache entry stored
// for a transaction digest.
//
// Usage example:
//
//	suilens cached --digest 8dq8...
func cachedCommand(svc explain.Service) *cli.Command {
	return &cli.Command{
		Name:        "cached",
		Description: "Print the cached explanation entry for a transaction digest.",
		Usage:       "Shows the stored explanation without rebuilding it.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "digest",
				Usage:    "Transaction digest to look up",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			entry, err := svc.Cached(ctx, c.String("digest"))
			if err != nil {
				return err
			}

			return printJSON(entry)
		},
	}
}

// invalidateCommand returns a CLI command that removes the cached
// explanation for a transaction digest.
//
// Usage example:
//
//	suilens invalidate --digest 8dq8...
func invalidateCommand(svc explain.Service) *cli.Command {
	return &cli.Command{
		Name:        "invalidate",
		Description: "Remove the cached explanation for a transaction digest.",
		Usage:       "Clears a cached explanation so the next lookup rebuilds it.",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "digest",
				Usage:    "Transaction digest to invalidate",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return svc.Invalidate(ctx, c.String("digest"))
		},
	}
}
