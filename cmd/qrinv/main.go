package main

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/urfave/cli/v3"

	"qrinv/cmd/qrinv/commands"
	"qrinv/internal/config"
	"qrinv/internal/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	log := logger.New(logger.Config{Env: cfg.App.Env, Level: cfg.App.LogLevel})
	env := commands.NewEnv(cfg, log.Zerolog(), os.Stdout, os.Stderr)

	cmd := &cli.Command{
		Name:  "qrinv",
		Usage: "Build encrypted invoice QR records",
		Commands: []*cli.Command{
			{
				Name:      "encode",
				Usage:     "Build the record for an invoice input file",
				ArgsUsage: "<path>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "png",
						Usage: "Write the QR code as PNG to this file",
					},
					&cli.StringFlag{
						Name:  "pdf",
						Usage: "Write a printable sheet with the QR code to this file",
					},
					&cli.IntFlag{
						Name:  "size",
						Usage: "QR image size in pixels (default from QRINV_QR_SIZE)",
					},
					&cli.BoolFlag{
						Name:  "upload",
						Usage: "Upload the rendered QR code to QRINV_S3_BUCKET",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					path := cmd.Args().First()
					if path == "" {
						return fmt.Errorf("usage: qrinv encode <path>")
					}
					return commands.RunEncode(ctx, env, commands.EncodeOptions{
						Path:    path,
						PNGPath: cmd.String("png"),
						PDFPath: cmd.String("pdf"),
						Size:    int(cmd.Int("size")),
						Upload:  cmd.Bool("upload"),
					})
				},
			},
			{
				Name:      "verify",
				Usage:     "Check a record against its key and print its fields",
				ArgsUsage: "<record>",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "key",
						Aliases:  []string{"k"},
						Required: true,
						Usage:    "AES key as 32 hexadecimal digits",
					},
				},
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunVerify(ctx, env, cmd.Args().First(), cmd.String("key"))
				},
			},
			{
				Name:  "keygen",
				Usage: "Print a new random AES key",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					return commands.RunKeygen(os.Stdout)
				},
			},
			{
				Name:      "fetch",
				Usage:     "Download an uploaded QR artifact",
				ArgsUsage: "<id> <output-dir>",
				Action: func(ctx context.Context, cmd *cli.Command) error {
					if cmd.Args().Len() < 2 {
						return fmt.Errorf("usage: qrinv fetch <id> <output-dir>")
					}
					return commands.RunFetch(ctx, env, cmd.Args().Get(0), cmd.Args().Get(1))
				},
			},
		},
	}

	if err := cmd.Run(context.Background(), os.Args); err != nil {
		if !errors.Is(err, commands.ErrReported) {
			log.Error().Err(err).Msg("command failed")
		}
		os.Exit(1)
	}
}
