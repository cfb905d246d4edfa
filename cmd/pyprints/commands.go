package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/axondata/go-pyprints"
)

// stdinArg selects standard input as the document source for print
const stdinArg = "-"

func newListCmd(a *app) *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List installed printers and the current default",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			printers, err := a.client.List(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if asJSON {
				data, err := json.Marshal(printers)
				if err != nil {
					return err
				}
				_, err = fmt.Fprintln(out, string(data))
				return err
			}

			fmt.Fprintln(out, "Printers:")
			if len(printers.Names) == 0 {
				fmt.Fprintln(out, "  (none found)")
				return nil
			}
			for _, name := range printers.Names {
				mark := ""
				if name == printers.Default {
					mark = " (default)"
				}
				fmt.Fprintf(out, "  - %s%s\n", name, mark)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the listing as JSON")
	return cmd
}

func newSetDefaultCmd(a *app) *cobra.Command {
	return &cobra.Command{
		Use:   "set-default PRINTER",
		Short: "Make PRINTER the OS default printer",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := a.client.SetDefault(cmd.Context(), args[0]); err != nil {
				return err
			}
			a.logger.Info("default printer set", "printer", args[0])
			return nil
		},
	}
}

// addPrintFlags registers the per-job flags shared by the print commands
func addPrintFlags(cmd *cobra.Command, opts *pyprints.PrintOptions) {
	cmd.Flags().StringVar(&opts.Printer, "printer", "", "target printer (default: OS default printer)")
	cmd.Flags().IntVar(&opts.Copies, "copies", 0, "number of copies")
}

func newPrintCmd(a *app) *cobra.Command {
	var opts pyprints.PrintOptions

	cmd := &cobra.Command{
		Use:   "print FILE",
		Short: "Print a PDF file (use - to read it from stdin)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			var (
				res pyprints.PrintResult
				err error
			)
			if args[0] == stdinArg {
				res, err = a.client.PrintReader(cmd.Context(), "stdin.pdf", cmd.InOrStdin(), opts)
			} else {
				res, err = a.client.PrintPDF(cmd.Context(), args[0], opts)
			}
			if err != nil {
				return err
			}

			_, err = fmt.Fprintln(cmd.OutOrStdout(), res.Message)
			return err
		},
	}

	addPrintFlags(cmd, &opts)
	return cmd
}

func newPrintAllCmd(a *app) *cobra.Command {
	var (
		opts        pyprints.PrintOptions
		concurrency int
		timeout     time.Duration
	)

	cmd := &cobra.Command{
		Use:   "print-all FILE...",
		Short: "Print several PDF files concurrently",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			mgr := pyprints.NewManager(a.client,
				pyprints.WithConcurrency(concurrency),
				pyprints.WithTimeout(timeout),
			)

			results, err := mgr.PrintAll(cmd.Context(), opts, args...)
			for _, path := range args {
				if res, ok := results[path]; ok {
					a.logger.Info("printed", "file", path, "message", res.Message)
				}
			}
			if err != nil {
				var merr *pyprints.MultiError
				if errors.As(err, &merr) {
					for _, e := range merr.Errors {
						a.logger.Error("print failed", "err", e)
					}
				}
				return err
			}
			return nil
		},
	}

	addPrintFlags(cmd, &opts)
	cmd.Flags().IntVar(&concurrency, "concurrency", 4, "maximum number of concurrent jobs")
	cmd.Flags().DurationVar(&timeout, "timeout", 0, "per-job timeout (0 disables)")
	return cmd
}

func newWatchCmd(a *app) *cobra.Command {
	var opts pyprints.PrintOptions

	cmd := &cobra.Command{
		Use:   "watch DIR",
		Short: "Print PDF files as they are dropped into DIR",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()

			events, stop, err := a.client.WatchFolder(ctx, args[0], opts)
			if err != nil {
				return err
			}
			defer func() {
				if err := stop(); err != nil {
					a.logger.Warn("failed to stop watching", "err", err)
				}
			}()

			a.logger.Info("watching for PDF files", "dir", args[0])

			for {
				select {
				case <-ctx.Done():
					return nil
				case ev, ok := <-events:
					if !ok {
						return nil
					}
					if ev.Err != nil {
						a.logger.Error("print failed", "file", ev.Path, "err", ev.Err)
						continue
					}
					a.logger.Info("printed", "file", ev.Path, "message", ev.Result.Message)
				}
			}
		},
	}

	addPrintFlags(cmd, &opts)
	return cmd
}
