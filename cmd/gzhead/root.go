package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/webmafia/gzhead"
	"github.com/webmafia/gzhead/internal/output"
)

type flags struct {
	output      string
	gated       bool
	verify      bool
	maxFieldLen int
}

func newRootCmd() *cobra.Command {
	var f flags

	cmd := &cobra.Command{
		Use:   "gzhead [file ...]",
		Short: "Print the header of gzip files",
		Long: `gzhead decodes the header of each gzip file and prints it, without
decompressing anything. With no file, or when file is -, standard input is read.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, args, f)
		},
	}

	cmd.Flags().StringVarP(&f.output, "output", "o", "", "Output format (table|json), defaults to table on a terminal")
	cmd.Flags().BoolVar(&f.gated, "gated", false, "Read the header checksum only when FHCRC is set")
	cmd.Flags().BoolVar(&f.verify, "verify", false, "Verify the header checksum when FHCRC is set")
	cmd.Flags().IntVar(&f.maxFieldLen, "max-field-len", 0, "Maximum name and comment length (0 = unbounded)")

	return cmd
}

func run(cmd *cobra.Command, args []string, f flags) (err error) {
	out := cmd.OutOrStdout()
	outFile, _ := out.(*os.File)

	format, err := output.ParseFormat(f.output, outFile)

	if err != nil {
		return
	}

	if len(args) == 0 {
		args = []string{"-"}
	}

	if err = checkStdin(args); err != nil {
		return
	}

	pool := gzhead.Pool{Opt: gzhead.Options{
		MaxFieldLen:    f.maxFieldLen,
		GatedChecksum:  f.gated,
		VerifyChecksum: f.verify,
	}}

	var failed int

	for i, name := range args {
		h, err := inspect(&pool, cmd.InOrStdin(), name)

		if err != nil {
			failed++
			cmd.PrintErrf("%s: %v\n", name, err)
			continue
		}

		switch format {
		case output.FormatJSON:
			if err = output.WriteJSON(out, name, &h); err != nil {
				return err
			}

		default:
			if i > 0 {
				fmt.Fprintln(out)
			}

			output.PrintPairs(out, name, h.Rows())
		}
	}

	if failed > 0 {
		return fmt.Errorf("%d of %d inputs failed", failed, len(args))
	}

	return nil
}

func inspect(pool *gzhead.Pool, stdin io.Reader, name string) (h gzhead.Header, err error) {
	var r io.Reader = stdin

	if name != "-" {
		var file *os.File

		if file, err = os.Open(name); err != nil {
			return
		}

		defer file.Close()
		r = file
	}

	d := pool.Acquire(r)
	defer pool.Release(d)

	if h, err = d.DecodeHeader(); err != nil {
		var fe *gzhead.FormatError

		if errors.As(err, &fe) && fe.Field == "magic" {
			err = fmt.Errorf("not a gzip file: %w", err)
		}
	}

	return
}

// checkStdin rejects reading standard input more than once, as the first
// decoder may have buffered bytes past its header.
func checkStdin(args []string) error {
	var n int

	for _, name := range args {
		if name == "-" {
			n++
		}
	}

	if n > 1 {
		return errors.New("standard input (-) can only be given once")
	}

	return nil
}
