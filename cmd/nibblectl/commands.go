package main

import (
	"encoding/hex"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/danmuck/nibblekit/internal/config"
	"github.com/danmuck/nibblekit/internal/fileio"
	"github.com/danmuck/nibblekit/internal/nibble"
	"github.com/danmuck/nibblekit/internal/nibble/array"
	"github.com/danmuck/nibblekit/internal/nibble/pair"
	"github.com/danmuck/nibblekit/internal/packfile"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
)

type cli struct {
	fs         fileio.FS
	cfg        config.CLIConfig
	configPath string
	logLevel   string
}

func newRootCmd(fs fileio.FS) *cobra.Command {
	c := &cli{fs: fs, cfg: config.CLIConfig{Root: "."}}

	root := &cobra.Command{
		Use:           "nibblectl",
		Short:         "nibblectl packs, splits and computes on 4-bit values",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return c.setup()
		},
	}
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "path to nibblectl config.toml")
	root.PersistentFlags().StringVar(&c.logLevel, "log-level", "", "override log level (debug|info|warn|error)")

	root.AddCommand(
		c.splitCmd(),
		c.combineCmd(),
		c.arithCmd(),
		c.packCmd(),
		c.unpackCmd(),
		c.existsCmd(),
	)
	return root
}

func (c *cli) setup() error {
	if c.configPath != "" {
		cfg, err := config.LoadCLIConfig(c.configPath)
		if err != nil {
			return err
		}
		c.cfg = cfg
	}
	level := c.cfg.LogLevel
	if c.logLevel != "" {
		level = c.logLevel
	}
	if level != "" {
		lvl, err := zerolog.ParseLevel(strings.ToLower(level))
		if err != nil {
			return fmt.Errorf("invalid log level %q: %w", level, err)
		}
		zerolog.SetGlobalLevel(lvl)
		log.Logger = log.Logger.Level(lvl)
	}
	return nil
}

func parseNibbleArg(raw string) (nibble.Nibble, error) {
	n, err := nibble.ParseHex(strings.TrimPrefix(strings.ToLower(raw), "0x"))
	if err != nil {
		return nibble.Nibble{}, fmt.Errorf("operand %q: %w", raw, err)
	}
	return n, nil
}

func (c *cli) splitCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "split <byte>",
		Short: "split one byte (decimal, 0x hex, 0b binary) into high and low nibbles",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			v, err := strconv.ParseUint(args[0], 0, 8)
			if err != nil {
				return fmt.Errorf("byte %q: %w", args[0], err)
			}
			high, low := pair.Split(byte(v))
			fmt.Fprintf(cmd.OutOrStdout(), "%v %v\n", high, low)
			return nil
		},
	}
}

func (c *cli) combineCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "combine <high> <low>",
		Short: "combine two hex-digit nibbles into one byte",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			high, err := parseNibbleArg(args[0])
			if err != nil {
				return err
			}
			low, err := parseNibbleArg(args[1])
			if err != nil {
				return err
			}
			b := pair.Combine(high, low)
			fmt.Fprintf(cmd.OutOrStdout(), "0x%02X %d\n", b, b)
			return nil
		},
	}
}

func (c *cli) arithCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "arith <op> <lhs> <rhs>",
		Short: "apply add|sub|mul|div|rem|and|or|xor and report overflow",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, err := nibble.ParseOp(args[0])
			if err != nil {
				return err
			}
			lhs, err := parseNibbleArg(args[1])
			if err != nil {
				return err
			}
			rhs, err := parseNibbleArg(args[2])
			if err != nil {
				return err
			}
			result, overflow, err := nibble.Apply(op, lhs, rhs)
			if err != nil {
				return err
			}
			if overflow {
				log.Warn().Str("op", string(op)).Stringer("lhs", lhs).Stringer("rhs", rhs).Msg("overflow")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%v overflow=%t\n", result, overflow)
			return nil
		},
	}
}

func (c *cli) packCmd() *cobra.Command {
	var framed bool
	cmd := &cobra.Command{
		Use:   "pack <hexdigits> <file>",
		Short: "pack one nibble per hex digit into bytes, high nibble first",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			ns, err := array.FromHex(args[0])
			if err != nil {
				return err
			}
			var packed []byte
			switch {
			case framed:
				packed = packfile.Marshal(ns)
			default:
				if len(ns)%2 == 1 {
					log.Debug().Int("nibbles", len(ns)).Msg("odd nibble count, low half of last byte is zero")
				}
				packed = array.ToBytes(ns)
			}
			path := c.cfg.Resolve(args[1])
			if err := c.fs.WriteFile(path, packed); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d bytes (%s) to %s\n", len(packed), hexBytes(packed), path)
			return nil
		},
	}
	cmd.Flags().BoolVar(&framed, "framed", false, "write a packfile header that records the exact nibble count")
	return cmd
}

func (c *cli) unpackCmd() *cobra.Command {
	var framed bool
	cmd := &cobra.Command{
		Use:   "unpack <file>",
		Short: "print the nibbles of a file as hex digits",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := c.fs.ReadFile(c.cfg.Resolve(args[0]))
			if err != nil {
				if fileio.IsNotExist(err) {
					return fmt.Errorf("no such file: %s", args[0])
				}
				return err
			}
			ns := array.FromBytes(data)
			if framed {
				ns, err = packfile.Unmarshal(data, packfile.DefaultLimits())
				if err != nil {
					return err
				}
			}
			fmt.Fprintln(cmd.OutOrStdout(), array.ToHex(ns))
			return nil
		},
	}
	cmd.Flags().BoolVar(&framed, "framed", false, "read a packfile written by pack --framed")
	return cmd
}

var errMissing = errors.New("missing")

func (c *cli) existsCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "exists <path>",
		Short: "report whether a path is a file, a directory or missing",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := c.cfg.Resolve(args[0])
			switch {
			case c.fs.IsDir(path):
				fmt.Fprintln(cmd.OutOrStdout(), "dir")
			case c.fs.Exists(path):
				fmt.Fprintln(cmd.OutOrStdout(), "file")
			default:
				fmt.Fprintln(cmd.OutOrStdout(), "missing")
				return fmt.Errorf("%s: %w", path, errMissing)
			}
			return nil
		},
	}
}

func hexBytes(b []byte) string {
	return hex.EncodeToString(b)
}
