package main

import (
	"errors"
	"fmt"
	"io"

	"github.com/hashicorp/go-hclog"
	"github.com/saylorsolutions/cryptopals/cmd/internal"
	"github.com/saylorsolutions/cryptopals/pkg/codec"
	"github.com/saylorsolutions/cryptopals/pkg/detect"
	"github.com/saylorsolutions/cryptopals/pkg/xor"
	"github.com/spf13/cobra"
	flag "github.com/spf13/pflag"
)

var errNoCandidates = errors.New("no key produced printable text")

func newRootCmd(out io.Writer, logger hclog.Logger) *cobra.Command {
	var (
		verbose  bool
		logLevel string
	)
	root := &cobra.Command{
		Use:           "xortool",
		Short:         "Byte-level codec and XOR helpers for cryptanalysis exercises",
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if verbose {
				logLevel = "debug"
			}
			if len(logLevel) > 0 && !internal.SetLogLevel(logger, logLevel) {
				return fmt.Errorf("unknown log level '%s'", logLevel)
			}
			return nil
		},
	}
	root.SetOut(out)
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Log debug diagnostics to stderr. Same as --log-level=debug.")
	root.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (trace, debug, info, warn, error)")

	root.AddCommand(
		hexToBase64Cmd(logger),
		base64ToHexCmd(logger),
		fixedXorCmd(logger),
		singleXorCmd(logger),
		crackCmd(logger),
	)
	return root
}

func hexToBase64Cmd(logger hclog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "hex2b64 HEX",
		Short: "Re-encode a hex string as Base64",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := codec.HexDecode(args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded hex input", "bytes", len(data))
			cmd.Println(codec.Base64Encode(data))
			return nil
		},
	}
}

func base64ToHexCmd(logger hclog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "b642hex B64",
		Short: "Re-encode a Base64 string as hex",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := codec.Base64Decode(args[0])
			if err != nil {
				return err
			}
			logger.Debug("decoded base64 input", "bytes", len(data))
			cmd.Println(codec.HexEncode(data))
			return nil
		},
	}
}

func fixedXorCmd(logger hclog.Logger) *cobra.Command {
	return &cobra.Command{
		Use:   "fixedxor HEX_A HEX_B",
		Short: "XOR two equal length hex strings",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			a, err := codec.HexDecode(args[0])
			if err != nil {
				return fmt.Errorf("first operand: %w", err)
			}
			b, err := codec.HexDecode(args[1])
			if err != nil {
				return fmt.Errorf("second operand: %w", err)
			}
			out, err := xor.Fixed(a, b)
			if err != nil {
				return err
			}
			logger.Debug("combined operands", "bytes", len(out))
			cmd.Println(codec.HexEncode(out))
			return nil
		},
	}
}

func singleXorCmd(logger hclog.Logger) *cobra.Command {
	var key uint8
	cmd := &cobra.Command{
		Use:   "singlexor HEX",
		Short: "XOR every byte of a hex string with a single key byte",
		Long:  "XOR every byte of a hex string with a single key byte.\nA random key is generated and logged if --key is not given.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := codec.HexDecode(args[0])
			if err != nil {
				return err
			}
			if !cmd.Flags().Changed("key") {
				key, err = xor.GenSingleKey()
				if err != nil {
					return err
				}
				logger.Info("generated random key", "key", key)
			}
			cmd.Println(codec.HexEncode(xor.SingleByte(data, key)))
			return nil
		},
	}
	addKeyFlag(cmd.Flags(), &key)
	return cmd
}

type crackParams struct {
	best       bool
	whitespace bool
	legacy     bool
	concurrent bool
}

func (p *crackParams) detector() *detect.Detector {
	var opts []detect.Opt
	if p.whitespace {
		opts = append(opts, detect.AllowWhitespace())
	}
	if p.legacy {
		opts = append(opts, detect.LegacyKeySpace())
	}
	if p.concurrent {
		opts = append(opts, detect.Concurrent())
	}
	return detect.NewDetector(opts...)
}

func crackCmd(logger hclog.Logger) *cobra.Command {
	params := new(crackParams)
	cmd := &cobra.Command{
		Use:   "crack HEX",
		Short: "Find every single-byte key that decodes a hex string to printable text",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			data, err := codec.HexDecode(args[0])
			if err != nil {
				return err
			}
			det := params.detector()
			found := det.Find(data)
			logger.Debug("searched key space", "bytes", len(data), "candidates", len(found))
			if len(found) == 0 {
				return errNoCandidates
			}
			if params.best {
				found = detect.Rank(found)[:1]
			}
			for _, cand := range found {
				cmd.Printf("%d\t%s\n", cand.Key, cand.Text)
			}
			return nil
		},
	}
	addCrackFlags(cmd.Flags(), params)
	return cmd
}

func addKeyFlag(flags *flag.FlagSet, key *uint8) {
	flags.Uint8VarP(key, "key", "k", 0, "Key byte to use, from 0 to 255.")
}

func addCrackFlags(flags *flag.FlagSet, params *crackParams) {
	flags.BoolVarP(&params.best, "best", "b", false, "Only print the candidate that scores closest to English text.")
	flags.BoolVarP(&params.whitespace, "whitespace", "w", false, "Accept tab, newline, and carriage return as printable.")
	flags.BoolVar(&params.legacy, "legacy", false, "Stop the search at key 254, never trying key 255.")
	flags.BoolVar(&params.concurrent, "concurrent", false, "Try keys concurrently.")
}
