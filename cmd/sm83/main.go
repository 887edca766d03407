package main

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/thelolagemann/go-sm83/internal/machine"
	"github.com/thelolagemann/go-sm83/internal/mmu"
	"github.com/thelolagemann/go-sm83/pkg/log"
	"github.com/thelolagemann/go-sm83/pkg/utils"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "sm83",
		Short:        "SM83 (Game Boy) CPU emulator",
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newRunCmd(), newDisasmCmd(), newHashCmd())
	return rootCmd
}

// loadImage reads a ROM file, decompressing it if needed, and pads it
// out to a full memory image.
func loadImage(path string) ([]byte, error) {
	rom, err := utils.LoadFile(path)
	if err != nil {
		return nil, fmt.Errorf("loading %s: %w", path, err)
	}
	return utils.FitImage(rom, mmu.Size)
}

func newRunCmd() *cobra.Command {
	var (
		romFile  string
		state    string
		save     string
		logLevel string
		pc, sp   uint16
		steps    uint64
		trace    bool
	)

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Execute a memory image until it halts, stops or runs out of steps",
		RunE: func(cmd *cobra.Command, args []string) error {
			level, err := log.ParseLevel(logLevel)
			if err != nil {
				return err
			}
			if trace && level < logrus.DebugLevel {
				level = logrus.DebugLevel
			}
			logger := log.NewWithOptions(cmd.ErrOrStderr(), level)

			image, err := loadImage(romFile)
			if err != nil {
				return err
			}

			opts := []machine.Opt{
				machine.WithLogger(logger),
				machine.WithROM(bytes.NewReader(image)),
				machine.WithPC(pc),
				machine.WithSP(sp),
			}
			if state != "" {
				b, err := utils.LoadFile(state)
				if err != nil {
					return err
				}
				opts = append(opts, machine.WithState(b))
			}
			if trace {
				opts = append(opts, machine.Debug())
			}

			m, err := machine.New(opts...)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt)
			defer stop()

			executed, runErr := m.Run(ctx, steps)
			fmt.Fprintf(cmd.OutOrStdout(), "%s\n", m.CPU.Storage)
			fmt.Fprintf(cmd.OutOrStdout(), "instructions: %d cycles: %d\n", executed, m.CPU.Cycles())

			if save != "" {
				if err := m.SaveSnapshot(save); err != nil {
					return err
				}
			}
			if runErr != nil && !errors.Is(runErr, context.Canceled) {
				return runErr
			}
			return nil
		},
	}
	runCmd.Flags().StringVar(&romFile, "rom", "", "Memory image to load (raw, .gz, .zip or .7z)")
	runCmd.Flags().Uint16Var(&pc, "pc", 0x0100, "Initial program counter")
	runCmd.Flags().Uint16Var(&sp, "sp", 0xFFFE, "Initial stack pointer")
	runCmd.Flags().Uint64Var(&steps, "steps", 0, "Maximum number of instructions to run (0 = no limit)")
	runCmd.Flags().BoolVar(&trace, "trace", false, "Log every instruction executed")
	runCmd.Flags().StringVar(&save, "save", "", "Write a snapshot to this file when the run ends")
	runCmd.Flags().StringVar(&state, "state", "", "Snapshot to restore before running")
	runCmd.Flags().StringVar(&logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	_ = runCmd.MarkFlagRequired("rom")

	return runCmd
}

func newDisasmCmd() *cobra.Command {
	var (
		romFile string
		from    uint16
		count   int
	)

	disasmCmd := &cobra.Command{
		Use:   "disasm",
		Short: "Disassemble instructions from a memory image",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := loadImage(romFile)
			if err != nil {
				return err
			}
			m, err := machine.New(machine.WithROM(bytes.NewReader(image)))
			if err != nil {
				return err
			}

			for _, line := range m.Disassemble(from, count) {
				fmt.Fprintln(cmd.OutOrStdout(), line)
			}
			return nil
		},
	}
	disasmCmd.Flags().StringVar(&romFile, "rom", "", "Memory image to load (raw, .gz, .zip or .7z)")
	disasmCmd.Flags().Uint16Var(&from, "from", 0x0100, "Address to start from")
	disasmCmd.Flags().IntVar(&count, "count", 16, "Number of instructions")
	_ = disasmCmd.MarkFlagRequired("rom")

	return disasmCmd
}

func newHashCmd() *cobra.Command {
	var romFile string

	hashCmd := &cobra.Command{
		Use:   "hash",
		Short: "Print the fingerprint of a memory image",
		RunE: func(cmd *cobra.Command, args []string) error {
			image, err := loadImage(romFile)
			if err != nil {
				return err
			}
			m, err := machine.New(machine.WithROM(bytes.NewReader(image)))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%016x  %s\n", m.Fingerprint(), romFile)
			return nil
		},
	}
	hashCmd.Flags().StringVar(&romFile, "rom", "", "Memory image to load (raw, .gz, .zip or .7z)")
	_ = hashCmd.MarkFlagRequired("rom")

	return hashCmd
}
