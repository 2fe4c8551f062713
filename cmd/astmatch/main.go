// Command astmatch is the CLI entry point wiring every package together:
// the provider registry, the AST factory, the pattern factory, the match
// finder, the shower, and the history store. Its command structure
// follows cobra's own standard root-command-plus-subcommands idiom.
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/oxhq/astmatch/internal/ast"
	"github.com/oxhq/astmatch/internal/astfactory"
	"github.com/oxhq/astmatch/internal/cfamily"
	"github.com/oxhq/astmatch/internal/config"
	"github.com/oxhq/astmatch/internal/history"
	"github.com/oxhq/astmatch/internal/matcher"
	"github.com/oxhq/astmatch/internal/pattern"
	"github.com/oxhq/astmatch/internal/provider"
	"github.com/oxhq/astmatch/internal/show"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:   "astmatch",
		Short: "Structural pattern matching over C and C++ source",
	}
	root.AddCommand(newMatchCmd(), newShowCmd())
	return root
}

func newRegistry() *provider.Registry {
	reg := provider.NewRegistry()
	_ = cfamily.Register(reg)
	return reg
}

func newMatchCmd() *cobra.Command {
	var (
		patternText string
		recursive   bool
		record      bool
	)

	cmd := &cobra.Command{
		Use:   "match <file>",
		Short: "Find every occurrence of a statement pattern in a source file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			file := args[0]
			cfg := config.Load()

			reg := newRegistry()
			contract, err := reg.ForFile(file)
			if err != nil {
				return err
			}
			factory := astfactory.New(reg)
			root, err := factory.Create(file)
			if err != nil {
				return err
			}

			pf := pattern.New(contract)
			pat, err := pf.CreateStatement(patternText, nil, nil)
			if err != nil {
				return err
			}

			matches := matcher.FindAll(root.Children(), [][]ast.Node{{pat}}, recursive)
			printMatches(cmd, matches)

			if record {
				store, err := history.Open(cfg.HistoryDSN, cfg.HistoryDebug)
				if err != nil {
					return err
				}
				defer store.Close()
				if _, err := store.Record(contract.Lang(), file, patternText, matches); err != nil {
					return err
				}
			}
			return nil
		},
	}
	cmd.Flags().StringVarP(&patternText, "pattern", "p", "", "pattern statement text, e.g. \"$x = $x + 1;\"")
	cmd.Flags().BoolVar(&recursive, "recursive", true, "search recursively through every child node")
	cmd.Flags().BoolVar(&record, "record", false, "persist this run to the history store")
	cmd.MarkFlagRequired("pattern")
	return cmd
}

func newShowCmd() *cobra.Command {
	var color bool
	cmd := &cobra.Command{
		Use:   "show <file>",
		Short: "Print a file's parsed syntax tree",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			reg := newRegistry()
			factory := astfactory.New(reg)
			root, err := factory.Create(args[0])
			if err != nil {
				return err
			}
			show.New(cmd.OutOrStdout(), color).ShowNode(root)
			return nil
		},
	}
	cmd.Flags().BoolVar(&color, "color", true, "colorize kinds and spans")
	return cmd
}

func printMatches(cmd *cobra.Command, matches []*matcher.PatternMatch) {
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "%d match(es)\n", len(matches))
	for i, m := range matches {
		fmt.Fprintf(out, "\n[%d]\n", i+1)
		for key, nodes := range m.GetDict() {
			for _, n := range nodes {
				fmt.Fprintf(out, "  %s = %q\n", key, n.RawSignature())
			}
		}
	}
}
