package main

import (
	"fmt"
	"io"
	"log"
	"math/rand"
	"os"
	"time"

	"github.com/davecgh/go-spew/spew"
	"github.com/shabbyrobe/go-bignum/internal/difftest"
	"github.com/spf13/cobra"
)

// This is a cheap-and-nasty tool for hammering num.Int with random operands
// and comparing every result against math/big, apd and inf. The same checks
// run under 'go test', but this is handier for long soak runs or for poking
// at a single suspicious case by hand.

func main() {
	if err := rootCmd().Execute(); err != nil {
		log.Fatal(err)
	}
}

func rootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:           "diffcheck",
		Short:         "Cross-check num.Int against reference big integer implementations",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	cmd.AddCommand(runCmd(), evalCmd())
	return cmd
}

func runCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Check random operands for every op",
		RunE:  runRun,
	}
	cmd.Flags().IntP("iterations", "n", 10000, "iterations per op")
	cmd.Flags().Int64P("seed", "s", 0, "seed the RNG (0 == current nanotime)")
	cmd.Flags().IntP("digits", "d", difftest.DefaultMaxDigits, "maximum operand length in digits")
	cmd.Flags().StringSliceP("op", "o", nil, "op to run (can pass multiple, or a comma separated list)")
	cmd.Flags().Bool("seeds", true, "also check the hand-picked seed pairs")
	cmd.Flags().Bool("dump", false, "spew.Dump each failing mismatch")
	return cmd
}

func runRun(cmd *cobra.Command, args []string) error {
	iterations, _ := cmd.Flags().GetInt("iterations")
	seed, _ := cmd.Flags().GetInt64("seed")
	digits, _ := cmd.Flags().GetInt("digits")
	opNames, _ := cmd.Flags().GetStringSlice("op")
	withSeeds, _ := cmd.Flags().GetBool("seeds")
	dump, _ := cmd.Flags().GetBool("dump")

	ops := difftest.AllOps
	if len(opNames) > 0 {
		var err error
		if ops, err = difftest.ParseOps(opNames); err != nil {
			return err
		}
	}

	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	log.Println("rando seed:", seed)
	log.Println("active ops:", ops)
	log.Println("iterations:", iterations)
	log.Println("max digits:", digits)

	checker := difftest.NewChecker()
	source := difftest.NewRando(rand.New(rand.NewSource(seed)), digits)

	var failures int
	report := func(err error) {
		failures++
		log.Println(err)
		if dump {
			spew.Fdump(os.Stderr, err)
		}
	}

	if withSeeds {
		for _, pair := range difftest.SeedPairs {
			for _, v := range difftest.SignVariants(pair[0], pair[1]) {
				for _, err := range checker.CheckAll(ops, v[0], v[1]) {
					report(err)
				}
			}
		}
	}

	for _, op := range ops {
		for i := 0; i < iterations; i++ {
			source.Clear()
			a, b := source.Pair()
			if err := checker.Check(op, a, b); err != nil {
				report(err)
			}
		}
	}

	if failures > 0 {
		return fmt.Errorf("%d checks failed", failures)
	}
	log.Println("all checks passed")
	return nil
}

func evalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <op> <a> [b]",
		Short: "Evaluate a single op with num.Int and every reference",
		Args:  cobra.RangeArgs(2, 3),
		RunE:  runEval,
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	ops, err := difftest.ParseOps(args[:1])
	if err != nil {
		return err
	}
	op, a := ops[0], args[1]

	var b string
	if op.Arity() == 2 {
		if len(args) < 3 {
			return fmt.Errorf("op %q needs two operands", op)
		}
		b = args[2]
	}

	out := cmd.OutOrStdout()
	fmt.Fprintln(out, op.Print(a, b))
	result, err := difftest.Eval(op, a, b)
	printResult(out, "num", result, err)
	for _, ref := range difftest.DefaultReferences() {
		result, err := ref.Eval(op, a, b)
		printResult(out, ref.Name(), result, err)
	}

	return difftest.NewChecker().Check(op, a, b)
}

func printResult(out io.Writer, name, result string, err error) {
	if err != nil {
		fmt.Fprintf(out, "%10s: error: %v\n", name, err)
		return
	}
	fmt.Fprintf(out, "%10s: %s\n", name, result)
}
