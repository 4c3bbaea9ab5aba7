package main

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/hupe1980/bitvec"
	"github.com/spf13/cobra"
)

type calcOp struct {
	arity int
	usage string
	run   func(a *bitvec.BitVector, arg string) (string, error)
}

var calcOps = map[string]calcOp{
	"and": binaryOp("A & B", bitvec.And),
	"or":  binaryOp("A | B", bitvec.Or),
	"xor": binaryOp("A ^ B", bitvec.Xor),
	"not": {1, "~A", func(a *bitvec.BitVector, _ string) (string, error) {
		r, err := bitvec.Not(a)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}},
	"shl": shiftOp("A << N", (*bitvec.BitVector).ShiftLeft),
	"shr": shiftOp("A >> N", (*bitvec.BitVector).ShiftRight),
	"rol": shiftOp("rotate A left by N", (*bitvec.BitVector).RotateLeft),
	"ror": shiftOp("rotate A right by N", (*bitvec.BitVector).RotateRight),
	"count": {1, "number of set bits in A", func(a *bitvec.BitVector, _ string) (string, error) {
		return strconv.Itoa(a.Count()), nil
	}},
	"any": {1, "whether any bit of A is set", func(a *bitvec.BitVector, _ string) (string, error) {
		ok, err := a.Any()
		return strconv.FormatBool(ok), err
	}},
	"none": {1, "whether no bit of A is set", func(a *bitvec.BitVector, _ string) (string, error) {
		ok, err := a.None()
		return strconv.FormatBool(ok), err
	}},
	"eq": {2, "whether A equals B", func(a *bitvec.BitVector, arg string) (string, error) {
		b, err := bitvec.Parse(arg)
		if err != nil {
			return "", err
		}
		return strconv.FormatBool(bitvec.Equal(a, b)), nil
	}},
}

func binaryOp(usage string, fn func(a, b *bitvec.BitVector) (*bitvec.BitVector, error)) calcOp {
	return calcOp{2, usage, func(a *bitvec.BitVector, arg string) (string, error) {
		b, err := bitvec.Parse(arg)
		if err != nil {
			return "", err
		}
		r, err := fn(a, b)
		if err != nil {
			return "", err
		}
		return r.String(), nil
	}}
}

func shiftOp(usage string, fn func(v *bitvec.BitVector, n int) error) calcOp {
	return calcOp{2, usage, func(a *bitvec.BitVector, arg string) (string, error) {
		n, err := strconv.Atoi(arg)
		if err != nil {
			return "", fmt.Errorf("%w: shift amount %q is not an integer", bitvec.ErrInvalidArgument, arg)
		}
		if err := fn(a, n); err != nil {
			return "", err
		}
		return a.String(), nil
	}}
}

func calcUsage() string {
	names := make([]string, 0, len(calcOps))
	for name := range calcOps {
		names = append(names, name)
	}
	slices.Sort(names)

	var sb strings.Builder
	sb.WriteString("Operands are binary strings, highest bit first.\n\nOperations:\n")
	for _, name := range names {
		fmt.Fprintf(&sb, "  %-6s %s\n", name, calcOps[name].usage)
	}
	return sb.String()
}

func newCalcCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "calc <op> <A> [B|N]",
		Short:   "Apply a bitwise operation to binary strings",
		Long:    calcUsage(),
		Example: "  bitvec calc xor 1100 1010\n  bitvec calc rol 10010110 3",
		Args:    cobra.RangeArgs(2, 3),
		RunE: func(cmd *cobra.Command, args []string) error {
			op, ok := calcOps[strings.ToLower(args[0])]
			if !ok {
				return fmt.Errorf("unknown operation %q", args[0])
			}
			if len(args)-1 != op.arity {
				return fmt.Errorf("%s takes %d operand(s), got %d", args[0], op.arity, len(args)-1)
			}

			a, err := bitvec.Parse(args[1])
			if err != nil {
				return err
			}
			var arg string
			if op.arity == 2 {
				arg = args[2]
			}

			out, err := op.run(a, arg)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(cmd.OutOrStdout(), out)
			return err
		},
	}
}
