package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"rebel/internal/diag"
	"rebel/internal/diagfmt"
	"rebel/internal/eval"
	"rebel/num"
)

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval NAME [OPERAND...]",
		Short: "Evaluate a numeric or bitwise utility",
		Long: `Evaluate a utility over integer, float or boolean operands, e.g.

  rebel eval ALIGN 13 8        # 16
  rebel eval CLAMP 15 0 10     # 10
  rebel eval CAST BYTE 200     # 200

Available: ` + strings.Join(eval.Names(), ", ") + `, CAST.`,
		Args: cobra.MinimumNArgs(1),
		RunE: runEval,
	}
}

func runEval(cmd *cobra.Command, args []string) error {
	s := settingsOf(cmd)
	got, err := eval.Apply(args[0], args[1:]...)
	if err != nil {
		bag := diag.NewBag(1)
		diag.BagReporter{Bag: bag}.Report(diag.SevError, evalCode(err), diag.Subject{Entry: strings.ToUpper(args[0])}, err.Error())
		if perr := diagfmt.Pretty(cmd.ErrOrStderr(), bag, diagfmt.PrettyOpts{Color: s.color}); perr != nil {
			return perr
		}
		cmd.SilenceErrors = true
		return fmt.Errorf("eval failed")
	}
	_, err = fmt.Fprintln(cmd.OutOrStdout(), got)
	return err
}

func evalCode(err error) diag.Code {
	switch {
	case errors.Is(err, eval.ErrUnknownName):
		return diag.EvalUnknownName
	case errors.Is(err, eval.ErrArity):
		return diag.EvalArity
	case errors.Is(err, eval.ErrOperand), errors.Is(err, num.ErrOutOfRange):
		return diag.EvalOperand
	default:
		return diag.EvalInfo
	}
}
