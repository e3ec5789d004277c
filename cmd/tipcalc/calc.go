package main

import (
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"github.com/h0rv/tipcalc/internal/domain"
	"github.com/h0rv/tipcalc/internal/logging"
	"github.com/h0rv/tipcalc/internal/money"
	"github.com/h0rv/tipcalc/internal/sanitize"
	"github.com/h0rv/tipcalc/internal/store"
)

var (
	calcBill   string
	calcTip    string
	calcPeople string
)

func newCalcCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "calc",
		Short: "Compute the split once and print it",
		Long: `Compute the tip and total per person without the interactive form.

Examples:
  tipcalc calc --bill 100 --tip 15 --people 2
  tipcalc calc --bill 84.20 --tip 12.5 --people 3 --currency EUR --locale de-DE`,
		RunE: runCalc,
	}

	cmd.Flags().StringVar(&calcBill, "bill", "", "Bill amount")
	cmd.Flags().StringVar(&calcTip, "tip", "", "Tip percentage")
	cmd.Flags().StringVar(&calcPeople, "people", "", "Number of people")
	return cmd
}

func runCalc(cmd *cobra.Command, args []string) error {
	cfg, formatter, _, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	logging.Setup(os.Stderr, cfg.LogLevel)

	return calculate(cmd.OutOrStdout(), cmd.ErrOrStderr(), formatter, cfg.Limits(), calcBill, calcTip, calcPeople)
}

// calculate feeds the inputs through a session exactly as the form would and
// prints the result. Warnings go to errOut.
func calculate(out, errOut io.Writer, formatter *money.Formatter, limits sanitize.Limits, bill, tip, people string) error {
	session := store.New(
		store.WithLimits(limits),
		store.WithNotifier(store.NotifierFunc(func(n domain.Notification) {
			fmt.Fprintf(errOut, "warning: %s\n", n.Message)
		})),
	)

	if !session.SetBill(bill) {
		return fmt.Errorf("invalid bill amount %q", bill)
	}
	session.SetCustomTip(tip)
	if !session.SetPartyCount(people) {
		return fmt.Errorf("invalid number of people %q", people)
	}

	derived := session.Derived()
	fmt.Fprintf(out, "Tip per person:   %s\n", formatter.Format(session.PerPersonTip()))
	fmt.Fprintf(out, "Total per person: %s\n", formatter.Format(derived.TotalPerPerson))
	return nil
}
