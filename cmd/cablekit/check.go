package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/voltlab/cablekit/cable"
	"github.com/voltlab/cablekit/designio"
)

var checkSystem bool

// checkCmd validates a design or system document by constructing it.
var checkCmd = &cobra.Command{
	Use:   "check <design.yaml>",
	Short: "Validate a cable design document",
	Long: `Load a YAML design document and construct every layer through the rule
pipeline. The first violated rule aborts the check with the offending
entity, field and rule; a clean exit means the document is buildable.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCheck(args[0])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
	checkCmd.Flags().BoolVar(&checkSystem, "system", false, "treat the document as a line system, not a single design")
}

func runCheck(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if checkSystem {
		s, err := designio.ImportSystem(f)
		if err != nil {
			return fmt.Errorf("check failed: %w", err)
		}
		slog.Info("system is valid",
			"name", s.Name(), "cables", s.Len(), "kind", s.NumKind().String())
		fmt.Printf("OK  system %q: %d cable(s), length %g m, kind %s\n",
			s.Name(), s.Len(), s.Length().Value(), s.NumKind())
		return nil
	}

	d, err := designio.ImportDesign(f)
	if err != nil {
		return fmt.Errorf("check failed: %w", err)
	}
	slog.Info("design is valid",
		"name", d.Name(), "components", d.Len(), "kind", d.NumKind().String())
	fmt.Printf("OK  design %q: %d component(s), outer radius %g m, kind %s\n",
		d.Name(), d.Len(), d.OuterRadius().Value(), d.NumKind())
	printDesign(d)
	return nil
}

// printDesign renders the layer stack of a validated design.
func printDesign(d *cable.Design) {
	for _, c := range d.Components() {
		fmt.Printf("  %s\n", c.ID())
		cond := c.Conductor()
		for _, p := range cond.Parts() {
			fmt.Printf("    %-10s %.4g..%.4g m\n", p.Entity, p.RIn.Value(), p.RExt.Value())
		}
		fmt.Printf("    conductor: R %.4g Ω/m, GMR %.4g m, A %.4g m²\n",
			cond.Resistance().Value(), cond.GMR().Value(), cond.CrossSection().Value())
		ins := c.Insulation()
		for _, p := range ins.Parts() {
			fmt.Printf("    %-10s %.4g..%.4g m\n", p.Entity, p.RIn.Value(), p.RExt.Value())
		}
		fmt.Printf("    insulation: C %.4g F/m, G %.4g S/m\n",
			ins.Capacitance().Value(), ins.Conductance().Value())
	}
}
