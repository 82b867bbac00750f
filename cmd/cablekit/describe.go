package main

import (
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/voltlab/cablekit/cable"
	"github.com/voltlab/cablekit/materials"
)

// describeCmd prints the registered entity types with their constructor
// surfaces and rule bundles, and the built-in material library.
var describeCmd = &cobra.Command{
	Use:   "describe",
	Short: "List entity types, their rules and the material library",
	Args:  cobra.NoArgs,
	RunE: func(*cobra.Command, []string) error {
		return runDescribe()
	},
}

func init() {
	rootCmd.AddCommand(describeCmd)
}

func runDescribe() error {
	reg := cable.Registry()

	entities := reg.Entities()
	sort.Strings(entities)

	fmt.Println("Entity types:")
	for _, name := range entities {
		e, err := reg.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Printf("  %s\n", name)
		fmt.Printf("    positional: %v\n", e.Required)
		for _, o := range e.Optional {
			fmt.Printf("    optional:   %s (default %v)\n", o.Name, o.Default)
		}
		rules, err := reg.RulesFor(name)
		if err != nil {
			return err
		}
		fmt.Printf("    rules:\n")
		for _, r := range rules {
			fmt.Printf("      %s\n", r)
		}
	}

	fmt.Println("Materials:")
	for _, name := range materials.Names() {
		m, _ := materials.Get(name)
		fmt.Printf("  %-14s rho %.4g Ω·m, eps_r %.4g, mu_r %.4g, alpha %.4g 1/°C\n",
			name, m.Rho.Value(), m.EpsR.Value(), m.MuR.Value(), m.Alpha.Value())
	}
	return nil
}
