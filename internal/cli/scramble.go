package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	rubiks "github.com/ZackJorquera/Rubiks-cube-solver"
)

var (
	scrambleSize  int
	scrambleTurns int
	scrambleQuiet bool
)

var scrambleCmd = &cobra.Command{
	Use:   "scramble",
	Short: "Generate a scrambled cube state",
	Long: `Generate a random scramble and print the resulting state.

The printed state string can be fed back into 'rubiks solve'.`,
	RunE: runScramble,
}

func init() {
	rootCmd.AddCommand(scrambleCmd)
	scrambleCmd.Flags().IntVarP(&scrambleSize, "size", "n", 3, "Cube size")
	scrambleCmd.Flags().IntVarP(&scrambleTurns, "turns", "t", 100, "Number of random turns")
	scrambleCmd.Flags().BoolVarP(&scrambleQuiet, "quiet", "q", false, "Only print the state string")
}

func runScramble(cmd *cobra.Command, args []string) error {
	if scrambleSize < 2 {
		return fmt.Errorf("cube size must be at least 2, got %d", scrambleSize)
	}

	state, scramble := rubiks.Scramble(scrambleSize, scrambleTurns)
	if scrambleQuiet {
		fmt.Println(state.StateString())
		return nil
	}

	fmt.Println(RenderState(state))
	fmt.Printf("Scramble: %s\n", scramble)
	fmt.Printf("State:    %s\n", state.StateString())
	return nil
}
