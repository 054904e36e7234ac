package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/flappy-plane/internal/config"
)

var difficultiesCmd = &cobra.Command{
	Use:   "difficulties",
	Short: "List difficulty tiers",
	Long:  `Shows every difficulty tier and its tuning from the effective configuration.`,
	Args:  cobra.NoArgs,
	Run:   runDifficulties,
}

func init() {
	difficultiesCmd.Flags().StringVar(&flagConfig, "config", "", "Path to custom game config YAML")
}

func runDifficulties(_ *cobra.Command, _ []string) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Difficulty tiers:")
	fmt.Println()

	// Print header
	fmt.Printf("  %-8s  %-6s  %-7s  %-9s  %-8s  %-8s  %s\n",
		"Tier", "Speed", "Gravity", "Interval", "Enemies", "Powerup", "Per level")
	fmt.Printf("  %-8s  %-6s  %-7s  %-9s  %-8s  %-8s  %s\n",
		"----", "-----", "-------", "--------", "-------", "-------", "---------")

	for _, d := range config.Difficulties() {
		p, profErr := cfg.Profile(d)
		if profErr != nil {
			continue
		}
		marker := " "
		if d == cfg.DefaultDifficulty {
			marker = "*"
		}
		fmt.Printf("%s %-8s  %-6.1f  %-7.2f  %-9s  %-8s  %-8s  +%.1f\n",
			marker,
			d.Title(),
			p.BaseSpeed,
			p.Gravity,
			fmt.Sprintf("%dms", p.ObstacleIntervalMs),
			fmt.Sprintf("lvl %d", p.EnemyUnlockLevel),
			fmt.Sprintf("%.0f%%", p.PowerupChance*100),
			p.SpeedIncreasePerLevel,
		)
	}

	fmt.Println()
	fmt.Println("* default. Run 'plane play --difficulty <tier>' to pick another.")
}
