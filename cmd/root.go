package cmd

import (
	"fmt"
	"math/rand"
	"os"

	"github.com/common-nighthawk/go-figure"
	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "klaatu",
	Short: "Klaatu web toolkit CLI",
	Long:  "Management commands for the Klaatu web application toolkit.",
}

// ASCII banner on start (random font each run)
var bannerFonts = []string{"banner", "big", "block", "slant", "standard", "small", "shadow", "speed", "thick", "doom", "larry3d", "puffy", "rectangles"}

func printBanner() {
	fig := figure.NewFigure("Klaatu ->", bannerFonts[rand.Intn(len(bannerFonts))], true)
	fig.Print()
	fmt.Println()
}

// Execute runs the CLI after applying registered extension commands.
func Execute() {
	printBanner()
	Apply()
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
