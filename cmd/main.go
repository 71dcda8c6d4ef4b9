package main

import (
	"fmt"
	"os"

	"github.com/ostafen/winpath/cmd/cmd"
	"github.com/ostafen/winpath/internal/env"
)

func main() {
	PrintLogo()

	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func PrintLogo() {
	fmt.Println("          _                 _   _     ")
	fmt.Println("__      _(_)_ __  _ __ __ _| |_| |__  ")
	fmt.Println("\\ \\ /\\ / / | '_ \\| '_ \\ / _` | __| '_ \\ ")
	fmt.Println(" \\ V  V /| | | | | |_) | (_| | |_| | | |")
	fmt.Println("  \\_/\\_/ |_|_| |_| .__/ \\__,_|\\__|_| |_|")
	fmt.Println("                 |_|                  ")
	fmt.Println()
	fmt.Println("Windows path inspection and normalization tool")
	fmt.Println()
	fmt.Printf("Version:   %s\n", env.Version)
	fmt.Printf("Commit:    %s\n", env.CommitHash)
	fmt.Printf("Build Time: %s\n", env.BuildTime)
	fmt.Println(" ")
}
