package main

import (
	"fmt"
	"os"
)

// @title			Equine Vet Dashboard API
// @version		1.0
// @description	Backend del dashboard veterinario equino: sesiones, vistas compuestas y altas en memoria.
// @BasePath		/
func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
