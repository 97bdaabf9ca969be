// clean_config removes the user-level gitie configuration so the next
// invocation re-copies the bundled templates. Useful after breaking a
// config file beyond repair.
package main

import (
	"fmt"
	"os"
	"path/filepath"
)

func main() {
	home, err := os.UserHomeDir()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error resolving home directory: %v\n", err)
		os.Exit(1)
	}

	dir := filepath.Join(home, ".config", "gitie")
	removed := false
	for _, name := range []string{"config.toml", "commit-prompt"} {
		path := filepath.Join(dir, name)
		if err := os.Remove(path); err != nil {
			if !os.IsNotExist(err) {
				fmt.Fprintf(os.Stderr, "Error removing %s: %v\n", path, err)
				os.Exit(1)
			}
			continue
		}
		fmt.Printf("Removed %s\n", path)
		removed = true
	}

	if !removed {
		fmt.Println("Nothing to remove, no user configuration found.")
	}
}
