package config_test

import (
	"fmt"

	"github.com/walteh/renamerc/pkg/config"
)

func ExampleDefault() {
	cfg := config.Default("/home/dev/termsnap")
	if err := cfg.Validate(); err != nil {
		fmt.Printf("Error: %v\n", err)
		return
	}

	fmt.Println(cfg)
	for _, group := range cfg.Groups {
		fmt.Printf("%s: %v under %s\n", group.Name, group.Patterns, group.Root)
	}

	// Output:
	// Nebula -> TermSnap in /home/dev/termsnap
	// source: [*.cs] under src
	// markup: [*.xaml] under src
	// other: [*.json *.config *.xml *.md] under .
}
