// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

// Command collectiblesctl runs operator tasks against the collectibles
// database: previewing ids, listing the schema and seeding news.
package main

import (
	"fmt"
	"os"

	"github.com/danielhkuo/collectibles/cliparse"
)

func main() {
	if err := cliparse.LoadEnvFile(".env"); err != nil {
		fmt.Fprintln(os.Stderr, "warning: failed to load .env:", err)
	}

	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
