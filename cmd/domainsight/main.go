package main

import (
	"log"

	"domainsight/internal/app"
)

func main() {
	if err := app.New().Run(); err != nil {
		log.Fatalf("❌ domainsight failed to start: %v", err)
	}
}
