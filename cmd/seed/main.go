// Command main runs the sample-data seeder for development/debugging.
package main

import (
	"log"

	"caseboard/internal/bootstrap"
	"caseboard/internal/config"
)

func main() {
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	if _, err := bootstrap.InitRuntime(cfg, bootstrap.Options{SeedSamples: true}); err != nil {
		log.Fatalf("seeding failed: %v", err)
	}
	log.Println("seeding completed")
}
