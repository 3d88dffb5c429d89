//go:build ignore

package main

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/padraicob/lotto-backend/config"
	"github.com/padraicob/lotto-backend/database"
	"github.com/padraicob/lotto-backend/services"
)

func main() {
	fmt.Printf("Lotto backend health check - %s\n", time.Now().Format("2006-01-02 15:04:05"))
	fmt.Println(strings.Repeat("=", 50))

	healthScore := 0
	totalTests := 3

	cfg := config.LoadConfig()

	// Test 1: Timezone
	fmt.Print("Timezone: ")
	clock, err := services.NewClockService(cfg.Timezone)
	if err != nil {
		fmt.Printf("FAILED (%v)\n", err)
	} else {
		fmt.Printf("OK (%s, now %s)\n", cfg.Timezone, clock.Now().Format(time.RFC3339))
		healthScore++
	}

	// Test 2: Store connection
	fmt.Print("MongoDB: ")
	if err := database.Connect(cfg.MongoURI); err != nil {
		fmt.Printf("FAILED (%v)\n", err)
	} else {
		fmt.Println("OK")
		healthScore++

		// Test 3: Store data
		fmt.Print("Draw data: ")
		store := database.NewDrawStore(database.Database(cfg.MongoDatabase))
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		latest, err := store.FindLatest(ctx)
		cancel()
		switch {
		case err != nil:
			fmt.Printf("FAILED (%v)\n", err)
		case latest == nil:
			fmt.Println("EMPTY (no draws ingested)")
		default:
			fmt.Printf("OK (latest draw %s)\n", latest.ID)
			healthScore++
		}
		database.Close()
	}

	fmt.Println(strings.Repeat("-", 50))
	if healthScore == totalTests {
		fmt.Printf("SYSTEM HEALTHY: %d/%d tests passed\n", healthScore, totalTests)
	} else if healthScore >= totalTests/2 {
		fmt.Printf("SYSTEM DEGRADED: %d/%d tests passed\n", healthScore, totalTests)
	} else {
		fmt.Printf("SYSTEM UNHEALTHY: %d/%d tests passed\n", healthScore, totalTests)
	}
}
