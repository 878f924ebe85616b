package main

import (
	"context"
	"flag"
	"log"

	"github.com/joho/godotenv"

	"github.com/vaanicall/vaani-backend/config"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/mockdata"
	"github.com/vaanicall/vaani-backend/internal/infrastructure/redisstore"
	"github.com/vaanicall/vaani-backend/pkg/helpers"
)

// Seeds the mock business data for a device: earnings, call history and the
// caller balance. The coin package catalog is seeded globally.
func main() {
	_ = godotenv.Load()

	deviceID := flag.String("device", "", "device id to seed (omit to seed only the catalog)")
	flag.Parse()

	cfg := config.Load()
	rdb := helpers.NewRedisClient(cfg.RedisAddr, cfg.RedisPassword, cfg.RedisDB)
	defer func() { _ = rdb.Close() }()

	ctx := context.Background()

	if err := helpers.RedisSetJSON(ctx, rdb, "catalog:coin_packages", mockdata.CoinPackages(), 0); err != nil {
		log.Fatalf("seed coin packages: %v", err)
	}
	log.Println("seeded coin package catalog")

	if *deviceID == "" {
		return
	}

	wallet := redisstore.NewWalletRepository(rdb)
	if err := wallet.SaveEarnings(ctx, *deviceID, mockdata.Earnings()); err != nil {
		log.Fatalf("seed earnings: %v", err)
	}
	if err := wallet.SaveBalance(ctx, *deviceID, mockdata.CallerBalance); err != nil {
		log.Fatalf("seed balance: %v", err)
	}
	if err := helpers.RedisSetJSON(ctx, rdb, "device:wallet:"+*deviceID+":calls", mockdata.CallHistory(), 0); err != nil {
		log.Fatalf("seed call history: %v", err)
	}
	log.Printf("seeded wallet data for device %s", *deviceID)
}
