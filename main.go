package main

import (
	"github.com/tmapay/escrow_service/config"
	"github.com/tmapay/escrow_service/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
