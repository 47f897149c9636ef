package main

import (
	"github.com/bepp-pmpa/sigpen-backend/config"
	"github.com/bepp-pmpa/sigpen-backend/internal/api"
)

func main() {
	cfg := config.LoadConfig()
	api.StartServer(cfg)
}
