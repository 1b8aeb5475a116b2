package main

import (
	"github.com/nivanov045/luhn/internal/log"
	"github.com/nivanov045/luhn/internal/server"
	"github.com/nivanov045/luhn/internal/services"
)

func main() {
	log.Init(log.InfoLevel)

	cfg, err := server.NewConfig()
	if err != nil {
		log.Panic(err)
	}
	log.Init(log.ParseLevel(cfg.LogLevel))

	checkServer := server.NewServer(services.NewService())
	if err := checkServer.Run(cfg.Address); err != nil {
		log.Panic(err)
	}
}
