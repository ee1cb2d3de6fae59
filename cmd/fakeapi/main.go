package main

import (
	"log"
	"os"

	"github.com/microservices-manager/admin-console/internal/fakeapi"
)

func main() {
	addr := os.Getenv("FAKEAPI_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	srv := fakeapi.New()
	srv.Seed()

	log.Printf("fake users/orders API listening on %s", addr)
	if err := srv.Run(addr); err != nil {
		log.Fatalf("failed to serve: %v", err)
	}
}
