package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/joho/godotenv"

	jwtsvc "bridalbook/internal/pkg/jwt"
)

// Mints an admin bearer token for the console; token issuance for end
// users lives outside this service.
func main() {
	_ = godotenv.Load()

	subject := flag.String("subject", "admin", "token subject")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is empty")
	}

	token, err := jwtsvc.New(secret, *ttl).GenerateToken(*subject, "admin")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(token)
}
