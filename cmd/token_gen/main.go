package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// Mints a development bearer token for local testing. Production tokens
// come from the account service; never ship this binary.
func main() {
	userID := flag.String("user", "", "user UUID to embed (random if empty)")
	ttl := flag.Duration("ttl", 24*time.Hour, "token lifetime")
	flag.Parse()

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET must be set")
	}

	id := *userID
	if id == "" {
		id = uuid.New().String()
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": id,
		"exp":     time.Now().Add(*ttl).Unix(),
	})
	signed, err := token.SignedString([]byte(secret))
	if err != nil {
		log.Fatalf("sign token: %v", err)
	}

	fmt.Println("User ID:", id)
	fmt.Println("Token:  ", signed)
}
