package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/joho/godotenv"
)

// Development helper that mints a signed token for manual API testing.
//
//	go run scripts/generate_token.go -user <uuid> -role admin -tenant <uuid>
func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Fatal("Error loading .env file")
	}

	userID := flag.String("user", "", "User ID for the token")
	role := flag.String("role", "admin", "Role (super_admin, admin, or teacher)")
	email := flag.String("email", "dev@acadify.io", "Email claim")
	name := flag.String("name", "Dev User", "Name claim")
	tenantID := flag.String("tenant", "", "Tenant ID (omit for super_admin)")
	expirationHours := flag.Int("exp", 24, "Token expiration in hours")
	flag.Parse()

	if *userID == "" {
		log.Fatal("User ID is required")
	}
	if *role != "super_admin" && *tenantID == "" {
		log.Fatal("Tenant ID is required for non-super-admin tokens")
	}

	claims := jwt.MapClaims{
		"sub":   *userID,
		"role":  *role,
		"email": *email,
		"name":  *name,
		"exp":   time.Now().Add(time.Duration(*expirationHours) * time.Hour).Unix(),
		"iat":   time.Now().Unix(),
	}
	if *tenantID != "" {
		claims["tenant_id"] = *tenantID
	}

	secretKey := os.Getenv("JWT_SECRET_KEY")
	if secretKey == "" {
		log.Fatal("JWT_SECRET_KEY environment variable is required")
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString([]byte(secretKey))
	if err != nil {
		log.Fatalf("Failed to sign token: %v", err)
	}

	fmt.Println(signed)
}
