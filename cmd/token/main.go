// Command token mints a bearer token for local development against a server
// started with AUTH_JWT_SECRET. The token is printed to stdout.
//
// Flags:
//
//	--sub   subject claim (default: a random UUID)
//	--name  display name, used as the default owner of created records
//	--ttl   lifetime override (default: AUTH_ACCESS_TOKEN_TTL)
package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/google/uuid"

	"github.com/Rkreels/powerbi-sub001/internal/auth"
	"github.com/Rkreels/powerbi-sub001/internal/config"
)

func main() {
	subFlag := flag.String("sub", "", "subject claim (default: random UUID)")
	nameFlag := flag.String("name", "", "display name claim")
	ttlFlag := flag.Duration("ttl", 0, "token lifetime (default: configured access token TTL)")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}
	if !cfg.Auth.Enabled() {
		log.Fatal("AUTH_JWT_SECRET is not set; the server accepts anonymous requests")
	}

	subject := *subFlag
	if subject == "" {
		subject = uuid.NewString()
	}
	ttl := cfg.Auth.AccessTokenTTL
	if *ttlFlag > 0 {
		ttl = *ttlFlag
	}

	token, err := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, ttl).GenerateAccessToken(subject, *nameFlag)
	if err != nil {
		log.Fatalf("generate token: %v", err)
	}

	fmt.Println(token)
}
