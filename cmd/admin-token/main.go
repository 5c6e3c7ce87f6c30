// Command admin-token mints an admin bearer token from the configured
// secret. The token is pasted into the admin UI or used directly:
//
//	admin-token -ttl 720h
//	curl -H "Authorization: Bearer $TOKEN" .../api/admin/projects
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/gauravmb/portfolio-backend/internal/config"
	"github.com/gauravmb/portfolio-backend/pkg/auth"
	"github.com/joho/godotenv"
)

func main() {
	subject := flag.String("subject", "admin", "token subject (caller identity)")
	ttl := flag.Duration("ttl", 30*24*time.Hour, "token lifetime")
	flag.Parse()

	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "invalid configuration: %v\n", err)
		os.Exit(1)
	}

	token, err := auth.MintToken(*subject, []byte(cfg.AdminTokenSecret), *ttl)
	if err != nil {
		fmt.Fprintf(os.Stderr, "mint failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(token)
}
