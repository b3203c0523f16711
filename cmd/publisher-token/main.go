// Command publisher-token prints a bearer token that authorizes POST /newsletters.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/dtroode/newsletter-server/internal/config"
	"github.com/dtroode/newsletter-server/internal/token"
)

func main() {
	subject := flag.String("subject", "", "publisher name stored in the token subject")
	flag.Parse()

	if *subject == "" {
		flag.Usage()
		os.Exit(2)
	}

	cfg, err := config.NewConfig()
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	signed, err := token.NewJWT(cfg.Publisher.Secret, cfg.Publisher.TokenTTL).GeneratePublisherToken(*subject)
	if err != nil {
		log.Fatalf("failed to generate publisher token: %v", err)
	}

	fmt.Println(signed)
}
