// Command gcal-auth authorizes calendar access for installed-app credentials
// and writes the token file that google_calendar.token_path points at.
//
// Usage:
//
//	go run ./cmd/gcal-auth -credentials google-credentials.json -token token.json
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"
)

func main() {
	credsPath := flag.String("credentials", "google-credentials.json", "installed-app client secret")
	tokenPath := flag.String("token", "token.json", "where to write the authorized token")
	flag.Parse()

	data, err := os.ReadFile(*credsPath)
	if err != nil {
		log.Fatalf("read credentials %q: %v", *credsPath, err)
	}

	cfg, err := google.ConfigFromJSON(data, calendar.CalendarEventsScope)
	if err != nil {
		log.Fatalf("parse credentials: %v (expected an OAuth desktop app client)", err)
	}

	verifier := oauth2.GenerateVerifier()
	authURL := cfg.AuthCodeURL("smartude", oauth2.AccessTypeOffline, oauth2.S256ChallengeOption(verifier))
	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendar:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code here: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("read authorization code: %v", err)
	}

	tok, err := cfg.Exchange(context.Background(), code, oauth2.VerifierOption(verifier))
	if err != nil {
		log.Fatalf("exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(*tokenPath, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0o600)
	if err != nil {
		log.Fatalf("create %s: %v", *tokenPath, err)
	}
	defer f.Close()

	if err := json.NewEncoder(f).Encode(tok); err != nil {
		log.Fatalf("write %s: %v", *tokenPath, err)
	}

	fmt.Printf("\nSaved %s. Set google_calendar.token_path to it and restart the API.\n", *tokenPath)
}
