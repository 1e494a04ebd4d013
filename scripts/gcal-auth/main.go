// gcal-auth authorizes Google Calendar access for OAuth desktop credentials
// and writes the token the service reads at startup.
//
// Usage:
//
//	go run ./scripts/gcal-auth [credentials.json]
package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	"google.golang.org/api/calendar/v3"

	"quick-entry/pkg/gcalendar"
)

func main() {
	credsPath := "google-credentials.json"
	if len(os.Args) > 1 {
		credsPath = os.Args[1]
	}

	data, err := os.ReadFile(credsPath)
	if err != nil {
		log.Fatalf("Failed to read credentials file %q: %v", credsPath, err)
	}

	config, err := google.ConfigFromJSON(data, calendar.CalendarScope)
	if err != nil {
		log.Fatalf("Failed to parse credentials: %v\n%q must be an OAuth desktop app credentials file.", err, credsPath)
	}

	authURL := config.AuthCodeURL("quick-entry", oauth2.AccessTypeOffline)
	fmt.Println("1. Open this URL and sign in with the Google account that owns the calendars:")
	fmt.Println()
	fmt.Println(authURL)
	fmt.Println()
	fmt.Print("2. Paste the authorization code and press Enter: ")

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		log.Fatalf("Failed to read authorization code: %v", err)
	}

	ctx := context.Background()
	tok, err := config.Exchange(ctx, code)
	if err != nil {
		log.Fatalf("Failed to exchange authorization code: %v", err)
	}

	f, err := os.OpenFile(gcalendar.TokenFile, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		log.Fatalf("Failed to create %s: %v", gcalendar.TokenFile, err)
	}
	if err := json.NewEncoder(f).Encode(tok); err != nil {
		f.Close()
		log.Fatalf("Failed to write %s: %v", gcalendar.TokenFile, err)
	}
	f.Close()
	fmt.Printf("\nSaved %s\n", gcalendar.TokenFile)

	// Read the primary calendar once with the new token.
	client, err := gcalendar.NewClientFromCredentialsFile(ctx, credsPath)
	if err != nil {
		log.Fatalf("Token saved but client setup failed: %v", err)
	}
	now := time.Now()
	events, err := client.ListEvents(ctx, gcalendar.ListEventsRequest{
		CalendarID: gcalendar.PrimaryCalendarID,
		TimeMin:    now,
		TimeMax:    now.AddDate(0, 0, 7),
	})
	if err != nil {
		log.Fatalf("Token saved but listing events failed: %v", err)
	}
	fmt.Printf("Calendar access works: %d event(s) in the next 7 days.\n", len(events))
}
