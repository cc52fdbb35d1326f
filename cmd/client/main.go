// Command client is a small CLI submitter for the intake API. It reads one
// JSON payload from a file and POSTs it to the chosen form endpoint, or
// fetches the master data options behind a form field.
//
// Usage:
//
//	client -server localhost:3001 -form referrals -file referral.json
//	client -server localhost:3001 -form referrals -options services
//	client -server localhost:3001 -health
package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/harborlight/intake-server/internal/adapter"
	"github.com/harborlight/intake-server/internal/logger"
)

func main() {
	var (
		serverAddr = flag.String("server", envOr("INTAKE_SERVER", "localhost:3001"), "intake server address")
		form       = flag.String("form", "", "form resource (referrals, encounters, snap-assessments, discharge-summaries, wrap-plans, handbook-acknowledgements)")
		file       = flag.String("file", "", "path to the JSON payload to submit")
		options    = flag.String("options", "", "fetch master data options for this field instead of submitting")
		health     = flag.Bool("health", false, "probe the server health endpoint and exit")
		timeout    = flag.Duration("timeout", 30*time.Second, "request timeout")
	)
	flag.Parse()

	log := logger.NewLogger("intake-client")

	gateway, err := adapter.NewHTTPIntakeGateway(*serverAddr, *timeout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating gateway")
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	switch {
	case *health:
		if err := gateway.Health(ctx); err != nil {
			log.Fatal().Err(err).Msg("server is not healthy")
		}
		fmt.Println("server is healthy")

	case *options != "":
		if *form == "" {
			log.Fatal().Msg("-options requires -form")
		}
		opts, err := gateway.Options(ctx, *form, *options)
		if err != nil {
			log.Fatal().Err(err).Str("form", *form).Str("field", *options).Msg("error fetching options")
		}
		for _, opt := range opts {
			fmt.Println(opt.Value)
		}

	case *file != "":
		if *form == "" {
			log.Fatal().Msg("-file requires -form")
		}
		payload, err := os.ReadFile(*file)
		if err != nil {
			log.Fatal().Err(err).Str("file", *file).Msg("error reading payload file")
		}
		if !json.Valid(payload) {
			log.Fatal().Str("file", *file).Msg("payload file is not valid JSON")
		}

		id, err := gateway.Submit(ctx, *form, payload)
		if err != nil {
			log.Fatal().Err(err).Str("form", *form).Msg("submission failed")
		}
		fmt.Printf("submitted %s #%d\n", *form, id)

	default:
		flag.Usage()
		os.Exit(2)
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
