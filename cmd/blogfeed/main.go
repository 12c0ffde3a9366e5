// Command blogfeed fetches the public blog list from a running server and
// prints it as HTML.
package main

import (
	"flag"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/Amitgupta170804/BlogEase/internal/client"
)

func main() {
	baseURL := flag.String("url", "http://localhost:5000", "API base URL")
	out := flag.String("o", "", "write to this file instead of stdout")
	timeout := flag.Duration("timeout", 10*time.Second, "request timeout")
	flag.Parse()

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr})

	w := os.Stdout
	if *out != "" {
		f, err := os.Create(*out)
		if err != nil {
			log.Fatal().Err(err).Str("file", *out).Msg("create output")
		}
		defer f.Close()
		w = f
	}

	blogs, err := client.New(*baseURL).WithTimeout(*timeout).ListBlogs()
	if err != nil {
		log.Error().Err(err).Msg("fetch failed")
	}
	if err := client.Render(w, blogs, err); err != nil {
		log.Fatal().Err(err).Msg("render")
	}
}
