package config

import (
	"flag"
	"os"

	"github.com/mkravchenko/linkvault/internal/flagx"
)

// parseFlags populates selected Config fields from command-line flags.
//
// Supported flags (short forms):
//
//	-e string   identity endpoint base URL
//	-s string   document store endpoint base URL
//	-k string   identity API key
//	-p string   project id of the document store
//	-d string   path to the local session database
//	-l string   log level (debug, info, warn, error)
//	-t string   title of the page being captured
//	-u string   url of the page being captured
//
// The function filters os.Args to only include the flags it knows about,
// using flagx.FilterArgs, to avoid interference with other components.
func parseFlags(cfg *Config) {
	args := flagx.FilterArgs(os.Args[1:], []string{"-e", "-s", "-k", "-p", "-d", "-l", "-t", "-u"})

	fs := flag.NewFlagSet("main", flag.ContinueOnError)

	fs.StringVar(&cfg.IdentityEndpoint, "e", cfg.IdentityEndpoint, "identity endpoint base URL")
	fs.StringVar(&cfg.StoreEndpoint, "s", cfg.StoreEndpoint, "document store endpoint base URL")
	fs.StringVar(&cfg.APIKey, "k", cfg.APIKey, "identity API key")
	fs.StringVar(&cfg.ProjectID, "p", cfg.ProjectID, "project id of the document store")
	fs.StringVar(&cfg.SessionDBPath, "d", cfg.SessionDBPath, "path to the local session database")
	fs.StringVar(&cfg.LogLevel, "l", cfg.LogLevel, "log level")
	fs.StringVar(&cfg.PageTitle, "t", cfg.PageTitle, "title of the page being captured")
	fs.StringVar(&cfg.PageURL, "u", cfg.PageURL, "url of the page being captured")

	if err := fs.Parse(args); err != nil {
		panic(err)
	}
}
