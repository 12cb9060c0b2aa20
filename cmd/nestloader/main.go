package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"nestloader/internal/config"
	"nestloader/internal/loader"
	"nestloader/internal/ndex"

	"github.com/joho/godotenv"
)

// version is stamped via -ldflags at release time.
var version = "0.3.0"

func main() {
	_ = godotenv.Load(".env")
	opts, err := config.ParseArgs(os.Args[0], os.Args[1:])
	if err != nil {
		// the flag package already printed usage
		os.Exit(2)
	}
	if opts.ShowVersion {
		fmt.Println("nestloader " + version)
		return
	}
	log.SetFlags(log.LstdFlags | log.Lmsgprefix)
	log.SetPrefix("nestloader ")

	if err := run(opts); err != nil {
		log.Printf("caught error: %v", err)
		os.Exit(2)
	}
}

func run(opts config.Options) error {
	if err := opts.Validate(); err != nil {
		return err
	}
	confPath, err := opts.CredentialsPath()
	if err != nil {
		return err
	}
	creds, err := config.ReadCredentials(confPath, opts.Profile)
	if err != nil {
		return err
	}
	client := ndex.NewClient(creds.Server, creds.User, creds.Password, "nest/"+version)
	return loader.New(opts, creds.Server, version, client).Run(context.Background())
}
