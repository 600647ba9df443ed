package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"
	"github.com/localnerve/nickstore/internal/testutil"
)

func main() {
	var showHelp bool
	flag.BoolVar(&showHelp, "h", false, "show help")
	var envFilename string
	flag.StringVar(&envFilename, "f", "", "path to the .env file")
	var dbType string
	flag.StringVar(&dbType, "db", "", "database type: postgres or mariadb (default DB_TYPE, then postgres)")
	flag.Parse()

	usage := `
Start a disposable catalog database container and print the environment
the server needs to use it. Stops the container on SIGINT or SIGTERM.

Usage:

testcontainers [-h] [-f ENV_FILE_PATH] [-db postgres|mariadb]

ENV_FILE_PATH: path to the .env file

example
  testcontainers -db mariadb
`
	// if -h flag print usage and return
	if showHelp {
		fmt.Println(usage)
		return
	}

	if envFilename != "" {
		log.Printf("Loading environment variables from %s\n", envFilename)
		if err := godotenv.Load(envFilename); err != nil {
			log.Fatalf("Failed to load environment variables: %v\n", err)
		}
	}

	if dbType == "" {
		dbType = os.Getenv("DB_TYPE")
	}
	if dbType == "" {
		dbType = "postgres"
	}

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM, syscall.SIGQUIT)

	dc, err := testutil.StartDatabase(context.Background(), nil, dbType)
	if err != nil {
		log.Fatalf("Failed to create test container: %v\n", err)
	}

	cfg := dc.Config
	fmt.Printf("DB_TYPE=%s\n", cfg.DBType)
	if cfg.DatabaseURL != "" {
		fmt.Printf("DATABASE_URL=%s\n", cfg.DatabaseURL)
	} else {
		fmt.Printf("DB_HOST=%s\nDB_PORT=%s\n", cfg.DBHost, cfg.DBPort)
	}
	fmt.Printf("DB_DATABASE=%s\nDB_USER=%s\nDB_PASSWORD=%s\n", cfg.DBDatabase, cfg.DBUser, cfg.DBPassword)

	sig := <-sigs
	log.Printf("\nReceived signal: %v, terminating test container...\n", sig)
	dc.Terminate(nil)
}
