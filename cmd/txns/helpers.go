package main

import (
	"github.com/abdulrehman888/Transactions-app/internal/config"
	"github.com/abdulrehman888/Transactions-app/internal/fetcher"
	"github.com/abdulrehman888/Transactions-app/internal/loader"

	"github.com/spf13/viper"
)

// loadFetcher builds the query engine from the configured transactions file.
// Load failures degrade to an empty collection, so the commands always have a
// fetcher to run against.
func loadFetcher() *fetcher.Fetcher {
	path := viper.GetString("data.file")
	if path == "" {
		path = config.DefaultDataFile
	}

	parser := loader.NewParser()
	return fetcher.New(parser.Load(path))
}
