package main

import (
	"fmt"
	"io"
	"os"

	"github.com/nivanov045/luhn/cmd/luhn/config"
	"github.com/nivanov045/luhn/internal/checksums"
	"github.com/nivanov045/luhn/internal/log"
	"github.com/nivanov045/luhn/internal/models"
)

func main() {
	cfg, err := config.BuildConfig()
	if err != nil {
		log.Panic(err)
	}
	log.Init(log.ParseLevel(cfg.LogLevel))

	if err := run(os.Stdout, cfg.Number); err != nil {
		log.Error(err)
	}
}

// run prints the verdict message. An invalid number is not an error.
func run(w io.Writer, number string) error {
	verdict := models.Verdict{Number: number, Valid: checksums.Luhn(number)}
	_, err := fmt.Fprintln(w, verdict.Text())
	return err
}
