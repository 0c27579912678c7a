package main

import (
	"encoding/json"
	"flag"
	"log"
	"time"

	"github.com/aatrey56/FPL-Transfer-Agent/internal/fetch"
	"github.com/aatrey56/FPL-Transfer-Agent/internal/model"
	"github.com/aatrey56/FPL-Transfer-Agent/internal/store"
)

func main() {
	var (
		rawRoot = flag.String("raw-root", "data/raw", "root directory for raw JSON")
		pretty  = flag.Bool("pretty", true, "pretty-print JSON to disk")
		sleepMS = flag.Int("sleep-ms", 250, "sleep between requests in ms")
		force   = flag.Bool("force", false, "refresh even when cached files exist")
	)
	flag.Parse()

	st := store.NewJSONStore(*rawRoot)
	client := fetch.NewClient(st)
	client.PrettyWrite = *pretty
	client.Sleep = time.Duration(*sleepMS) * time.Millisecond

	bootBody, err := client.BootstrapStatic(*force)
	if err != nil {
		log.Fatalf("bootstrap-static: %v", err)
	}
	fixtureBody, err := client.Fixtures(*force)
	if err != nil {
		log.Fatalf("fixtures: %v", err)
	}

	var boot model.Bootstrap
	if err := json.Unmarshal(bootBody, &boot); err != nil {
		log.Fatalf("parse bootstrap-static: %v", err)
	}
	var fixtures []model.Fixture
	if err := json.Unmarshal(fixtureBody, &fixtures); err != nil {
		log.Fatalf("parse fixtures: %v", err)
	}

	finished := 0
	for _, f := range fixtures {
		if f.Finished {
			finished++
		}
	}
	log.Printf("snapshot at %s: %d teams, %d players, %d events, %d fixtures (%d finished)",
		*rawRoot, len(boot.Teams), len(boot.Elements), len(boot.Events), len(fixtures), finished)
}
