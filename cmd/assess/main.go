// Command assess scores a single assessment from a JSON file without any
// backing infrastructure. It is the offline path consultants use to check a
// questionnaire before uploading it.
package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"

	"github.com/google/uuid"

	"siteguard-engine/internal/catalog"
	"siteguard-engine/internal/config"
	"siteguard-engine/internal/domain/models"
	"siteguard-engine/internal/domain/services"
	"siteguard-engine/pkg/logger"
)

func main() {
	var (
		inputPath = flag.String("input", "", "path to an assessment JSON file (site_name, profile, responses)")
		pretty    = flag.Bool("pretty", true, "indent the JSON output")
		quiet     = flag.Bool("quiet", false, "suppress engine logs, print only the run")
	)
	flag.Parse()

	if *inputPath == "" {
		fmt.Fprintln(os.Stderr, "usage: assess -input assessment.json")
		os.Exit(2)
	}

	logCfg := logger.DefaultConfig()
	if *quiet {
		logCfg.Level = "error"
	}
	log := logger.New(logCfg)

	raw, err := os.ReadFile(*inputPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *inputPath).Msg("failed to read assessment file")
	}

	var assessment models.Assessment
	if err := json.Unmarshal(raw, &assessment); err != nil {
		log.Fatal().Err(err).Msg("failed to parse assessment file")
	}
	if assessment.ID == uuid.Nil {
		assessment.ID = uuid.New()
	}
	if !assessment.Profile.FacilityType.Valid() {
		log.Fatal().Str("facility_type", string(assessment.Profile.FacilityType)).Msg("unknown facility type")
	}
	if !assessment.Profile.SizeBucket.Valid() {
		log.Fatal().Str("size_bucket", string(assessment.Profile.SizeBucket)).Msg("unknown size bucket")
	}

	registry, err := catalog.Default()
	if err != nil {
		log.Fatal().Err(err).Msg("catalog validation failed")
	}

	engine := services.NewEngine(registry, config.DefaultEngineConfig(), log)
	run, err := engine.Run(assessment)
	if err != nil {
		log.Fatal().Err(err).Msg("scoring run failed")
	}

	enc := json.NewEncoder(os.Stdout)
	if *pretty {
		enc.SetIndent("", "  ")
	}
	if err := enc.Encode(run); err != nil {
		log.Fatal().Err(err).Msg("failed to encode run")
	}
}
