package cmd

import (
	"bytes"
	"os"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v3"
)

// Scenario describes a preset parameter set in scenarios.yaml.
type Scenario struct {
	Horizon         float64 `yaml:"horizon"`
	Dt              float64 `yaml:"dt"`
	InitialHealth   float64 `yaml:"initial_health"`
	HealthThreshold float64 `yaml:"health_threshold"`
	DegradationBusy float64 `yaml:"degradation_busy"`
	DegradationIdle float64 `yaml:"degradation_idle"`
	RepairRate      float64 `yaml:"repair_rate"`
	Technicians     int     `yaml:"technicians"`
	TravelDelay     float64 `yaml:"travel_delay"`
	ArrivalMean     float64 `yaml:"arrival_mean"`
	ArrivalStdev    float64 `yaml:"arrival_stdev"`
	ArrivalMin      float64 `yaml:"arrival_min"`
	ServiceMin      float64 `yaml:"service_min"`
	ServiceMax      float64 `yaml:"service_max"`
	RepairMean      float64 `yaml:"repair_mean"`
	RepairStdev     float64 `yaml:"repair_stdev"`
	RepairMin       float64 `yaml:"repair_min"`
}

// ScenarioConfig represents the full scenarios.yaml structure.
type ScenarioConfig struct {
	Version   string              `yaml:"version"`
	Scenarios map[string]Scenario `yaml:"scenarios"`
}

// loadScenarioConfig parses a scenarios YAML file into a ScenarioConfig.
// Uses strict field checking so typos in preset files cause errors.
func loadScenarioConfig(path string) ScenarioConfig {
	data, err := os.ReadFile(path)
	if err != nil {
		logrus.Fatalf("Failed to read scenarios file: %v", err)
	}
	var cfg ScenarioConfig
	decoder := yaml.NewDecoder(bytes.NewReader(data))
	decoder.KnownFields(true)
	if err := decoder.Decode(&cfg); err != nil {
		logrus.Fatalf("Failed to parse scenarios YAML: %v", err)
	}
	return cfg
}

// GetScenario returns the named scenario preset from the given file.
func GetScenario(path, name string) (Scenario, bool) {
	cfg := loadScenarioConfig(path)
	sc, ok := cfg.Scenarios[name]
	return sc, ok
}
