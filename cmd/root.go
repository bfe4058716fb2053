package cmd

import (
	"os"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	sim "github.com/factory-sim/factory-sim/sim"
)

var (
	// CLI flags for the simulation run
	seed     int64   // Seed for all stochastic sampling
	horizon  float64 // Total simulated run length
	dt       float64 // Fixed step for health dynamics and technician stepping
	logLevel string  // Log verbosity level

	// Machine health dynamics
	initialHealth   float64 // Starting health stock
	healthThreshold float64 // Health below this forces a breakdown
	rateBusy        float64 // Degradation per time unit while busy
	rateIdle        float64 // Degradation per time unit while idle
	rateRepair      float64 // Health gain per time unit per repairing technician

	// Technicians
	numTechnicians int     // Technician population size
	travelDelay    float64 // Dispatch to repair-start delay

	// Duration sampler parameters
	arrivalMean  float64 // Mean interarrival time
	arrivalStdev float64 // Stddev of interarrival time
	arrivalMin   float64 // Interarrival floor
	serviceMin   float64 // Uniform service duration lower bound
	serviceMax   float64 // Uniform service duration upper bound
	repairMean   float64 // Mean repair duration
	repairStdev  float64 // Stddev of repair duration
	repairMin    float64 // Repair duration floor

	// Scenario presets
	scenarioName  string // Named preset from the scenarios file
	scenariosFile string // Path to the scenarios YAML
	dumpSeries    bool   // Write the per-tick series as CSV to stdout
)

// rootCmd is the base command for the CLI
var rootCmd = &cobra.Command{
	Use:   "factory-sim",
	Short: "Hybrid discrete-event / continuous / agent-based factory simulator",
}

// runCmd executes the simulation using parameters from CLI flags
var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Run the factory simulation",
	Run: func(cmd *cobra.Command, args []string) {
		// Set up logging
		level, err := logrus.ParseLevel(logLevel)
		if err != nil {
			logrus.Fatalf("Invalid log level: %s", logLevel)
		}
		logrus.SetLevel(level)

		if scenarioName != "" {
			scenario, ok := GetScenario(scenariosFile, scenarioName)
			if !ok {
				logrus.Fatalf("Scenario %q not found in %s", scenarioName, scenariosFile)
			}
			applyScenario(scenario)
		}

		cfg := sim.Config{
			Seed:               seed,
			Horizon:            horizon,
			Dt:                 dt,
			InitialHealth:      initialHealth,
			BreakdownThreshold: healthThreshold,
			RateBusy:           rateBusy,
			RateIdle:           rateIdle,
			RateRepair:         rateRepair,
			NumTechnicians:     numTechnicians,
			TravelDelay:        travelDelay,
		}

		logrus.Infof("Starting simulation: horizon=%.1f, dt=%.2f, threshold=%.1f, technicians=%d",
			cfg.Horizon, cfg.Dt, cfg.BreakdownThreshold, cfg.NumTechnicians)

		s, err := sim.NewSimulator(cfg,
			sim.NewGaussianSampler(arrivalMean, arrivalStdev, arrivalMin),
			sim.NewUniformSampler(serviceMin, serviceMax),
			sim.NewGaussianSampler(repairMean, repairStdev, repairMin),
		)
		if err != nil {
			logrus.Fatalf("Failed to build simulator: %v", err)
		}
		s.Run()
		s.Metrics.Print(cfg.Dt)

		if dumpSeries {
			if err := s.Series.WriteCSV(os.Stdout); err != nil {
				logrus.Fatalf("Failed to write series CSV: %v", err)
			}
		}

		logrus.Info("Simulation complete.")
	},
}

// applyScenario overwrites flag-derived parameters with a named preset.
func applyScenario(sc Scenario) {
	horizon = sc.Horizon
	dt = sc.Dt
	initialHealth = sc.InitialHealth
	healthThreshold = sc.HealthThreshold
	rateBusy = sc.DegradationBusy
	rateIdle = sc.DegradationIdle
	rateRepair = sc.RepairRate
	numTechnicians = sc.Technicians
	travelDelay = sc.TravelDelay
	arrivalMean = sc.ArrivalMean
	arrivalStdev = sc.ArrivalStdev
	arrivalMin = sc.ArrivalMin
	serviceMin = sc.ServiceMin
	serviceMax = sc.ServiceMax
	repairMean = sc.RepairMean
	repairStdev = sc.RepairStdev
	repairMin = sc.RepairMin
}

// Execute runs the CLI root command
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// init sets up CLI flags and subcommands
func init() {
	runCmd.Flags().Int64Var(&seed, "seed", 42, "Seed for stochastic sampling")
	runCmd.Flags().Float64Var(&horizon, "horizon", 480, "Total simulated run length")
	runCmd.Flags().Float64Var(&dt, "dt", 0.5, "Fixed step for health dynamics and technician stepping")
	runCmd.Flags().StringVar(&logLevel, "log", "error", "Log level (trace, debug, info, warn, error, fatal, panic)")

	// Machine health dynamics
	runCmd.Flags().Float64Var(&initialHealth, "initial-health", 100, "Starting machine health")
	runCmd.Flags().Float64Var(&healthThreshold, "health-threshold", 20, "Health below which the machine breaks")
	runCmd.Flags().Float64Var(&rateBusy, "degradation-busy", 0.15, "Health loss per time unit while busy")
	runCmd.Flags().Float64Var(&rateIdle, "degradation-idle", 0.02, "Health loss per time unit while idle")
	runCmd.Flags().Float64Var(&rateRepair, "repair-rate", 10.0, "Health gain per time unit per repairing technician")

	// Technicians
	runCmd.Flags().IntVar(&numTechnicians, "technicians", 2, "Technician population size")
	runCmd.Flags().Float64Var(&travelDelay, "travel-delay", 0, "Dispatch to repair-start travel delay")

	// Duration samplers
	runCmd.Flags().Float64Var(&arrivalMean, "arrival-mean", 5.0, "Mean part interarrival time")
	runCmd.Flags().Float64Var(&arrivalStdev, "arrival-stdev", 2.0, "Stddev of part interarrival time")
	runCmd.Flags().Float64Var(&arrivalMin, "arrival-min", 0.1, "Interarrival floor")
	runCmd.Flags().Float64Var(&serviceMin, "service-min", 2.0, "Uniform service duration lower bound")
	runCmd.Flags().Float64Var(&serviceMax, "service-max", 4.0, "Uniform service duration upper bound")
	runCmd.Flags().Float64Var(&repairMean, "repair-mean", 15.0, "Mean repair duration")
	runCmd.Flags().Float64Var(&repairStdev, "repair-stdev", 5.0, "Stddev of repair duration")
	runCmd.Flags().Float64Var(&repairMin, "repair-min", 1.0, "Repair duration floor")

	// Scenario presets
	runCmd.Flags().StringVar(&scenarioName, "scenario", "", "Named scenario preset (overrides parameter flags)")
	runCmd.Flags().StringVar(&scenariosFile, "scenarios-file", "scenarios.yaml", "Path to the scenarios YAML file")
	runCmd.Flags().BoolVar(&dumpSeries, "dump-series", false, "Write the per-tick series as CSV to stdout")

	// Attach `run` as a subcommand to `root`
	rootCmd.AddCommand(runCmd)
}
