package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
)

// Supported subcommands:
// - ingest:   Parse, embed and store both datasets
// - validate: Parse both datasets and report document counts

func main() {
	ingestCmd := flag.NewFlagSet("ingest", flag.ExitOnError)
	validateCmd := flag.NewFlagSet("validate", flag.ExitOnError)

	// ingest parameters
	ingestExercises := ingestCmd.String("exercises", "", "Exercise CSV path or bucket URL")
	ingestFoods := ingestCmd.String("foods", "", "Nutrition CSV path or bucket URL")
	ingestBatch := ingestCmd.Int("batch", defaultBatchSize, "Documents per embedding request")
	ingestReset := ingestCmd.Bool("reset", false, "Replace stored collections instead of upserting")

	// validate parameters
	validateExercises := validateCmd.String("exercises", "", "Exercise CSV path or bucket URL")
	validateFoods := validateCmd.String("foods", "", "Nutrition CSV path or bucket URL")

	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	flags := ingestFlags{
		Ingest: runFlags{
			cmd:       ingestCmd,
			exercises: ingestExercises,
			foods:     ingestFoods,
			batch:     ingestBatch,
			reset:     ingestReset,
		},
		Validate: validateFlags{
			cmd:       validateCmd,
			exercises: validateExercises,
			foods:     validateFoods,
		},
	}

	if err := runSubcommand(ctx, &flags); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

type ingestFlags struct {
	Ingest   runFlags
	Validate validateFlags
}

type runFlags struct {
	cmd       *flag.FlagSet
	exercises *string
	foods     *string
	batch     *int
	reset     *bool
}

type validateFlags struct {
	cmd       *flag.FlagSet
	exercises *string
	foods     *string
}

func runSubcommand(ctx context.Context, flags *ingestFlags) error {
	switch os.Args[1] {
	case "ingest":
		return handleIngest(ctx, flags)
	case "validate":
		return handleValidate(ctx, flags)
	default:
		printUsage()

		return errors.New("unknown subcommand")
	}
}

func handleIngest(ctx context.Context, flags *ingestFlags) error {
	if err := flags.Ingest.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse ingest flags")
	}

	datasets, err := selectDatasets(*flags.Ingest.exercises, *flags.Ingest.foods)
	if err != nil {
		return err
	}

	return runIngest(ctx, datasets, *flags.Ingest.batch, *flags.Ingest.reset)
}

func handleValidate(ctx context.Context, flags *ingestFlags) error {
	if err := flags.Validate.cmd.Parse(os.Args[2:]); err != nil {
		return errors.Wrap(err, "failed to parse validate flags")
	}

	datasets, err := selectDatasets(*flags.Validate.exercises, *flags.Validate.foods)
	if err != nil {
		return err
	}

	return runValidate(ctx, datasets)
}

func printUsage() {
	fmt.Println("Usage: ingest <command> [options]")
	fmt.Println("")
	fmt.Println("Commands:")
	fmt.Println("  ingest      Embed the exercise and nutrition datasets into the knowledge base")
	fmt.Println("  validate    Parse the datasets and report document counts")
	fmt.Println("")
	fmt.Println("Use 'ingest <command> -h' for more information about a command.")
}
