package main

import (
	"fmt"
	"io"
	"os"

	logger "github.com/ElrondNetwork/elrond-go-logger"
	"github.com/ElrondNetwork/elrond-randgen-go/core"
	"github.com/ElrondNetwork/elrond-randgen-go/generate"
	"github.com/ElrondNetwork/elrond-randgen-go/plugins"
	"github.com/ElrondNetwork/elrond-randgen-go/randomizer/factory"
	"github.com/urfave/cli"
)

var (
	randGenHelpTemplate = `NAME:
   {{.Name}} - {{.Usage}}
USAGE:
   {{.HelpName}} {{if .VisibleFlags}}[global options]{{end}}
   {{if len .Authors}}
AUTHOR:
   {{range .Authors}}{{ . }}{{end}}
   {{end}}{{if .Commands}}
GLOBAL OPTIONS:
   {{range .VisibleFlags}}{{.}}
   {{end}}
VERSION:
   {{.Version}}
   {{end}}
`
	minValue = cli.StringFlag{
		Name:  "min",
		Usage: "Inclusive lower bound of the generated numbers",
		Value: fmt.Sprintf("%d", core.DefaultMinValue),
	}
	maxValue = cli.StringFlag{
		Name:  "max",
		Usage: "Inclusive upper bound of the generated numbers",
		Value: fmt.Sprintf("%d", core.DefaultMaxValue),
	}
	count = cli.IntFlag{
		Name:  "count",
		Usage: "Number of random numbers to generate",
		Value: 1,
	}
	randomizerType = cli.StringFlag{
		Name: "randomizer",
		Usage: "The source of uniform draws in [0, 1). Can be " + core.MathRandomizerType + ", " +
			core.CryptoRandomizerType + " or " + core.FixedRandomizerType,
		Value: core.MathRandomizerType,
	}
	seed = cli.Int64Flag{
		Name:  "seed",
		Usage: "Seed for the " + core.MathRandomizerType + " randomizer. 0 means a time based seed",
		Value: 0,
	}
	fixedValue = cli.Float64Flag{
		Name:  "fixed-value",
		Usage: "The draw returned by the " + core.FixedRandomizerType + " randomizer",
		Value: 0,
	}
	dryRun = cli.BoolFlag{
		Name:  "dry-run",
		Usage: "If set, every draw is 0 and the lower bound is printed",
	}
	outputFile = cli.StringFlag{
		Name:  "output-file",
		Usage: "If set, the generated numbers are also written in this file, in json format",
		Value: "",
	}
	logLevel = cli.StringFlag{
		Name:  "log-level",
		Usage: "This flag specifies the logger level(s). It can contain multiple comma-separated value",
		Value: "*:" + logger.LogInfo.String(),
	}

	log = logger.GetOrCreate("main")
)

func main() {
	app := createApp(os.Stdout)
	err := app.Run(os.Args)
	if err != nil {
		fmt.Println(err.Error())
		os.Exit(1)
	}
}

func createApp(console io.Writer) *cli.App {
	app := cli.NewApp()
	cli.AppHelpTemplate = randGenHelpTemplate
	app.Name = "Random Number Generator"
	app.Version = "v1.0.0"
	app.Usage = "This binary will print uniformly distributed random integers from an inclusive range"
	app.Flags = []cli.Flag{
		minValue,
		maxValue,
		count,
		randomizerType,
		seed,
		fixedValue,
		dryRun,
		outputFile,
		logLevel,
	}
	app.Authors = []cli.Author{
		{
			Name:  "The Elrond Team",
			Email: "contact@elrond.com",
		},
	}

	app.Action = func(c *cli.Context) error {
		return generateNumbers(c, console)
	}

	return app
}

func generateNumbers(ctx *cli.Context, console io.Writer) error {
	err := logger.SetLogLevel(ctx.GlobalString(logLevel.Name))
	if err != nil {
		return err
	}

	min, err := core.ConvertToInt64(ctx.GlobalString(minValue.Name))
	if err != nil {
		return fmt.Errorf("%w for min", err)
	}
	max, err := core.ConvertToInt64(ctx.GlobalString(maxValue.Name))
	if err != nil {
		return fmt.Errorf("%w for max", err)
	}

	argRandomizer := factory.ArgRandomizer{
		RandomizerType: ctx.GlobalString(randomizerType.Name),
		Seed:           ctx.GlobalInt64(seed.Name),
		FixedValue:     ctx.GlobalFloat64(fixedValue.Name),
	}
	rnd, err := factory.CreateRandomizer(argRandomizer)
	if err != nil {
		return err
	}
	if ctx.GlobalBool(dryRun.Name) {
		argRandomizer = factory.ArgRandomizer{
			RandomizerType: core.FixedRandomizerType,
		}
		rnd, err = factory.CreateRandomizer(argRandomizer)
		if err != nil {
			return err
		}
	}

	generator, err := generate.NewBoundedIntGenerator(generate.ArgBoundedIntGenerator{
		Randomizer:     rnd,
		RandomizerType: argRandomizer.RandomizerType,
		Min:            min,
		Max:            max,
	})
	if err != nil {
		return err
	}

	// the output file is truncated on open, so it is only touched after a successful generation
	output, err := generator.GenerateMany(ctx.GlobalInt(count.Name))
	if err != nil {
		return err
	}

	argOutputHandler, err := plugins.CreateOutputHandlerArgument(ctx.GlobalString(outputFile.Name), console)
	if err != nil {
		return err
	}
	outputHandler, err := plugins.NewOutputHandler(argOutputHandler)
	if err != nil {
		return err
	}
	defer outputHandler.Close()

	log.Debug("generation done",
		"randomizer", argRandomizer.RandomizerType,
		"min", min,
		"max", max,
		"count", len(output.Numbers),
	)

	return outputHandler.WriteData(output)
}
