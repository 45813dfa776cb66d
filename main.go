package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/Koatty/koatty-graphql/config"
	"github.com/Koatty/koatty-graphql/generator"
	"github.com/Koatty/koatty-graphql/schemaparser"
	"github.com/Koatty/koatty-graphql/source"
)

const version = "1.0.0"

var versionCmd = &cli.Command{
	Name:  "version",
	Usage: "print the version",
	Action: func(ctx *cli.Context) error {
		fmt.Println(version)
		return nil
	},
}

var generateCmd = &cli.Command{
	Name:  "generate",
	Usage: "generate TypeScript type declarations from a graphql schema",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "configdir", Aliases: []string{"c"}, Usage: "the directory with configuration file", Value: "."},
	},
	Action: func(ctx *cli.Context) error {
		configDir := ctx.String("configdir")
		cfg, err := config.LoadFromDir(configDir)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err.Error())
			os.Exit(2)
		}

		if cfg.Scalars != nil {
			source.SetScalarTypes(cfg.Scalars)
		}

		doc, err := schemaparser.LoadSchemaDocuments(cfg.SchemaFilename)
		if err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err.Error())
			os.Exit(4)
		}

		opts := cfg.Generate.Options()
		outputDir := opts.OutputDir
		if outputDir == "" {
			outputDir = "."
		}

		results := generator.Generate(doc, opts)
		if err := generator.WriteFiles(results, outputDir); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err.Error())
			os.Exit(4)
		}

		return nil
	},
}

func main() {
	app := cli.NewApp()
	app.Name = "koatty-graphql"
	app.Description = "This is a tool for generating TypeScript type declarations from a graphql schema"
	app.Usage = generateCmd.Usage
	app.DefaultCommand = "generate"
	app.Commands = []*cli.Command{
		versionCmd,
		generateCmd,
	}

	if err := app.Run(os.Args); err != nil {
		_, _ = fmt.Fprint(os.Stderr, err.Error()+"\n")
		os.Exit(1)
	}
}
