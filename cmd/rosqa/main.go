package main

import (
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"

	"github.com/YuqiYue/rosqa-generator/pkg/config"
	"github.com/YuqiYue/rosqa-generator/pkg/connectivity"
	"github.com/YuqiYue/rosqa-generator/pkg/dataset"
	"github.com/YuqiYue/rosqa-generator/pkg/logging"
	"github.com/YuqiYue/rosqa-generator/pkg/model"
	"github.com/YuqiYue/rosqa-generator/pkg/questions"
	"github.com/YuqiYue/rosqa-generator/pkg/resolve"
	"github.com/YuqiYue/rosqa-generator/pkg/rospec"
)

func main() {
	root := &cobra.Command{
		Use:   "rosqa",
		Short: "Generate comprehension questions from rospec specifications",
	}
	root.AddCommand(registerGenerateCommand())
	root.AddCommand(registerInspectCommand())

	if err := root.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func registerGenerateCommand() *cobra.Command {
	var (
		configPath string
		output     string
		compress   bool
		negatives  int
		seed       int64
		logLevel   string
	)

	cmd := &cobra.Command{
		Use:     "generate <spec.rospec>",
		Short:   "parse a specification and write a question dataset",
		Example: "rosqa generate sensors.rospec -o sensors_questions.json",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg := config.Default()
			if configPath != "" {
				loaded, err := config.Load(configPath)
				if err != nil {
					return err
				}
				cfg = loaded
			}

			// Explicit flags override the config file
			if cmd.Flags().Changed("output") {
				cfg.Output = output
			}
			if cmd.Flags().Changed("compress") {
				cfg.Compress = compress
			}
			if cmd.Flags().Changed("negatives") {
				cfg.Negatives = negatives
			}
			if cmd.Flags().Changed("seed") {
				cfg.Seed = seed
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}

			logger := logging.NewDefaultLogger()
			logger.SetLevel(logging.ParseLevel(cfg.LogLevel))

			graph, err := loadGraph(args[0], logger)
			if err != nil {
				return err
			}

			generator := questions.NewGenerator(graph, questions.Options{
				IncludeNegatives: cfg.Negatives > 0,
				NegativeCount:    cfg.Negatives,
				Seed:             cfg.Seed,
			})
			records := dataset.FromQuestions(generator.Generate())

			if err := dataset.WriteFile(cfg.Output, records, cfg.Compress); err != nil {
				return err
			}

			logger.Info("dataset written",
				logging.Path(cfg.Output),
				logging.Count(len(records)),
				logging.Bool("compressed", cfg.Compress))
			return nil
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "YAML config file")
	cmd.Flags().StringVarP(&output, "output", "o", "questions.json", "output dataset file")
	cmd.Flags().BoolVar(&compress, "compress", false, "snappy-compress the output file")
	cmd.Flags().IntVar(&negatives, "negatives", 5, "negative entity questions to sample")
	cmd.Flags().Int64Var(&seed, "seed", 1, "seed for negative-entity sampling")
	cmd.Flags().StringVar(&logLevel, "log-level", "info", "log level (debug, info, warn, error)")

	return cmd
}

func registerInspectCommand() *cobra.Command {
	return &cobra.Command{
		Use:     "inspect <spec.rospec>",
		Short:   "print the parsed architecture graph and resolved bindings",
		Example: "rosqa inspect sensors.rospec",
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			graph, err := loadGraph(args[0], logging.NewNopLogger())
			if err != nil {
				return err
			}

			fmt.Printf("node types:      %d\n", len(graph.NodeTypes))
			fmt.Printf("node instances:  %d\n", len(graph.Nodes))
			fmt.Printf("topics:          %d\n", len(graph.Topics))
			fmt.Printf("services:        %d\n", len(graph.Services))
			fmt.Printf("qos policies:    %d\n", len(graph.QoSPolicies))
			fmt.Printf("type aliases:    %d\n", len(graph.TypeAliases))
			fmt.Printf("message aliases: %d\n", len(graph.MessageAliases))

			engine := connectivity.NewEngine(graph)
			adjacency := engine.Adjacency()

			for _, name := range sortedNodeNames(graph) {
				n := graph.Nodes[name]
				fmt.Printf("\nnode %s : %s\n", n.Name, n.NodeType.Name)
				printBindings("publishes", resolve.Publishes(n))
				printBindings("subscribes", resolve.Subscribes(n))
				printBindings("provides", resolve.Provides(n))
				printBindings("uses", resolve.Uses(n))

				peers := make([]string, 0, len(adjacency[name]))
				for peer := range adjacency[name] {
					peers = append(peers, peer)
				}
				sort.Strings(peers)
				if len(peers) > 0 {
					fmt.Printf("  connects to: %v\n", peers)
				}
			}
			return nil
		},
	}
}

func loadGraph(path string, logger logging.Logger) (*model.Graph, error) {
	text, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read specification: %w", err)
	}
	graph, err := rospec.NewParser(logger).Parse(string(text))
	if err != nil {
		return nil, fmt.Errorf("parse specification %s: %w", path, err)
	}
	return graph, nil
}

func printBindings(label string, names resolve.NameSet) {
	if len(names) == 0 {
		return
	}
	fmt.Printf("  %-10s %v\n", label, names.Sorted())
}

func sortedNodeNames(graph *model.Graph) []string {
	names := make([]string, 0, len(graph.Nodes))
	for name := range graph.Nodes {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
