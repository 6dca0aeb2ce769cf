package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvwalk/classify"
	"github.com/katalvlaran/lvwalk/session"
)

func newClassifyCmd(root *rootOptions) *cobra.Command {
	var (
		graph    string
		endpoint string
	)
	cmd := &cobra.Command{
		Use:   "classify",
		Short: "Classify a scenario graph as Tree, DAG or Cyclic",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			st, err := root.load()
			if err != nil {
				return err
			}
			if endpoint != "" {
				st.Classifier.Endpoint = endpoint
				if err := st.Validate(); err != nil {
					return err
				}
			}
			sc, err := LoadScenario(graph)
			if err != nil {
				return err
			}

			logger := newLogger(st, os.Stderr)
			sess, err := session.FromSettings(st,
				session.WithLogger(logger),
				session.WithClassifier(newClassifier(st, logger)))
			if err != nil {
				return err
			}
			if err := sc.Replay(sess); err != nil {
				return err
			}
			p, req, err := sess.ClassifyGraph(cmd.Context())
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "type:       %s\n", p.Type)
			fmt.Fprintf(out, "confidence: %.2f\n", p.Confidence)
			fmt.Fprintf(out, "source:     %s\n", p.Source)
			fmt.Fprintf(out, "edges:      %s\n", classify.FormatEdges(req.Edges))

			return nil
		},
	}
	cmd.Flags().StringVarP(&graph, "graph", "g", "", "scenario YAML file")
	cmd.Flags().StringVar(&endpoint, "endpoint", "", "classification service base URL (overrides classifier.endpoint)")
	_ = cmd.MarkFlagRequired("graph")

	return cmd
}
