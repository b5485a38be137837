package main

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"
	"github.com/spf13/cobra"
	"google.golang.org/protobuf/encoding/protojson"

	"sentence-analyzer/internal/common/validation"
	"sentence-analyzer/internal/models"
	"sentence-analyzer/internal/pipeline"
	"sentence-analyzer/internal/service"
)

type analyzeOptions struct {
	email    string
	provider string
	asJSON   bool
}

func newAnalyzeCmd(root *rootOptions) *cobra.Command {
	opts := &analyzeOptions{}
	cmd := &cobra.Command{
		Use:   "analyze <sentence>",
		Short: "Run the pipeline once for a sentence and print the result",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := root.load()
			if err != nil {
				return err
			}
			if opts.email == "" {
				opts.email = cfg.Identity.DefaultEmail
			}

			ctx := cmd.Context()
			if ctx == nil {
				ctx = context.Background()
			}
			a, err := newApp(ctx, cfg, opts.provider)
			if err != nil {
				return err
			}
			defer a.close()

			return runAnalyze(ctx, a.engine, strings.Join(args, " "), opts, cmd.OutOrStdout())
		},
	}

	fs := cmd.Flags()
	fs.StringVar(&opts.email, "email", "", "caller identity (default identity.default_email)")
	fs.StringVar(&opts.provider, "provider", "", "model provider (ollama, claude)")
	fs.BoolVar(&opts.asJSON, "json", false, "print the result as JSON")
	return cmd
}

func runAnalyze(ctx context.Context, runner service.Runner, sentence string, opts *analyzeOptions, out io.Writer) error {
	if err := validation.ValidateIdentity(opts.email); err != nil {
		return err
	}
	if err := validation.ValidateSentence(sentence); err != nil {
		return err
	}

	rc := pipeline.NewRequestContext(sentence, opts.email)
	rc.RequestID = uuid.NewString()
	rc.ClientID = "cli"

	done, err := runner.Run(ctx, rc)
	if err != nil {
		return err
	}
	result, err := done.Result()
	if err != nil {
		return err
	}

	if opts.asJSON {
		data, err := protojson.MarshalOptions{Multiline: true, UseProtoNames: true}.Marshal(service.ToResponse(result))
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(out, string(data))
		return err
	}
	printResult(out, result)
	return nil
}

func printResult(out io.Writer, result *models.AnalysisResult) {
	fmt.Fprintf(out, "Endpoint:    %s\n", result.EndpointID)
	fmt.Fprintf(out, "Description: %s\n", result.EndpointDescription)
	fmt.Fprintln(out, "Parameters:")
	for _, p := range result.Parameters {
		value := "<unresolved>"
		if p.Value != nil {
			value = *p.Value
		}
		required := ""
		if p.Required {
			required = " (required)"
		}
		fmt.Fprintf(out, "  %s%s: %s\n", p.Name, required, value)
	}
	fmt.Fprintf(out, "JSON:        %s\n", result.JSONOutput)
}
