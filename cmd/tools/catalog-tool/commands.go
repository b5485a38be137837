package main

import (
	"fmt"
	"net"
	"os/signal"
	"strings"
	"syscall"
	"text/tabwriter"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"

	"sentence-analyzer/internal/catalog"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/models"
	"sentence-analyzer/internal/rpc/endpointpb"
	"sentence-analyzer/pkg/registry"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate",
		Short: "Validate the catalog file",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := registry.LoadCatalog(catalogPath)
			if err != nil {
				return fmt.Errorf("catalog validation failed: %w", err)
			}
			if len(doc.Endpoints) == 0 {
				return fmt.Errorf("catalog contains no endpoints")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Catalog validation passed. Found %d endpoints.\n", len(doc.Endpoints))
			return nil
		},
	}
}

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "List catalog endpoints and their parameters",
		RunE: func(cmd *cobra.Command, _ []string) error {
			doc, err := registry.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
			fmt.Fprintln(w, "ID\tTEXT\tPARAMETERS")
			for _, ep := range doc.Endpoints {
				params := make([]string, 0, len(ep.Parameters))
				for _, p := range ep.Parameters {
					name := p.Name
					if p.Required {
						name += "*"
					}
					params = append(params, name)
				}
				fmt.Fprintf(w, "%s\t%s\t%s\n", ep.ID, ep.Text, strings.Join(params, ", "))
			}
			return w.Flush()
		},
	}
}

func newAddCmd() *cobra.Command {
	var ep models.Endpoint
	cmd := &cobra.Command{
		Use:   "add",
		Short: "Add an endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := addEndpoint(catalogPath, ep); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added endpoint: %s\n", ep.ID)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&ep.ID, "id", "", "endpoint ID (e.g. schedule_meeting)")
	fs.StringVar(&ep.Text, "text", "", "trigger phrase (e.g. schedule meeting)")
	fs.StringVar(&ep.Description, "description", "", "description")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("text")
	return cmd
}

func newSetCmd() *cobra.Command {
	var id, field, value string
	cmd := &cobra.Command{
		Use:   "set",
		Short: "Update a field (id, text, description) of an endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			if err := updateEndpoint(catalogPath, id, field, value); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Updated endpoint %s, field %s to %s\n", id, field, value)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&id, "id", "", "endpoint ID to update")
	fs.StringVar(&field, "field", "", "field to update")
	fs.StringVar(&value, "value", "", "new value")
	_ = cmd.MarkFlagRequired("id")
	_ = cmd.MarkFlagRequired("field")
	return cmd
}

func newAddParamCmd() *cobra.Command {
	var (
		endpointID   string
		p            models.Parameter
		alternatives string
	)
	cmd := &cobra.Command{
		Use:   "add-param",
		Short: "Add a parameter to an endpoint",
		RunE: func(cmd *cobra.Command, _ []string) error {
			p.Alternatives = splitList(alternatives)
			if err := addParameter(catalogPath, endpointID, p); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Added parameter %s to %s\n", p.Name, endpointID)
			return nil
		},
	}
	fs := cmd.Flags()
	fs.StringVar(&endpointID, "endpoint", "", "endpoint ID")
	fs.StringVar(&p.Name, "name", "", "parameter name")
	fs.StringVar(&p.Description, "description", "", "parameter description")
	fs.BoolVar(&p.Required, "required", false, "parameter is required")
	fs.StringVar(&alternatives, "alternatives", "", "comma separated alternative field names")
	_ = cmd.MarkFlagRequired("endpoint")
	_ = cmd.MarkFlagRequired("name")
	return cmd
}

func newConvertCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "convert <output>",
		Short: "Write the catalog to another file; the extension picks YAML or JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			doc, err := registry.LoadCatalog(catalogPath)
			if err != nil {
				return err
			}
			if err := registry.SaveCatalog(args[0], doc); err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Wrote %d endpoints to %s\n", len(doc.Endpoints), args[0])
			return nil
		},
	}
}

func newServeCmd() *cobra.Command {
	var addr string
	var batch int
	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve the catalog file as the remote endpoint service",
		RunE: func(cmd *cobra.Command, _ []string) error {
			log := logger.NewStructured("info", "console", "stdout")

			if _, err := registry.LoadCatalog(catalogPath); err != nil {
				return err
			}

			lis, err := net.Listen("tcp", addr)
			if err != nil {
				return err
			}
			source := catalog.NewFileSource(catalogPath)
			srv := grpc.NewServer()
			endpointpb.RegisterEndpointServiceServer(srv, catalog.NewServer(source, batch, log))

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()
			go func() {
				<-ctx.Done()
				srv.GracefulStop()
			}()

			log.Info("endpoint service listening", map[string]interface{}{
				"address": lis.Addr().String(),
				"catalog": source.Path(),
			})
			return srv.Serve(lis)
		},
	}
	cmd.Flags().StringVar(&addr, "addr", ":50052", "listen address")
	cmd.Flags().IntVar(&batch, "batch", 50, "endpoints per streamed message")
	return cmd
}
