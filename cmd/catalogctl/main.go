package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"github.com/spf13/cobra"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/proto"

	catalogv1 "github.com/light-bringer/catalog-service/proto/catalog/v1"
)

var (
	addr    string
	timeout time.Duration

	listQ, listTag, listMin, listMax string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "catalogctl",
		Short:         "Query a running catalog service over gRPC",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.PersistentFlags().StringVar(&addr, "addr", envOr("CATALOG_GRPC_ADDR", "127.0.0.1:50051"), "catalog gRPC address")
	root.PersistentFlags().DurationVar(&timeout, "timeout", 5*time.Second, "per-call timeout")

	list := &cobra.Command{
		Use:   "list",
		Short: "List products",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			req, err := listRequest(cmd)
			if err != nil {
				return err
			}
			return withClient(cmd.Context(), func(ctx context.Context, client catalogv1.CatalogServiceClient) error {
				resp, err := client.ListProducts(ctx, req)
				if err != nil {
					return err
				}
				return printListing(cmd.OutOrStdout(), resp)
			})
		},
	}
	list.Flags().StringVar(&listQ, "q", "", "substring of title or SKU")
	list.Flags().StringVar(&listTag, "tag", "", "tag to match")
	list.Flags().StringVar(&listMin, "min", "", "minimum price")
	list.Flags().StringVar(&listMax, "max", "", "maximum price")

	get := &cobra.Command{
		Use:   "get <id-or-sku>",
		Short: "Fetch one product by id or SKU",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withClient(cmd.Context(), func(ctx context.Context, client catalogv1.CatalogServiceClient) error {
				product, err := client.GetProduct(ctx, &catalogv1.GetProductRequest{Id: args[0]})
				if err != nil {
					return err
				}
				return printJSON(cmd.OutOrStdout(), product)
			})
		},
	}

	root.AddCommand(list, get)
	return root
}

// listRequest builds the request from the flags the user actually set.
func listRequest(cmd *cobra.Command) (*catalogv1.ListProductsRequest, error) {
	req := &catalogv1.ListProductsRequest{}
	if cmd.Flags().Changed("q") {
		req.Q = &listQ
	}
	if cmd.Flags().Changed("tag") {
		req.Tag = &listTag
	}

	var err error
	if req.Min, err = priceFlag(cmd, "min", listMin); err != nil {
		return nil, err
	}
	if req.Max, err = priceFlag(cmd, "max", listMax); err != nil {
		return nil, err
	}
	return req, nil
}

func priceFlag(cmd *cobra.Command, name, raw string) (*float64, error) {
	if !cmd.Flags().Changed(name) {
		return nil, nil
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return nil, fmt.Errorf("--%s: %w", name, err)
	}
	return &v, nil
}

func withClient(ctx context.Context, fn func(context.Context, catalogv1.CatalogServiceClient) error) error {
	conn, err := grpc.NewClient(addr, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return fmt.Errorf("failed to connect: %w", err)
	}
	defer conn.Close()

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	return fn(ctx, catalogv1.NewCatalogServiceClient(conn))
}

func printListing(w io.Writer, resp *catalogv1.ListProductsResponse) error {
	fmt.Fprintf(w, "Found %d products:\n\n", resp.GetCount())
	for i, p := range resp.GetItems() {
		fmt.Fprintf(w, "%d. %s (%s)\n", i+1, p.GetTitle(), p.GetSku())
		fmt.Fprintf(w, "   ID: %s\n", p.GetId())
		fmt.Fprintf(w, "   Price: %.2f\n", p.GetPrice())
		if p.Stock != nil {
			fmt.Fprintf(w, "   Stock: %d\n", p.GetStock())
		}
		if len(p.GetTags()) > 0 {
			fmt.Fprintf(w, "   Tags: %v\n", p.GetTags())
		}
		fmt.Fprintln(w)
	}
	return nil
}

func printJSON(w io.Writer, m proto.Message) error {
	raw, err := protojson.MarshalOptions{Multiline: true, Indent: "  "}.Marshal(m)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(w, string(raw))
	return err
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
