package catalog

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/connectivity"
	"google.golang.org/grpc/credentials/insecure"

	"sentence-analyzer/internal/common/config"
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/models"
	"sentence-analyzer/internal/rpc/endpointpb"
)

// RemoteSource fetches the catalog of a caller from the endpoint service. The
// service streams the catalog in batches that are concatenated in order.
type RemoteSource struct {
	address  string
	timeout  time.Duration
	dialOpts []grpc.DialOption

	mu     sync.Mutex
	conn   *grpc.ClientConn
	client endpointpb.EndpointServiceClient
}

// NewRemoteSource creates a source for address. Addresses may carry an
// http:// or https:// scheme; the connection is opened on first use.
func NewRemoteSource(address string, timeout time.Duration, opts ...grpc.DialOption) *RemoteSource {
	if len(opts) == 0 {
		opts = []grpc.DialOption{grpc.WithTransportCredentials(insecure.NewCredentials())}
	}
	return &RemoteSource{
		address:  normalizeAddress(address),
		timeout:  timeout,
		dialOpts: opts,
	}
}

func normalizeAddress(address string) string {
	address = strings.TrimSpace(address)
	for _, scheme := range []string{"http://", "https://"} {
		if strings.HasPrefix(address, scheme) {
			return strings.TrimSuffix(strings.TrimPrefix(address, scheme), "/")
		}
	}
	return address
}

func (s *RemoteSource) Name() string {
	return config.CatalogSourceRemote
}

func (s *RemoteSource) Address() string {
	return s.address
}

func (s *RemoteSource) connect() (*grpc.ClientConn, endpointpb.EndpointServiceClient, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn != nil {
		return s.conn, s.client, nil
	}
	conn, err := grpc.NewClient(s.address, s.dialOpts...)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid endpoint service address %s: %w", s.address, err)
	}
	s.conn = conn
	s.client = endpointpb.NewEndpointServiceClient(conn)
	return s.conn, s.client, nil
}

func (s *RemoteSource) Load(ctx context.Context, identity string) ([]models.Endpoint, error) {
	endpoints, err := s.fetch(ctx, identity)
	observe(s.Name(), resultOf(endpoints, err))
	if err != nil {
		return nil, apperrors.NewConfigurationError("", err)
	}
	return endpoints, nil
}

func (s *RemoteSource) fetch(ctx context.Context, identity string) ([]models.Endpoint, error) {
	_, client, err := s.connect()
	if err != nil {
		return nil, err
	}

	if s.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.timeout)
		defer cancel()
	}

	stream, err := client.GetDefaultEndpoints(ctx, &endpointpb.GetEndpointsRequest{Email: identity})
	if err != nil {
		return nil, fmt.Errorf("remote catalog %s: %w", s.address, err)
	}

	var endpoints []models.Endpoint
	for {
		batch, err := stream.Recv()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("remote catalog %s: %w", s.address, err)
		}
		for _, ep := range batch.Endpoints {
			endpoints = append(endpoints, FromProto(ep))
		}
	}
	return endpoints, nil
}

// Ping waits until the connection to the endpoint service is ready or ctx
// expires.
func (s *RemoteSource) Ping(ctx context.Context) error {
	conn, _, err := s.connect()
	if err != nil {
		return err
	}

	conn.Connect()
	for {
		state := conn.GetState()
		if state == connectivity.Ready {
			return nil
		}
		if !conn.WaitForStateChange(ctx, state) {
			return fmt.Errorf("endpoint service %s not ready (%s): %w", s.address, state, ctx.Err())
		}
	}
}

func (s *RemoteSource) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.conn == nil {
		return nil
	}
	err := s.conn.Close()
	s.conn = nil
	s.client = nil
	return err
}

// FromProto converts a wire endpoint into the catalog model.
func FromProto(ep *endpointpb.Endpoint) models.Endpoint {
	out := models.Endpoint{
		ID:          ep.GetId(),
		Text:        ep.GetText(),
		Description: ep.GetDescription(),
		Parameters:  make([]models.Parameter, 0, len(ep.Parameters)),
	}
	for _, p := range ep.Parameters {
		out.Parameters = append(out.Parameters, models.Parameter{
			Name:         p.Name,
			Description:  p.Description,
			Required:     p.Required,
			Alternatives: append([]string(nil), p.Alternatives...),
		})
	}
	return out
}

// ToProto converts a catalog endpoint into its wire form.
func ToProto(ep models.Endpoint) *endpointpb.Endpoint {
	out := &endpointpb.Endpoint{
		Id:          ep.ID,
		Text:        ep.Text,
		Description: ep.Description,
		Parameters:  make([]*endpointpb.EndpointParameter, 0, len(ep.Parameters)),
	}
	for _, p := range ep.Parameters {
		out.Parameters = append(out.Parameters, &endpointpb.EndpointParameter{
			Name:         p.Name,
			Description:  p.Description,
			Required:     p.Required,
			Alternatives: append([]string(nil), p.Alternatives...),
		})
	}
	return out
}
