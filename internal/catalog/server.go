package catalog

import (
	apperrors "sentence-analyzer/internal/common/errors"
	"sentence-analyzer/internal/common/logger"
	"sentence-analyzer/internal/rpc/endpointpb"
)

const defaultBatchSize = 50

// Server exposes a Source as the endpoint service, so a local catalog can
// stand in for the remote one during development.
type Server struct {
	endpointpb.UnimplementedEndpointServiceServer

	source    Source
	batchSize int
	logger    logger.Logger
}

func NewServer(source Source, batchSize int, log logger.Logger) *Server {
	if batchSize <= 0 {
		batchSize = defaultBatchSize
	}
	return &Server{
		source:    source,
		batchSize: batchSize,
		logger:    log.WithFields(map[string]interface{}{"component": "catalog-server"}),
	}
}

func (s *Server) GetDefaultEndpoints(req *endpointpb.GetEndpointsRequest, stream endpointpb.EndpointService_GetDefaultEndpointsServer) error {
	endpoints, err := s.source.Load(stream.Context(), req.Email)
	if err != nil {
		s.logger.Error("catalog load failed", map[string]interface{}{
			"email": req.Email,
			"error": err.Error(),
		})
		return apperrors.ToStatus(err).Err()
	}

	for start := 0; start < len(endpoints); start += s.batchSize {
		end := start + s.batchSize
		if end > len(endpoints) {
			end = len(endpoints)
		}
		batch := &endpointpb.GetEndpointsResponse{
			Endpoints: make([]*endpointpb.Endpoint, 0, end-start),
		}
		for _, ep := range endpoints[start:end] {
			batch.Endpoints = append(batch.Endpoints, ToProto(ep))
		}
		if err := stream.Send(batch); err != nil {
			return err
		}
	}

	s.logger.Info("catalog served", map[string]interface{}{
		"email":     req.Email,
		"endpoints": len(endpoints),
	})
	return nil
}
