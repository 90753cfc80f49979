package service

import (
	"context"
	"fmt"

	"food-delivery/internal/domain"
)

const maxReportedCollections = 10

type DiagnosticsService struct {
	inspector      StoreInspector
	databaseURLSet bool
}

func NewDiagnosticsService(inspector StoreInspector, databaseURLSet bool) *DiagnosticsService {
	return &DiagnosticsService{inspector: inspector, databaseURLSet: databaseURLSet}
}

// Status reports store connectivity in-band; it never returns an error.
func (s *DiagnosticsService) Status(ctx context.Context) domain.StoreStatus {
	status := domain.StoreStatus{
		Backend:          "Running",
		Database:         "Not Available",
		ConnectionStatus: "Not Connected",
		Collections:      []string{},
	}

	if s.inspector == nil {
		status.Database = "Available but not initialized"
		return status
	}

	urlState := "Not Set"
	if s.databaseURLSet {
		urlState = "Set"
	}
	name := s.inspector.DatabaseName()
	status.DatabaseURL = &urlState
	status.DatabaseName = &name

	if err := s.inspector.Ping(ctx); err != nil {
		status.Database = "Error: " + truncate(err.Error(), 50)
		return status
	}
	status.Database = "Available"
	status.ConnectionStatus = "Connected"

	names, err := s.inspector.CollectionNames(ctx)
	if err != nil {
		status.Database = fmt.Sprintf("Connected but Error: %s", truncate(err.Error(), 50))
		return status
	}
	if len(names) > maxReportedCollections {
		names = names[:maxReportedCollections]
	}
	status.Collections = names
	status.Database = "Connected & Working"
	return status
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
