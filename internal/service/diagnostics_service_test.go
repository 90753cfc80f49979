package service_test

import (
	"context"
	"errors"
	"strings"
	"testing"

	"food-delivery/internal/mocks"
	"food-delivery/internal/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestDiagnosticsService_Status(t *testing.T) {
	manyCollections := make([]string, 12)
	for i := range manyCollections {
		manyCollections[i] = "c" + strings.Repeat("x", i)
	}

	tests := []struct {
		name             string
		setupMock        func(*mocks.Store)
		wantDatabase     string
		wantConnection   string
		wantCollections  int
		wantDatabaseName string
	}{
		{
			name: "connected",
			setupMock: func(m *mocks.Store) {
				m.On("DatabaseName").Return("food_delivery").Once()
				m.On("Ping", mock.Anything).Return(nil).Once()
				m.On("CollectionNames", mock.Anything).Return([]string{"restaurant", "menuitem", "order"}, nil).Once()
			},
			wantDatabase:     "Connected & Working",
			wantConnection:   "Connected",
			wantCollections:  3,
			wantDatabaseName: "food_delivery",
		},
		{
			name: "collections capped",
			setupMock: func(m *mocks.Store) {
				m.On("DatabaseName").Return("food_delivery").Once()
				m.On("Ping", mock.Anything).Return(nil).Once()
				m.On("CollectionNames", mock.Anything).Return(manyCollections, nil).Once()
			},
			wantDatabase:     "Connected & Working",
			wantConnection:   "Connected",
			wantCollections:  10,
			wantDatabaseName: "food_delivery",
		},
		{
			name: "ping fails",
			setupMock: func(m *mocks.Store) {
				m.On("DatabaseName").Return("food_delivery").Once()
				m.On("Ping", mock.Anything).Return(errors.New("server selection timeout")).Once()
			},
			wantDatabase:     "Error: server selection timeout",
			wantConnection:   "Not Connected",
			wantDatabaseName: "food_delivery",
		},
		{
			name: "listing fails",
			setupMock: func(m *mocks.Store) {
				m.On("DatabaseName").Return("food_delivery").Once()
				m.On("Ping", mock.Anything).Return(nil).Once()
				m.On("CollectionNames", mock.Anything).Return(nil, errors.New("unauthorized")).Once()
			},
			wantDatabase:     "Connected but Error: unauthorized",
			wantConnection:   "Connected",
			wantDatabaseName: "food_delivery",
		},
	}

	for _, testCase := range tests {
		t.Run(testCase.name, func(t *testing.T) {
			store := mocks.NewStore(t)
			testCase.setupMock(store)

			status := service.NewDiagnosticsService(store, true).Status(context.Background())

			assert.Equal(t, "Running", status.Backend)
			assert.Equal(t, testCase.wantDatabase, status.Database)
			assert.Equal(t, testCase.wantConnection, status.ConnectionStatus)
			assert.Len(t, status.Collections, testCase.wantCollections)
			require.NotNil(t, status.DatabaseName)
			assert.Equal(t, testCase.wantDatabaseName, *status.DatabaseName)
			require.NotNil(t, status.DatabaseURL)
			assert.Equal(t, "Set", *status.DatabaseURL)
		})
	}
}

func TestDiagnosticsService_ErrorTruncated(t *testing.T) {
	store := mocks.NewStore(t)
	store.On("DatabaseName").Return("food_delivery").Once()
	store.On("Ping", mock.Anything).Return(errors.New(strings.Repeat("e", 80))).Once()

	status := service.NewDiagnosticsService(store, false).Status(context.Background())

	assert.Equal(t, "Error: "+strings.Repeat("e", 50), status.Database)
	assert.Equal(t, "Not Set", *status.DatabaseURL)
}

func TestDiagnosticsService_NotInitialized(t *testing.T) {
	status := service.NewDiagnosticsService(nil, false).Status(context.Background())

	assert.Equal(t, "Running", status.Backend)
	assert.Equal(t, "Available but not initialized", status.Database)
	assert.Equal(t, "Not Connected", status.ConnectionStatus)
	assert.NotNil(t, status.Collections)
	assert.Empty(t, status.Collections)
	assert.Nil(t, status.DatabaseURL)
}
