// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

type MockHistoryStore struct {
	mock.Mock
}

func (m *MockHistoryStore) Record(sessionID string, entry model.HistoryEntry) {
	m.Called(sessionID, entry)
}

func (m *MockHistoryStore) List(sessionID string) []model.HistoryEntry {
	args := m.Called(sessionID)
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).([]model.HistoryEntry)
}

func (m *MockHistoryStore) Clear(sessionID string) bool {
	args := m.Called(sessionID)
	return args.Bool(0)
}

func (m *MockHistoryStore) Sessions() int {
	args := m.Called()
	return args.Int(0)
}

func NewMockHistoryStore(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockHistoryStore {
	m := &MockHistoryStore{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
