// Code generated manually. DO NOT EDIT.

package mocks

import (
	"github.com/stretchr/testify/mock"

	"github.com/guttosm/checkout-service/internal/domain/model"
)

type MockPricingEngine struct {
	mock.Mock
}

func (m *MockPricingEngine) Total(items string) int {
	args := m.Called(items)
	return args.Int(0)
}

func (m *MockPricingEngine) Breakdown(items string) model.Checkout {
	args := m.Called(items)
	return args.Get(0).(model.Checkout)
}

func (m *MockPricingEngine) Catalog() *model.Catalog {
	args := m.Called()
	if args.Get(0) == nil {
		return nil
	}
	return args.Get(0).(*model.Catalog)
}

func NewMockPricingEngine(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockPricingEngine {
	m := &MockPricingEngine{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}
