// Code generated manually. DO NOT EDIT.

package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/fenceai/s3kit/pkg/storage"
)

// MockClient is a mock implementation of the storage.Client interface
type MockClient struct {
	mock.Mock
}

// NewMockClient creates a new mock and registers expectation assertions as
// test cleanup.
func NewMockClient(t interface {
	mock.TestingT
	Cleanup(func())
}) *MockClient {
	m := &MockClient{}
	m.Mock.Test(t)
	t.Cleanup(func() { m.AssertExpectations(t) })
	return m
}

// Upload provides a mock function with given fields: ctx, bucket, key, sourcePath
func (m *MockClient) Upload(ctx context.Context, bucket, key, sourcePath string) error {
	ret := m.Called(ctx, bucket, key, sourcePath)
	return ret.Error(0)
}

// Download provides a mock function with given fields: ctx, bucket, key, destPath
func (m *MockClient) Download(ctx context.Context, bucket, key, destPath string) (string, error) {
	ret := m.Called(ctx, bucket, key, destPath)
	return ret.String(0), ret.Error(1)
}

// List provides a mock function with given fields: ctx, bucket, pattern
func (m *MockClient) List(ctx context.Context, bucket, pattern string) ([]storage.ObjectInfo, error) {
	ret := m.Called(ctx, bucket, pattern)

	var r0 []storage.ObjectInfo
	if ret.Get(0) != nil {
		r0 = ret.Get(0).([]storage.ObjectInfo)
	}
	return r0, ret.Error(1)
}

// Delete provides a mock function with given fields: ctx, bucket, key
func (m *MockClient) Delete(ctx context.Context, bucket, key string) error {
	ret := m.Called(ctx, bucket, key)
	return ret.Error(0)
}

// Exists provides a mock function with given fields: ctx, bucket, key
func (m *MockClient) Exists(ctx context.Context, bucket, key string) (bool, error) {
	ret := m.Called(ctx, bucket, key)
	return ret.Bool(0), ret.Error(1)
}

// Close provides a mock function with given fields:
func (m *MockClient) Close() error {
	ret := m.Called()
	return ret.Error(0)
}
