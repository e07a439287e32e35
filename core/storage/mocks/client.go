package mocks

import (
	"io/fs"

	"devserver/core/storage"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of storage.Client
type Client struct {
	mock.Mock
}

func (m *Client) Root() string {
	args := m.Called()
	return args.String(0)
}

func (m *Client) Stat(name string) (fs.FileInfo, error) {
	args := m.Called(name)
	if info, ok := args.Get(0).(fs.FileInfo); ok {
		return info, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Open(name string) (storage.File, error) {
	args := m.Called(name)
	if f, ok := args.Get(0).(storage.File); ok {
		return f, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) ReadDir(name string) ([]fs.DirEntry, error) {
	args := m.Called(name)
	if entries, ok := args.Get(0).([]fs.DirEntry); ok {
		return entries, args.Error(1)
	}
	return nil, args.Error(1)
}
