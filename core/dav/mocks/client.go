package mocks

import (
	"context"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of dav.Client
type Client struct {
	mock.Mock
}

func (m *Client) Propfind(ctx context.Context, url, depth, body string) ([]byte, error) {
	args := m.Called(ctx, url, depth, body)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) Report(ctx context.Context, url, depth, body string) ([]byte, error) {
	args := m.Called(ctx, url, depth, body)
	if data, ok := args.Get(0).([]byte); ok {
		return data, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) PutCalendar(ctx context.Context, url string, ics []byte) error {
	args := m.Called(ctx, url, ics)
	return args.Error(0)
}

func (m *Client) Delete(ctx context.Context, url string) error {
	args := m.Called(ctx, url)
	return args.Error(0)
}
