package mocks

import (
	"context"

	"hero-catalog/core/superhero"

	"github.com/stretchr/testify/mock"
)

// Client is a mock implementation of superhero.Client
type Client struct {
	mock.Mock
}

func (m *Client) FetchAll(ctx context.Context) ([]superhero.Character, error) {
	args := m.Called(ctx)
	if chars, ok := args.Get(0).([]superhero.Character); ok {
		return chars, args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *Client) FetchBiography(ctx context.Context, id int) (*superhero.Biography, error) {
	args := m.Called(ctx, id)
	if bio, ok := args.Get(0).(*superhero.Biography); ok {
		return bio, args.Error(1)
	}
	return nil, args.Error(1)
}
