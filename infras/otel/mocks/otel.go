package mocks

import (
	"context"
	"paroisse/infras/otel"
)

// nopOtel hands out scopes that record nothing, for tests.
type nopOtel struct{}

func (nopOtel) NewScope(ctx context.Context, _, _ string) (context.Context, otel.Scope) {
	return ctx, NewScope()
}

func (nopOtel) Shutdown(context.Context) error {
	return nil
}

func NewOtel() otel.Otel {
	return nopOtel{}
}
