package storage

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeLister struct {
	containers []string
	err        error
	calls      int
}

func (f *fakeLister) ListContainers(ctx context.Context) ([]string, error) {
	f.calls++
	return f.containers, f.err
}

func TestResolveContainers(t *testing.T) {
	t.Run("PreservesConfiguredOrder", func(t *testing.T) {
		lister := &fakeLister{containers: []string{"b", "c", "d"}}

		valid, err := ResolveContainers(t.Context(), "a,b,c", lister)
		assert.NoError(t, err)
		assert.Equal(t, []string{"b", "c"}, valid)
	})

	t.Run("TrimsWhitespaceAroundNames", func(t *testing.T) {
		lister := &fakeLister{containers: []string{"invoices", "receipts"}}

		valid, err := ResolveContainers(t.Context(), " invoices , receipts ", lister)
		assert.NoError(t, err)
		assert.Equal(t, []string{"invoices", "receipts"}, valid)
	})

	t.Run("EmptyAllowListFailsBeforeAnyNetworkCall", func(t *testing.T) {
		lister := &fakeLister{containers: []string{"a"}}

		_, err := ResolveContainers(t.Context(), "", lister)

		var configErr *ConfigError
		assert.ErrorAs(t, err, &configErr)
		assert.Equal(t, 0, lister.calls, "allow-list validation must not hit the network")
	})

	t.Run("EmptyIntersectionFails", func(t *testing.T) {
		lister := &fakeLister{containers: []string{"y"}}

		_, err := ResolveContainers(t.Context(), "x", lister)

		var configErr *ConfigError
		assert.ErrorAs(t, err, &configErr)
	})

	t.Run("ListerErrorPropagates", func(t *testing.T) {
		listErr := errors.New("credential expired")
		lister := &fakeLister{err: listErr}

		_, err := ResolveContainers(t.Context(), "a", lister)
		assert.ErrorIs(t, err, listErr)
	})
}
