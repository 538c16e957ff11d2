package commands

import (
	"context"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	cryptoDomain "github.com/allisson/envseal/internal/crypto/domain"
)

func TestRunExec(t *testing.T) {
	ctx := context.Background()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("loads the environment and runs the command", func(t *testing.T) {
		keys := commandKeys(t, "keypw", "noncepw", cryptoDomain.ChaCha20)
		fixture := newCommandFixture(t, "")
		require.NoError(t, RunSet(fixture.envUseCase, keys, logger, fixture.io, "API_KEY", "sk-12345", false))

		err := RunExec(ctx, fixture.envUseCase, keys, logger, []string{"true"}, false)
		require.NoError(t, err)

		value, exists := fixture.env.Lookup("API_KEY")
		assert.True(t, exists)
		assert.Equal(t, "sk-12345", value)

		// session keys are zeroed before the child runs
		assert.Equal(t, make([]byte, 32), keys.Key)
	})

	t.Run("no command given", func(t *testing.T) {
		keys := commandKeys(t, "keypw", "noncepw", cryptoDomain.ChaCha20)
		fixture := newCommandFixture(t, "")

		err := RunExec(ctx, fixture.envUseCase, keys, logger, nil, false)
		require.Error(t, err)
	})

	t.Run("failed entries block the run", func(t *testing.T) {
		keys := commandKeys(t, "keypw", "noncepw", cryptoDomain.ChaCha20)
		fixture := newCommandFixture(t, "")
		require.NoError(t, fixture.store.Upsert("BROKEN", "envseal:v1:chacha20-poly1305:AAAA"))

		err := RunExec(ctx, fixture.envUseCase, keys, logger, []string{"true"}, false)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load")
	})

	t.Run("ignore-failures runs anyway", func(t *testing.T) {
		keys := commandKeys(t, "keypw", "noncepw", cryptoDomain.ChaCha20)
		fixture := newCommandFixture(t, "")
		require.NoError(t, fixture.store.Upsert("BROKEN", "envseal:v1:chacha20-poly1305:AAAA"))

		err := RunExec(ctx, fixture.envUseCase, keys, logger, []string{"true"}, true)
		require.NoError(t, err)
	})

	t.Run("child exit code surfaces as an error", func(t *testing.T) {
		keys := commandKeys(t, "keypw", "noncepw", cryptoDomain.ChaCha20)
		fixture := newCommandFixture(t, "")

		err := RunExec(ctx, fixture.envUseCase, keys, logger, []string{"false"}, false)
		require.Error(t, err)
	})
}
