package kernel_test

import (
	"testing"

	"quoting/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("generates_valid_unique_identifiers", func(t *testing.T) {
		// When
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		// Then
		require.NoError(t, first.Validate())
		require.NoError(t, second.Validate())
		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	t.Run("parses_canonical_form", func(t *testing.T) {
		// Given
		raw := "550e8400-e29b-41d4-a716-446655440000"

		// When
		id, err := kernel.UUIDFromString(raw)

		// Then
		require.NoError(t, err)
		assert.Equal(t, raw, id.String())
	})

	t.Run("rejects_malformed_input", func(t *testing.T) {
		// When
		_, err := kernel.UUIDFromString("not-a-uuid")

		// Then
		require.Error(t, err)
	})

	t.Run("rejects_empty_string", func(t *testing.T) {
		// When
		_, err := kernel.UUIDFromString("")

		// Then
		require.Error(t, err)
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("round_trips_through_bytes", func(t *testing.T) {
		// Given
		original := kernel.NewUUID()
		raw := original.Bytes()

		// When
		restored, err := kernel.UUIDFromBytes(raw[:])

		// Then
		require.NoError(t, err)
		assert.True(t, original.IsEqual(restored))
	})

	t.Run("rejects_wrong_length", func(t *testing.T) {
		// When
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02})

		// Then
		require.Error(t, err)
	})

	t.Run("rejects_nil_uuid_bytes", func(t *testing.T) {
		// Given
		var nilBytes [16]byte

		// When
		_, err := kernel.UUIDFromBytes(nilBytes[:])

		// Then
		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("zero_value_is_invalid", func(t *testing.T) {
		// Given
		var id kernel.UUID

		// Then
		require.ErrorIs(t, id.Validate(), kernel.ErrUUIDIsNotConstructed)
		assert.Equal(t, uuid.Nil.String(), id.String())
	})
}
