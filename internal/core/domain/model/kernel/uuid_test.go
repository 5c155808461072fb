package kernel_test

import (
	"testing"

	"ordersystem/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUUID(t *testing.T) {
	t.Run("should produce a valid identifier", func(t *testing.T) {
		id := kernel.NewUUID()

		require.NoError(t, id.Validate())
		assert.Len(t, id.String(), 36)
	})

	t.Run("should produce distinct identifiers", func(t *testing.T) {
		first := kernel.NewUUID()
		second := kernel.NewUUID()

		assert.False(t, first.IsEqual(second))
	})
}

func TestUUIDFromString(t *testing.T) {
	canonical := "6ba7b810-9dad-11d1-80b4-00c04fd430c8"

	t.Run("should accept the forms uuid.Parse accepts", func(t *testing.T) {
		accepted := []string{
			canonical,
			"{6ba7b810-9dad-11d1-80b4-00c04fd430c8}",
			"urn:uuid:6ba7b810-9dad-11d1-80b4-00c04fd430c8",
			"6ba7b8109dad11d180b400c04fd430c8",
		}

		for _, input := range accepted {
			id, err := kernel.UUIDFromString(input)

			require.NoError(t, err, input)
			assert.Equal(t, canonical, id.String())
		}
	})

	t.Run("should reject malformed input", func(t *testing.T) {
		rejected := []string{
			"",
			"not-a-uuid",
			"6ba7b810-9dad-11d1-80b4",
			"6ba7b810-9dad-11d1-80b4-00c04fd430c8-extra",
		}

		for _, input := range rejected {
			_, err := kernel.UUIDFromString(input)

			require.Error(t, err, input)
			assert.Contains(t, err.Error(), "invalid UUID format")
		}
	})
}

func TestUUIDFromBytes(t *testing.T) {
	t.Run("should round-trip through the byte form", func(t *testing.T) {
		original := kernel.NewUUID()
		raw := original.Bytes()

		restored, err := kernel.UUIDFromBytes(raw[:])

		require.NoError(t, err)
		assert.True(t, restored.IsEqual(original))
	})

	t.Run("should reject a slice of the wrong length", func(t *testing.T) {
		_, err := kernel.UUIDFromBytes([]byte{0x01, 0x02, 0x03})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "invalid UUID format")
	})

	t.Run("should reject the nil UUID", func(t *testing.T) {
		nilBytes := uuid.Nil

		_, err := kernel.UUIDFromBytes(nilBytes[:])

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}

func TestUUID_IsEqual(t *testing.T) {
	t.Run("should treat a copy as equal", func(t *testing.T) {
		id := kernel.NewUUID()
		same := id

		assert.True(t, id.IsEqual(same))
	})

	t.Run("should treat zero values as equal to each other", func(t *testing.T) {
		assert.True(t, kernel.UUID{}.IsEqual(kernel.UUID{}))
		assert.False(t, kernel.NewUUID().IsEqual(kernel.UUID{}))
	})
}

func TestUUID_Validate(t *testing.T) {
	t.Run("should accept a constructed identifier", func(t *testing.T) {
		require.NoError(t, kernel.NewUUID().Validate())
	})

	t.Run("should reject the zero value", func(t *testing.T) {
		err := kernel.UUID{}.Validate()

		require.ErrorIs(t, err, kernel.ErrUUIDIsNotConstructed)
	})
}
