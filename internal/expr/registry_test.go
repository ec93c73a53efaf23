package expr

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alexisbeaulieu97/quark/pkg/css"
	quarkerrors "github.com/alexisbeaulieu97/quark/pkg/errors"
)

// Registry tests mutate global state and must not run in parallel.

func TestRegisterCustomConcern(t *testing.T) {
	t.Cleanup(Reset)

	brand := ConcernFactory(css.DisplayConcern)
	brand.Slot = "display"
	require.NoError(t, Register("Layout", brand))

	f, ok := Lookup("layout")
	require.True(t, ok)
	assert.Equal(t, "display", f.Slot)
	assert.Contains(t, Names(), "Layout")

	r, err := Evaluate("Layout.Grid")
	require.NoError(t, err)
	assert.Equal(t, "d-grid", r.ToClass())
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	t.Cleanup(Reset)

	err := Register("margin", SpacingFactory(css.MarginConcern))
	require.Error(t, err)

	var registryErr *quarkerrors.RegistryError
	require.ErrorAs(t, err, &registryErr)
	assert.Equal(t, "margin", registryErr.Concern)
}

func TestRegisterRejectsInvalidFactories(t *testing.T) {
	t.Cleanup(Reset)

	require.Error(t, Register("", ConcernFactory(css.DisplayConcern)))
	require.Error(t, Register("Empty", Factory{Slot: "display"}))
}

func TestResetRestoresBuiltins(t *testing.T) {
	require.NoError(t, Register("Custom", ConcernFactory(css.FloatConcern)))
	Reset()

	_, ok := Lookup("custom")
	assert.False(t, ok)
	_, ok = Lookup("Margin")
	assert.True(t, ok)
}

func TestBuiltinsCoverEverySlot(t *testing.T) {
	slots := map[string]bool{}
	for _, name := range Names() {
		f, ok := Lookup(name)
		require.True(t, ok, name)
		slots[f.Slot] = true
		assert.NotEmpty(t, f.Steps, name)
	}
	assert.True(t, slots["text-color"])
	assert.True(t, slots["background-color"])
	for _, slot := range []string{"margin", "box-shadow", "text-alignment", "overflow-y", "z-index"} {
		assert.True(t, slots[slot], slot)
	}
	assert.Len(t, Names(), 34)
}
