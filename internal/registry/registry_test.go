package registry

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validDescriptor(name string) Descriptor {
	return Descriptor{
		Name:        name,
		Vendor:      "Copyright (C) 2002-2011 by The PixelLight Team",
		License:     "LGPL-3.0-or-later",
		Description: "demo module " + name,
	}
}

func noopEntry(string, []string) int { return 0 }

func TestDescriptor_Validate(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		name      string
		mutate    func(d *Descriptor)
		expectErr string
	}{
		{name: "valid", mutate: func(d *Descriptor) {}},
		{name: "valid with version", mutate: func(d *Descriptor) { d.Version = "1.0.0" }},
		{name: "empty name", mutate: func(d *Descriptor) { d.Name = "" }, expectErr: "name must not be empty"},
		{name: "blank vendor", mutate: func(d *Descriptor) { d.Vendor = "   " }, expectErr: "vendor must not be empty"},
		{name: "empty license", mutate: func(d *Descriptor) { d.License = "" }, expectErr: "license must not be empty"},
		{name: "empty description", mutate: func(d *Descriptor) { d.Description = "" }, expectErr: "description must not be empty"},
		{name: "bad version", mutate: func(d *Descriptor) { d.Version = "one" }, expectErr: "invalid version"},
	}

	for _, tc := range testCases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			d := validDescriptor("Dungeon")
			tc.mutate(&d)

			err := d.Validate()
			if tc.expectErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.expectErr)
		})
	}
}

func TestDescriptor_SemVerAndString(t *testing.T) {
	t.Parallel()

	d := validDescriptor("Dungeon")
	assert.Nil(t, d.SemVer())
	assert.Equal(t, "Dungeon: demo module Dungeon (Copyright (C) 2002-2011 by The PixelLight Team)", d.String())

	d.Version = "1.2.0"
	require.NotNil(t, d.SemVer())
	assert.Equal(t, uint64(2), d.SemVer().Minor())
	assert.Equal(t, "Dungeon 1.2.0: demo module Dungeon (Copyright (C) 2002-2011 by The PixelLight Team)", d.String())
}

func TestRegisterAndLookup(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(&Registration{
		Descriptor: validDescriptor("Dungeon"),
		Entry:      func(string, []string) int { return 42 },
	})

	reg, err := r.Lookup("Dungeon")
	require.NoError(t, err)
	assert.Equal(t, "Dungeon", reg.Descriptor.Name)
	assert.Equal(t, 42, reg.Entry("demo.exe", nil))

	_, err = r.Lookup("Missing")
	require.ErrorIs(t, err, ErrModuleNotFound)
	assert.Contains(t, err.Error(), "'Missing'")
}

func TestLookup_ReturnsCopy(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(&Registration{Descriptor: validDescriptor("Dungeon"), Entry: noopEntry})

	reg, err := r.Lookup("Dungeon")
	require.NoError(t, err)
	reg.Descriptor.Vendor = "tampered"

	again, err := r.Lookup("Dungeon")
	require.NoError(t, err)
	assert.Equal(t, validDescriptor("Dungeon"), again.Descriptor)
}

func TestRegister_Panics(t *testing.T) {
	t.Parallel()

	t.Run("duplicate name", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.Register(&Registration{Descriptor: validDescriptor("Dungeon"), Entry: noopEntry})
		assert.PanicsWithValue(t, "module with name 'Dungeon' already registered", func() {
			r.Register(&Registration{Descriptor: validDescriptor("Dungeon"), Entry: noopEntry})
		})
	})

	t.Run("nil entry", func(t *testing.T) {
		t.Parallel()
		assert.PanicsWithValue(t, "module 'Dungeon' registered without an entry function", func() {
			New().Register(&Registration{Descriptor: validDescriptor("Dungeon")})
		})
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		t.Parallel()
		d := validDescriptor("Dungeon")
		d.License = ""
		assert.Panics(t, func() {
			New().Register(&Registration{Descriptor: d, Entry: noopEntry})
		})
	})

	t.Run("sealed registry", func(t *testing.T) {
		t.Parallel()
		r := New()
		r.Seal()
		assert.PanicsWithValue(t, "registry: cannot register module 'Dungeon': registry is sealed", func() {
			r.Register(&Registration{Descriptor: validDescriptor("Dungeon"), Entry: noopEntry})
		})
	})
}

func TestDescriptors_SortedAndStable(t *testing.T) {
	t.Parallel()

	r := New()
	for _, name := range []string{"Space", "Dungeon", "Particles"} {
		r.Register(&Registration{Descriptor: validDescriptor(name), Entry: noopEntry})
	}
	r.Seal()

	first := r.Descriptors()
	require.Len(t, first, 3)
	assert.Equal(t, "Dungeon", first[0].Name)
	assert.Equal(t, "Particles", first[1].Name)
	assert.Equal(t, "Space", first[2].Name)

	for _, d := range first {
		require.NoError(t, d.Validate(), "descriptor fields must be non-empty")
	}

	first[0].Name = "mutated"
	for i := 0; i < 3; i++ {
		again := r.Descriptors()
		assert.Equal(t, "Dungeon", again[0].Name, "descriptors must be stable across queries")
	}
}

func TestUnloadAndClear(t *testing.T) {
	t.Parallel()

	r := New()
	r.Register(&Registration{Descriptor: validDescriptor("Dungeon"), Entry: noopEntry})
	r.Register(&Registration{Descriptor: validDescriptor("Space"), Entry: noopEntry})
	r.Seal()

	require.NoError(t, r.Unload("Space"))
	assert.Len(t, r.Descriptors(), 1)
	assert.True(t, r.Sealed(), "unloading one module keeps the catalog sealed")

	err := r.Unload("Space")
	require.ErrorIs(t, err, ErrModuleNotFound)

	r.Clear()
	assert.Empty(t, r.Descriptors())
	assert.False(t, r.Sealed())

	// A cleared registry accepts registrations again.
	r.Register(&Registration{Descriptor: validDescriptor("Dungeon"), Entry: noopEntry})
	assert.Len(t, r.Descriptors(), 1)
}
