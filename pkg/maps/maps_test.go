package maps

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilder(t *testing.T) {
	m, err := New(7, "Test").
		WithSize(5, 5).
		Place("a", 0, 0, "<evc_chance:50>").
		PlaceWithID(10, "b", 4, 4, "").
		HideWhen("A").
		Place("c", 1, 1, "").
		Build()
	require.NoError(t, err)

	require.Len(t, m.Objects, 3)
	assert.Equal(t, 1, m.Objects[0].ID)
	assert.Equal(t, 10, m.Objects[1].ID)
	assert.Equal(t, "A", m.Objects[1].HideWhen)
	// следующий ID после явного
	assert.Equal(t, 11, m.Objects[2].ID)
}

func TestBuilder_HideWhenWithoutObject(t *testing.T) {
	_, err := New(1, "x").HideWhen("A").Build()
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		m       Map
		wantErr bool
	}{
		{name: "ok", m: Map{ID: 1, Width: 2, Height: 2, Objects: []MapObject{{ID: 1, X: 1, Y: 1}}}},
		{name: "zero id", m: Map{ID: 0, Width: 2, Height: 2}, wantErr: true},
		{name: "bad size", m: Map{ID: 1, Width: 0, Height: 2}, wantErr: true},
		{name: "out of bounds", m: Map{ID: 1, Width: 2, Height: 2, Objects: []MapObject{{ID: 1, X: 2, Y: 0}}}, wantErr: true},
		{name: "duplicate", m: Map{ID: 1, Width: 2, Height: 2, Objects: []MapObject{{ID: 1}, {ID: 1}}}, wantErr: true},
		{name: "object id", m: Map{ID: 1, Width: 2, Height: 2, Objects: []MapObject{{ID: 0}}}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.m.Validate()
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
		})
	}
}

func TestDir_RoundTrip(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, WriteFile(dir, Town))

	_, err := os.Stat(filepath.Join(dir, "Map001.json"))
	require.NoError(t, err)

	got, err := Dir{Path: dir}.Load(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, Town, got)
}

func TestDir_NotFound(t *testing.T) {
	_, err := Dir{Path: t.TempDir()}.Load(context.Background(), 42)
	assert.True(t, errors.Is(err, ErrMapNotFound))
}

func TestDir_IDMismatch(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, FileName(2)), []byte(`{"id":3,"name":"x","width":1,"height":1,"objects":[]}`), 0o644))

	_, err := Dir{Path: dir}.Load(context.Background(), 2)
	assert.Error(t, err)
}

func TestLibrary(t *testing.T) {
	lib := Samples()
	assert.Equal(t, []int{1, 2, 3}, lib.IDs())

	m, err := lib.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, "Outskirts", m.Name)

	// копия не влияет на библиотеку
	m.Objects[0].Note = "changed"
	again, err := lib.Load(context.Background(), 2)
	require.NoError(t, err)
	assert.NotEqual(t, "changed", again.Objects[0].Note)

	_, err = lib.Load(context.Background(), 99)
	assert.ErrorIs(t, err, ErrMapNotFound)
}
