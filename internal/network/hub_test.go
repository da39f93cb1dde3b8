package network

import (
	"testing"

	"eventchance/pkg/api"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBroadcaster(t *testing.T) {
	b := NewBroadcaster()
	a := b.Register("a")
	c := b.Register("c")

	b.Broadcast(api.ServerResponse{Type: api.TypeMapLoaded})
	require.Equal(t, api.TypeMapLoaded, (<-a).Type)
	require.Equal(t, api.TypeMapLoaded, (<-c).Type)

	assert.True(t, b.SendTo("a", api.ServerResponse{Type: api.TypeError}))
	assert.False(t, b.SendTo("missing", api.ServerResponse{}))
	assert.Equal(t, api.TypeError, (<-a).Type)

	b.Unregister("a")
	_, open := <-a
	assert.False(t, open)
	assert.False(t, b.SendTo("a", api.ServerResponse{Type: api.TypeError}))

	// оставшийся подписчик продолжает получать рассылку
	b.Broadcast(api.ServerResponse{Type: api.TypeMapLoaded})
	assert.Equal(t, api.TypeMapLoaded, (<-c).Type)
}

func TestBroadcaster_ReRegisterClosesOld(t *testing.T) {
	b := NewBroadcaster()
	old := b.Register("x")
	cur := b.Register("x")

	_, open := <-old
	assert.False(t, open)

	require.True(t, b.SendTo("x", api.ServerResponse{Type: api.TypeMapLoaded}))
	assert.Equal(t, api.TypeMapLoaded, (<-cur).Type)
}
