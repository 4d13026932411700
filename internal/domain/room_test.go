package domain

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRoom(t *testing.T) {
	room, err := NewRoom("101", RoomTypeSingle, 100.0)
	require.NoError(t, err)

	assert.Equal(t, "101", room.Number())
	assert.Equal(t, RoomTypeSingle, room.Type())
	assert.Equal(t, 100.0, room.NightlyPrice())
	assert.True(t, room.IsAvailable())
}

func TestNewRoom_Validation(t *testing.T) {
	tests := []struct {
		name     string
		number   string
		roomType RoomType
		price    float64
	}{
		{"empty number", "", RoomTypeSingle, 100.0},
		{"blank number", "   ", RoomTypeSingle, 100.0},
		{"invalid type", "101", RoomType("CABIN"), 100.0},
		{"zero price", "101", RoomTypeSingle, 0},
		{"negative price", "101", RoomTypeSingle, -50.0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRoom(tt.number, tt.roomType, tt.price)
			require.Error(t, err)
			assert.True(t, IsInvalidArgument(err))
		})
	}
}

func TestRoom_SetNightlyPrice(t *testing.T) {
	room, err := NewRoom("101", RoomTypeSingle, 100.0)
	require.NoError(t, err)

	require.NoError(t, room.SetNightlyPrice(120.0))
	assert.Equal(t, 120.0, room.NightlyPrice())

	err = room.SetNightlyPrice(0)
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
	assert.Equal(t, 120.0, room.NightlyPrice(), "rejected edit must not change the rate")
}

func TestRoom_SetType(t *testing.T) {
	room, err := NewRoom("101", RoomTypeSingle, 100.0)
	require.NoError(t, err)

	require.NoError(t, room.SetType(RoomTypeSuite))
	assert.Equal(t, RoomTypeSuite, room.Type())

	err = room.SetType(RoomType("CABIN"))
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}

func TestRoom_ConcurrentEditsAndReads(t *testing.T) {
	room, err := NewRoom("101", RoomTypeSingle, 100.0)
	require.NoError(t, err)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		rate := 100.0 + float64(i)
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.NoError(t, room.SetNightlyPrice(rate))
		}()
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.Positive(t, room.NightlyPrice())
			_ = room.Type()
			_ = room.IsAvailable()
		}()
	}
	wg.Wait()
}

func TestParseRoomType(t *testing.T) {
	for _, input := range []string{"SINGLE", "single", " Single "} {
		roomType, err := ParseRoomType(input)
		require.NoError(t, err, "input %q", input)
		assert.Equal(t, RoomTypeSingle, roomType)
	}

	_, err := ParseRoomType("PENTHOUSE")
	require.Error(t, err)
	assert.True(t, IsInvalidArgument(err))
}
