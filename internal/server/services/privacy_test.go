package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanView(t *testing.T) {
	const creator = "creator-1"

	tests := []struct {
		name      string
		viewerID  string
		isPrivate bool
		want      bool
	}{
		{"public object, anonymous viewer", "", false, true},
		{"public object, other viewer", "viewer-2", false, true},
		{"public object, creator", creator, false, true},
		{"private object, creator", creator, true, true},
		{"private object, other viewer", "viewer-2", true, false},
		{"private object, anonymous viewer", "", true, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, CanView(tt.viewerID, tt.isPrivate, creator))
		})
	}
}

func TestCanViewPrivateWithEmptyCreator(t *testing.T) {
	// an anonymous viewer must not match an idea with an empty creator id
	assert.False(t, CanView("", true, ""))
}

func TestMustSign(t *testing.T) {
	// objects are written with a private ACL, so signing is unconditional
	assert.True(t, MustSign(false))
	assert.True(t, MustSign(true))
}
