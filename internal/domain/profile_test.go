package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProfileStatus_Advance(t *testing.T) {
	tests := []struct {
		current ProfileStatus
		target  ProfileStatus
		want    ProfileStatus
	}{
		{ProfileStatusAnonymous, ProfileStatusIdentified, ProfileStatusIdentified},
		{ProfileStatusIdentified, ProfileStatusEnriched, ProfileStatusEnriched},
		{ProfileStatusEnriched, ProfileStatusIdentified, ProfileStatusEnriched},
		{ProfileStatusConverted, ProfileStatusIdentified, ProfileStatusConverted},
		{ProfileStatusConverted, ProfileStatusEnriched, ProfileStatusConverted},
		{"", ProfileStatusIdentified, ProfileStatusIdentified},
	}

	for _, tt := range tests {
		t.Run(string(tt.current)+"->"+string(tt.target), func(t *testing.T) {
			got := tt.current.Advance(tt.target)
			assert.Equal(t, tt.want, got)
			assert.True(t, got.AtLeast(tt.current))
		})
	}
}

func TestProfileStatus_AtLeast(t *testing.T) {
	assert.True(t, ProfileStatusEnriched.AtLeast(ProfileStatusIdentified))
	assert.True(t, ProfileStatusEnriched.AtLeast(ProfileStatusEnriched))
	assert.False(t, ProfileStatusIdentified.AtLeast(ProfileStatusEnriched))
	assert.False(t, ProfileStatus("desconhecido").IsValid())
}
