package location

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstallerSearchURL(t *testing.T) {
	tests := []struct {
		name string
		zip  string
		want string
	}{
		{name: "five digits", zip: "98101", want: "https://www.google.com/maps/search/window+installer+near+98101"},
		{name: "zip plus four", zip: "98101-1234", want: "https://www.google.com/maps/search/window+installer+near+98101-1234"},
		{name: "surrounding space", zip: " 02134\n", want: "https://www.google.com/maps/search/window+installer+near+02134"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := InstallerSearchURL(tt.zip)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestInstallerSearchURL_Invalid(t *testing.T) {
	for _, zip := range []string{"", "9810", "981011", "98101-12", "seattle", "98101&q=x"} {
		_, err := InstallerSearchURL(zip)
		assert.ErrorIs(t, err, ErrInvalidZIP, zip)
	}
}
