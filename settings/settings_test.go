package settings

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestFill(t *testing.T) {
	t.Run("empty settings become defaults", func(t *testing.T) {
		require.Equal(t, Default(), Fill(Settings{}))
	})

	t.Run("custom values survive", func(t *testing.T) {
		s := Fill(Settings{
			Pool: Pool{
				Workers: 16,
			},
			Pages: Pages{
				NotFound: "static/404.html",
			},
		})

		require.Equal(t, 16, s.Pool.Workers)
		require.Equal(t, "static/404.html", s.Pages.NotFound)
		require.Equal(t, Default().Pool.QueueSize, s.Pool.QueueSize)
		require.Equal(t, Default().Parser.MaxLineLength, s.Parser.MaxLineLength)
	})
}
