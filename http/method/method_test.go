package method

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	t.Run("all known methods", func(t *testing.T) {
		for _, m := range []Method{
			GET, HEAD, POST, PUT, DELETE, CONNECT, OPTIONS, TRACE, PATCH,
		} {
			require.Equal(t, m, Parse(m.String()))
		}
	})

	t.Run("lowercase is not recognized", func(t *testing.T) {
		require.Equal(t, Unknown, Parse("get"))
		require.Equal(t, Unknown, Parse("Get"))
		require.Equal(t, Unknown, Parse("post"))
		require.Equal(t, Unknown, Parse("Post"))
	})

	t.Run("arbitrary tokens", func(t *testing.T) {
		require.Equal(t, Unknown, Parse(""))
		require.Equal(t, Unknown, Parse("GARBAGE"))
		require.Equal(t, Unknown, Parse("GETT"))
	})
}
