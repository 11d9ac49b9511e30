package pretty

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPrettyTreeShowsShape(t *testing.T) {
	d := Concat(Text("a"), Break(" "), Text("b"))
	out := render(t, 80, d.PrettyTree())
	require.Contains(t, out, "Concat<")
	require.Contains(t, out, "Text<1,-1>")
	require.Contains(t, out, "Break<1,0>")
}
