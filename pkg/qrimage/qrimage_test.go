package qrimage_test

import (
	"bytes"
	"image/png"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/samandr77/ipsqr/pkg/qrimage"
)

func TestRender(t *testing.T) {
	t.Parallel()

	b, err := qrimage.Render("K:PR|V:01|C:1|R:160000000000000000|N:Primalac|I:RSD10.00|P:|SF:289|S:", 300)
	require.NoError(t, err)

	img, err := png.Decode(bytes.NewReader(b))
	require.NoError(t, err)
	require.Equal(t, 300, img.Bounds().Dx())
	require.Equal(t, 300, img.Bounds().Dy())
}

func TestClampSize(t *testing.T) {
	t.Parallel()

	require.Equal(t, qrimage.DefaultSize, qrimage.ClampSize(0))
	require.Equal(t, qrimage.MinSize, qrimage.ClampSize(10))
	require.Equal(t, qrimage.MaxSize, qrimage.ClampSize(5000))
	require.Equal(t, 512, qrimage.ClampSize(512))
}
