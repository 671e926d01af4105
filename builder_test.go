package iso8583

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuilderFluentChain(t *testing.T) {
	pkg := newTestPackager(t)
	b := NewBuilder(WithPackager(pkg))
	defer b.Release()

	msg, err := b.MTI("0200").PAN("4111111111111111").ProcessingCode("000000").
		Amount("100").STAN("1").Build()
	require.NoError(t, err)
	defer msg.Release()

	assert.Equal(t, "0200", msg.MTI())
	v2, err := msg.GetField(2)
	require.NoError(t, err)
	assert.Equal(t, "4111111111111111", v2)
	v11, err := msg.GetField(11)
	require.NoError(t, err)
	assert.Equal(t, "000001", v11)
}

func TestBuilderDefersErrorsUntilBuild(t *testing.T) {
	pkg := newTestPackager(t)
	b := NewBuilder(WithPackager(pkg))
	defer b.Release()

	_, err := b.MTI("bad-mti").PAN("4111").Build()
	assert.ErrorIs(t, err, ErrInvalidMTI)
}

func TestBuilderMustBuildPanicsOnError(t *testing.T) {
	pkg := newTestPackager(t)
	b := NewBuilder(WithPackager(pkg))
	defer b.Release()
	b.MTI("bad-mti")

	assert.Panics(t, func() {
		b.MustBuild()
	})
}

func TestBuilderReleaseClearsState(t *testing.T) {
	pkg := newTestPackager(t)
	b := NewBuilder(WithPackager(pkg))
	msg, err := b.MTI("0800").Build()
	require.NoError(t, err)
	defer msg.Release()

	b.Release()

	b2 := NewBuilder(WithPackager(pkg))
	defer b2.Release()
	msg2, err := b2.MTI("0810").Build()
	require.NoError(t, err)
	defer msg2.Release()
	assert.Equal(t, "0810", msg2.MTI())
}
