package object

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"transform-viewer/internal/transform"
)

func TestSetKeepsOrderAndDuplicates(t *testing.T) {
	s := NewSet()
	handle := "same asset"
	a, b := New("first", handle), New("second", handle)
	s.Add(a)
	s.Add(b)

	require.Equal(t, 2, s.Len())
	objs := s.Objects()
	assert.Same(t, a, objs[0])
	assert.Same(t, b, objs[1])

	var names []string
	s.Each(func(o *Object) { names = append(names, o.Name) })
	assert.Equal(t, []string{"first", "second"}, names)

	cleared := s.Clear()
	assert.Len(t, cleared, 2)
	assert.Equal(t, 0, s.Len())
}

func TestRotateAndScale(t *testing.T) {
	o := New("cube", nil)
	o.Rotate(0.5, 0.25)
	o.Rotate(0.5, 0.25)
	assert.Equal(t, transform.NewVec3(1, 0.5, 0), o.Rotation)

	o.SetUniformScale(1.5)
	assert.Equal(t, transform.Uniform(1.5), o.Scale)

	still := New("still", nil)
	still.SetUniformScale(2)
	m := still.Matrix()
	assert.Equal(t, 2.0, m[0])
	assert.Equal(t, 2.0, m[5])
	assert.Equal(t, 2.0, m[10])
	assert.Equal(t, 1.0, m[15])
}
