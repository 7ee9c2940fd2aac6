package handles

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
)

func TestGenerationWrapsAfterMaxVersion(t *testing.T) {
	g := NewGeneration("dio")
	require.Equal(t, int16(0), g.Version())

	g.Reset()
	require.Equal(t, int16(1), g.Version())
	for i := 1; i < MaxVersion; i++ {
		g.Reset()
	}
	require.Equal(t, int16(MaxVersion), g.Version())

	g.Reset()
	require.Equal(t, int16(0), g.Version())
}

func TestGenerationCreateStampsVersion(t *testing.T) {
	g := NewGeneration("pwm")
	before := g.Create(3, TypePWM)
	require.Equal(t, CreateHandle(3, uint8(TypePWM), 0), before)

	g.Reset()
	after := g.Create(3, TypePWM)
	require.NotEqual(t, before, after)
	require.Equal(t, uint8(1), split(after).version)
	require.Equal(t, split(before).index, split(after).index)

	require.Equal(t, Invalid, g.Create(-1, TypePWM))
	require.Equal(t, Invalid, g.Create(0, TypeUndefined))
}

func TestGenerationsResetAll(t *testing.T) {
	core, logs := observer.New(zap.DebugLevel)
	SetLogger(zap.New(core))
	t.Cleanup(func() { SetLogger(nil) })

	set := &Generations{}
	a, b, c := NewGeneration("a"), NewGeneration("b"), NewGeneration("c")
	set.Register(a)
	set.Register(b)
	set.Register(b)
	set.Register(c)
	require.Equal(t, 3, set.Len())

	set.Unregister(c)
	set.Unregister(c)
	require.Equal(t, 2, set.Len())

	set.ResetAll()
	require.Equal(t, int16(1), a.Version())
	require.Equal(t, int16(1), b.Version(), "double registration must not double reset")
	require.Equal(t, int16(0), c.Version())

	require.Equal(t, 2, logs.FilterMessage("handle generation reset").Len())
	summary := logs.FilterMessage("handle generations reset").All()
	require.Len(t, summary, 1)
	require.Equal(t, int64(2), summary[0].ContextMap()["count"])
}

func TestGenerationConcurrentReset(t *testing.T) {
	g := NewGeneration("notifier")
	set := &Generations{}
	set.Register(g)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(2)
		go func() {
			defer wg.Done()
			set.ResetAll()
		}()
		go func() {
			defer wg.Done()
			_ = g.Create(1, TypeNotifier)
		}()
	}
	wg.Wait()
	require.Equal(t, int16(50), g.Version())
}

func TestDefaultGenerations(t *testing.T) {
	g := NewGeneration("default-test")
	DefaultGenerations.Register(g)
	t.Cleanup(func() { DefaultGenerations.Unregister(g) })

	DefaultGenerations.ResetAll()
	require.Equal(t, int16(1), g.Version())
}

func TestLoggerDefaultsToNop(t *testing.T) {
	SetLogger(nil)
	require.NotNil(t, Logger())
	require.NotPanics(t, func() { NewGeneration("x").Reset() })
}

func TestDefaultGenerationsCoverNamedTypes(t *testing.T) {
	for _, typ := range Types() {
		g := GenerationOf(typ)
		if typ == TypeUndefined {
			require.Nil(t, g)
			continue
		}
		require.NotNil(t, g, "type %s", typ)
		require.Equal(t, typ.String(), g.Name)
	}
	require.Nil(t, GenerationOf(Type(100)))
	require.GreaterOrEqual(t, DefaultGenerations.Len(), int(TypeDMA))
}

func TestCreateVersionedFollowsReset(t *testing.T) {
	before := CreateVersioned(7, TypeEncoder)
	v := GenerationOf(TypeEncoder).Version()
	require.Equal(t, CreateHandle(7, uint8(TypeEncoder), v), before)

	DefaultGenerations.ResetAll()
	after := CreateVersioned(7, TypeEncoder)
	require.NotEqual(t, before, after)
	require.Equal(t, uint8(v+1)&0xFF, split(after).version)
	require.Equal(t, split(before).index, split(after).index)

	// Unnamed types have no generation and stay at version 0.
	require.Equal(t, CreateHandle(1, 100, 0), CreateVersioned(1, Type(100)))
	require.Equal(t, Invalid, CreateVersioned(1, TypeUndefined))
}
