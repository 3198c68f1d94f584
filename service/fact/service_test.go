package fact

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func staticFact(name, value string, calls *int) Fact {
	return Fact{
		Name: name,
		Resolve: func(context.Context) (string, bool) {
			*calls++
			return value, value != ""
		},
	}
}

func TestRegisterRejectsInvalidAndDuplicate(t *testing.T) {
	svc := NewService(Environment{OSFamily: "windows"}, nil)
	calls := 0

	require.NoError(t, svc.Register(staticFact("a", "1", &calls)))
	assert.ErrorIs(t, svc.Register(staticFact("a", "2", &calls)), ErrDuplicateFact)
	assert.ErrorIs(t, svc.Register(staticFact("  ", "2", &calls)), ErrInvalidFact)
	assert.ErrorIs(t, svc.Register(Fact{Name: "b"}), ErrInvalidFact)
	assert.Equal(t, []string{"a"}, svc.Names())
}

func TestResolveUnknownFact(t *testing.T) {
	svc := NewService(Environment{}, nil)
	_, err := svc.Resolve(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrUnknownFact)
}

func TestConfinementSkipsResolver(t *testing.T) {
	tests := []struct {
		name         string
		osFamily     string
		wantCalls    int
		wantResolved bool
		wantSuitable bool
	}{
		{name: "matching family", osFamily: "windows", wantCalls: 1, wantResolved: true, wantSuitable: true},
		{name: "case-insensitive family", osFamily: "Windows", wantCalls: 1, wantResolved: true, wantSuitable: true},
		{name: "linux host", osFamily: "linux", wantCalls: 0},
		{name: "darwin host", osFamily: "darwin", wantCalls: 0},
		{name: "unknown host", osFamily: "", wantCalls: 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			calls := 0
			f := staticFact("confined", "yes", &calls)
			f.Confine = map[string]string{ConfineOSFamily: "windows"}

			svc := NewService(Environment{OSFamily: tt.osFamily}, nil)
			require.NoError(t, svc.Register(f))

			got, err := svc.Resolve(context.Background(), "confined")
			require.NoError(t, err)
			assert.Equal(t, tt.wantCalls, calls)
			assert.Equal(t, tt.wantResolved, got.Resolved)
			assert.Equal(t, tt.wantSuitable, got.Suitable)
			if !tt.wantSuitable {
				assert.Empty(t, got.Value)
				assert.Contains(t, got.Reason, "osfamily=windows")
			}
		})
	}
}

func TestResolveAllKeepsRegistrationOrder(t *testing.T) {
	svc := NewService(Environment{OSFamily: "linux"}, nil)
	calls := 0
	require.NoError(t, svc.Register(staticFact("zeta", "z", &calls)))
	require.NoError(t, svc.Register(staticFact("alpha", "", &calls)))

	values := svc.ResolveAll(context.Background())
	require.Len(t, values, 2)
	assert.Equal(t, "zeta", values[0].Name)
	assert.True(t, values[0].Resolved)
	assert.Equal(t, "alpha", values[1].Name)
	assert.False(t, values[1].Resolved)
	assert.True(t, values[1].Suitable)
	assert.Equal(t, 2, calls)
}

func TestOSFamily(t *testing.T) {
	for goos, want := range map[string]string{
		"windows": "windows",
		"darwin":  "darwin",
		"linux":   "linux",
		"android": "linux",
		"freebsd": "freebsd",
		"illumos": "solaris",
	} {
		assert.Equal(t, want, OSFamily(goos), goos)
	}
}
