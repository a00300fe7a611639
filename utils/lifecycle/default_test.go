package lifecycle

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

type server struct{ released int }

func (s *server) Release() { s.released++ }

func (*server) String() string { return "server" }

func TestDefaultStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		start   func(*server) error
		wantErr bool
	}{
		{name: "ok", start: func(*server) error { return nil }},
		{name: "failing", start: func(*server) error { return errors.New("listen failed") }, wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			manager := NewDefaultManager(&server{})
			err := manager.Start(tt.start)
			if tt.wantErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestDefaultStartAfterStart(t *testing.T) {
	t.Parallel()

	manager := NewDefaultManager(&server{})
	require.NoError(t, manager.Start(func(*server) error { return nil }))
	err := manager.Start(func(*server) error { return nil })
	targetError := &StartedAlreadyError{}
	require.ErrorAs(t, err, &targetError)
}

func TestDefaultCloseReleasesOnce(t *testing.T) {
	t.Parallel()

	inst := &server{}
	manager := NewDefaultManager(inst)
	require.NoError(t, manager.Start(func(*server) error { return nil }))
	manager.Close()
	manager.Close()
	require.Equal(t, 1, inst.released)
}

func TestDefaultStartAfterClose(t *testing.T) {
	t.Parallel()

	manager := NewDefaultManager(&server{})
	manager.Close()
	err := manager.Start(func(*server) error { return nil })
	targetError := &StartedAfterCloseError{}
	require.ErrorAs(t, err, &targetError)
}
