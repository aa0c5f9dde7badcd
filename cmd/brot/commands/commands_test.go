package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/brot/cmd/brot/commands"
	"go.trai.ch/brot/internal/app"
	"go.trai.ch/brot/internal/build"
	"go.trai.ch/brot/internal/core/ports/mocks"
	"go.uber.org/mock/gomock"
)

type mockApp struct {
	renderFunc  func(ctx context.Context, opts app.RenderOptions) error
	watchFunc   func(ctx context.Context, opts app.RenderOptions) error
	maskFunc    func(ctx context.Context, opts app.MaskOptions) error
	inspectFunc func(ctx context.Context, opts app.InspectOptions) error
}

func (m *mockApp) Render(ctx context.Context, opts app.RenderOptions) error {
	if m.renderFunc != nil {
		return m.renderFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Watch(ctx context.Context, opts app.RenderOptions) error {
	if m.watchFunc != nil {
		return m.watchFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Mask(ctx context.Context, opts app.MaskOptions) error {
	if m.maskFunc != nil {
		return m.maskFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) Inspect(ctx context.Context, opts app.InspectOptions) error {
	if m.inspectFunc != nil {
		return m.inspectFunc(ctx, opts)
	}
	return nil
}

// jsonLogger records SetJSON calls on top of a mock logger.
type jsonLogger struct {
	*mocks.MockLogger
	json bool
}

func (l *jsonLogger) SetJSON(enabled bool) {
	l.json = enabled
}

func TestCommands_Render(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		var captured app.RenderOptions
		mock := &mockApp{
			renderFunc: func(_ context.Context, opts app.RenderOptions) error {
				captured = opts
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"render", "scene.yaml", "--cache", "c.cache", "-o", "out.tif", "-j", "3", "--force"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.Equal(t, app.RenderOptions{
			ConfigPath: "scene.yaml",
			CachePath:  "c.cache",
			OutputPath: "out.tif",
			Workers:    3,
			Force:      true,
		}, captured)
	})

	t.Run("watch delegates to Watch", func(t *testing.T) {
		called := false
		mock := &mockApp{
			renderFunc: func(context.Context, app.RenderOptions) error {
				panic("should not be called")
			},
			watchFunc: func(_ context.Context, opts app.RenderOptions) error {
				called = true
				assert.Equal(t, "scene.yaml", opts.ConfigPath)
				return nil
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"render", "scene.yaml", "--watch"})

		require.NoError(t, cli.Execute(context.Background()))
		assert.True(t, called)
	})

	t.Run("returns error on render failure", func(t *testing.T) {
		mock := &mockApp{
			renderFunc: func(context.Context, app.RenderOptions) error {
				return errors.New("simulated error")
			},
		}

		cli := commands.New(mock, nil)
		cli.SetArgs([]string{"render", "scene.yaml"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "simulated error")
	})

	t.Run("requires a configuration", func(t *testing.T) {
		cli := commands.New(&mockApp{}, nil)
		cli.SetArgs([]string{"render"})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))

		err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Contains(t, err.Error(), "accepts 1 arg(s), received 0")
	})
}

func TestCommands_Mask(t *testing.T) {
	var captured app.MaskOptions
	mock := &mockApp{
		maskFunc: func(_ context.Context, opts app.MaskOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"mask", "scene.yaml", "--output", "mask.png"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.MaskOptions{ConfigPath: "scene.yaml", OutputPath: "mask.png"}, captured)
}

func TestCommands_Inspect(t *testing.T) {
	var captured app.InspectOptions
	mock := &mockApp{
		inspectFunc: func(_ context.Context, opts app.InspectOptions) error {
			captured = opts
			return nil
		},
	}

	cli := commands.New(mock, nil)
	cli.SetArgs([]string{"inspect", "scene.yaml", "--cache", "other.cache"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, app.InspectOptions{ConfigPath: "scene.yaml", CachePath: "other.cache"}, captured)
}

func TestCommands_JSONLogs(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want bool
	}{
		{name: "default", args: []string{"render", "scene.yaml"}, want: false},
		{name: "flag", args: []string{"--json-logs", "render", "scene.yaml"}, want: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			log := &jsonLogger{MockLogger: mocks.NewMockLogger(ctrl)}

			cli := commands.New(&mockApp{}, log)
			cli.SetArgs(tt.args)

			require.NoError(t, cli.Execute(context.Background()))
			assert.Equal(t, tt.want, log.json)
		})
	}
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Equal(t, "brot version "+build.Version+" (commit: "+build.Commit+", date: "+build.Date+")\n", buf.String())
}

func TestCommands_VersionFlag(t *testing.T) {
	cli := commands.New(&mockApp{}, nil)

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"--version"})

	require.NoError(t, cli.Execute(context.Background()))
	assert.Contains(t, buf.String(), "brot version "+build.Version)
}
