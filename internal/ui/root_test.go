package ui

import (
	"testing"

	"fyne.io/fyne/v2/driver/desktop"
	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/text-overlay/internal/bus"
	"github.com/ytget/text-overlay/internal/config"
	"github.com/ytget/text-overlay/internal/model"
)

func newTestRoot(t *testing.T, backend *memoryBackend) *RootUI {
	t.Helper()
	app := test.NewApp()
	resolver, sink := testResolver(t)
	root := NewRootUI(app.NewWindow("overlay"), app, config.NewStore(backend), resolver, sink, NewLocalization())
	t.Cleanup(root.Close)
	return root
}

func TestNewRootUI_PaintsStoredSettings(t *testing.T) {
	backend := newMemoryBackend()
	backend.data[config.KeySettings] = []byte(`{"text":"Hello stream"}`)

	root := newTestRoot(t, backend)

	assert.Equal(t, "Hello stream", root.Overlay().Current().Text)
	require.NotNil(t, root.Overlay().Text())
	assert.Equal(t, "Hello stream", root.Overlay().Text().Style().Text)
}

func TestNewRootUI_OverlayIsFullscreen(t *testing.T) {
	root := newTestRoot(t, newMemoryBackend())

	assert.True(t, root.Window().FullScreen())
	assert.False(t, root.Window().Padded())
}

func TestNewRootUI_OpensSettingsWithoutTray(t *testing.T) {
	root := newTestRoot(t, newMemoryBackend())
	if _, ok := root.app.(desktop.App); ok {
		t.Skip("driver provides a system tray")
	}

	_, ok := root.Host().Window(SettingsWindowID)
	assert.True(t, ok)
}

func TestRootUI_SettingsChangedRerenders(t *testing.T) {
	root := newTestRoot(t, newMemoryBackend())

	s := model.DefaultSettings()
	s.Text = "Updated"
	root.Bus().PublishSettings(bus.NewOrigin(), s)

	assert.Equal(t, s, root.Overlay().Current())
}

func TestRootUI_ShowSettingsEnsuresOneWindow(t *testing.T) {
	root := newTestRoot(t, newMemoryBackend())

	root.ShowSettings()
	first, ok := root.Host().Window(SettingsWindowID)
	require.True(t, ok)

	root.ShowSettings()
	second, ok := root.Host().Window(SettingsWindowID)
	require.True(t, ok)
	assert.Equal(t, first, second)
}

func TestRootUI_EditorInputReachesOverlay(t *testing.T) {
	backend := newMemoryBackend()
	root := newTestRoot(t, backend)

	editor, err := NewEditor(root.app, root.store, root.Bus(), nil, nil)
	require.NoError(t, err)
	defer editor.Close()

	editor.c.text.SetText("Typed")

	assert.Equal(t, "Typed", root.Overlay().Current().Text)
	assert.Equal(t, "Typed", backend.stored().Text)
}

func TestRootUI_ResetSettings(t *testing.T) {
	backend := newMemoryBackend()
	backend.data[config.KeySettings] = []byte(`{"text":"Old","padding":3}`)
	root := newTestRoot(t, backend)

	rec := record(root.Bus())
	root.ResetSettings()

	assert.Equal(t, model.DefaultSettings(), backend.stored())
	assert.Equal(t, model.DefaultSettings(), root.Overlay().Current())
	require.Len(t, rec.events, 1)
	assert.Equal(t, model.DefaultSettings(), rec.last().Settings)
}
