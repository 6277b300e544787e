package confirm

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/beezer-app/beezer/internal/ui/testutil"
)

const testContext = "ctx"

var testLabels = Labels{Yes: "Instalar", No: "Ahora no"}

func newTestConfirm(context any) (*testutil.PopupHarness, *Model) {
	m := New()
	m.Show("Instalar beezer", "¿Añadir beezer al menú de aplicaciones?", testLabels, context, 80, 24)
	return testutil.NewPopupHarness(&m), &m
}

func getResult(t *testing.T, h *testutil.PopupHarness) Result {
	t.Helper()
	cmd := h.LastCommand()
	require.NotNil(t, cmd)
	result, ok := testutil.ExecuteCmd(cmd).(Result)
	require.True(t, ok, "expected Result")
	return result
}

func TestConfirm_EnterSelectsYesByDefault(t *testing.T) {
	h, m := newTestConfirm(testContext)

	h.SendEnter()

	result := getResult(t, h)
	assert.True(t, result.Confirmed)
	assert.Equal(t, testContext, result.Context)
	assert.False(t, m.Active())
}

func TestConfirm_MoveToNo(t *testing.T) {
	h, _ := newTestConfirm(nil)

	h.SendSpecialKey(tea.KeyRight)
	h.SendEnter()

	assert.False(t, getResult(t, h).Confirmed)
}

func TestConfirm_Shortcuts(t *testing.T) {
	tests := []struct {
		key  string
		want bool
	}{
		{"y", true},
		{"Y", true},
		{"n", false},
		{"N", false},
	}
	for _, tt := range tests {
		t.Run(tt.key, func(t *testing.T) {
			h, _ := newTestConfirm(nil)
			h.SendKey(tt.key)
			assert.Equal(t, tt.want, getResult(t, h).Confirmed)
		})
	}
}

func TestConfirm_Escape(t *testing.T) {
	h, _ := newTestConfirm(testContext)

	h.SendEscape()

	result := getResult(t, h)
	assert.False(t, result.Confirmed)
	assert.Equal(t, testContext, result.Context)
}

func TestConfirm_InactiveIgnoresKeys(t *testing.T) {
	m := New()
	h := testutil.NewPopupHarness(&m)

	assert.Nil(t, h.SendEnter())
	assert.Empty(t, h.View())
}

func TestConfirm_View(t *testing.T) {
	h, _ := newTestConfirm(nil)

	assert.Empty(t, h.AssertViewContains("Instalar beezer"))
	assert.Empty(t, h.AssertViewContains("¿Añadir beezer al menú de aplicaciones?"))
	assert.Empty(t, h.AssertViewContains("Ahora no"))
}
