package main

import (
	"bytes"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Temizlik-api/internal/application/ledger"
)

func TestRootCmd_RegistraSubcomandos(t *testing.T) {
	names := map[string]bool{}
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"migrate", "recompute", "register", "export-ledger"} {
		assert.True(t, names[want], "falta el subcomando %s", want)
	}

	up, _, err := rootCmd.Find([]string{"migrate", "up"})
	require.NoError(t, err)
	assert.Equal(t, "up", up.Name())
}

func TestRecomputeCmd_Ayuda(t *testing.T) {
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetArgs([]string{"recompute", "--help"})
	t.Cleanup(func() { rootCmd.SetArgs(nil); rootCmd.SetOut(nil) })

	require.NoError(t, rootCmd.Execute())
	assert.Contains(t, out.String(), "--personnel")
}

func TestDayFlag(t *testing.T) {
	fixed := time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)
	e := &env{clock: ledger.SystemClock{Loc: time.UTC}}

	day, err := e.dayFlag("2024-03-05")
	require.NoError(t, err)
	assert.True(t, fixed.Equal(day))

	_, err = e.dayFlag("05.03.2024")
	assert.Error(t, err)

	today, err := e.dayFlag("")
	require.NoError(t, err)
	assert.Equal(t, 0, today.Hour())
}
