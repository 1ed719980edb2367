package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestVarsCmd_ListsCatalog(t *testing.T) {
	cmd := varsCmd()

	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)

	runVars(cmd, nil)
	out := buf.String()

	assert.Contains(t, out, "AGEP")
	assert.Contains(t, out, "JWAP")
	assert.Contains(t, out, "time interval")
	assert.Contains(t, out, "State")
	assert.Contains(t, out, "geography")
	assert.Contains(t, out, "All, Region, Division, State")
	assert.Contains(t, out, "2010-2022")
}
