package main

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runClassify(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()
	var out, errOut bytes.Buffer
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&errOut)
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return out.String(), errOut.String(), err
}

func TestClassify_ReadsFlagsAndStdin(t *testing.T) {
	out, _, err := runClassify(t, `{"P1":"A","P2":"A"}`, "--student", "EST42", "--grade", "5-6")
	require.NoError(t, err)

	var profile map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(out), &profile))
	assert.Equal(t, "EST42", profile["estudiante_id"])
}

func TestClassify_RejectsUnknownGrade(t *testing.T) {
	_, _, err := runClassify(t, `{}`, "--student", "EST42", "--grade", "7-8")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `unknown grade "7-8"`)
}
