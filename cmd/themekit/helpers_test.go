package main

import (
	"bytes"
	"testing"
)

func executeCommand(t *testing.T, args ...string) (stdout, stderr string, err error) {
	t.Helper()
	root := newRootCmd()
	var out, errOut bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&errOut)
	root.SetArgs(args)
	err = root.Execute()
	return out.String(), errOut.String(), err
}

// inDir prefixes args with an isolated themekit directory.
func inDir(dir string, args ...string) []string {
	return append([]string{"--dir", dir}, args...)
}
