package main

import "testing"

func TestRootCmd_Subcommands(t *testing.T) {
	root := newRootCmd()
	for _, path := range [][]string{
		{"migrate"},
		{"seed-admin"},
		{"courtroom", "add"},
		{"courtroom", "list"},
		{"worker"},
	} {
		cmd, _, err := root.Find(path)
		if err != nil || cmd.Name() != path[len(path)-1] {
			t.Errorf("command %v not registered (err=%v)", path, err)
		}
	}
}

func TestCourtroomAdd_RequiresName(t *testing.T) {
	root := newRootCmd()
	root.SetArgs([]string{"courtroom", "add"})
	if err := root.Execute(); err == nil {
		t.Error("expected an error when --name is missing")
	}
}
