package main

import (
	"testing"

	"github.com/der-antikeks/blobs/sim"
)

func TestRootCommand_Flags(t *testing.T) {
	cmd := newRootCommand()

	if err := cmd.ParseFlags([]string{"--blobs", "5", "--food=7", "--seed", "42", "--debug"}); err != nil {
		t.Fatal(err)
	}

	tests := []struct {
		Name, Expected string
	}{
		{"blobs", "5"},
		{"food", "7"},
		{"seed", "42"},
		{"debug", "true"},
		{"fps", "60"},
	}
	for _, c := range tests {
		if v := cmd.Flags().Lookup(c.Name).Value.String(); v != c.Expected {
			t.Errorf("flag %v is %v instead of %v", c.Name, v, c.Expected)
		}
	}
}

func TestRootCommand_Defaults(t *testing.T) {
	cmd := newRootCommand()
	d := sim.DefaultConfig()

	if v, _ := cmd.Flags().GetInt("blobs"); v != d.Blobs {
		t.Errorf("default blobs %v instead of %v", v, d.Blobs)
	}
	if v, _ := cmd.Flags().GetInt("food"); v != d.Food {
		t.Errorf("default food %v instead of %v", v, d.Food)
	}
}

func TestGLContext_MainThread(t *testing.T) {
	c := newGLContext()

	served := make(chan struct{})
	go func() {
		c.Serve()
		close(served)
	}()

	var order []int
	for i := 0; i < 3; i++ {
		c.MainThread(func() {
			order = append(order, i)
		})
	}
	c.Stop()
	<-served

	if len(order) != 3 || order[0] != 0 || order[2] != 2 {
		t.Errorf("functions executed as %v instead of [0 1 2]", order)
	}
}
