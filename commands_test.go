package vlist

import (
	"testing"

	. "github.com/fulldump/biff"
)

func TestAppendCommand(t *testing.T) {
	Alternative("nil is dropped", func(a *A) {
		a.AssertEqual(AppendCommand(nil, QuitCommand{}), QuitCommand{})
		a.AssertEqual(AppendCommand(RedrawCommand{}, nil), RedrawCommand{})
		a.AssertNil(AppendCommand(nil, nil))
	})

	Alternative("two commands make a batch", func(a *A) {
		cmd := AppendCommand(RedrawCommand{}, QuitCommand{})
		a.AssertEqual(cmd, BatchCommand{RedrawCommand{}, QuitCommand{}})

		a.Alternative("appending again stays flat", func(a *A) {
			cmd = AppendCommand(cmd, BatchCommand{ConsumeEventCommand{}})
			a.AssertEqual(cmd, BatchCommand{RedrawCommand{}, QuitCommand{}, ConsumeEventCommand{}})
		})
	})

	Alternative("the first batch is not modified", func(a *A) {
		first := make(BatchCommand, 1, 4)
		first[0] = RedrawCommand{}
		AppendCommand(first, QuitCommand{})
		a.AssertEqual(first[:2], BatchCommand{RedrawCommand{}, nil})
	})
}
