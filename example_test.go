package faketty_test

import (
	"fmt"
	"regexp"

	"github.com/joeycumines/faketty"
)

func ExampleTTY() {
	tty, err := faketty.New(faketty.WithColumns(40))
	if err != nil {
		panic(err)
	}

	_, _ = fmt.Fprint(tty, "loading...")
	_ = tty.CursorTo(0)
	_, _ = fmt.Fprint(tty, "done")

	fmt.Printf("%q\n", tty.String())
	fmt.Printf("%q\n", tty.Writes())

	//output:
	//"doneing..."
	//["loading..." "\x1b[1G" "done"]
}

func ExampleTTY_Frames() {
	tty, err := faketty.New()
	if err != nil {
		panic(err)
	}
	if _, err := tty.AddSequencer(nil, nil); err != nil {
		panic(err)
	}
	if _, err := tty.AddSequencer(nil, faketty.ResetOnErase); err != nil {
		panic(err)
	}

	_, _ = tty.WriteString("foo")
	_ = tty.ClearLine(faketty.ClearLineWhole)
	_, _ = tty.WriteString("bar")

	frames, err := tty.Frames()
	if err != nil {
		panic(err)
	}
	for _, f := range frames {
		fmt.Printf("%q\n", f)
	}

	//output:
	//["foo" "   bar"]
	//["foo" "bar"]
}

func ExampleTTY_Sequences() {
	tty, err := faketty.New()
	if err != nil {
		panic(err)
	}
	if _, err := tty.AddSequencer(nil, nil); err != nil {
		panic(err)
	}

	_, _ = tty.WriteString("foo")
	_ = tty.ClearLine(faketty.ClearLineWhole)

	// the trailing erase is captured when the frames are read
	sequences, err := tty.Sequences()
	if err != nil {
		panic(err)
	}
	fmt.Printf("%q\n", sequences[0])

	//output:
	//[["foo"] ["foo" "\x1b[2K"]]
}

func ExampleWhen() {
	tty, err := faketty.New()
	if err != nil {
		panic(err)
	}
	progress, err := tty.AddSequencer(faketty.When(faketty.Matches(regexp.MustCompile(`\d+%`))), nil)
	if err != nil {
		panic(err)
	}

	for _, chunk := range []string{"downloading ", "10%", "\x1b[3D", "99%", " ok"} {
		_, _ = tty.WriteString(chunk)
	}

	fmt.Printf("%q\n", progress.Frames())

	//output:
	//["downloading 10%" "downloading 99%"]
}

func ExampleTTY_Expect() {
	tty, err := faketty.New()
	if err != nil {
		panic(err)
	}

	snapshot := tty.Snapshot()
	_, _ = tty.WriteString("\x1b[32m? Continue\x1b[0m (y/N) ")

	fmt.Println(tty.Expect(snapshot, faketty.Contains("Continue (y/N)"), "prompt"))
	fmt.Println(tty.Expect(snapshot, faketty.Contains("Abort"), "abort") != nil)

	//output:
	//<nil>
	//true
}
