// Licensed under the MIT License. See LICENSE file in the project root for details.

// Package main provides an interactive REPL for exploring the
// semistable-vector container.
//
// This command-line tool allows a user to interactively push, pop, insert,
// erase and inspect a Vector, and to hold a named iterator across mutations
// to observe firsthand that it keeps tracking its element. It's useful for
// learning the API and for manually confirming semistability.
//
// # Usage
//
// Start the REPL:
//
//	go run cmd/demo/main.go
//
// Available commands:
//
//	push <v>            - append v
//	pop                 - remove and print the last element
//	insert <i> <v>      - insert v before position i
//	erase <i>           - erase the element at position i
//	at <i>              - print the element at position i
//	mark <name> <i>     - remember an iterator at position i under name
//	deref <name>        - print the element the named iterator refers to now
//	list                - print the whole sequence
//	quit, exit          - exit the REPL
//
// # Dangers and Warnings
//
//   - The REPL is single-threaded and holds one in-memory Vector[int]; all
//     data is lost on exit.
//   - mark rejects positions outside [0, len], but accepts len itself (one
//     past the end). Dereferencing such a mark, or one whose element has
//     since been erased, is undefined behavior per the container's
//     contract; the REPL does not guard against it.
//
// # See Also
//
// For throughput measurements, see cmd/bench.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	semistable "github.com/joaquintides/semistable-vector"
)

type demo struct {
	v     *semistable.Vector[int]
	marks map[string]semistable.Iterator[int]
}

func newDemo() *demo {
	return &demo{
		v:     semistable.New[int](),
		marks: make(map[string]semistable.Iterator[int]),
	}
}

func (d *demo) run() {
	fmt.Println("semistable-vector demo")
	fmt.Println("Commands: push, pop, insert, erase, at, mark, deref, list, quit")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		parts := strings.Fields(line)
		cmd, args := parts[0], parts[1:]

		switch cmd {
		case "push":
			d.push(args)
		case "pop":
			d.pop()
		case "insert":
			d.insert(args)
		case "erase":
			d.erase(args)
		case "at":
			d.at(args)
		case "mark":
			d.mark(args)
		case "deref":
			d.deref(args)
		case "list":
			d.list()
		case "quit", "exit":
			fmt.Println("Goodbye!")
			return
		default:
			fmt.Printf("Unknown command: %s\n", cmd)
		}
	}
}

func (d *demo) push(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: push <v>")
		return
	}
	n, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("not a number:", args[0])
		return
	}
	d.v.PushBack(n)
	fmt.Println("OK")
}

func (d *demo) pop() {
	if d.v.Empty() {
		fmt.Println("empty")
		return
	}
	fmt.Println(d.v.PopBack())
}

func (d *demo) insert(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: insert <i> <v>")
		return
	}
	i, err1 := strconv.Atoi(args[0])
	val, err2 := strconv.Atoi(args[1])
	if err1 != nil || err2 != nil || i < 0 || i > d.v.Len() {
		fmt.Println("bad arguments")
		return
	}
	d.v.Insert(d.v.Iter(i), val)
	fmt.Println("OK")
}

func (d *demo) erase(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: erase <i>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil || i < 0 || i >= d.v.Len() {
		fmt.Println("bad index")
		return
	}
	d.v.Erase(d.v.Iter(i))
	fmt.Println("OK")
}

func (d *demo) at(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: at <i>")
		return
	}
	i, err := strconv.Atoi(args[0])
	if err != nil {
		fmt.Println("not a number:", args[0])
		return
	}
	x, err := d.v.At(i)
	if err != nil {
		fmt.Println(err)
		return
	}
	fmt.Println(x)
}

func (d *demo) mark(args []string) {
	if len(args) != 2 {
		fmt.Println("Usage: mark <name> <i>")
		return
	}
	i, err := strconv.Atoi(args[1])
	if err != nil || i < 0 || i > d.v.Len() {
		fmt.Println("bad index")
		return
	}
	d.marks[args[0]] = d.v.Iter(i)
	fmt.Println("OK")
}

func (d *demo) deref(args []string) {
	if len(args) != 1 {
		fmt.Println("Usage: deref <name>")
		return
	}
	it, ok := d.marks[args[0]]
	if !ok {
		fmt.Println("no such mark:", args[0])
		return
	}
	fmt.Println(*it.Deref())
	d.marks[args[0]] = it
}

func (d *demo) list() {
	fmt.Println(d.v.Data())
}

func main() {
	newDemo().run()
}
