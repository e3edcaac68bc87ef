package main

import (
	"errors"
	"fmt"

	"github.com/mgnsk/slist"
)

func main() {
	l := slist.New()
	defer l.Free()

	for _, v := range []int{3, 1, 4, 1, 5} {
		if err := l.PushBack(v); err != nil {
			panic(err)
		}
	}

	// Prints 3->1->4->1->5->NULL.
	l.Print()

	if i, err := l.IndexOf(1); err == nil {
		fmt.Println("first 1 at", i)
	}

	// Out of range lookups report an error instead of a sentinel value.
	if _, err := l.At(6); errors.Is(err, slist.ErrIndexOutOfRange) {
		fmt.Println(err)
	}
}
