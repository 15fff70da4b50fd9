package queue_test

import (
	"errors"
	"fmt"
	"io"

	"github.com/joshuapare/memkit/block"
	"github.com/joshuapare/memkit/queue"
)

func Example() {
	res, err := block.New(4096)
	if err != nil {
		panic(err)
	}
	defer res.Release()

	q := queue.New[string](res)
	defer q.Close()

	for _, s := range []string{"alpha", "beta", "gamma"} {
		if err := q.Push(s); err != nil {
			panic(err)
		}
	}

	it := q.Items()
	for {
		v, err := it.Next()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			panic(err)
		}
		fmt.Println(*v)
	}
	// Output:
	// alpha
	// beta
	// gamma
}
