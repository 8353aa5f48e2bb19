// Copyright 2016-2017 Diffeo, Inc.
// This software is released under an MIT/X11 open source license.

package main

import (
	"fmt"
	"runtime"
	"sync"
	"time"

	"github.com/diffeo/go-todoapi/todoapi"
	"github.com/satori/go.uuid"
	"github.com/urfave/cli"
)

type benchWork struct {
	Service     todoapi.Service
	Concurrency int
}

// Run calls runner from Concurrency goroutines and waits for all of
// them to return.
func (bench *benchWork) Run(runner func()) {
	wg := sync.WaitGroup{}
	wg.Add(bench.Concurrency)
	for i := 0; i < bench.Concurrency; i++ {
		go func() {
			defer wg.Done()
			runner()
		}()
	}
	wg.Wait()
}

// AddTodos creates count todos with random titles, owned by owner if
// it is not nil.  It returns the number that failed.
func (bench *benchWork) AddTodos(count int, owner *int) int {
	numbers := make(chan int)
	go func() {
		for i := 1; i <= count; i++ {
			numbers <- i
		}
		close(numbers)
	}()
	var failed int
	var mu sync.Mutex
	bench.Run(func() {
		for range numbers {
			_, err := bench.Service.CreateTodo(todoapi.NewTodo{
				Title:  uuid.NewV4().String(),
				UserID: owner,
			})
			if err != nil {
				mu.Lock()
				failed++
				mu.Unlock()
			}
		}
	})
	return failed
}

var benchTodos = cli.Command{
	Name:  "bench",
	Usage: "create many todos in parallel",
	Flags: []cli.Flag{
		cli.IntFlag{
			Name:  "count",
			Value: 100,
			Usage: "number of todos to create",
		},
		cli.IntFlag{
			Name:  "concurrency",
			Value: runtime.NumCPU(),
			Usage: "run this many requests in parallel",
		},
		cli.IntFlag{
			Name:  "user",
			Usage: "owning user id of the new todos",
		},
	},
	Action: func(c *cli.Context) error {
		svc, err := service(c)
		if err != nil {
			return err
		}
		bench := benchWork{Service: svc, Concurrency: c.Int("concurrency")}
		if bench.Concurrency < 1 {
			bench.Concurrency = 1
		}
		var owner *int
		if c.IsSet("user") {
			owner = todoapi.IntPtr(c.Int("user"))
		}

		count := c.Int("count")
		start := time.Now()
		failed := bench.AddTodos(count, owner)
		elapsed := time.Since(start)
		fmt.Fprintf(c.App.Writer, "created %v todos (%v failed) in %v\n",
			count-failed, failed, elapsed)
		return nil
	},
}
