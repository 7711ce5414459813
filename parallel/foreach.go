// Package parallel implements bounded-concurrency loop helpers
package parallel

import "sync"

// ForEach runs body(i) for every i from 0 to length, using at most limit
// concurrent goroutines. It returns after every body call has finished.
func ForEach(length, limit int, body func(i int)) {
	if length <= 0 {
		return
	}
	if limit <= 0 || limit > length {
		limit = length
	}
	var wg sync.WaitGroup
	wg.Add(limit)
	var next = make(chan int)
	for w := 0; w < limit; w++ {
		go func() {
			defer wg.Done()
			for i := range next {
				body(i)
			}
		}()
	}
	for i := 0; i < length; i++ {
		next <- i
	}
	close(next)
	wg.Wait()
}
