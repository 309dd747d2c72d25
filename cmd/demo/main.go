package main

import (
	"fmt"

	cudashim "github.com/nocuda/cudashim"
)

const ALLOC_SIZE = 1 << 20 // 1 MiB

// This is just a demo to ensure the fallback allocator works end to end
func main() {
	fmt.Printf("Allocating %d bytes of host memory...\n", ALLOC_SIZE)
	buf, err := cudashim.AllocHostBytes(ALLOC_SIZE)
	if err != nil {
		panic(err)
	}
	fmt.Printf("Got %d bytes at %p\n", len(buf), &buf[0])

	for i := range buf {
		buf[i] = byte(i)
	}
	for i := range buf {
		if buf[i] != byte(i) {
			panic(fmt.Sprintf("corruption at offset %d", i))
		}
	}
	fmt.Println("Pattern verified!")

	if err := cudashim.FreeHostBytes(buf); err != nil {
		panic(err)
	}
	fmt.Println("finished")
}
